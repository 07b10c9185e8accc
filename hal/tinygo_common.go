//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoDisplay struct {
	fb *lcdFramebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

func (d tinyGoDisplay) Clear(r, g, b uint8) error {
	return d.fb.clearPanel(r, g, b)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
