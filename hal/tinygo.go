//go:build tinygo && baremetal

package hal

import "machine"

// Reference panel size.
const (
	PanelWidth  = 240
	PanelHeight = 240
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *lcdFramebuffer
}

// New returns a Raspberry Pi Pico HAL with a Waveshare Pico-LCD-1.3
// (ST7789, 240x240) attached.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newLCDFramebuffer(PanelWidth, PanelHeight),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
