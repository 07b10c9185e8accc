//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Reference panel size.
const (
	PanelWidth  = 240
	PanelHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
}

// New returns a host HAL implementation.
func New() HAL {
	return NewWithLogger(os.Stdout)
}

// NewWithLogger returns a host HAL that logs to w.
func NewWithLogger(w *os.File) HAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(PanelWidth, PanelHeight),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d hostDisplay) Clear(r, g, b uint8) error {
	d.fb.clearPanel(r, g, b)
	return nil
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	if l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
