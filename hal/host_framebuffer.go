//go:build !tinygo

package hal

import "sync"

// hostFramebuffer models a panel with its own memory: the renderer writes
// buf, Present copies buf into panel, and the window shows panel.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	panel    []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		panel:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565Swapped }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	fillWord(f.buf, pixelWord(PixelFormatRGB565Swapped, r, g, b))
}

// Present may run while the second render unit is still writing buf; the
// resulting torn copy (and the race detector report) is expected.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.panel, f.buf)
	f.presents++
	return nil
}

func (f *hostFramebuffer) clearPanel(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fillWord(f.panel, pixelWord(PixelFormatRGB565Swapped, r, g, b))
	f.presents++
}

// snapshot copies the panel contents into dst and returns the present count.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.panel)
	return f.presents
}
