package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrHalt is returned by an app step function when the program has nothing
// more to do. Runners treat it as a clean stop.
var ErrHalt = errors.New("halt")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGB565Swapped is 16bpp with the two bytes of each word
	// swapped: gggbbbbb rrrrrggg. Stored little-endian it is the big-endian
	// RGB565 stream most SPI panels take, so Present needs no conversion.
	PixelFormatRGB565Swapped
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	// Present transfers the buffer to the panel. It may be called while the
	// buffer is still being written.
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	// Clear fills the panel itself, bypassing the framebuffer.
	Clear(r, g, b uint8) error
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
}
