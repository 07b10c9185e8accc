package render

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a backing buffer cannot hold the image.
var ErrBufferTooSmall = errors.New("render: buffer too small")

// Framebuffer is a W×H row-major array of packed 16-bit words backed by a
// caller-owned byte buffer. Words are stored little-endian, matching the hal
// framebuffer layout, so the display collaborator can transfer the backing
// buffer as is.
type Framebuffer struct {
	buf    []byte
	width  int
	height int
}

// NewFramebuffer wraps buf as a width×height word image.
func NewFramebuffer(buf []byte, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", width, height)
	}
	if len(buf) < width*height*2 {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), width*height*2)
	}
	return &Framebuffer{buf: buf, width: width, height: height}, nil
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Bytes returns the backing buffer.
func (f *Framebuffer) Bytes() []byte { return f.buf }

// Set writes word at (x, y). Out-of-bounds writes are ignored.
func (f *Framebuffer) Set(x, y int, word uint16) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	off := (y*f.width + x) * 2
	f.buf[off] = byte(word)
	f.buf[off+1] = byte(word >> 8)
}

// At returns the word at (x, y), or 0 when out of bounds.
func (f *Framebuffer) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	off := (y*f.width + x) * 2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// Fill sets every pixel to word.
func (f *Framebuffer) Fill(word uint16) {
	lo := byte(word)
	hi := byte(word >> 8)
	n := f.width * f.height * 2
	for i := 0; i < n; i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Region returns the sub-view that owns rows.
func (f *Framebuffer) Region(rows Rows) Region {
	if rows.Start < 0 {
		rows.Start = 0
	}
	if rows.End > f.height {
		rows.End = f.height
	}
	return Region{fb: f, rows: rows}
}

// Region is the write view of one partition. Pixels outside its rows are
// never touched, so two regions over disjoint rows can be written from
// different cores without locking.
type Region struct {
	fb   *Framebuffer
	rows Rows
}

func (r Region) Rows() Rows { return r.rows }

// Width is the full image width.
func (r Region) Width() int { return r.fb.width }

// ImageHeight is the full image height, not the height of the region.
func (r Region) ImageHeight() int { return r.fb.height }

// Set writes word at image coordinates (x, y). Writes outside the region are
// ignored.
func (r Region) Set(x, y int, word uint16) {
	if !r.rows.Contains(y) {
		return
	}
	r.fb.Set(x, y, word)
}
