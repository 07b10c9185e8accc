package app

import (
	"image/color"

	"duoray/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = fbDisplay{}

// fbDisplay lets tinyfont draw straight into a byte-swapped RGB565
// framebuffer.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565Swapped {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	// High byte first in memory.
	buf[off] = byte(pixel >> 8)
	buf[off+1] = byte(pixel)
}

func (d fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

var textFont tinyfont.Fonter = &tinyfont.TomThumb

const textLineHeight = 6

func drawText(fb hal.Framebuffer, x, y int16, s string, fg color.RGBA) {
	tinyfont.WriteLine(fbDisplay{fb: fb}, textFont, x, y+textLineHeight-1, s, fg)
}
