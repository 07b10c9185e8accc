//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/st7789"
)

// Pico-LCD-1.3 wiring.
const (
	lcdDC  = machine.GP8
	lcdCS  = machine.GP9
	lcdSCK = machine.GP10
	lcdSDO = machine.GP11
	lcdRST = machine.GP12
	lcdBL  = machine.GP13
)

type lcdFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *st7789.Device
}

func newLCDFramebuffer(w, h int) *lcdFramebuffer {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		Frequency: 62_500_000,
	})

	lcd := st7789.New(machine.SPI1, lcdRST, lcdDC, lcdCS, lcdBL)
	lcd.Configure(st7789.Config{
		Width:  int16(w),
		Height: int16(h),
	})

	return &lcdFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		lcd:    &lcd,
	}
}

func (f *lcdFramebuffer) Width() int          { return f.w }
func (f *lcdFramebuffer) Height() int         { return f.h }
func (f *lcdFramebuffer) Format() PixelFormat { return PixelFormatRGB565Swapped }
func (f *lcdFramebuffer) StrideBytes() int    { return f.stride }
func (f *lcdFramebuffer) Buffer() []byte      { return f.buf }

func (f *lcdFramebuffer) ClearRGB(r, g, b uint8) {
	fillWord(f.buf, pixelWord(PixelFormatRGB565Swapped, r, g, b))
}

// Present streams the whole buffer to the panel. The buffer already holds
// big-endian RGB565 bytes, which is what DrawRGBBitmap8 sends.
func (f *lcdFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.DrawRGBBitmap8(0, 0, f.buf, int16(f.w), int16(f.h))
}

func (f *lcdFramebuffer) clearPanel(r, g, b uint8) error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	f.lcd.FillScreen(color.RGBA{R: r, G: g, B: b, A: 0xFF})
	return nil
}
