//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"duoray/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowScale is the integer zoom applied to the panel in the desktop window.
const windowScale = 3

// RunWindow starts a desktop window that shows the panel. It blocks until the
// window closes or Esc is pressed. The app keeps the window open after it
// halts so the final frame stays visible.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("duoray (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*windowScale, h.fb.height*windowScale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
	halted  bool
	shown   uint64
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.step == nil || g.halted {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrHalt) {
			g.halted = true
			return nil
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.panel))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.shown = ^uint64(0)
	}

	if n := fb.snapshot(g.scratch); n != g.shown {
		g.shown = n
		src := g.scratch
		dst := g.img.Pix
		for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
			r, gg, b := RGB888(PixelFormatRGB565Swapped, src, i)
			j := (i / 2) * 4
			dst[j+0] = r
			dst[j+1] = gg
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
