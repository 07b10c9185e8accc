package app

import (
	"fmt"
	"image/color"

	"duoray/hal"
	"duoray/internal/buildinfo"
	"duoray/render"
)

// drawOverlay writes a one-line status in the bottom-left corner.
func drawOverlay(fb hal.Framebuffer, st render.Stats) {
	msg := overlayText(st)
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	drawText(fb, 2, int16(fb.Height()-textLineHeight-1), msg, fg)
}

func overlayText(st render.Stats) string {
	return fmt.Sprintf("%dms %dpx %s", st.Elapsed.Milliseconds(), st.Pixels, buildinfo.Short())
}
