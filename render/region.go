package render

import "duoray/tracer"

// RenderRegion shades every pixel of region and stores the quantized word.
// Screen coordinates are (col - W/2, H/2 - row) with H the full image height,
// so every region shares one image plane. rowDone, if set, runs after each
// completed row.
func RenderRegion(region Region, sh *tracer.Shader, rowDone func(y int)) {
	w := region.Width()
	halfW := w / 2
	halfH := region.ImageHeight() / 2
	rows := region.Rows()
	for row := rows.Start; row < rows.End; row++ {
		y := float64(halfH - row)
		for col := 0; col < w; col++ {
			c := sh.PixelColor(float64(col-halfW), y)
			region.Set(col, row, tracer.Quantize(c))
		}
		if rowDone != nil {
			rowDone(row)
		}
	}
}
