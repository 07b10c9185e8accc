package tracer

// Quantize packs c into the panel's 16-bit word. Channels are scaled to 5, 6
// and 5 bits, truncated toward zero and clamped to their range. The word is a
// byte-swapped RGB565 value:
//
//	bit  15..13  12..8  7..3  2..0
//	     g[2:0]  b[4:0] r[4:0] g[5:3]
//
// Stored little-endian it becomes the big-endian byte stream the LCD expects.
func Quantize(c Color) uint16 {
	r := channel(c.R, 31)
	g := channel(c.G, 63)
	b := channel(c.B, 31)
	return b<<8 | r<<3 | g>>3 | (g&0x07)<<13
}

func channel(v, max float64) uint16 {
	s := v * max
	if s <= 0 {
		return 0
	}
	if s >= max {
		return uint16(max)
	}
	return uint16(s)
}

// Unpack splits a word produced by Quantize into its 5-6-5 channels.
func Unpack(w uint16) (r, g, b uint8) {
	r = uint8(w>>3) & 0x1F
	g = uint8(w&0x07)<<3 | uint8(w>>13)&0x07
	b = uint8(w>>8) & 0x1F
	return r, g, b
}

// RGB888 expands a packed word to 8-bit channels.
func RGB888(w uint16) (r, g, b uint8) {
	r5, g6, b5 := Unpack(w)
	r = uint8((uint16(r5) * 255) / 31)
	g = uint8((uint16(g6) * 255) / 63)
	b = uint8((uint16(b5) * 255) / 31)
	return r, g, b
}
