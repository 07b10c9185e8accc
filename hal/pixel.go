package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func swap16(p uint16) uint16 { return p<<8 | p>>8 }

// pixelWord encodes an 8-bit colour in format f.
func pixelWord(f PixelFormat, r, g, b uint8) uint16 {
	p := rgb565(r, g, b)
	if f == PixelFormatRGB565Swapped {
		return swap16(p)
	}
	return p
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB888 decodes the little-endian word at buf[off:off+2] in format f.
func RGB888(f PixelFormat, buf []byte, off int) (r, g, b uint8) {
	p := uint16(buf[off]) | uint16(buf[off+1])<<8
	if f == PixelFormatRGB565Swapped {
		p = swap16(p)
	}
	return rgb888From565(p)
}

func fillWord(buf []byte, p uint16) {
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}
