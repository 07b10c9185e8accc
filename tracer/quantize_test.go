package tracer

import "testing"

func TestQuantizeKnownWords(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint16
	}{
		{"black", RGB(0, 0, 0), 0x0000},
		{"white", RGB(1, 1, 1), 0xFFFF},
		{"red", RGB(1, 0, 0), 0x00F8},
		{"green", RGB(0, 1, 0), 0xE007},
		{"blue", RGB(0, 0, 1), 0x1F00},
		{"over range", RGB(3, 2, 1.5), 0xFFFF},
		{"negative", RGB(-1, -0.5, -2), 0x0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.c); got != tt.want {
				t.Fatalf("Quantize(%v) = %#04x, want %#04x", tt.c, got, tt.want)
			}
		})
	}
}

func TestQuantizeTruncates(t *testing.T) {
	// 0.5*31 = 15.5 -> 15, 0.5*63 = 31.5 -> 31.
	r, g, b := Unpack(Quantize(RGB(0.5, 0.5, 0.5)))
	if r != 15 || g != 31 || b != 15 {
		t.Fatalf("Unpack(Quantize(0.5)) = %d,%d,%d, want 15,31,15", r, g, b)
	}
}

func TestUnpackInvertsPacking(t *testing.T) {
	for r := 0; r < 32; r += 3 {
		for g := 0; g < 64; g += 5 {
			for b := 0; b < 32; b += 7 {
				c := RGB(float64(r)/31, float64(g)/63, float64(b)/31)
				gr, gg, gb := Unpack(Quantize(c))
				// Exact fractions may land one step low after float rounding.
				if d := int(gr) - r; d < -1 || d > 0 {
					t.Fatalf("red %d -> %d", r, gr)
				}
				if d := int(gg) - g; d < -1 || d > 0 {
					t.Fatalf("green %d -> %d", g, gg)
				}
				if d := int(gb) - b; d < -1 || d > 0 {
					t.Fatalf("blue %d -> %d", b, gb)
				}
			}
		}
	}
}

func TestRGB888(t *testing.T) {
	r, g, b := RGB888(0xFFFF)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("RGB888(0xFFFF) = %d,%d,%d, want 255,255,255", r, g, b)
	}
	r, g, b = RGB888(Quantize(RGB(1, 0, 0)))
	if r != 255 || g != 0 || b != 0 {
		t.Fatalf("RGB888(red) = %d,%d,%d, want 255,0,0", r, g, b)
	}
}
