package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

// recoverPanic reports a panic from the render on the log and on the panel,
// then lets run return normally.
func (s *system) recoverPanic() {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()

	s.logf("duoray panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		s.logf("%s", line)
	}

	disp := s.h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	lines := []string{
		"duoray panic:",
		fmt.Sprintf("%v", v),
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := fb.Width() / 4
	if cols <= 0 {
		cols = 1
	}
	y := int16(1)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+textLineHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawText(fb, 1, y, chunk, fg)
			y += textLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
