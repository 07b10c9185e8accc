package app

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"duoray/hal"
	"duoray/render"
	"duoray/tracer"
)

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
	// panicAt makes the Nth Present call panic (0 = never).
	panicAt int
	first   []byte
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, format: hal.PixelFormatRGB565Swapped, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return f.format }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  {}
func (f *testFB) Present() error {
	f.presents++
	if f.presents == 1 {
		f.first = append([]byte(nil), f.buf...)
	}
	if f.panicAt > 0 && f.presents == f.panicAt {
		panic("spi fault")
	}
	return nil
}

type testDisplay struct {
	fb      *testFB
	cleared bool
}

func (d *testDisplay) Framebuffer() hal.Framebuffer { return d.fb }
func (d *testDisplay) Clear(r, g, b uint8) error {
	d.cleared = true
	return nil
}

type testHAL struct {
	log  *testLogger
	disp *testDisplay
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{log: &testLogger{}, disp: &testDisplay{fb: newTestFB(w, h)}}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h.disp }

func word(buf []byte, w, x, y int) uint16 {
	off := (y*w + x) * 2
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

func TestRunRendersReferenceFrame(t *testing.T) {
	h := newTestHAL(240, 240)
	s := newSystem(h, Config{})
	s.run()

	if !h.disp.cleared {
		t.Fatalf("display was not cleared before rendering")
	}
	if got := word(h.disp.fb.first, 240, 0, 0); got != 0xFFFF {
		t.Fatalf("first presented pixel = %#04x, want white prefill 0xffff", got)
	}

	sh := tracer.DefaultShader(tracer.DefaultScene())
	want := tracer.Quantize(sh.PixelColor(0, 0))
	if got := word(h.disp.fb.buf, 240, 120, 120); got != want {
		t.Fatalf("centre pixel = %#04x, want %#04x", got, want)
	}
	if got := word(h.disp.fb.buf, 240, 120, 0); got != 0x0000 {
		t.Fatalf("sky pixel = %#04x, want 0x0000", got)
	}
	// Prefill present plus the final present of the pass.
	if h.disp.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2", h.disp.fb.presents)
	}
	if s.stats.Pixels != 240*240 {
		t.Fatalf("stats.Pixels = %d, want %d", s.stats.Pixels, 240*240)
	}
	if !h.log.contains("render: done") {
		t.Fatalf("log missing completion line: %v", h.log.lines)
	}
}

func TestStepHaltsAfterRender(t *testing.T) {
	h := newTestHAL(16, 16)
	s := newSystem(h, DefaultConfig())
	if err := s.step(); err != nil {
		t.Fatalf("step() before run = %v, want nil", err)
	}
	s.run()
	if err := s.step(); !errors.Is(err, hal.ErrHalt) {
		t.Fatalf("step() after run = %v, want ErrHalt", err)
	}
}

func TestOverlayDrawsStatus(t *testing.T) {
	plain := newTestHAL(64, 64)
	newSystem(plain, Config{}).run()

	stamped := newTestHAL(64, 64)
	newSystem(stamped, Config{Overlay: true}).run()

	diff := 0
	for y := 64 - textLineHeight - 1; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if word(plain.disp.fb.buf, 64, x, y) != word(stamped.disp.fb.buf, 64, x, y) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Fatalf("overlay changed no pixels in the status line")
	}
}

func TestUnsupportedFormatSkipsRender(t *testing.T) {
	h := newTestHAL(8, 8)
	h.disp.fb.format = hal.PixelFormatRGB565
	newSystem(h, Config{}).run()
	if h.disp.fb.presents != 0 {
		t.Fatalf("presents = %d, want 0", h.disp.fb.presents)
	}
	if !h.log.contains("unsupported pixel format") {
		t.Fatalf("log missing format error: %v", h.log.lines)
	}
}

func TestPanicIsReported(t *testing.T) {
	h := newTestHAL(64, 64)
	h.disp.fb.panicAt = 2
	s := newSystem(h, Config{})
	s.run()
	if !h.log.contains("duoray panic: spi fault") {
		t.Fatalf("log missing panic line: %v", h.log.lines)
	}
	if err := s.step(); !errors.Is(err, hal.ErrHalt) {
		t.Fatalf("step() after panic = %v, want ErrHalt", err)
	}
}

func TestOverlayText(t *testing.T) {
	got := overlayText(render.Stats{Pixels: 57600})
	if !strings.HasPrefix(got, "0ms 57600px ") {
		t.Fatalf("overlayText() = %q, want prefix %q", got, "0ms 57600px ")
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo world", 5)
	if p != "héllo" || r != " world" {
		t.Fatalf("takeRunes() = %q, %q", p, r)
	}
}
