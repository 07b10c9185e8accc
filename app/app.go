package app

import (
	"fmt"
	"sync/atomic"

	"duoray/hal"
	"duoray/internal/buildinfo"
	"duoray/render"
	"duoray/tracer"
)

// Config selects the optional behaviours of a render run.
type Config struct {
	// Progressive presents the frame after every row and while waiting for
	// the second core, so the image fills in on the panel.
	Progressive bool
	// Overlay stamps the render time in the bottom-left corner once done.
	Overlay bool
	// Scene overrides tracer.DefaultScene.
	Scene *tracer.Scene
}

// DefaultConfig is the reference behaviour: progressive reveal, no overlay.
func DefaultConfig() Config {
	return Config{Progressive: true}
}

type system struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	done  atomic.Bool
	stats render.Stats
}

// New initializes the device with the default config and starts the render
// on a background goroutine. The returned step reports hal.ErrHalt once the
// frame is complete.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run renders once and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	go s.run()
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	s := newSystem(h, cfg)
	s.run()
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	if cfg.Scene == nil {
		cfg.Scene = tracer.DefaultScene()
	}
	return &system{h: h, log: h.Logger(), cfg: cfg}
}

func (s *system) step() error {
	if s.done.Load() {
		return hal.ErrHalt
	}
	return nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// run performs the whole program: clear the panel, fill the framebuffer with
// white, show it, render on both cores, then show the result.
func (s *system) run() {
	defer s.done.Store(true)
	defer s.recoverPanic()

	s.logf("duoray %s", buildinfo.Describe())

	disp := s.h.Display()
	if disp == nil {
		s.logf("app: no display")
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		s.logf("app: no framebuffer")
		return
	}
	if fb.Format() != hal.PixelFormatRGB565Swapped {
		s.logf("app: unsupported pixel format %d", fb.Format())
		return
	}

	if err := disp.Clear(0, 0, 0); err != nil {
		s.logf("app: clear: %v", err)
	}

	rfb, err := render.NewFramebuffer(fb.Buffer(), fb.Width(), fb.Height())
	if err != nil {
		s.logf("app: %v", err)
		return
	}
	rfb.Fill(0xFFFF)
	if err := fb.Present(); err != nil {
		s.logf("app: present: %v", err)
	}

	pass := &render.Pass{
		FB:          rfb,
		Shader:      tracer.DefaultShader(s.cfg.Scene),
		Present:     fb.Present,
		Progressive: s.cfg.Progressive,
		Log:         s.log,
	}
	s.stats = pass.Run()

	if s.cfg.Overlay {
		drawOverlay(fb, s.stats)
		if err := fb.Present(); err != nil {
			s.logf("app: present: %v", err)
		}
	}
}
