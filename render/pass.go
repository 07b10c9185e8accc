package render

import (
	"fmt"
	"time"

	"duoray/kernel"
	"duoray/tracer"
)

// Logger is the line sink a pass reports to. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

// Stats summarises one render pass.
type Stats struct {
	Main     Rows
	Second   Rows
	Pixels   int
	Presents int
	Elapsed  time.Duration
}

// Pass renders one frame on two execution units. The second unit renders
// the bottom half and sets a completion signal; the calling unit renders the
// top half and then polls that signal. With Progressive set the frame is
// presented after every row of the top half and on every poll, so the panel
// shows the image filling in, torn frames included.
type Pass struct {
	FB     *Framebuffer
	Shader *tracer.Shader

	// Present transfers FB to the display. Errors are logged once and
	// otherwise ignored.
	Present     func() error
	Progressive bool

	// Log receives progress lines. May be nil.
	Log Logger
	// Launch starts work on the second unit. Defaults to kernel.Launch.
	Launch func(fn func())

	presents   int
	presentErr bool
}

// Run renders the frame and blocks until both halves are written.
func (p *Pass) Run() Stats {
	sys := kernel.NewSystem()
	sys.Start()
	h := p.FB.Height()

	parts := Split(h, 2)
	if len(parts) < 2 {
		parts = append(parts, Rows{Start: h, End: h})
	}
	mainRows, secondRows := parts[0], parts[1]

	launch := p.Launch
	if launch == nil {
		launch = kernel.Launch
	}

	second := p.FB.Region(secondRows)
	launch(func() {
		// Only quarter boundaries are reported, so the mailbox never fills
		// and Send never blocks the second unit.
		sent := 0
		RenderRegion(second, p.Shader, func(y int) {
			q := quarter(y-secondRows.Start+1, secondRows.Len())
			if q <= sent {
				return
			}
			sent = q
			sys.Progress().Send(kernel.Message{From: kernel.UnitSecond, Kind: kernel.MsgRowDone, Row: uint16(y)})
		})
		sys.Done().Set()
	})

	prog := progress{log: p.Log, rows: secondRows}
	p.logf("render: %v rows [%d,%d) %v rows [%d,%d)", kernel.UnitMain, mainRows.Start, mainRows.End, kernel.UnitSecond, secondRows.Start, secondRows.End)

	RenderRegion(p.FB.Region(mainRows), p.Shader, func(int) {
		sys.Progress().Drain(prog.observe)
		if p.Progressive {
			p.present()
		}
	})
	sys.Done().Wait(func() {
		sys.Progress().Drain(prog.observe)
		if p.Progressive {
			p.present()
		}
	})
	sys.Progress().Drain(prog.observe)
	p.present()

	st := Stats{
		Main:     mainRows,
		Second:   secondRows,
		Pixels:   p.FB.Width() * h,
		Presents: p.presents,
		Elapsed:  sys.Elapsed(),
	}
	p.logf("render: done %d px in %v (%d presents)", st.Pixels, st.Elapsed, st.Presents)
	return st
}

func (p *Pass) present() {
	if p.Present == nil {
		return
	}
	p.presents++
	if err := p.Present(); err != nil && !p.presentErr {
		p.presentErr = true
		p.logf("render: present: %v", err)
	}
}

func (p *Pass) logf(format string, args ...any) {
	if p.Log == nil {
		return
	}
	p.Log.WriteLineString(fmt.Sprintf(format, args...))
}

// progress logs the second unit's quarter notices.
type progress struct {
	log     Logger
	rows    Rows
	highest int
	logged  int
}

func (pr *progress) observe(msg kernel.Message) {
	if msg.Kind != kernel.MsgRowDone {
		return
	}
	done := int(msg.Row) - pr.rows.Start + 1
	if done > pr.highest {
		pr.highest = done
	}
	n := pr.rows.Len()
	if n == 0 || pr.log == nil {
		return
	}
	q := quarter(pr.highest, n)
	if q <= pr.logged {
		return
	}
	pr.logged = q
	pr.log.WriteLineString(fmt.Sprintf("render: %v %d/%d rows", msg.From, pr.highest, n))
}

// quarter returns how many quarters of n rows are covered by done rows.
func quarter(done, n int) int {
	if n <= 0 {
		return 0
	}
	return done * 4 / n
}
