package kernel

import "time"

// System is the state shared by the two units of one render pass: the
// completion signal of the second unit, its progress mailbox and the pass
// timebase.
type System struct {
	done     Signal
	progress Mailbox
	start    time.Time
}

// NewSystem creates the shared state for one pass.
func NewSystem() *System {
	return &System{}
}

// Done is set by the second unit when its work is complete.
func (s *System) Done() *Signal { return &s.done }

// Progress carries notices from the second unit to the main unit.
func (s *System) Progress() *Mailbox { return &s.progress }

// Start marks the beginning of the pass. Call it from the main unit before
// launching the second one.
func (s *System) Start() { s.start = time.Now() }

// Elapsed returns the time since Start, or 0 if Start was never called.
func (s *System) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return time.Since(s.start)
}

// Launch starts fn on the second execution unit. On the host it is an
// ordinary goroutine. On an RP2040 it only lands on core 1 when the firmware
// is built with TinyGo's multicore scheduler (-scheduler=cores); with the
// default cooperative scheduler fn runs on core 0 whenever the caller yields.
// fn must not block on the caller.
func Launch(fn func()) {
	go fn()
}
