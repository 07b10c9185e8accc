package kernel

import (
	"runtime"
	"sync/atomic"
)

// Signal is a one-shot completion flag with a single writer and a single
// reader. Once set it stays set.
type Signal struct {
	_    [0]func() // prevent accidental copying.
	done atomic.Bool
}

// Set marks the signal complete. Later calls have no effect.
func (s *Signal) Set() { s.done.Store(true) }

// Done reports whether Set has been called.
func (s *Signal) Done() bool { return s.done.Load() }

// Wait spins until the signal is set, calling poll (if non-nil) on every
// iteration and yielding between polls.
func (s *Signal) Wait(poll func()) {
	for !s.Done() {
		if poll != nil {
			poll()
		}
		runtime.Gosched()
	}
}
