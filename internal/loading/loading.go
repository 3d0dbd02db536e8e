// Package loading implements the splash-screen state machine of the root route.
package loading

import (
	"sync"
	"time"
)

// Phase is a step of the loading sequence.
type Phase string

const (
	Playing    Phase = "playing"
	Completing Phase = "completing"
	Done       Phase = "done"
)

// Option configures a Sequence.
type Option func(*Sequence)

// WithClock replaces the clock used for the grace and fallback timers.
func WithClock(c Clock) Option {
	return func(s *Sequence) { s.clock = c }
}

// WithFallback forces completion after d if the client never reports it.
// Zero disables the fallback.
func WithFallback(d time.Duration) Option {
	return func(s *Sequence) { s.fallback = d }
}

// Sequence moves playing -> completing -> done, once per root-route mount.
//
// Complete is the intro's completion callback; only its first call counts.
// The hero becomes visible as soon as completing is entered, while the
// overlay stays mounted for the grace period so its exit can run.
type Sequence struct {
	mu       sync.Mutex
	phase    Phase
	grace    time.Duration
	fallback time.Duration
	clock    Clock
	timers   []Timer
	watchers []func(Phase)
	closed   bool
	forced   bool
}

// New starts a sequence in the playing phase.
func New(grace time.Duration, opts ...Option) *Sequence {
	s := &Sequence{
		phase: Playing,
		grace: grace,
		clock: RealClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fallback > 0 {
		s.timers = append(s.timers, s.clock.AfterFunc(s.fallback, s.forceComplete))
	}
	return s
}

// Phase returns the current phase.
func (s *Sequence) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// HeroVisible reports whether the hero content may start its entrance.
// It turns true when the completion callback fires and never reverts.
func (s *Sequence) HeroVisible() bool {
	return s.Phase() != Playing
}

// OverlayMounted reports whether the loading overlay is still in the page.
func (s *Sequence) OverlayMounted() bool {
	return s.Phase() != Done
}

// Forced reports whether completion came from the fallback timer.
func (s *Sequence) Forced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forced
}

// OnChange registers fn to be called on every phase transition.
func (s *Sequence) OnChange(fn func(Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Complete is the intro's completion callback. It reports whether this call
// caused the transition; repeated calls are no-ops.
func (s *Sequence) Complete() bool {
	s.mu.Lock()
	if s.closed || s.phase != Playing {
		s.mu.Unlock()
		return false
	}
	s.phase = Completing
	if s.grace > 0 {
		s.timers = append(s.timers, s.clock.AfterFunc(s.grace, s.finish))
	}
	watchers := append([]func(Phase){}, s.watchers...)
	s.mu.Unlock()

	notify(watchers, Completing)
	if s.grace <= 0 {
		s.finish()
	}
	return true
}

func (s *Sequence) forceComplete() {
	if s.Complete() {
		s.mu.Lock()
		s.forced = true
		s.mu.Unlock()
	}
}

func (s *Sequence) finish() {
	s.mu.Lock()
	if s.closed || s.phase != Completing {
		s.mu.Unlock()
		return
	}
	s.phase = Done
	watchers := append([]func(Phase){}, s.watchers...)
	s.mu.Unlock()

	notify(watchers, Done)
}

// Close cancels pending timers. It is called when the root view unmounts.
func (s *Sequence) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
	s.watchers = nil
}

func notify(watchers []func(Phase), p Phase) {
	for _, fn := range watchers {
		fn(p)
	}
}
