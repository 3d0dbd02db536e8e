// Package theme holds the visitor's light/dark preference.
//
// A Store is an observable value: views subscribe to it to keep the root
// theme attribute in sync, and every change is written through a Persister.
// Persistence is best-effort; a failed read yields Light and a failed write
// is logged and otherwise ignored.
package theme

import (
	"context"
	"log"
	"sync"
)

// Mode is a theme preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Key is the preference key the mode is persisted under.
const Key = "theme"

// ParseMode converts a stored value to a Mode, falling back to Light.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Dark:
		return Dark
	default:
		return Light
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m == Light || m == Dark }

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// RootClass is the class applied to the <html> element. Styling rules key
// off it, so rendering it server-side avoids a flash of the wrong theme.
func RootClass(m Mode) string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Persister loads and saves the raw preference value.
type Persister interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// Store is the single active preference for one visitor.
//
// Changes are applied one at a time: the new mode, the subscriber fan-out
// and the persisted write of one change all finish before the next change
// starts, so the stored value always matches the in-memory one.
type Store struct {
	write sync.Mutex // serializes changes end to end

	mu        sync.Mutex
	mode      Mode
	persister Persister
	subs      map[int]func(Mode)
	nextSub   int
	closed    bool
}

// NewStore creates a Store, reading the persisted value once.
func NewStore(ctx context.Context, p Persister) *Store {
	s := &Store{
		mode:      Light,
		persister: p,
		subs:      make(map[int]func(Mode)),
	}
	if p == nil {
		return s
	}
	raw, err := p.Load(ctx)
	if err != nil {
		log.Printf("theme: loading preference: %v", err)
		return s
	}
	s.mode = ParseMode(raw)
	return s
}

// Get returns the current mode.
func (s *Store) Get() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode, persists it and notifies subscribers. It returns
// the mode after the call; a closed store is left unchanged.
func (s *Store) Toggle() Mode {
	s.write.Lock()
	defer s.write.Unlock()
	return s.apply(func(cur Mode) Mode { return cur.Opposite() })
}

// Set replaces the mode. Invalid modes are ignored; setting the current
// mode again is a no-op.
func (s *Store) Set(m Mode) {
	if !m.Valid() {
		return
	}
	s.write.Lock()
	defer s.write.Unlock()
	s.apply(func(Mode) Mode { return m })
}

// apply computes the next mode from the current one under the lock, then
// notifies and persists. The caller holds s.write.
func (s *Store) apply(next func(Mode) Mode) Mode {
	s.mu.Lock()
	if s.closed {
		cur := s.mode
		s.mu.Unlock()
		return cur
	}
	m := next(s.mode)
	if m == s.mode {
		s.mu.Unlock()
		return m
	}
	s.mode = m
	subs := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(m)
	}
	s.persist(m)
	return m
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription and is safe to call more than once.
// fn must not change the store it is subscribed to.
func (s *Store) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close drops all subscribers. A closed store ignores further changes.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(Mode))
}

func (s *Store) persist(m Mode) {
	if s.persister == nil {
		return
	}
	// Not tied to the request that caused the change.
	if err := s.persister.Save(context.Background(), string(m)); err != nil {
		log.Printf("theme: saving preference: %v", err)
	}
}
