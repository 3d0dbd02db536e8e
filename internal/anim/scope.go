package anim

import "sync"

// Listener identifies a global event listener a view asks the client to attach.
type Listener string

const (
	PointerMove Listener = "pointermove"
	Scroll      Listener = "scroll"
)

// ListenerScope tracks listeners acquired by one mounted view so that all of
// them are released when the view unmounts.
type ListenerScope struct {
	mu      sync.Mutex
	active  map[int]Listener
	next    int
	onEvent func(l Listener, attached bool)
}

// NewScope creates a scope. onEvent is called on every attach and detach,
// and is how the view forwards listen/unlisten commands to the client.
func NewScope(onEvent func(l Listener, attached bool)) *ListenerScope {
	if onEvent == nil {
		onEvent = func(Listener, bool) {}
	}
	return &ListenerScope{active: make(map[int]Listener), onEvent: onEvent}
}

// Acquire attaches l and returns its release function. Release is idempotent.
func (s *ListenerScope) Acquire(l Listener) (release func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.active[id] = l
	s.mu.Unlock()
	s.onEvent(l, true)

	return func() {
		s.mu.Lock()
		l, ok := s.active[id]
		delete(s.active, id)
		s.mu.Unlock()
		if ok {
			s.onEvent(l, false)
		}
	}
}

// Active returns the number of attached listeners.
func (s *ListenerScope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Close releases every listener still attached.
func (s *ListenerScope) Close() {
	s.mu.Lock()
	released := make([]Listener, 0, len(s.active))
	for id, l := range s.active {
		released = append(released, l)
		delete(s.active, id)
	}
	s.mu.Unlock()
	for _, l := range released {
		s.onEvent(l, false)
	}
}
