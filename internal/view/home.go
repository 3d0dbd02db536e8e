package view

import (
	"fmt"
	"sync"

	"github.com/gyansetu/website/internal/anim"
	"github.com/gyansetu/website/internal/loading"
	"github.com/gyansetu/website/internal/router"
)

// Home is the root view: hero, about, products and contact.
//
// A fresh mount with intro set owns a loading sequence. The hero stays
// hidden until the sequence reaches completing and the overlay is removed
// once it is done. The hero parallax listener lives exactly as long as the
// mount.
type Home struct {
	deps   *Deps
	route  router.Route
	emit   Emitter
	intro  bool
	onDone func()

	seq   *loading.Sequence
	scope *anim.ListenerScope

	mu        sync.Mutex
	listeners []Command
	release   func()
}

// NewHome creates the root view. onDone is called once the intro has
// finished for this mount, or at once when intro is false.
func NewHome(deps *Deps, route router.Route, intro bool, emit Emitter, onDone func()) *Home {
	if emit == nil {
		emit = func(...Command) {}
	}
	if onDone == nil {
		onDone = func() {}
	}
	h := &Home{deps: deps, route: route, emit: emit, intro: intro, onDone: onDone}
	h.scope = anim.NewScope(h.listenerChanged)
	return h
}

func (h *Home) Page() router.PageID { return router.Home }
func (h *Home) Frame() Frame        { return Frame{Route: h.route, Intro: h.intro} }

// HeroVisible reports whether the hero may show its content.
func (h *Home) HeroVisible() bool {
	if h.seq == nil {
		return !h.intro
	}
	return h.seq.HeroVisible()
}

// Sequence returns the loading sequence of this mount, if any.
func (h *Home) Sequence() *loading.Sequence { return h.seq }

func (h *Home) Mount() []Command {
	var cmds []Command
	if h.intro {
		opts := []loading.Option{loading.WithFallback(h.deps.Fallback)}
		if h.deps.Clock != nil {
			opts = append(opts, loading.WithClock(h.deps.Clock))
		}
		h.seq = loading.New(h.deps.Grace, opts...)
		h.seq.OnChange(h.phaseChanged)
		cmds = append(cmds, h.deps.animate(anim.LoadingIntro)...)
	} else {
		cmds = append(cmds, Attr("#hero", "data-visible", "true"))
		cmds = append(cmds, h.deps.animate(anim.HeroEntrance)...)
		h.onDone()
	}
	cmds = append(cmds, h.deps.animate(anim.SectionReveal, anim.ProductsReveal)...)

	release := h.scope.Acquire(anim.PointerMove)
	h.mu.Lock()
	h.release = release
	h.mu.Unlock()
	return append(cmds, h.drainListeners()...)
}

func (h *Home) Handle(ev Event) ([]Command, error) {
	switch ev.Type {
	case EventLoadingComplete:
		if h.seq != nil {
			h.seq.Complete()
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandled, ev.Type)
	}
}

func (h *Home) Unmount() []Command {
	if h.seq != nil {
		if h.seq.HeroVisible() {
			h.onDone()
		}
		h.seq.Close()
	}
	h.scope.Close()
	return h.drainListeners()
}

// ReleaseParallax detaches the pointer listener before unmount.
func (h *Home) ReleaseParallax() []Command {
	h.mu.Lock()
	release := h.release
	h.mu.Unlock()
	if release != nil {
		release()
	}
	return h.drainListeners()
}

// Listeners returns the number of attached global listeners.
func (h *Home) Listeners() int { return h.scope.Active() }

func (h *Home) phaseChanged(p loading.Phase) {
	switch p {
	case loading.Completing:
		cmds := []Command{Attr("#hero", "data-visible", "true")}
		h.emit(append(cmds, h.deps.animate(anim.HeroEntrance)...)...)
	case loading.Done:
		h.emit(Remove("#loading"))
		h.onDone()
	}
}

func (h *Home) listenerChanged(l anim.Listener, attached bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if attached {
		h.listeners = append(h.listeners, Listen(l))
	} else {
		h.listeners = append(h.listeners, Unlisten(l))
	}
}

func (h *Home) drainListeners() []Command {
	h.mu.Lock()
	defer h.mu.Unlock()
	cmds := h.listeners
	h.listeners = nil
	return cmds
}
