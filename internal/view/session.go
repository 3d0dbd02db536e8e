package view

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gyansetu/website/internal/nav"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/theme"
)

// Session is the view state of one browser tab: its history, the nav
// shell, the mounted view and the anchor waiting for the root view.
type Session struct {
	ID    string
	deps  *Deps
	theme *theme.Store
	emit  Emitter

	mu      sync.Mutex
	history *router.History
	shell   *nav.Shell
	view    View
	pending string
	closed  bool

	introDone   atomic.Bool
	unsubscribe func()
}

// NewSession creates a session bound to a visitor's theme store. Theme
// changes made anywhere are pushed through emit.
func NewSession(deps *Deps, store *theme.Store, emit Emitter) *Session {
	if emit == nil {
		emit = func(...Command) {}
	}
	s := &Session{
		ID:    uuid.NewString(),
		deps:  deps,
		theme: store,
		emit:  emit,
		shell: nav.NewShell(),
	}
	if store != nil {
		s.unsubscribe = store.Subscribe(func(m theme.Mode) {
			s.emit(ThemeCommands(m)...)
		})
	}
	return s
}

// View returns the mounted view, or nil.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Location returns the current location. ok is false before mount.
func (s *Session) Location() (router.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.history == nil {
		return router.Location{}, false
	}
	return s.history.Location(), true
}

// Shell returns the session's nav shell.
func (s *Session) Shell() *nav.Shell { return s.shell }

// Pending returns the anchor waiting for the root view to mount.
func (s *Session) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Handle applies one client event and returns the commands to run, in order.
func (s *Session) Handle(ev Event) ([]Command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrNotMounted
	}

	switch ev.Type {
	case EventMount:
		return s.mount(ev)
	case EventThemeToggle:
		if s.theme != nil {
			s.theme.Toggle()
		}
		return nil, nil
	case EventMenuToggle:
		return []Command{MenuCommand(s.shell.ToggleMenu())}, nil
	}

	if s.history == nil {
		return nil, ErrNotMounted
	}
	switch ev.Type {
	case EventNavigate:
		return s.navigate(ev.Path)
	case EventNavSelect:
		return s.selectNav(ev.Item)
	case EventScroll:
		s.history.ReportScroll(ev.X, ev.Y)
		return nil, nil
	case EventUnmount:
		cmds := s.unmountView()
		return cmds, nil
	default:
		if s.view == nil {
			return nil, ErrNotMounted
		}
		return s.view.Handle(ev)
	}
}

// Close unmounts the view and drops the theme subscription.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.unmountView()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// mount attaches state to a page the server already rendered.
func (s *Session) mount(ev Event) ([]Command, error) {
	cmds := s.unmountView()
	s.history = router.NewHistory(s.deps.Routes, ev.Path)
	loc := s.history.Location()
	v, err := s.newView(loc.Route, ev.Tab)
	if err != nil {
		return cmds, err
	}
	s.pending = loc.Anchor
	cmds = append(cmds, s.mountView(v)...)
	if s.theme != nil {
		cmds = append(cmds, ThemeCommands(s.theme.Get())...)
	}
	return cmds, nil
}

func (s *Session) navigate(link string) ([]Command, error) {
	loc, err := s.history.Navigate(link)
	if errors.Is(err, router.ErrNoRoute) {
		return []Command{Reload(link)}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.transition(loc)
}

func (s *Session) selectNav(label string) ([]Command, error) {
	loc := s.history.Location()
	act, err := s.shell.Select(label, loc.Route.Path)
	cmds := []Command{MenuCommand(false)}
	if err != nil {
		return cmds, err
	}
	switch act.Kind {
	case nav.ScrollTo:
		return append(cmds, ScrollTo(act.Anchor)), nil
	case nav.Stay:
		return cmds, nil
	default:
		link := act.Path
		if act.Anchor != "" {
			link += "#" + act.Anchor
		}
		next, err := s.history.Navigate(link)
		if err != nil {
			return cmds, err
		}
		more, err := s.transition(next)
		return append(cmds, more...), err
	}
}

// transition replaces the mounted view: the old view is torn down, the URL
// changes, the viewport goes back to the top and only then is the new view
// drawn and mounted. A pending anchor is scrolled to last.
func (s *Session) transition(loc router.Location) ([]Command, error) {
	cmds := s.unmountView()
	v, err := s.newView(loc.Route, "")
	if err != nil {
		return cmds, err
	}
	html, err := s.deps.Fragments.Main(v.Frame())
	if err != nil {
		return cmds, fmt.Errorf("rendering %s: %w", loc.Route.Page, err)
	}
	href := loc.Route.Path
	if loc.Anchor != "" {
		href += "#" + loc.Anchor
	}
	cmds = append(cmds,
		Navigate(href, loc.Route.Title),
		ScrollTop(),
		Swap("main", html),
	)
	s.pending = loc.Anchor
	return append(cmds, s.mountView(v)...), nil
}

func (s *Session) mountView(v View) []Command {
	s.view = v
	cmds := v.Mount()
	if s.pending != "" && v.Page() == router.Home {
		cmds = append(cmds, ScrollTo(s.pending))
	}
	s.pending = ""
	return cmds
}

func (s *Session) unmountView() []Command {
	if s.view == nil {
		return nil
	}
	cmds := s.view.Unmount()
	s.view = nil
	return cmds
}

func (s *Session) newView(route router.Route, tab string) (View, error) {
	switch route.Page {
	case router.Home:
		return NewHome(s.deps, route, !s.introDone.Load(), s.emit, func() {
			s.introDone.Store(true)
		}), nil
	case router.Contact, router.NotFound:
		return NewStatic(s.deps, route), nil
	}
	page, ok := s.deps.Site.Page(string(route.Page))
	if !ok {
		return NewStatic(s.deps, route), nil
	}
	return NewDetail(s.deps, route, page, tab)
}
