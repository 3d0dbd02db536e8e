// Package view holds the mounted view of each live session and turns
// client events into ordered client commands.
package view

import (
	"errors"
	"html/template"
	"time"

	"github.com/gyansetu/website/internal/anim"
	"github.com/gyansetu/website/internal/content"
	"github.com/gyansetu/website/internal/loading"
	"github.com/gyansetu/website/internal/router"
)

var (
	// ErrUnhandled is returned for events the mounted view does not accept.
	ErrUnhandled = errors.New("event not handled by view")
	// ErrNotMounted is returned for events that arrive before mount.
	ErrNotMounted = errors.New("no view mounted")
	// ErrUnknownCard is returned for card events naming no card on the page.
	ErrUnknownCard = errors.New("unknown card")
)

// Frame is what the renderer needs to draw a view's main region.
type Frame struct {
	Route router.Route
	Tab   string
	// Intro is true while the loading overlay belongs in the page.
	Intro bool
}

// Fragments renders the parts of a page a view swaps in.
type Fragments interface {
	Main(f Frame) (template.HTML, error)
	Panel(pageID, tabID string) (template.HTML, error)
}

// Emitter sends commands produced outside an event, such as timer-driven
// loading transitions or theme changes made in another tab.
type Emitter func(cmds ...Command)

// Deps are shared by every session.
type Deps struct {
	Routes    *router.Table
	Site      *content.Site
	Fragments Fragments
	Catalog   *anim.Catalog
	Grace     time.Duration
	Fallback  time.Duration
	Clock     loading.Clock
}

func (d *Deps) animate(names ...string) []Command {
	var cmds []Command
	for _, n := range names {
		if t, ok := d.Catalog.Get(n); ok {
			cmds = append(cmds, Animate(t))
		}
	}
	return cmds
}

// View is a mounted page component.
type View interface {
	Page() router.PageID
	Frame() Frame
	// Mount starts the view's timelines and listeners.
	Mount() []Command
	Handle(ev Event) ([]Command, error)
	// Unmount cancels timers and releases listeners.
	Unmount() []Command
}

// Static is a view with no state of its own: contact and not-found.
type Static struct {
	deps  *Deps
	route router.Route
}

// NewStatic creates a stateless view.
func NewStatic(deps *Deps, route router.Route) *Static {
	return &Static{deps: deps, route: route}
}

func (v *Static) Page() router.PageID { return v.route.Page }
func (v *Static) Frame() Frame        { return Frame{Route: v.route} }

func (v *Static) Mount() []Command {
	if v.route.Page == router.NotFound {
		return nil
	}
	return v.deps.animate(anim.SectionReveal)
}

func (v *Static) Handle(ev Event) ([]Command, error) {
	return nil, ErrUnhandled
}

func (v *Static) Unmount() []Command { return nil }
