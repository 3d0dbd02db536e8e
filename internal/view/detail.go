package view

import (
	"fmt"

	"github.com/gyansetu/website/internal/anim"
	"github.com/gyansetu/website/internal/content"
	"github.com/gyansetu/website/internal/reveal"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/tabs"
)

// Detail is a tabbed detail page. Only the active tab's panel exists; a
// panel's reveal cards are recreated whenever that panel is shown again.
type Detail struct {
	deps  *Deps
	route router.Route
	page  *content.Page
	sel   *tabs.Selection
	deck  *reveal.Deck
}

// NewDetail creates the view for page, starting on tab when it belongs to
// the page and on the first tab otherwise.
func NewDetail(deps *Deps, route router.Route, page *content.Page, tab string) (*Detail, error) {
	set, err := page.TabSet()
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", page.ID, err)
	}
	d := &Detail{deps: deps, route: route, page: page, sel: tabs.NewSelection(set)}
	if tab != "" {
		d.sel.Select(tab)
	}
	d.resetDeck()
	return d, nil
}

func (d *Detail) Page() router.PageID { return d.route.Page }
func (d *Detail) Frame() Frame        { return Frame{Route: d.route, Tab: d.sel.Active()} }

// Selection returns the tab selection of this mount.
func (d *Detail) Selection() *tabs.Selection { return d.sel }

// Deck returns the reveal cards of the active panel, or nil.
func (d *Detail) Deck() *reveal.Deck { return d.deck }

func (d *Detail) Mount() []Command {
	return d.deps.animate(anim.DetailEntrance, anim.TabNavReveal, anim.BackgroundOrbs)
}

func (d *Detail) Handle(ev Event) ([]Command, error) {
	switch ev.Type {
	case EventTabSelect:
		return d.selectTab(ev.Tab)
	case EventCardEnter:
		return d.card(ev.Card, reveal.PointerEnter)
	case EventCardLeave:
		return d.card(ev.Card, reveal.PointerLeave)
	case EventCardClick:
		return d.card(ev.Card, reveal.Click)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandled, ev.Type)
	}
}

func (d *Detail) Unmount() []Command {
	d.deck = nil
	return nil
}

func (d *Detail) selectTab(id string) ([]Command, error) {
	changed, err := d.sel.Select(id)
	if err != nil || !changed {
		return nil, err
	}
	html, err := d.deps.Fragments.Panel(d.page.ID, id)
	if err != nil {
		return nil, fmt.Errorf("rendering tab %q: %w", id, err)
	}
	d.resetDeck()
	cmds := []Command{
		Attr("#tab-nav", "data-active", id),
		Swap("#tab-panel", html),
	}
	return append(cmds, d.deps.animate(anim.TabEntrance)...), nil
}

func (d *Detail) resetDeck() {
	d.deck = nil
	panel, ok := d.page.Panel(d.sel.Active())
	if ok && panel.Kind == content.PanelTeam {
		d.deck = reveal.NewDeck(d.deps.Site.TeamIDs()...)
	}
}

func (d *Detail) card(id string, e reveal.Event) ([]Command, error) {
	if d.deck == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}
	c, ok := d.deck.Card(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}
	c.Apply(e)
	return []Command{Attr("#card-"+id, "data-face", string(c.Face()))}, nil
}
