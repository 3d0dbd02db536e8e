// Package nav is the top navigation bar: its static entry table, link
// resolution and the mobile menu state.
package nav

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrUnknownItem is returned when a label is not in the nav table.
var ErrUnknownItem = errors.New("unknown nav item")

// Kind says how an entry is reached.
type Kind string

const (
	TopLevel     Kind = "top-level"
	InPageAnchor Kind = "in-page-anchor"
)

// Item is one navigation entry.
type Item struct {
	Label string
	Kind  Kind
}

// Anchor is the element id the entry scrolls to on the root route.
func (i Item) Anchor() string {
	if i.Kind == TopLevel {
		return ""
	}
	return strings.ToLower(i.Label)
}

// Items is the fixed entry table, in display order.
var Items = []Item{
	{Label: "Home", Kind: TopLevel},
	{Label: "Products", Kind: InPageAnchor},
	{Label: "About", Kind: InPageAnchor},
	{Label: "Contact", Kind: InPageAnchor},
}

// Anchors are the section ids rendered by the home view.
var Anchors = []string{"hero", "about", "products", "contact"}

// Lookup finds an entry by label, case-insensitively.
func Lookup(label string) (Item, error) {
	item, ok := lo.Find(Items, func(i Item) bool { return strings.EqualFold(i.Label, label) })
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, label)
	}
	return item, nil
}

// ValidateAnchors checks that every anchor the table references is one of
// the rendered section ids.
func ValidateAnchors(rendered []string) error {
	for _, item := range Items {
		if a := item.Anchor(); a != "" && !lo.Contains(rendered, a) {
			return fmt.Errorf("nav item %q targets missing section %q", item.Label, a)
		}
	}
	return nil
}

// Link is a resolved entry.
type Link struct {
	Item   Item
	Href   string
	Anchor string
	// InPage is true when following the link only scrolls the current view.
	InPage bool
}

// Resolve maps item to its link for a visitor currently at currentPath.
// Home is always the root path. Other entries resolve to /#<anchor>; on the
// root route that is an in-page scroll, elsewhere a route change first.
func Resolve(item Item, currentPath string) Link {
	if item.Kind == TopLevel {
		return Link{Item: item, Href: "/"}
	}
	anchor := item.Anchor()
	return Link{
		Item:   item,
		Href:   "/#" + anchor,
		Anchor: anchor,
		InPage: isRoot(currentPath),
	}
}

// ResolveAll resolves every entry in display order.
func ResolveAll(currentPath string) []Link {
	return lo.Map(Items, func(i Item, _ int) Link { return Resolve(i, currentPath) })
}

func isRoot(path string) bool {
	return path == "" || path == "/"
}

// ActionKind is what the client must do after a selection.
type ActionKind string

const (
	// ScrollTo smooth-scrolls the mounted root view to Anchor.
	ScrollTo ActionKind = "scroll"
	// ChangeRoute navigates to Path; Anchor, when set, is scrolled to once
	// the root view has mounted.
	ChangeRoute ActionKind = "route"
	// Stay leaves the current view and scroll position alone.
	Stay ActionKind = "stay"
)

// Action is the outcome of selecting a nav entry.
type Action struct {
	Kind   ActionKind
	Path   string
	Anchor string
}

// Shell owns the mobile menu state of one session.
type Shell struct {
	mu   sync.Mutex
	open bool
}

// NewShell returns a shell with the menu closed.
func NewShell() *Shell { return &Shell{} }

// MenuOpen reports whether the mobile menu is open.
func (s *Shell) MenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// ToggleMenu flips the mobile menu and returns the new state.
func (s *Shell) ToggleMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// CloseMenu closes the mobile menu and reports whether it was open.
func (s *Shell) CloseMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.open
	s.open = false
	return was
}

// Select handles a click on the entry labelled label while at currentPath.
// The menu is closed even when the label is unknown.
func (s *Shell) Select(label, currentPath string) (Action, error) {
	s.CloseMenu()
	item, err := Lookup(label)
	if err != nil {
		return Action{}, err
	}
	link := Resolve(item, currentPath)
	switch {
	case link.InPage:
		return Action{Kind: ScrollTo, Anchor: link.Anchor}, nil
	case item.Kind == TopLevel && isRoot(currentPath):
		return Action{Kind: Stay, Path: "/"}, nil
	default:
		return Action{Kind: ChangeRoute, Path: "/", Anchor: link.Anchor}, nil
	}
}
