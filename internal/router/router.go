// Package router maps URL paths to pages and tracks client-side navigation.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// ErrNoRoute is returned for paths outside the table.
var ErrNoRoute = errors.New("no route")

// PageID names a page component.
type PageID string

const (
	Home              PageID = "home"
	About             PageID = "about"
	MathLab           PageID = "mathlab"
	InteractiveBoards PageID = "interactive-boards"
	LangueTech        PageID = "langue-tech"
	Contact           PageID = "contact"
	NotFound          PageID = "not-found"
)

// Route binds a path to a page.
type Route struct {
	Path  string
	Page  PageID
	Title string
}

// Fallback decides what happens to unmatched paths.
type Fallback string

const (
	FallbackNotFound Fallback = "not_found"
	FallbackRedirect Fallback = "redirect"
)

// Table is the static route table.
type Table struct {
	routes   []Route
	byPath   map[string]Route
	fallback Fallback
}

// DefaultRoutes is the site's route table.
var DefaultRoutes = []Route{
	{Path: "/", Page: Home, Title: "GyanSetu | Innovation in Education"},
	{Path: "/about", Page: About, Title: "About GyanSetu"},
	{Path: "/products/mathlab", Page: MathLab, Title: "MathLab"},
	{Path: "/products/interactive-boards", Page: InteractiveBoards, Title: "Interactive Boards"},
	{Path: "/products/langue-tech", Page: LangueTech, Title: "LangueTech"},
	{Path: "/contact", Page: Contact, Title: "Contact GyanSetu"},
}

// NewTable builds a table. Paths are canonicalized and must be unique.
func NewTable(fallback Fallback, routes ...Route) (*Table, error) {
	if fallback == "" {
		fallback = FallbackNotFound
	}
	if fallback != FallbackNotFound && fallback != FallbackRedirect {
		return nil, fmt.Errorf("unknown fallback %q", fallback)
	}
	t := &Table{byPath: make(map[string]Route, len(routes)), fallback: fallback}
	for _, r := range routes {
		r.Path = Canonical(r.Path)
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("duplicate route %s", r.Path)
		}
		t.byPath[r.Path] = r
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// Routes returns the table in declaration order.
func (t *Table) Routes() []Route { return append([]Route(nil), t.routes...) }

// Fallback returns the unmatched-path policy.
func (t *Table) Fallback() Fallback { return t.fallback }

// Match looks up the route for a path. Query strings and fragments are ignored.
func (t *Table) Match(path string) (Route, bool) {
	p, _ := Split(path)
	r, ok := t.byPath[p]
	return r, ok
}

// Lookup is Match with the fallback applied: unmatched paths resolve to the
// not-found page, or to the root route when redirecting.
func (t *Table) Lookup(path string) (route Route, redirected bool, err error) {
	if r, ok := t.Match(path); ok {
		return r, false, nil
	}
	if t.fallback == FallbackRedirect {
		if root, ok := t.byPath["/"]; ok {
			return root, true, nil
		}
	}
	return Route{Path: Canonical(path), Page: NotFound, Title: "Page not found"}, false, fmt.Errorf("%w: %s", ErrNoRoute, path)
}

// Canonical strips query, fragment and trailing slashes; "" becomes "/".
func Canonical(path string) string {
	p, _ := Split(path)
	return p
}

// Split separates a link into its canonical path and fragment.
func Split(link string) (path, anchor string) {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		link, anchor = link[:i], link[i+1:]
	}
	if i := strings.IndexByte(link, '?'); i >= 0 {
		link = link[:i]
	}
	if u, err := url.PathUnescape(link); err == nil {
		link = u
	}
	link = strings.TrimRight(link, "/")
	if link == "" {
		link = "/"
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return link, anchor
}

// PageHandler serves one route.
type PageHandler func(route Route) http.HandlerFunc

// Mount registers every route on r, with and without a trailing slash, and
// installs the fallback for everything else.
func (t *Table) Mount(r chi.Router, h PageHandler) {
	for _, route := range t.routes {
		handler := h(route)
		r.Get(route.Path, handler)
		if route.Path != "/" {
			r.Get(route.Path+"/", handler)
		}
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if t.fallback == FallbackRedirect {
			http.Redirect(w, req, "/", http.StatusFound)
			return
		}
		h(Route{Path: req.URL.Path, Page: NotFound, Title: "Page not found"})(w, req)
	})
}

// Location is where a session currently is.
type Location struct {
	Route   Route
	Anchor  string
	ScrollX int
	ScrollY int
}

// History tracks one session's location. Every route change resets the
// scroll position to the top-left corner.
type History struct {
	mu      sync.Mutex
	table   *Table
	current Location
	visited []string
}

// NewHistory starts a history at path. An unmatched path starts on the
// not-found page (or the root route when the table redirects).
func NewHistory(table *Table, path string) *History {
	route, _, _ := table.Lookup(path)
	_, anchor := Split(path)
	return &History{
		table:   table,
		current: Location{Route: route, Anchor: anchor},
		visited: []string{route.Path},
	}
}

// Location returns the current location.
func (h *History) Location() Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Navigate moves to link (a path with an optional #anchor). The returned
// location always has scroll (0,0). Unmatched links return ErrNoRoute and
// leave the history unchanged unless the table redirects.
func (h *History) Navigate(link string) (Location, error) {
	route, redirected, err := h.table.Lookup(link)
	if err != nil {
		return h.Location(), err
	}
	_, anchor := Split(link)
	if redirected {
		anchor = ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = Location{Route: route, Anchor: anchor}
	h.visited = append(h.visited, route.Path)
	return h.current, nil
}

// ReportScroll records the client's scroll offset.
func (h *History) ReportScroll(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current.ScrollX, h.current.ScrollY = x, y
}

// Visited returns every path the session has been on, oldest first.
func (h *History) Visited() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.visited...)
}
