// Package tabs is the tab-selection state shared by every detail page.
package tabs

import (
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/samber/lo"
)

// ErrUnknownTab is returned when a tab id is not in the page's set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one entry of a page's tab bar.
type Tab struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Set is the fixed, ordered tab set of one page.
type Set []Tab

// NewSet validates and returns a tab set. It must be non-empty with unique ids.
func NewSet(tabs ...Tab) (Set, error) {
	if len(tabs) == 0 {
		return nil, errors.New("tab set is empty")
	}
	ids := lo.Map(tabs, func(t Tab, _ int) string { return t.ID })
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		return nil, fmt.Errorf("duplicate tab ids: %v", dup)
	}
	if lo.Contains(ids, "") {
		return nil, errors.New("tab id is empty")
	}
	return Set(tabs), nil
}

// Has reports whether id belongs to the set.
func (s Set) Has(id string) bool {
	return lo.ContainsBy(s, func(t Tab) bool { return t.ID == id })
}

// Default is the first tab.
func (s Set) Default() string { return s[0].ID }

// IDs returns the tab ids in order.
func (s Set) IDs() []string {
	return lo.Map(s, func(t Tab, _ int) string { return t.ID })
}

// Selection is the active tab of one mounted page. The active id is always
// a member of the set.
type Selection struct {
	mu     sync.Mutex
	set    Set
	active string
}

// NewSelection starts on the set's first tab.
func NewSelection(set Set) *Selection {
	return &Selection{set: set, active: set.Default()}
}

// Active returns the selected tab id.
func (s *Selection) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Set returns the tab set.
func (s *Selection) Set() Set { return s.set }

// Select activates id. Ids outside the set leave the selection unchanged
// and return ErrUnknownTab. changed is false when id was already active.
func (s *Selection) Select(id string) (changed bool, err error) {
	if !s.set.Has(id) {
		return false, fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == id {
		return false, nil
	}
	s.active = id
	return true, nil
}

// Renderer renders the panel for one tab.
type Renderer func(tabID string) (template.HTML, error)

// Page pairs a tab set with one renderer per tab. Only the active tab's
// panel is ever rendered; inactive panels do not exist in the output.
type Page struct {
	Set    Set
	Panels map[string]Renderer
}

// NewPage checks that every tab has a renderer.
func NewPage(set Set, panels map[string]Renderer) (*Page, error) {
	for _, id := range set.IDs() {
		if panels[id] == nil {
			return nil, fmt.Errorf("tab %q has no renderer", id)
		}
	}
	return &Page{Set: set, Panels: panels}, nil
}

// Render renders the active panel of sel.
func (p *Page) Render(sel *Selection) (template.HTML, error) {
	id := sel.Active()
	return p.Panels[id](id)
}
