// Package content holds the site copy: brand, home sections, team and the
// tabbed detail pages. The copy ships embedded as YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/gyansetu/website/internal/tabs"
)

//go:embed site.yaml
var defaultSite []byte

// Brand is the wordmark shown in the nav bar.
type Brand struct {
	Name    string `yaml:"name"`
	Lead    string `yaml:"lead"`
	Accent  string `yaml:"accent"`
	Tagline string `yaml:"tagline"`
}

// Hero is the first section of the home view.
type Hero struct {
	Tagline   string   `yaml:"tagline"`
	Headlines []string `yaml:"headlines"`
}

// Pillar is a titled paragraph.
type Pillar struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// About is the home view's about section.
type About struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Title      string   `yaml:"title"`
	Body       string   `yaml:"body"`
	Highlights []string `yaml:"highlights"`
	Pillars    []Pillar `yaml:"pillars"`
}

// Product is one entry of the products section.
type Product struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Summary string `yaml:"summary"`
	Image   string `yaml:"image"`
}

// Products is the home view's products section.
type Products struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Items    []Product `yaml:"items"`
}

// Contact is the contact section, also served at /contact.
type Contact struct {
	Subtitle string `yaml:"subtitle"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Hours    string `yaml:"hours"`
	Address  string `yaml:"address"`
	Closing  string `yaml:"closing"`
}

// Member is a team member shown on a reveal card.
type Member struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Designation   string `yaml:"designation"`
	Qualification string `yaml:"qualification"`
	Image         string `yaml:"image"`
	Bio           string `yaml:"bio"`
}

// Panel kinds.
const (
	PanelMarkdown = "markdown"
	PanelTeam     = "team"
)

// Panel is one tab of a detail page.
type Panel struct {
	tabs.Tab `yaml:",inline"`
	Kind     string `yaml:"kind"`
	Body     string `yaml:"body"`
}

// Page is a tabbed detail page.
type Page struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Accent string  `yaml:"accent"`
	Badge  string  `yaml:"badge"`
	Quote  string  `yaml:"quote"`
	Panels []Panel `yaml:"panels"`
}

// TabSet returns the page's tab set.
func (p *Page) TabSet() (tabs.Set, error) {
	return tabs.NewSet(lo.Map(p.Panels, func(pn Panel, _ int) tabs.Tab { return pn.Tab })...)
}

// Panel returns the panel for a tab id.
func (p *Page) Panel(id string) (Panel, bool) {
	return lo.Find(p.Panels, func(pn Panel) bool { return pn.ID == id })
}

// Site is the whole copy deck.
type Site struct {
	Brand    Brand    `yaml:"brand"`
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Products Products `yaml:"products"`
	Contact  Contact  `yaml:"contact"`
	Team     []Member `yaml:"team"`
	Pages    []Page   `yaml:"pages"`
}

// Page returns the detail page with the given id.
func (s *Site) Page(id string) (*Page, bool) {
	for i := range s.Pages {
		if s.Pages[i].ID == id {
			return &s.Pages[i], true
		}
	}
	return nil, false
}

// TeamIDs returns the member ids in order.
func (s *Site) TeamIDs() []string {
	return lo.Map(s.Team, func(m Member, _ int) string { return m.ID })
}

// PanelsPerPage is the number of tabs every detail page carries.
const PanelsPerPage = 3

// Validate checks the structural rules the views rely on.
func (s *Site) Validate() error {
	var errs []error
	if s.Brand.Name == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}
	if dup := lo.FindDuplicates(lo.Map(s.Pages, func(p Page, _ int) string { return p.ID })); len(dup) > 0 {
		errs = append(errs, fmt.Errorf("duplicate page ids: %v", dup))
	}
	if dup := lo.FindDuplicates(s.TeamIDs()); len(dup) > 0 {
		errs = append(errs, fmt.Errorf("duplicate team ids: %v", dup))
	}
	for _, p := range s.Pages {
		if len(p.Panels) != PanelsPerPage {
			errs = append(errs, fmt.Errorf("page %q: has %d tabs, want %d", p.ID, len(p.Panels), PanelsPerPage))
			continue
		}
		if _, err := p.TabSet(); err != nil {
			errs = append(errs, fmt.Errorf("page %q: %w", p.ID, err))
		}
		for _, pn := range p.Panels {
			switch pn.Kind {
			case PanelMarkdown:
			case PanelTeam:
				if len(s.Team) == 0 {
					errs = append(errs, fmt.Errorf("page %q tab %q: team panel without team members", p.ID, pn.ID))
				}
			default:
				errs = append(errs, fmt.Errorf("page %q tab %q: unknown panel kind %q", p.ID, pn.ID, pn.Kind))
			}
		}
	}
	return errors.Join(errs...)
}

// Parse decodes and validates YAML site copy. Panels without a kind are
// markdown.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing site content: %w", err)
	}
	for i := range s.Pages {
		for j := range s.Pages[i].Panels {
			if s.Pages[i].Panels[j].Kind == "" {
				s.Pages[i].Panels[j].Kind = PanelMarkdown
			}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}
	return &s, nil
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Site, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading site content: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded site copy.
func Default() (*Site, error) {
	return Parse(defaultSite)
}
