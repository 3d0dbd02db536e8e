// Package site renders the GyanSetu pages, serves them over HTTP and
// exports them as a static site.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/gyansetu/website/internal/content"
	"github.com/gyansetu/website/internal/nav"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/theme"
	"github.com/gyansetu/website/internal/view"
)

// TabLinks decides how tab buttons link when no script is running.
type TabLinks int

const (
	// TabQuery links tabs as ?tab=<id> on the live server.
	TabQuery TabLinks = iota
	// TabPaths links tabs as <page>/<id>/ for static exports.
	TabPaths
)

// Renderer draws pages and the fragments the live client swaps in.
type Renderer struct {
	site     *content.Site
	md       *content.Markdown
	page     *template.Template
	frags    *template.Template
	tabLinks TabLinks
	live     bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTabLinks sets how tab links are written.
func WithTabLinks(t TabLinks) Option {
	return func(r *Renderer) { r.tabLinks = t }
}

// WithLive turns the live client's websocket on or off.
func WithLive(on bool) Option {
	return func(r *Renderer) { r.live = on }
}

// pageData holds the data passed to the document shell.
type pageData struct {
	Title     string
	Brand     content.Brand
	Theme     theme.Mode
	RootClass string
	Nav       []nav.Link
	Path      string
	Main      template.HTML
	Live      bool
}

type homeData struct {
	Site  *content.Site
	Intro bool
}

type tabLink struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

type detailData struct {
	Page   *content.Page
	Active string
	Tabs   []tabLink
	Panel  template.HTML
}

type teamData struct {
	Intro   string
	Members []content.Member
}

var funcs = template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"phone": func(s string) string { return strings.ReplaceAll(s, " ", "") },
}

// NewRenderer parses the templates.
func NewRenderer(site *content.Site, md *content.Markdown, opts ...Option) (*Renderer, error) {
	page, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	frags, err := template.New("fragments").Funcs(funcs).Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}
	if md == nil {
		md = content.NewMarkdown("")
	}
	r := &Renderer{site: site, md: md, page: page, frags: frags, live: true}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Site returns the content being rendered.
func (r *Renderer) Site() *content.Site { return r.site }

// Page renders a full document for f in the given theme.
func (r *Renderer) Page(w io.Writer, f view.Frame, mode theme.Mode) error {
	main, err := r.Main(f)
	if err != nil {
		return err
	}
	title := f.Route.Title
	if title == "" {
		title = r.site.Brand.Name
	}
	return r.page.Execute(w, pageData{
		Title:     title,
		Brand:     r.site.Brand,
		Theme:     mode,
		RootClass: theme.RootClass(mode),
		Nav:       nav.ResolveAll(f.Route.Path),
		Path:      f.Route.Path,
		Main:      main,
		Live:      r.live,
	})
}

// Main renders the main region of a route.
func (r *Renderer) Main(f view.Frame) (template.HTML, error) {
	switch f.Route.Page {
	case router.Home:
		return r.exec("home", homeData{Site: r.site, Intro: f.Intro})
	case router.Contact:
		return r.exec("contact", r.site)
	case router.NotFound:
		return r.exec("not-found", f.Route.Path)
	}
	page, ok := r.site.Page(string(f.Route.Page))
	if !ok {
		return "", fmt.Errorf("no content for page %q", f.Route.Page)
	}
	set, err := page.TabSet()
	if err != nil {
		return "", err
	}
	active := f.Tab
	if !set.Has(active) {
		active = set.Default()
	}
	panel, err := r.Panel(page.ID, active)
	if err != nil {
		return "", err
	}
	links := lo.Map(page.Panels, func(pn content.Panel, _ int) tabLink {
		return tabLink{
			ID:     pn.ID,
			Label:  pn.Label,
			Href:   r.tabHref(f.Route.Path, pn.ID, set.Default()),
			Active: pn.ID == active,
		}
	})
	return r.exec("detail", detailData{Page: page, Active: active, Tabs: links, Panel: panel})
}

// Panel renders one tab panel of a detail page.
func (r *Renderer) Panel(pageID, tabID string) (template.HTML, error) {
	page, ok := r.site.Page(pageID)
	if !ok {
		return "", fmt.Errorf("no content for page %q", pageID)
	}
	panel, ok := page.Panel(tabID)
	if !ok {
		return "", fmt.Errorf("page %q has no tab %q", pageID, tabID)
	}
	if panel.Kind == content.PanelTeam {
		return r.exec("panel-team", teamData{Intro: panel.Body, Members: r.site.Team})
	}
	body, err := r.md.Render(panel.Body)
	if err != nil {
		return "", err
	}
	return r.exec("panel-markdown", body)
}

var sectionID = regexp.MustCompile(`<section id="([^"]+)"`)

// SectionIDs lists the ids of the sections the home page renders.
func (r *Renderer) SectionIDs() ([]string, error) {
	html, err := r.exec("home", homeData{Site: r.site})
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, m := range sectionID.FindAllStringSubmatch(string(html), -1) {
		ids = append(ids, m[1])
	}
	return ids, nil
}

func (r *Renderer) tabHref(path, tab, def string) string {
	if r.tabLinks == TabPaths {
		if tab == def {
			return path + "/"
		}
		return path + "/" + url.PathEscape(tab) + "/"
	}
	return path + "?tab=" + url.QueryEscape(tab)
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.frags.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
