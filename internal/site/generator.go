package site

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/gyansetu/website/internal/assets"
	"github.com/gyansetu/website/internal/metrics"
	"github.com/gyansetu/website/internal/progress"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/theme"
	"github.com/gyansetu/website/internal/view"
)

// ExportConfig controls where a static export reads and writes.
type ExportConfig struct {
	OutputDir string
	AssetsDir string
	Filter    assets.Filter
	Theme     theme.Mode
}

// Generator writes every route of the site as static HTML. Its renderer
// should be built WithTabLinks(TabPaths) and WithLive(false).
type Generator struct {
	renderer *Renderer
	routes   *router.Table
	out      afero.Fs
	src      afero.Fs
	cfg      ExportConfig
	reporter progress.Reporter
	metrics  *metrics.Metrics
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithReporter reports export progress.
func WithReporter(r progress.Reporter) GeneratorOption {
	return func(g *Generator) { g.reporter = r }
}

// WithExportMetrics counts exported files.
func WithExportMetrics(m *metrics.Metrics) GeneratorOption {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator creates a Generator writing to out and reading assets from src.
func NewGenerator(r *Renderer, routes *router.Table, out, src afero.Fs, cfg ExportConfig, opts ...GeneratorOption) *Generator {
	if !cfg.Theme.Valid() {
		cfg.Theme = theme.Light
	}
	g := &Generator{
		renderer: r,
		routes:   routes,
		out:      out,
		src:      src,
		cfg:      cfg,
		reporter: progress.Discard{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result lists the files an export wrote, relative to the output dir.
type Result struct {
	Pages  []string
	Assets []string
}

// exportPage is one document to render.
type exportPage struct {
	file  string
	frame view.Frame
}

// Generate renders every page, writes the static files and copies assets.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	pages, err := g.plan()
	if err != nil {
		return nil, err
	}
	files, err := assets.Collect(g.src, g.cfg.AssetsDir, g.cfg.Filter)
	if err != nil {
		return nil, err
	}

	if err := g.out.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	statics := []struct{ name, body string }{
		{"static/style.css", cssContent},
		{"static/live.js", jsContent},
	}

	total := len(pages) + len(statics) + len(files)
	g.reporter.Start(total)
	defer g.reporter.Finish()

	res := &Result{}
	done := 0
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := g.renderer.Page(&buf, p.frame, g.cfg.Theme); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p.file, err)
		}
		if err := g.write(p.file, buf.Bytes()); err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, p.file)
		done++
		g.reporter.Update(done, p.file)
	}

	for _, s := range statics {
		if err := g.write(s.name, []byte(s.body)); err != nil {
			return nil, err
		}
		done++
		g.reporter.Update(done, s.name)
	}

	imgDir := path.Join(g.cfg.OutputDir, "static", "img")
	for _, a := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := assets.Copy(g.src, g.cfg.AssetsDir, g.out, imgDir, a); err != nil {
			return nil, err
		}
		g.metrics.FileExported()
		res.Assets = append(res.Assets, path.Join("static", "img", a.RelPath))
		done++
		g.reporter.Update(done, a.RelPath)
	}
	return res, nil
}

// plan lists the documents of the export: one per route, one per
// non-default tab of a detail page, and 404.html.
func (g *Generator) plan() ([]exportPage, error) {
	site := g.renderer.Site()
	var pages []exportPage
	for _, route := range g.routes.Routes() {
		pages = append(pages, exportPage{
			file:  pageFile(route.Path),
			frame: view.Frame{Route: route, Intro: route.Page == router.Home},
		})
		page, ok := site.Page(string(route.Page))
		if !ok {
			continue
		}
		set, err := page.TabSet()
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.ID, err)
		}
		for _, id := range set.IDs() {
			if id == set.Default() {
				continue
			}
			pages = append(pages, exportPage{
				file:  pageFile(route.Path + "/" + id),
				frame: view.Frame{Route: route, Tab: id},
			})
		}
	}
	pages = append(pages, exportPage{
		file:  "404.html",
		frame: view.Frame{Route: router.Route{Path: "/404", Page: router.NotFound, Title: "Page not found"}},
	})
	return pages, nil
}

// pageFile maps a route path to its index.html under the output dir.
func pageFile(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}

func (g *Generator) write(name string, data []byte) error {
	target := path.Join(g.cfg.OutputDir, name)
	if err := g.out.MkdirAll(path.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", name, err)
	}
	if err := afero.WriteFile(g.out, target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	g.metrics.FileExported()
	return nil
}
