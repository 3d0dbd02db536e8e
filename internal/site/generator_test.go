package site

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/gyansetu/website/internal/assets"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/theme"
)

type countingReporter struct {
	total, last int
	finished    bool
}

func (r *countingReporter) Start(total int)              { r.total = total }
func (r *countingReporter) Update(current int, _ string) { r.last = current }
func (r *countingReporter) Finish()                      { r.finished = true }

func TestGenerate(t *testing.T) {
	out := afero.NewMemMapFs()
	src := afero.NewMemMapFs()
	afero.WriteFile(src, "assets/team/anil.jpg", []byte("jpg"), 0o644)
	afero.WriteFile(src, "assets/draft.psd", []byte("psd"), 0o644)

	rep := &countingReporter{}
	g := NewGenerator(
		testRenderer(t, WithTabLinks(TabPaths), WithLive(false)),
		testRoutes(t, router.FallbackNotFound),
		out, src,
		ExportConfig{
			OutputDir: "dist",
			AssetsDir: "assets",
			Filter:    assets.Filter{Include: []string{"**/*.jpg"}, Exclude: []string{"**/*.psd"}},
			Theme:     theme.Dark,
		},
		WithReporter(rep),
	)

	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantPages := []string{
		"index.html",
		"about/index.html",
		"about/values/index.html",
		"about/mission/index.html",
		"products/mathlab/index.html",
		"products/mathlab/features/index.html",
		"products/langue-tech/trust/index.html",
		"contact/index.html",
		"404.html",
	}
	for _, p := range wantPages {
		ok, _ := afero.Exists(out, "dist/"+p)
		if !ok {
			t.Errorf("missing exported page %s", p)
		}
	}
	// 6 routes + 2 extra tabs on each of 4 detail pages + 404.
	if len(res.Pages) != 15 {
		t.Errorf("exported %d pages, want 15: %v", len(res.Pages), res.Pages)
	}

	for _, f := range []string{"dist/static/style.css", "dist/static/live.js", "dist/static/img/team/anil.jpg"} {
		if ok, _ := afero.Exists(out, f); !ok {
			t.Errorf("missing %s", f)
		}
	}
	if ok, _ := afero.Exists(out, "dist/static/img/draft.psd"); ok {
		t.Error("excluded asset was copied")
	}

	page, err := afero.ReadFile(out, "dist/products/mathlab/features/index.html")
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, `data-live="off"`) {
		t.Error("exported pages should not open the live channel")
	}
	if !strings.Contains(html, `data-theme="dark"`) {
		t.Error("exported pages should use the configured theme")
	}
	if !strings.Contains(html, `data-active="features"`) {
		t.Error("tab page should render its own tab")
	}

	if rep.total != len(res.Pages)+2+len(res.Assets) || rep.last != rep.total || !rep.finished {
		t.Errorf("reporter = %+v, pages %d assets %d", rep, len(res.Pages), len(res.Assets))
	}
}

func TestExportedClientTogglesThemeOffline(t *testing.T) {
	out := afero.NewMemMapFs()
	g := NewGenerator(
		testRenderer(t, WithTabLinks(TabPaths), WithLive(false)),
		testRoutes(t, router.FallbackNotFound),
		out, afero.NewMemMapFs(),
		ExportConfig{OutputDir: "dist", Theme: theme.Light},
	)
	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	page, err := afero.ReadFile(out, "dist/index.html")
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	if !strings.Contains(string(page), `id="theme-form"`) {
		t.Fatal("exported page has no theme toggle")
	}

	js, err := afero.ReadFile(out, "dist/static/live.js")
	if err != nil {
		t.Fatalf("reading client: %v", err)
	}
	for _, want := range []string{
		`localStorage.setItem("theme", mode)`,
		`localStorage.getItem("theme")`,
		`if (live) return;`,
		`html.setAttribute("data-theme", mode)`,
		`rootMargin: margin(tl.start)`,
	} {
		if !strings.Contains(string(js), want) {
			t.Errorf("client is missing %s", want)
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator(testRenderer(t), testRoutes(t, router.FallbackNotFound),
		afero.NewMemMapFs(), afero.NewMemMapFs(), ExportConfig{OutputDir: "dist"})
	if _, err := g.Generate(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestPageFile(t *testing.T) {
	tests := map[string]string{
		"/":                  "index.html",
		"/about":             "about/index.html",
		"/products/mathlab/": "products/mathlab/index.html",
	}
	for in, want := range tests {
		if got := pageFile(in); got != want {
			t.Errorf("pageFile(%q) = %q, want %q", in, got, want)
		}
	}
}
