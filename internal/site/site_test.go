package site

import (
	"testing"

	"github.com/gyansetu/website/internal/content"
	"github.com/gyansetu/website/internal/router"
)

func testSite(t *testing.T) *content.Site {
	t.Helper()
	s, err := content.Default()
	if err != nil {
		t.Fatalf("loading default content: %v", err)
	}
	return s
}

func testRoutes(t *testing.T, fallback router.Fallback) *router.Table {
	t.Helper()
	table, err := router.NewTable(fallback, router.DefaultRoutes...)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func testRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(testSite(t), content.NewMarkdown(""), opts...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}
