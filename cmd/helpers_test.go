package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyansetu/website/internal/config"
	"github.com/gyansetu/website/internal/router"
)

func TestBuildSiteDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	s, routes, renderer, err := buildSite(cfg)
	if err != nil {
		t.Fatalf("buildSite: %v", err)
	}
	if s.Brand.Name == "" || renderer == nil {
		t.Error("expected built-in content and a renderer")
	}
	if routes.Fallback() != router.FallbackNotFound {
		t.Errorf("fallback = %q", routes.Fallback())
	}
}

func TestLoadContentFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content.File = filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(cfg.Content.File, []byte("brand: [not, a, map]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadContent(cfg); err == nil {
		t.Error("expected error for malformed content file")
	}

	cfg.Content.File = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadContent(cfg); err == nil {
		t.Error("expected error for missing content file")
	}
}
