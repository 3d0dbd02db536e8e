package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyansetu/website/internal/config"
	"github.com/gyansetu/website/internal/content"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `gyansetu init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent reads the configured content file, or the built-in content
// when none is set.
func loadContent(cfg *config.Config) (*content.Site, error) {
	if cfg.Content.File == "" {
		return content.Default()
	}
	dir, name := filepath.Split(cfg.Content.File)
	if dir == "" {
		dir = "."
	}
	return content.Load(os.DirFS(dir), name)
}

// buildSite loads the content and route table and builds a renderer.
func buildSite(cfg *config.Config, opts ...site.Option) (*content.Site, *router.Table, *site.Renderer, error) {
	s, err := loadContent(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	routes, err := router.NewTable(router.Fallback(cfg.Router.Unmatched), router.DefaultRoutes...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building routes: %w", err)
	}
	renderer, err := site.NewRenderer(s, content.NewMarkdown(cfg.Content.HighlightStyle), opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, routes, renderer, nil
}
