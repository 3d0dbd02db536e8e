package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GYANSETU_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: GYANSETU_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider("GYANSETU_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps GYANSETU_LOADING__FALLBACK_TIMEOUT to loading.fallback_timeout.
// A double underscore separates nesting levels since keys use single ones.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "GYANSETU_"))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validUnmatched is the set of recognized router.unmatched values.
var validUnmatched = map[UnmatchedPolicy]bool{
	UnmatchedNotFound: true,
	UnmatchedRedirect: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.VisitorCookie == "" {
		return fmt.Errorf("server.visitor_cookie is required")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Loading.Grace < 0 {
		return fmt.Errorf("loading.grace must be non-negative")
	}
	if c.Loading.FallbackTimeout < 0 {
		return fmt.Errorf("loading.fallback_timeout must be non-negative")
	}

	if !validUnmatched[c.Router.Unmatched] {
		return fmt.Errorf("invalid router.unmatched %q: must be one of not_found, redirect", c.Router.Unmatched)
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	return nil
}

// ValidatePublish checks the settings needed to upload an export.
func (c *Config) ValidatePublish() error {
	if c.Publish.Bucket == "" {
		return fmt.Errorf("publish.bucket is required")
	}
	if c.Publish.Region == "" {
		return fmt.Errorf("publish.region is required")
	}
	return nil
}
