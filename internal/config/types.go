package config

import "time"

// UnmatchedPolicy decides what the router does with a path outside its table.
type UnmatchedPolicy string

const (
	UnmatchedNotFound UnmatchedPolicy = "not_found"
	UnmatchedRedirect UnmatchedPolicy = "redirect"
)

// Config is the top-level site configuration, corresponding to .gyansetu.yml.
type Config struct {
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Loading LoadingConfig `yaml:"loading" koanf:"loading"`
	Router  RouterConfig  `yaml:"router" koanf:"router"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	Export  ExportConfig  `yaml:"export" koanf:"export"`
	Publish PublishConfig `yaml:"publish" koanf:"publish"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	VisitorCookie   string `yaml:"visitor_cookie" koanf:"visitor_cookie"`
}

// LoadingConfig tunes the splash screen on the root route.
type LoadingConfig struct {
	// Grace is how long the overlay stays mounted after the intro reports
	// completion, so the curtain exit can run.
	Grace time.Duration `yaml:"grace" koanf:"grace"`
	// FallbackTimeout forces completion when the client never reports it.
	// Zero disables the fallback.
	FallbackTimeout time.Duration `yaml:"fallback_timeout" koanf:"fallback_timeout"`
}

// RouterConfig holds routing behaviour.
type RouterConfig struct {
	Unmatched UnmatchedPolicy `yaml:"unmatched" koanf:"unmatched"`
}

// ContentConfig controls how page copy is loaded and rendered.
type ContentConfig struct {
	// File overrides the embedded site.yaml when set.
	File           string `yaml:"file" koanf:"file"`
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
}

// ExportConfig drives the static export.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string   `yaml:"assets_dir" koanf:"assets_dir"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}

// PublishConfig describes where an export is uploaded.
type PublishConfig struct {
	Bucket string `yaml:"bucket" koanf:"bucket"`
	Prefix string `yaml:"prefix" koanf:"prefix"`
	Region string `yaml:"region" koanf:"region"`

	// Endpoint overrides the S3 endpoint for compatible stores.
	Endpoint string `yaml:"endpoint,omitempty" koanf:"endpoint"`
}
