package config

import "time"

// DefaultExcludes are asset glob patterns never copied into an export.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"**/*.psd",
	"**/*.map",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".gyansetu",
		Server: ServerConfig{
			Port:          8080,
			VisitorCookie: "gs_visitor",
		},
		Loading: LoadingConfig{
			Grace: time.Second,
		},
		Router: RouterConfig{
			Unmatched: UnmatchedNotFound,
		},
		Content: ContentConfig{
			HighlightStyle: "github",
		},
		Export: ExportConfig{
			OutputDir: "dist",
			AssetsDir: "assets",
			Include:   []string{"**/*.{png,jpg,jpeg,svg,webp,ico,woff2}"},
			Exclude:   DefaultExcludes,
		},
		Publish: PublishConfig{
			Region: "ap-south-1",
		},
	}
}
