package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to the GyanSetu site server! Let's configure it.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Unmatched routes.
	unmatchedPrompt := promptui.Select{
		Label: "Unknown paths should",
		Items: []string{
			"not_found — render the not-found page (404)",
			"redirect  — send visitors back to the home page",
		},
	}
	idx, _, err := unmatchedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("unmatched policy: %w", err)
	}
	cfg.Router.Unmatched = []UnmatchedPolicy{UnmatchedNotFound, UnmatchedRedirect}[idx]

	// 3. Export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static exports",
		Default: cfg.Export.OutputDir,
	}
	if cfg.Export.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Extra asset patterns.
	includePrompt := promptui.Prompt{
		Label:   "Asset include patterns (comma-separated globs)",
		Default: strings.Join(cfg.Export.Include, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	cfg.Export.Include = splitAndTrim(includeStr)

	// 5. Optional S3 bucket.
	bucketPrompt := promptui.Prompt{
		Label:   "S3 bucket for `export --publish` (leave blank to skip)",
		Default: "",
	}
	if cfg.Publish.Bucket, err = bucketPrompt.Run(); err != nil {
		return nil, fmt.Errorf("bucket: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
// Brace groups such as "*.{png,jpg}" are kept intact.
func splitAndTrim(s string) []string {
	var result []string
	depth, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '{':
				depth++
				continue
			case '}':
				depth--
				continue
			}
		}
		if i == len(s) || (s[i] == ',' && depth == 0) {
			if token := strings.TrimSpace(s[start:i]); token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}
