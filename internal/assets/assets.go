// Package assets collects the static files copied into an export.
package assets

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Asset is one file under the assets root.
type Asset struct {
	RelPath string // slash-separated, relative to the root
	Size    int64
}

// Filter selects assets by glob. An empty Include admits everything.
type Filter struct {
	Include []string
	Exclude []string
}

// Allows reports whether relPath passes the filter.
func (f Filter) Allows(relPath string) bool {
	return MatchesInclude(relPath, f.Include) && !MatchesExclude(relPath, f.Exclude)
}

// Collect walks root on fsys and returns the files that pass the filter,
// sorted by path. A missing root yields no assets.
func Collect(fsys afero.Fs, root string, f Filter) ([]Asset, error) {
	if ok, err := afero.DirExists(fsys, root); err != nil || !ok {
		return nil, nil
	}
	var out []Asset
	err := afero.Walk(fsys, root, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if info.IsDir() {
			if p != root && isHidden(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !f.Allows(rel) {
			return nil
		}
		out = append(out, Asset{RelPath: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: walking %s: %w", root, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out, nil
}

// Copy copies a from srcRoot on src to dstRoot on dst, creating parents.
func Copy(src afero.Fs, srcRoot string, dst afero.Fs, dstRoot string, a Asset) error {
	in, err := src.Open(path.Join(filepath.ToSlash(srcRoot), a.RelPath))
	if err != nil {
		return fmt.Errorf("assets: opening %s: %w", a.RelPath, err)
	}
	defer in.Close()

	target := path.Join(filepath.ToSlash(dstRoot), a.RelPath)
	if err := dst.MkdirAll(path.Dir(target), 0o755); err != nil {
		return fmt.Errorf("assets: creating dir for %s: %w", a.RelPath, err)
	}
	out, err := dst.Create(target)
	if err != nil {
		return fmt.Errorf("assets: creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("assets: copying %s: %w", a.RelPath, err)
	}
	return out.Close()
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// MatchesInclude returns true if the path matches any of the include
// patterns. If patterns is empty, all paths are included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the path matches any of the exclude patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the full path and, for patterns
// without a separator, against the base name.
func matchesAny(relPath string, patterns []string) bool {
	base := path.Base(relPath)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		if !containsSlash(p) {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}
	return false
}
