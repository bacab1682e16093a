// Package discover implements file discovery (component B): walking a
// root directory honoring ignore rules and partitioning the result into
// files with a known language extension and everything else.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codelens/codelens/internal/lang"
)

// defaultIgnores are excluded even with no ignore file present: version
// control, build output, and dependency directories across languages.
var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/.venv/**",
	"**/__pycache__/**",
	"**/target/**",
	"**/dist/**",
	"**/build/**",
}

// Result is the partitioned output of a Walk.
type Result struct {
	Supported   []string // known-extension files, path relative to root, forward-slash
	Unsupported []string // everything else that isn't ignored
}

// Walk walks root, returning a lexicographically sorted partition of
// discovered files. It honors defaultIgnores plus any patterns passed in
// extraIgnores (as loaded from an ignore file by LoadIgnoreFile).
// Symlinked directories are never descended into, which rules out cycles
// by construction. The only error this returns is an unreadable root.
func Walk(root string, extraIgnores []string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root directory not readable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	patterns := make([]string, 0, len(defaultIgnores)+len(extraIgnores))
	patterns = append(patterns, defaultIgnores...)
	patterns = append(patterns, extraIgnores...)

	result := &Result{}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries; the root itself was already
			// verified above, so this is a per-entry problem only.
			if path == root {
				return err
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(path)
			if statErr == nil && target.IsDir() {
				return nil // never descend into a symlinked directory
			}
		}

		if rel != "." && matchesAny(patterns, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if lang.DetectTag(path) != lang.Unsupported {
			result.Supported = append(result.Supported, rel)
		} else {
			result.Unsupported = append(result.Unsupported, rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("root directory not readable: %w", walkErr)
	}

	sort.Strings(result.Supported)
	sort.Strings(result.Unsupported)
	return result, nil
}

// FilterByLanguage narrows an already-discovered supported list down to
// the given tags — the "extension-filtered" discovery mode,
// layered on top of the "all files" walk rather than re-walking.
func FilterByLanguage(paths []string, tags []lang.Tag) []string {
	if len(tags) == 0 {
		return paths
	}
	want := make(map[lang.Tag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []string
	for _, p := range paths {
		if want[lang.DetectTag(p)] {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		// also match the pattern with a trailing "/**" removed, so
		// "**/vendor/**" matches the directory "vendor" itself and the
		// walk skips it without visiting its entries.
		if ok, _ := doublestar.Match(strings.TrimSuffix(p, "/**"), relPath); ok {
			return true
		}
	}
	return false
}
