package deploy

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchFiles returns the slash-separated paths of the files under dir that
// match pattern, in lexical order. Matching ignores case, and names starting
// with a dot only match when the pattern spells the dot out, as on Windows.
// A missing dir matches nothing.
func matchFiles(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	lower := strings.ToLower(pattern)
	dotted := strings.HasPrefix(lower, ".") || strings.Contains(lower, "/.")

	// Without ** nothing deeper than the pattern's own segments can match.
	maxDepth := -1
	if !strings.Contains(lower, "**") {
		maxDepth = strings.Count(lower, "/") + 1
	}

	var matches []string
	err := fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." && os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if p == "." {
			return nil
		}
		if !dotted && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if maxDepth >= 0 && strings.Count(p, "/")+1 >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		ok, err := doublestar.Match(lower, strings.ToLower(p))
		if err != nil || !ok {
			return err
		}
		if !d.Type().IsRegular() {
			// Symlinks count when they resolve to a file.
			info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		}
		matches = append(matches, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
