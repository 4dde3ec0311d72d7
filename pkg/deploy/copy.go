package deploy

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/otiai10/copy"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

// Report accumulates what a Copier copied.
type Report struct {
	Files int
	Bytes int64
}

// Copier copies artifacts into the game folder.
type Copier struct {
	dryRun bool
	logger hclog.Logger
	report Report
}

// NewCopier creates a Copier. With dryRun set it only logs.
func NewCopier(dryRun bool, logger hclog.Logger) *Copier {
	return &Copier{
		dryRun: dryRun,
		logger: logger,
	}
}

// Report returns the totals so far.
func (c *Copier) Report() Report {
	return c.report
}

// Symlinks in the sources are followed so the game folder only holds resolved files.
func followSymlink(string) copy.SymlinkAction {
	return copy.Deep
}

func fileOptions() copy.Options {
	return copy.Options{
		PreserveTimes: true,
		OnSymlink:     followSymlink,
	}
}

func treeOptions() copy.Options {
	return copy.Options{
		PreserveTimes: true,
		OnSymlink:     followSymlink,
		OnDirExists: func(string, string) copy.DirExistsAction {
			return copy.Merge
		},
	}
}

// CopyMatching copies the regular files under srcDir that match pattern into
// dst, flattened to their base names. Matching ignores case and skips
// dotfiles unless the pattern names them. A missing srcDir or no match copies
// nothing.
func (c *Copier) CopyMatching(srcDir, pattern, dst string) (int, error) {
	matches, err := matchFiles(srcDir, pattern)
	if err != nil {
		return 0, fmt.Errorf("matching %s in %s: %w", pattern, srcDir, err)
	}
	if len(matches) == 0 {
		c.logger.Debug("📭 nothing matched", "dir", srcDir, "pattern", pattern)
		return 0, nil
	}

	copied := 0
	for _, match := range matches {
		src := filepath.Join(srcDir, filepath.FromSlash(match))
		target := filepath.Join(dst, filepath.Base(src))

		info, err := os.Stat(src)
		if err != nil {
			return copied, fmt.Errorf("reading %s: %w", src, err)
		}

		if c.dryRun {
			c.logger.Info("🔍 would copy", "src", src, "dst", target)
		} else {
			c.logger.Trace("📄 copying", "src", src, "dst", target)
			if err := copy.Copy(src, target, fileOptions()); err != nil {
				return copied, fmt.Errorf("copying %s: %w", src, err)
			}
		}
		copied++
		c.report.Files++
		c.report.Bytes += info.Size()
	}
	return copied, nil
}

// CopyTree copies src recursively into dst, merging with any existing
// content. Files already present in dst are overwritten.
func (c *Copier) CopyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("copying tree %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("copying tree %s: %w", src, perrors.ErrNotDirectory)
	}

	files, size, err := c.measureTree(src, dst)
	if err != nil {
		return 0, err
	}

	if c.dryRun {
		c.logger.Info("🔍 would copy tree", "src", src, "dst", dst, "files", files)
	} else {
		c.logger.Trace("📁 copying tree", "src", src, "dst", dst)
		if err := copy.Copy(src, dst, treeOptions()); err != nil {
			return 0, fmt.Errorf("copying tree %s: %w", src, err)
		}
	}
	c.report.Files += files
	c.report.Bytes += size
	return files, nil
}

// measureTree counts the files under src, following symlinked directories
// the way the copy does. In dry-run mode it also logs each file that would
// be written.
func (c *Copier) measureTree(src, dst string) (int, int64, error) {
	var files int
	var size int64
	seen := map[string]bool{}

	var walk func(root, target string) error
	walk = func(root, target string) error {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			return err
		}
		if seen[resolved] {
			return nil
		}
		seen[resolved] = true
		defer delete(seen, resolved)

		return filepath.WalkDir(resolved, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			info, err := os.Stat(p)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(resolved, p)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return walk(p, filepath.Join(target, rel))
			}
			files++
			size += info.Size()

			if c.dryRun {
				c.logger.Debug("🔍 would copy", "src", p, "dst", filepath.Join(target, rel))
			}
			return nil
		})
	}

	if err := walk(src, dst); err != nil {
		return 0, 0, fmt.Errorf("walking %s: %w", src, err)
	}
	return files, size, nil
}
