package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

// CleanOptions control CleanFolder.
type CleanOptions struct {
	// DryRun logs what would be deleted without touching the filesystem.
	DryRun bool
	// RemoveSymlinks deletes symbolic links found under the folder. The link
	// itself is removed, never its target. When false, links are logged and kept.
	RemoveSymlinks bool
}

// CleanResult counts what CleanFolder did.
type CleanResult struct {
	Removed int
	Skipped int
}

// CleanFolder removes every direct child of path. Directories are removed
// recursively; symbolic links are only removed with RemoveSymlinks.
func CleanFolder(path string, opts CleanOptions, logger hclog.Logger) (CleanResult, error) {
	var result CleanResult

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("cleaning %s: %w", path, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("cleaning %s: %w", path, perrors.ErrNotDirectory)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		if opts.DryRun {
			logger.Info("🔍 would delete", "path", entryPath)
			continue
		}

		switch {
		case entry.Type()&os.ModeSymlink != 0 && !opts.RemoveSymlinks:
			logger.Warn("🔗 skipping symlink", "path", entryPath)
			result.Skipped++
			continue
		case entry.IsDir():
			logger.Debug("🗑️ deleting directory", "path", entryPath)
			if err := os.RemoveAll(entryPath); err != nil {
				return result, fmt.Errorf("deleting %s: %w", entryPath, err)
			}
		default:
			logger.Debug("🗑️ deleting", "path", entryPath)
			if err := os.Remove(entryPath); err != nil {
				return result, fmt.Errorf("deleting %s: %w", entryPath, err)
			}
		}
		result.Removed++
	}

	return result, nil
}
