// Package deploy cleans the ManaGame game folder and fills it with the
// assets and binaries of one build target.
package deploy

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/manaengine/prepare-game/internal/buildcfg"
	"github.com/manaengine/prepare-game/internal/layout"
	"github.com/manaengine/prepare-game/pkg/archive"
	perrors "github.com/manaengine/prepare-game/pkg/errors"
	"github.com/manaengine/prepare-game/pkg/utils/permissions"
)

// Options describe one prepare run.
type Options struct {
	Target    buildcfg.Target
	ScriptDir string

	DryRun              bool
	IncludeNonVersioned bool
	RemoveSymlinks      bool
	DirMode             os.FileMode

	// ArchivePath, when set, receives a tarball of the prepared folder.
	ArchivePath string
}

// Summary is the outcome of a successful Prepare.
type Summary struct {
	GamePath    string
	Cleaned     CleanResult
	Copied      Report
	Executables []ExeInfo
	Archive     *archive.Result
}

type copyStep struct {
	label   string
	dir     string
	pattern string // empty copies dir as a tree
}

// Prepare runs the whole pipeline: create the game folder, clean it, then
// copy assets and binaries into it. It stops at the first error and leaves
// the folder as it is.
func Prepare(opts Options, logger hclog.Logger) (*Summary, error) {
	frags, err := buildcfg.Resolve(opts.Target.Arch, opts.Target.Config)
	if err != nil {
		return nil, err
	}
	paths := layout.NewPaths(opts.ScriptDir, frags)
	game := paths.Game()
	summary := &Summary{GamePath: game}

	logger.Info("🎮 Preparing ManaGame", "target", opts.Target.String(), "game", game, "dry_run", opts.DryRun)

	exists, err := ensureFolder(game, opts, logger)
	if err != nil {
		return summary, err
	}

	if exists {
		logger.Info("🧹 Cleaning the game folder")
		summary.Cleaned, err = CleanFolder(game, CleanOptions{
			DryRun:         opts.DryRun,
			RemoveSymlinks: opts.RemoveSymlinks,
		}, logger.Named("clean"))
		if err != nil {
			return summary, err
		}
	}

	logger.Info("📂 Copying files to game folder")
	copier := NewCopier(opts.DryRun, logger.Named("copy"))
	for _, step := range copySteps(paths, opts) {
		var n int
		if step.pattern == "" {
			n, err = copier.CopyTree(step.dir, game)
		} else {
			n, err = copier.CopyMatching(step.dir, step.pattern, game)
		}
		if err != nil {
			return summary, fmt.Errorf("%s: %w", step.label, err)
		}
		logger.Info("  "+step.label, "files", n)
	}
	summary.Copied = copier.Report()

	if !opts.DryRun {
		summary.Executables = InspectExecutables(game, logger.Named("inspect"))
	}

	if opts.ArchivePath != "" {
		if opts.DryRun {
			logger.Info("🔍 would archive", "path", opts.ArchivePath)
		} else {
			res, err := archive.Create(game, opts.ArchivePath, logger.Named("archive"))
			if err != nil {
				return summary, fmt.Errorf("archiving %s: %w", game, err)
			}
			summary.Archive = &res
			logger.Info("📦 Archived game folder",
				"path", res.Path,
				"codec", res.Codec,
				"entries", res.Entries,
				"size", humanize.Bytes(uint64(res.Size)))
		}
	}

	logger.Info("✅ Game folder ready",
		"removed", summary.Cleaned.Removed,
		"skipped", summary.Cleaned.Skipped,
		"files", summary.Copied.Files,
		"size", humanize.Bytes(uint64(summary.Copied.Bytes)))
	return summary, nil
}

// copySteps lists the copies in the order they run.
func copySteps(paths *layout.Paths, opts Options) []copyStep {
	steps := []copyStep{
		{label: "assets/final", dir: paths.FinalAssets()},
		{label: "ogg-vorbis dlls", dir: paths.OggBin(), pattern: "*.dll"},
		{label: "game_bin/*.exe", dir: paths.GameBin(), pattern: "*.exe"},
		// The xaudio dll is placed in game_bin by its NuGet package during the build.
		{label: "game_bin/*.dll", dir: paths.GameBin(), pattern: "*.dll"},
	}
	if opts.Target.Config.WantsSymbols() {
		steps = append(steps, copyStep{label: "game_bin/*.pdb", dir: paths.GameBin(), pattern: "*.pdb"})
	}
	if opts.IncludeNonVersioned {
		steps = append(steps, copyStep{label: "assets/non-versioned", dir: paths.NonVersionedAssets()})
	}
	return steps
}

// ensureFolder creates the game folder when missing and reports whether it
// exists afterwards. Dry runs never create it.
func ensureFolder(path string, opts Options, logger hclog.Logger) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return false, fmt.Errorf("game folder %s: %w", path, perrors.ErrNotDirectory)
	case err == nil:
		return true, nil
	case !os.IsNotExist(err):
		return false, fmt.Errorf("game folder %s: %w", path, err)
	}

	mode := opts.DirMode
	if mode == 0 {
		mode = permissions.DefaultDirPerms
	}
	if opts.DryRun {
		logger.Info("🔍 would create game folder", "path", path, "mode", permissions.FormatOctal(mode))
		return false, nil
	}
	logger.Debug("📁 creating game folder", "path", path, "mode", permissions.FormatOctal(mode))
	// Parents are never created: a missing project root means a wrong scripts dir.
	if err := os.Mkdir(path, mode); err != nil {
		return false, fmt.Errorf("creating game folder: %w", err)
	}
	return true, nil
}
