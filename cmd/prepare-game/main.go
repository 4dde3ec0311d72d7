package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/manaengine/prepare-game/internal/buildcfg"
	"github.com/manaengine/prepare-game/internal/layout"
	"github.com/manaengine/prepare-game/internal/settings"
	"github.com/manaengine/prepare-game/pkg/deploy"
	"github.com/manaengine/prepare-game/pkg/logging"
)

const version = "0.1.0"

var (
	buildConfig  = buildcfg.Debug
	scriptsDir   string
	dryRun       bool
	nonVersioned bool
	archivePath  string
	logLevel     string
	versionFlag  bool
	rootCmd      *cobra.Command
)

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("prepare-game %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "prepare-game",
		Short:         "Copies various files needed by ManaGame, to the game folder.",
		Long:          "Empties ManaGame/game, then copies the final assets, the ogg-vorbis libraries and the game binaries of one build configuration into it.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          runPrepare,
	}

	cmd.Flags().VarP(&buildConfig, "config", "c", "build configuration (debug, profile, release)")
	cmd.Flags().StringVar(&scriptsDir, "scripts-dir", "", "ManaGame/scripts folder to resolve paths from (defaults to the executable's folder)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log deletions and copies without changing anything")
	cmd.Flags().BoolVar(&nonVersioned, "non-versioned", false, "Also copy assets/non-versioned (testing builds only)")
	cmd.Flags().StringVar(&archivePath, "archive", "", "Write the prepared folder to this .tar, .tar.gz or .tar.bz2")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
	return cmd
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runPrepare(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersion()
		return nil
	}
	// Flags parsed fine; anything failing from here on is not a usage problem.
	cmd.SilenceUsage = true

	dir := scriptsDir
	if dir == "" {
		var err error
		if dir, err = layout.ScriptDir(); err != nil {
			return err
		}
	}

	opts, level, err := resolveOptions(cmd, dir)
	if err != nil {
		return err
	}

	logger := logging.NewLogger("prepare-game", level, cmd.ErrOrStderr())
	_, err = deploy.Prepare(opts, logger)
	if err != nil {
		logger.Error("❌ Preparing the game folder failed", "error", err)
	}
	return err
}

// resolveOptions merges the settings file under dir with the command line.
// Flags the user set win over the file.
func resolveOptions(cmd *cobra.Command, dir string) (deploy.Options, string, error) {
	s, err := settings.Load(layout.SettingsPath(dir))
	if err != nil {
		return deploy.Options{}, "", err
	}

	opts := deploy.Options{
		Target:              buildcfg.Target{Arch: buildcfg.X64, Config: s.Config},
		ScriptDir:           dir,
		DryRun:              s.DryRun,
		IncludeNonVersioned: s.IncludeNonVersioned,
		RemoveSymlinks:      s.RemoveSymlinks,
		DirMode:             s.DirMode,
		ArchivePath:         s.Archive,
	}
	// A relative archive in the settings file lives next to it.
	if s.Archive != "" && !filepath.IsAbs(s.Archive) {
		opts.ArchivePath = filepath.Join(dir, s.Archive)
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		opts.Target.Config = buildConfig
	}
	if flags.Changed("dry-run") {
		opts.DryRun = dryRun
	}
	if flags.Changed("non-versioned") {
		opts.IncludeNonVersioned = nonVersioned
	}
	if flags.Changed("archive") {
		opts.ArchivePath = archivePath
	}

	level := logging.GetLogLevel(s.LogLevel)
	if flags.Changed("log-level") {
		level = logLevel
	}
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return deploy.Options{}, "", fmt.Errorf("invalid log level %q", level)
	}
	return opts, level, nil
}
