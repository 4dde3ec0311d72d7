// Package settings loads the optional prepare-game.toml file that sits next
// to the tool. Command-line flags override anything set here.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/manaengine/prepare-game/internal/buildcfg"
	perrors "github.com/manaengine/prepare-game/pkg/errors"
	"github.com/manaengine/prepare-game/pkg/utils/permissions"
)

// File mirrors prepare-game.toml.
type File struct {
	Config              string `toml:"config"`
	LogLevel            string `toml:"log_level"`
	DryRun              bool   `toml:"dry_run"`
	IncludeNonVersioned bool   `toml:"include_non_versioned"`
	RemoveSymlinks      bool   `toml:"remove_symlinks"`
	DirMode             string `toml:"dir_mode"`
	Archive             string `toml:"archive"`
}

// Settings are the validated values from a settings file.
type Settings struct {
	Config              buildcfg.Config
	LogLevel            string
	DryRun              bool
	IncludeNonVersioned bool
	RemoveSymlinks      bool
	DirMode             os.FileMode
	Archive             string

	// Source is the file the settings were read from, empty when defaults were used.
	Source string
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Config:  buildcfg.Debug,
		DirMode: permissions.DefaultDirPerms,
	}
}

// Load reads path. A missing file yields Defaults.
func Load(path string) (Settings, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("%w: %s: %v", perrors.ErrInvalidSettings, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: %s: unknown key %q", perrors.ErrInvalidSettings, path, undecoded[0].String())
	}

	s, err := f.validate()
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %v", perrors.ErrInvalidSettings, path, err)
	}
	s.Source = path
	return s, nil
}

func (f File) validate() (Settings, error) {
	s := Defaults()
	if f.Config != "" {
		cfg, err := buildcfg.ParseConfig(f.Config)
		if err != nil {
			return Settings{}, err
		}
		s.Config = cfg
	}
	mode, err := permissions.ParseDirMode(f.DirMode)
	if err != nil {
		return Settings{}, err
	}
	s.DirMode = mode
	s.LogLevel = f.LogLevel
	s.DryRun = f.DryRun
	s.IncludeNonVersioned = f.IncludeNonVersioned
	s.RemoveSymlinks = f.RemoveSymlinks
	s.Archive = f.Archive
	return s, nil
}
