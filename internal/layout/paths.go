// Package layout derives the ManaGame project paths from the location of the
// prepare-game tool, which lives in ManaGame/scripts.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manaengine/prepare-game/internal/buildcfg"
)

// SettingsFileName is looked up next to the tool.
const SettingsFileName = "prepare-game.toml"

// Paths computes every source and destination folder for one target.
type Paths struct {
	scriptDir string
	fragments buildcfg.Fragments
}

// NewPaths creates Paths rooted at scriptDir.
func NewPaths(scriptDir string, fragments buildcfg.Fragments) *Paths {
	return &Paths{
		scriptDir: filepath.Clean(scriptDir),
		fragments: fragments,
	}
}

// ScriptDir returns the directory containing the running executable with
// symlinks resolved, regardless of the current working directory.
func ScriptDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// ==================== Project Paths ====================

// Scripts returns the tool's own folder.
func (p *Paths) Scripts() string {
	return p.scriptDir
}

// Project returns the ManaGame project folder.
func (p *Paths) Project() string {
	return filepath.Join(p.scriptDir, "..")
}

// ThirdParty returns the engine's third-party dependency root.
func (p *Paths) ThirdParty() string {
	return filepath.Join(p.scriptDir, "..", "..", "ManaEngine", "third-party")
}

// SettingsFile returns the optional settings file path.
func (p *Paths) SettingsFile() string {
	return SettingsPath(p.scriptDir)
}

// SettingsPath returns the settings file location for a scripts folder.
// Settings are read before a target is known, so this needs no fragments.
func SettingsPath(scriptDir string) string {
	return filepath.Join(scriptDir, SettingsFileName)
}

// ==================== Destination ====================

// Game returns the deployable game folder.
func (p *Paths) Game() string {
	return filepath.Join(p.Project(), "game")
}

// ==================== Sources ====================

// Assets returns the assets root.
func (p *Paths) Assets() string {
	return filepath.Join(p.Project(), "assets")
}

// FinalAssets returns the shipped assets tree.
func (p *Paths) FinalAssets() string {
	return filepath.Join(p.Assets(), "final")
}

// NonVersionedAssets returns assets kept out of version control, used for testing builds.
func (p *Paths) NonVersionedAssets() string {
	return filepath.Join(p.Assets(), "non-versioned")
}

// GameBin returns the game's build output folder for the target.
func (p *Paths) GameBin() string {
	return filepath.Join(p.Project(), "bin", p.fragments.GameConfig)
}

// OggBin returns the prebuilt ogg-vorbis dynamic library folder for the target.
func (p *Paths) OggBin() string {
	return filepath.Join(p.ThirdParty(), "liboggvorbis", "Dynamic", "bin", p.fragments.OggArch, p.fragments.OggConfig)
}
