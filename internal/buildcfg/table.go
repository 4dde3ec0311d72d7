package buildcfg

import (
	"fmt"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

// Kind names one fragment of a target's output layout.
type Kind int

const (
	GameConfig Kind = iota // bin/<GameConfig>
	OggConfig              // liboggvorbis .../<OggArch>/<OggConfig>
	OggArch
)

var kindNames = map[Kind]string{
	GameConfig: "game_config",
	OggConfig:  "ogg_config",
	OggArch:    "ogg_arch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fragments are the folder names a target's artifacts live under.
type Fragments struct {
	GameConfig string
	OggConfig  string
	OggArch    string
}

// Get returns the fragment for kind, or "" for an unknown kind.
func (f Fragments) Get(kind Kind) string {
	switch kind {
	case GameConfig:
		return f.GameConfig
	case OggConfig:
		return f.OggConfig
	case OggArch:
		return f.OggArch
	default:
		return ""
	}
}

// The ogg-vorbis prebuilt ships no profile flavour; profile builds link the debug one.
var table = map[Target]Fragments{
	{X64, Debug}: {
		GameConfig: "x64Debug",
		OggConfig:  "Debug",
		OggArch:    "x64",
	},
	{X64, Profile}: {
		GameConfig: "x64Profile",
		OggConfig:  "Debug",
		OggArch:    "x64",
	},
	{X64, Release}: {
		GameConfig: "x64Release",
		OggConfig:  "Release",
		OggArch:    "x64",
	},
}

// Resolve returns the fragments for an architecture and configuration.
func Resolve(arch Arch, cfg Config) (Fragments, error) {
	t := Target{Arch: arch, Config: cfg}
	f, ok := table[t]
	if !ok {
		return Fragments{}, fmt.Errorf("%w %s", perrors.ErrNoFragments, t)
	}
	return f, nil
}

// Lookup returns a single fragment of a target.
func Lookup(arch Arch, cfg Config, kind Kind) (string, error) {
	f, err := Resolve(arch, cfg)
	if err != nil {
		return "", err
	}
	v := f.Get(kind)
	if v == "" {
		return "", fmt.Errorf("%w %s (%s)", perrors.ErrNoFragments, Target{Arch: arch, Config: cfg}, kind)
	}
	return v, nil
}
