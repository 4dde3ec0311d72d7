// Package buildcfg resolves build targets to the output folder names used by
// the ManaGame and third-party builds.
package buildcfg

import (
	"fmt"
	"strings"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

// Arch is a target CPU architecture.
type Arch int

const (
	X64 Arch = iota
)

var archNames = map[Arch]string{
	X64: "x64",
}

func (a Arch) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return fmt.Sprintf("arch(%d)", int(a))
}

// ParseArch parses an architecture name such as "x64".
func ParseArch(s string) (Arch, error) {
	for a, name := range archNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w %q", perrors.ErrUnknownArch, s)
}

// Config is a build configuration.
type Config int

const (
	Debug Config = iota
	Profile
	Release
)

// Configs lists every supported configuration in display order.
var Configs = []Config{Debug, Profile, Release}

var configNames = map[Config]string{
	Debug:   "debug",
	Profile: "profile",
	Release: "release",
}

func (c Config) String() string {
	if name, ok := configNames[c]; ok {
		return name
	}
	return fmt.Sprintf("config(%d)", int(c))
}

// ParseConfig parses "debug", "profile" or "release".
func ParseConfig(s string) (Config, error) {
	for _, c := range Configs {
		if s == configNames[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q (must be one of %s)", perrors.ErrUnknownBuildConfig, s, configChoices())
}

// WantsSymbols reports whether debug symbols ship with this configuration.
func (c Config) WantsSymbols() bool {
	return c == Debug || c == Profile
}

// Set implements pflag.Value.
func (c *Config) Set(s string) error {
	parsed, err := ParseConfig(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Config) Type() string {
	return "config"
}

func configChoices() string {
	names := make([]string, 0, len(Configs))
	for _, c := range Configs {
		names = append(names, configNames[c])
	}
	return strings.Join(names, ", ")
}

// Target is an architecture and configuration pair.
type Target struct {
	Arch   Arch
	Config Config
}

func (t Target) String() string {
	return t.Arch.String() + "_" + t.Config.String()
}
