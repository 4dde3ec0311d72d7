package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaengine/prepare-game/internal/buildcfg"
)

func TestPaths(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "src", "Mana")
	scripts := filepath.Join(root, "ManaGame", "scripts")

	testCases := []struct {
		config  buildcfg.Config
		gameBin string
		oggBin  string
	}{
		{
			config:  buildcfg.Debug,
			gameBin: filepath.Join(root, "ManaGame", "bin", "x64Debug"),
			oggBin:  filepath.Join(root, "ManaEngine", "third-party", "liboggvorbis", "Dynamic", "bin", "x64", "Debug"),
		},
		{
			config:  buildcfg.Profile,
			gameBin: filepath.Join(root, "ManaGame", "bin", "x64Profile"),
			oggBin:  filepath.Join(root, "ManaEngine", "third-party", "liboggvorbis", "Dynamic", "bin", "x64", "Debug"),
		},
		{
			config:  buildcfg.Release,
			gameBin: filepath.Join(root, "ManaGame", "bin", "x64Release"),
			oggBin:  filepath.Join(root, "ManaEngine", "third-party", "liboggvorbis", "Dynamic", "bin", "x64", "Release"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.config.String(), func(t *testing.T) {
			frags, err := buildcfg.Resolve(buildcfg.X64, tc.config)
			require.NoError(t, err)

			p := NewPaths(scripts, frags)
			assert.Equal(t, scripts, p.Scripts())
			assert.Equal(t, filepath.Join(root, "ManaGame"), p.Project())
			assert.Equal(t, filepath.Join(root, "ManaEngine", "third-party"), p.ThirdParty())
			assert.Equal(t, filepath.Join(root, "ManaGame", "game"), p.Game())
			assert.Equal(t, filepath.Join(root, "ManaGame", "assets"), p.Assets())
			assert.Equal(t, filepath.Join(root, "ManaGame", "assets", "final"), p.FinalAssets())
			assert.Equal(t, filepath.Join(root, "ManaGame", "assets", "non-versioned"), p.NonVersionedAssets())
			assert.Equal(t, filepath.Join(scripts, SettingsFileName), p.SettingsFile())
			assert.Equal(t, tc.gameBin, p.GameBin())
			assert.Equal(t, tc.oggBin, p.OggBin())
		})
	}
}

func TestPathsDoNotTouchFilesystem(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "scripts")
	p := NewPaths(missing, buildcfg.Fragments{GameConfig: "x64Debug", OggConfig: "Debug", OggArch: "x64"})

	_ = p.GameBin()
	_ = p.OggBin()
	_, err := os.Stat(filepath.Dir(missing))
	assert.True(t, os.IsNotExist(err))
}

func TestScriptDir(t *testing.T) {
	dir, err := ScriptDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
