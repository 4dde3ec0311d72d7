package deploy

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectExecutableRejectsNonPE(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "ManaGame.exe")
	writeFile(t, exe, "not a portable executable")

	info, err := InspectExecutable(exe)
	require.Error(t, err)
	assert.Equal(t, exe, info.Path)
	assert.False(t, info.HasVersion)
}

func TestInspectExecutableMissing(t *testing.T) {
	_, err := InspectExecutable(filepath.Join(t.TempDir(), "nope.exe"))
	assert.Error(t, err)
}

func TestInspectExecutablesNeverFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.exe"), "junk")
	writeFile(t, filepath.Join(dir, "b.exe"), "MZ")
	writeFile(t, filepath.Join(dir, "c.dll"), "junk")

	logger, buf := bufferLogger("inspect_test", hclog.Debug)
	infos := InspectExecutables(dir, logger)
	assert.Empty(t, infos)
	assert.Equal(t, 2, countLines(buf, "not a readable PE executable"))
}
