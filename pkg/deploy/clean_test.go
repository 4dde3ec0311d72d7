package deploy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

func TestCleanFolderRemovesFilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "b", "nested", "c.txt"), "c")

	result, err := CleanFolder(dir, CleanOptions{}, testLogger("clean_test"))
	require.NoError(t, err)
	assert.Equal(t, CleanResult{Removed: 2}, result)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanFolderKeepsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "keep.txt"), "keep")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "linked")))

	logger, buf := bufferLogger("clean_test", hclog.Info)
	result, err := CleanFolder(dir, CleanOptions{}, logger)
	require.NoError(t, err)
	assert.Equal(t, CleanResult{Removed: 1, Skipped: 1}, result)

	info, err := os.Lstat(filepath.Join(dir, "linked"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
	assert.Equal(t, 1, countLines(buf, "skipping symlink"))
	assert.Equal(t, "keep", readFile(t, filepath.Join(target, "keep.txt")))

	_, err = os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCleanFolderRemoveSymlinksKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "keep.txt"), "keep")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "linked")))

	result, err := CleanFolder(dir, CleanOptions{RemoveSymlinks: true}, testLogger("clean_test"))
	require.NoError(t, err)
	assert.Equal(t, CleanResult{Removed: 1}, result)

	_, err = os.Lstat(filepath.Join(dir, "linked"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "keep", readFile(t, filepath.Join(target, "keep.txt")))
}

func TestCleanFolderDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "b", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, "d.dll"), "d")
	require.NoError(t, os.Symlink(filepath.Join(dir, "b"), filepath.Join(dir, "e")))

	logger, buf := bufferLogger("clean_test", hclog.Info)
	result, err := CleanFolder(dir, CleanOptions{DryRun: true}, logger)
	require.NoError(t, err)
	assert.Equal(t, CleanResult{}, result)

	assert.Equal(t, 4, countLines(buf, "would delete"))
	assert.Equal(t, []string{"a.txt", "b/c.txt", "d.dll", "e"}, listTree(t, dir))
}

func TestCleanFolderErrors(t *testing.T) {
	_, err := CleanFolder(filepath.Join(t.TempDir(), "missing"), CleanOptions{}, testLogger("clean_test"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")
	_, err = CleanFolder(file, CleanOptions{}, testLogger("clean_test"))
	assert.True(t, errors.Is(err, perrors.ErrNotDirectory))
}
