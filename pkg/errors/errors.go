// Package errors holds the sentinel errors returned by prepare-game.
// Callers wrap them with context and match with errors.Is.
package errors

import "errors"

var (
	// Build configuration errors ⚙️
	ErrUnknownBuildConfig = errors.New("❌ unknown build configuration")
	ErrUnknownArch        = errors.New("❌ unknown architecture")
	ErrNoFragments        = errors.New("❌ no path fragments for target")

	// Filesystem errors 📂
	ErrNotDirectory = errors.New("❌ not a directory")

	// Settings errors 📝
	ErrInvalidSettings = errors.New("❌ invalid settings")

	// Archive errors 📦
	ErrUnknownArchiveFormat = errors.New("❌ unknown archive format")
)
