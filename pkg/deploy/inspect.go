package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"
)

// ExeInfo summarises the resources embedded in a Windows executable.
type ExeInfo struct {
	Path        string
	HasVersion  bool
	HasManifest bool
	HasIcon     bool
	Resources   int
}

// InspectExecutable reads the PE resource table of path.
func InspectExecutable(path string) (ExeInfo, error) {
	info := ExeInfo{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer f.Close()

	rs, err := winres.LoadFromEXE(f)
	if err != nil {
		return info, fmt.Errorf("reading resources of %s: %w", path, err)
	}

	rs.Walk(func(typeID, _ winres.Identifier, _ uint16, _ []byte) bool {
		info.Resources++
		switch typeID {
		case winres.RT_VERSION:
			info.HasVersion = true
		case winres.RT_MANIFEST:
			info.HasManifest = true
		case winres.RT_GROUP_ICON:
			info.HasIcon = true
		}
		return true
	})
	return info, nil
}

// InspectExecutables logs a resource summary for every *.exe in dir.
// Failures are logged and never stop the run.
func InspectExecutables(dir string, logger hclog.Logger) []ExeInfo {
	matches, err := matchFiles(dir, "*.exe")
	if err != nil {
		logger.Debug("⚠️ listing executables failed", "dir", dir, "error", err)
		return nil
	}

	var infos []ExeInfo
	for _, match := range matches {
		exe := filepath.Join(dir, filepath.FromSlash(match))
		info, err := InspectExecutable(exe)
		if err != nil {
			logger.Debug("⚠️ not a readable PE executable", "path", exe, "error", err)
			continue
		}
		if !info.HasVersion {
			logger.Warn("🏷️ executable has no version resource", "path", exe)
		}
		logger.Debug("🔎 executable resources",
			"path", exe,
			"resources", info.Resources,
			"version", info.HasVersion,
			"manifest", info.HasManifest,
			"icon", info.HasIcon)
		infos = append(infos, info)
	}
	return infos
}
