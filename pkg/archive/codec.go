// Package archive packs a prepared game folder into a single tarball.
package archive

import (
	"fmt"
	"io"
	"sort"
	"strings"

	perrors "github.com/manaengine/prepare-game/pkg/errors"
)

// Codec wraps the tar stream in a compression layer.
type Codec interface {
	// Name returns the human-readable name
	Name() string

	// Extensions lists the file suffixes selecting this codec, including the dot
	Extensions() []string

	// NewWriter wraps w; closing the result flushes the codec but not w
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader wraps r for reading back an archive
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Registry maps codec names to implementations
var Registry = make(map[string]Codec)

// Register registers a codec implementation
func Register(c Codec) {
	Registry[c.Name()] = c
}

// Get retrieves a codec by name
func Get(name string) (Codec, error) {
	c, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", perrors.ErrUnknownArchiveFormat, name)
	}
	return c, nil
}

// ForPath picks the codec whose extension is the longest suffix of path.
func ForPath(path string) (Codec, error) {
	lower := strings.ToLower(path)

	var best Codec
	bestLen := 0
	for _, c := range Registry {
		for _, ext := range c.Extensions() {
			if strings.HasSuffix(lower, ext) && len(ext) > bestLen {
				best, bestLen = c, len(ext)
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s (supported: %s)", perrors.ErrUnknownArchiveFormat, path, strings.Join(supported(), ", "))
	}
	return best, nil
}

func supported() []string {
	var exts []string
	for _, c := range Registry {
		exts = append(exts, c.Extensions()...)
	}
	sort.Strings(exts)
	return exts
}
