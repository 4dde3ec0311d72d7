// Package permissions parses the octal modes accepted in prepare-game settings.
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultDirPerms is used for the game folder when no mode is configured.
// The folder is shipped, so it stays world-readable.
const DefaultDirPerms os.FileMode = 0o755

// ParseDirMode parses an octal string such as "755", "0755" or "0o755".
// An empty string yields DefaultDirPerms.
func ParseDirMode(s string) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDirPerms, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if digits == "" {
		digits = "0"
	}

	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return DefaultDirPerms, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return DefaultDirPerms, fmt.Errorf("invalid permission string %q: only permission bits are allowed", s)
	}

	mode := os.FileMode(val)
	if !IsTraversable(mode) {
		return DefaultDirPerms, fmt.Errorf("invalid directory mode %s: owner cannot traverse it", FormatOctal(mode))
	}
	return mode, nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(mode os.FileMode) string {
	return fmt.Sprintf("0%o", mode.Perm())
}

// IsTraversable checks the owner execute bit, without which a directory cannot be entered
func IsTraversable(mode os.FileMode) bool {
	return mode&0o100 != 0
}
