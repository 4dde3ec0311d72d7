package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

const (
	// LogLevelEnv overrides the default log level
	LogLevelEnv = "PREPARE_GAME_LOG_LEVEL"
	// JSONLogEnv switches output to JSON when set to "1"
	JSONLogEnv = "PREPARE_GAME_JSON_LOG"

	defaultLevel = "info"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(JSONLogEnv) == "1"

	color := hclog.ColorOff
	if !jsonFormat && ShouldUseColor(output) {
		color = hclog.ForceColor
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🎮 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		Color:      color,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment,
// falling back to fallback and then to "info".
func GetLogLevel(fallback string) string {
	if level := os.Getenv(LogLevelEnv); level != "" {
		return level
	}
	if fallback != "" {
		return fallback
	}
	return defaultLevel
}

// ShouldUseColor reports whether ANSI colors should be written to w.
// It respects NO_COLOR, CLICOLOR_FORCE, CLICOLOR, and TTY detection.
func ShouldUseColor(w io.Writer) bool {
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
