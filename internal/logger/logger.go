package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logging surface used across the application.
// Every entry is tagged with the component that produced it.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Format selects the zerolog output encoding
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel accepts the level names used in config files and LOG_LEVEL
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a zerolog-backed logger writing to stdout in the given format
func New(format Format, level zerolog.Level) *ZerologAdapter {
	if format == FormatJSON {
		return NewZerolog(os.Stdout, level)
	}
	return NewConsoleLogger(level)
}

// Nop returns a logger that discards everything
func Nop() *ZerologAdapter {
	return NewZerolog(io.Discard, zerolog.Disabled)
}
