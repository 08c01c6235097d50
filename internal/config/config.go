package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"person-roster/internal/logger"
)

var (
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidLogFormat  = errors.New("invalid log format")
	ErrInvalidSampleSize = errors.New("sample max must not be negative")
	ErrInvalidWindowSize = errors.New("window size must be positive")
)

// Config holds application settings. Zero fields in a YAML file keep
// their defaults.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Sample SampleConfig `yaml:"sample"`
	Window WindowConfig `yaml:"window"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SampleConfig controls the demo data loaded at startup
type SampleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Max     int    `yaml:"max"`
	Seed    uint64 `yaml:"seed"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: string(logger.FormatConsole),
		},
		Sample: SampleConfig{
			Enabled: true,
			Max:     150,
		},
		Window: WindowConfig{
			Title:  "Person Management",
			Width:  900,
			Height: 640,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- path comes from the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides the log level from LOG_LEVEL, or DEBUG=1
func (c *Config) ApplyEnv(getenv func(string) string) {
	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
		return
	}
	if getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.Log.Level)
	}
	switch logger.Format(c.Log.Format) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogFormat, c.Log.Format)
	}
	if c.Sample.Max < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleSize, c.Sample.Max)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %.0fx%.0f", ErrInvalidWindowSize, c.Window.Width, c.Window.Height)
	}
	return nil
}

// NewLogger builds the application logger from the log settings
func (c Config) NewLogger() (*logger.ZerologAdapter, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.Log.Level)
	}
	return logger.New(logger.Format(c.Log.Format), level), nil
}
