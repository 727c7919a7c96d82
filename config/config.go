// Package config loads the settings of a cellar run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sarchlab/cellar/core"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "cellar.yaml"

var (
	ErrInvalidEOFPolicy   = errors.New("invalid eof policy (must be zero, max or keep)")
	ErrInvalidLogLevel    = errors.New("invalid log level (must be trace, debug, info, warn or error)")
	ErrInvalidDumpColumns = errors.New("dump_columns must be at least 1")
)

var logLevels = map[string]slog.Level{
	"trace": core.LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds the settings of a run.
type Config struct {
	// Comments enables '#' line comments in program text.
	Comments bool `yaml:"comments"`
	// EOF is what Input stores when no more keystrokes exist.
	EOF string `yaml:"eof"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFile receives JSON logs when set; otherwise logs go to stderr as
	// text.
	LogFile string `yaml:"log_file"`
	// DumpColumns is the number of cells per row in a tape dump.
	DumpColumns int `yaml:"dump_columns"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		EOF:         core.EOFZero.String(),
		LogLevel:    "warn",
		DumpColumns: 8,
	}
}

// Load reads a YAML settings file over the defaults. A missing file is not
// an error unless required is set. Unknown keys are rejected.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, ok := core.ParseEOFPolicy(c.EOF); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidEOFPolicy, c.EOF)
	}

	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.DumpColumns < 1 {
		return ErrInvalidDumpColumns
	}

	return nil
}

// EOFPolicy returns the parsed eof setting, falling back to EOFZero.
func (c Config) EOFPolicy() core.EOFPolicy {
	p, _ := core.ParseEOFPolicy(c.EOF)
	return p
}

// SlogLevel returns the parsed log level, falling back to warn.
func (c Config) SlogLevel() slog.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelWarn
}
