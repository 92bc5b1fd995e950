package logging

import (
	"fmt"
	"os"
	"strings"
)

// Config selects and configures the engine logger. It is
// embedded in the engine configuration file.
type Config struct {
	// Format is one of "none", "console", "json" or "both".
	Format string `yaml:"format" json:"format"`

	// Level is the minimum level emitted ("debug", "info",
	// "warn", "error").
	Level string `yaml:"level" json:"level"`

	// Path is the JSON log file. Empty means stderr.
	Path string `yaml:"path" json:"path"`

	// MaxFieldLength caps rendered field values. Zero uses
	// DefaultMaxFieldLength.
	MaxFieldLength int `yaml:"max_field_length" json:"max_field_length"`
}

// New builds a Logger from cfg. An empty format yields a
// NullLogger.
func New(cfg Config) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var inner Logger
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "none":
		return NullLogger{}, nil
	case "console":
		inner = NewConsoleLogger(level)
	case "json":
		inner, err = newJSON(cfg.Path, level)
	case "both":
		var jl Logger
		jl, err = newJSON(cfg.Path, level)
		if err == nil {
			inner = NewMultiLogger(NewConsoleLogger(level), jl)
		}
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}
	if err != nil {
		return nil, err
	}

	return NewTruncatingLogger(inner, cfg.MaxFieldLength), nil
}

func newJSON(path string, level LogLevel) (Logger, error) {
	if path == "" {
		return NewJSONLogger(os.Stderr, level), nil
	}
	return OpenJSONLogger(path, level)
}
