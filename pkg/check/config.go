package check

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
	"digital.vasic.fluent/pkg/structural"
)

// DefaultMaxValueLength is the rendered length after which values
// are truncated in failure messages.
const DefaultMaxValueLength = 1024

// Config holds the engine-wide settings.
type Config struct {
	// MaxValueLength truncates rendered values. Zero disables
	// truncation.
	MaxValueLength int `yaml:"max_value_length" json:"max_value_length"`

	// MaxDepth bounds structural comparisons.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// Log configures the engine logger.
	Log logging.Config `yaml:"log" json:"log"`

	// Logger, when set, is used instead of building one from Log.
	Logger logging.Logger `yaml:"-" json:"-"`

	// Metrics receives check and batch counters.
	Metrics metrics.Recorder `yaml:"-" json:"-"`
}

// DefaultConfig returns the configuration used until Configure is
// called.
func DefaultConfig() Config {
	return Config{
		MaxValueLength: DefaultMaxValueLength,
		MaxDepth:       structural.DefaultMaxDepth,
	}
}

// Validate reports out of range settings.
func (c Config) Validate() error {
	if c.MaxValueLength < 0 {
		return fmt.Errorf("max_value_length must not be negative, got %d", c.MaxValueLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Criteria returns the default structural criteria for c.
func (c Config) Criteria() structural.Criteria {
	return structural.DefaultCriteria().WithMaxDepth(c.MaxDepth)
}

// LoadConfig reads a YAML configuration file. Missing keys keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// settings is the active configuration with its resolved logger
// and metrics recorder.
type settings struct {
	cfg     Config
	logger  logging.Logger
	metrics metrics.Recorder
	owned   bool
}

var (
	active   = newSettings(DefaultConfig(), logging.NullLogger{}, false)
	activeMu sync.RWMutex
)

func newSettings(cfg Config, logger logging.Logger, owned bool) *settings {
	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &settings{cfg: cfg, logger: logger, metrics: rec, owned: owned}
}

// Configure installs cfg for every check decided afterwards. The
// logger built from a previous Configure call is closed.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, owned := cfg.Logger, false
	if logger == nil {
		l, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("configure logger: %w", err)
		}
		logger, owned = l, true
	}

	activeMu.Lock()
	previous := active
	active = newSettings(cfg, logger, owned)
	activeMu.Unlock()

	if previous.owned {
		return previous.logger.Close()
	}
	return nil
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return current().cfg
}

func current() *settings {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}
