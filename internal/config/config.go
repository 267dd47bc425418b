// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel indicates log.level is not a known slog level name.
var ErrInvalidLevel = errors.New("config: invalid log level")

// Config holds all rolodex configuration.
type Config struct {
	Sample Sample `yaml:"sample"`
	UI     UI     `yaml:"ui"`
	Log    Log    `yaml:"log"`
}

// Sample holds sample contact generation settings.
type Sample struct {
	Generate bool   `yaml:"generate"`  // Generate sample contacts on startup
	Seed     uint64 `yaml:"seed"`      // 0 picks a random seed
	PoolsDir string `yaml:"pools_dir"` // Directory overriding the embedded pools.yaml
}

// UI holds terminal display settings.
type UI struct {
	AltScreen bool `yaml:"alt_screen"`
}

// Log holds diagnostic logging settings.
type Log struct {
	File  string `yaml:"file"`  // Empty discards logs in the TUI
	Level string `yaml:"level"` // debug | info | warn | error
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Sample: Sample{
			Generate: true,
		},
		UI: UI{
			AltScreen: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalidLevel, c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_SEED, ROLODEX_LOG_FILE, ROLODEX_LOG_LEVEL, ROLODEX_ALT_SCREEN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_SEED %q: %w", v, err)
		}
		c.Sample.Seed = seed
	}
	if v := os.Getenv("ROLODEX_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ROLODEX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ROLODEX_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_ALT_SCREEN %q: %w", v, err)
		}
		c.UI.AltScreen = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Sample *rawSample `yaml:"sample"`
	UI     *rawUI     `yaml:"ui"`
	Log    *rawLog    `yaml:"log"`
}

type rawSample struct {
	Generate *bool   `yaml:"generate"`
	Seed     *uint64 `yaml:"seed"`
	PoolsDir *string `yaml:"pools_dir"`
}

type rawUI struct {
	AltScreen *bool `yaml:"alt_screen"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Sample != nil {
		if layer.Sample.Generate != nil {
			c.Sample.Generate = *layer.Sample.Generate
		}
		if layer.Sample.Seed != nil {
			c.Sample.Seed = *layer.Sample.Seed
		}
		if layer.Sample.PoolsDir != nil {
			c.Sample.PoolsDir = *layer.Sample.PoolsDir
		}
	}
	if layer.UI != nil {
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
