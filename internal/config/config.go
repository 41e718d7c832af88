package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the command line tool settings. Every field can also be set
// by a flag; flags win over the file.
type Config struct {
	Format    string      `toml:"format"`
	Verbosity int         `toml:"verbosity"`
	LogFile   string      `toml:"log_file"`
	Map       MapConfig   `toml:"map"`
	Watch     WatchConfig `toml:"watch"`
}

// MapConfig controls the grid drawing printed after the results.
type MapConfig struct {
	Show      bool `toml:"show"`
	MaxWidth  int  `toml:"max_width"`
	MaxHeight int  `toml:"max_height"`
}

// WatchConfig controls the interactive replay.
type WatchConfig struct {
	Interval Duration `toml:"interval"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Map.MaxWidth == 0 {
		c.Map.MaxWidth = 80
	}
	if c.Map.MaxHeight == 0 {
		c.Map.MaxHeight = 40
	}
	if c.Watch.Interval.Duration == 0 {
		c.Watch.Interval.Duration = 400 * time.Millisecond
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	if c.Map.MaxWidth < 0 || c.Map.MaxHeight < 0 {
		return fmt.Errorf("map limits must not be negative, got %dx%d", c.Map.MaxWidth, c.Map.MaxHeight)
	}
	if c.Watch.Interval.Duration < 0 {
		return fmt.Errorf("watch interval must not be negative, got %s", c.Watch.Interval)
	}
	return nil
}
