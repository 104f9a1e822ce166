// Package config loads run settings for the valvenet command from YAML or
// TOML files and validates them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/input"
	"github.com/katalvlaran/valvenet/search"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full set of run settings.
type Config struct {
	Input     string `yaml:"input" toml:"input"`
	Start     string `yaml:"start" toml:"start"`
	Budget    int    `yaml:"budget" toml:"budget"`
	Overhead  int    `yaml:"overhead" toml:"overhead"`
	MaxVisits int    `yaml:"max_visits" toml:"max_visits"`
	Workers   int    `yaml:"workers" toml:"workers"`
	Partition string `yaml:"partition" toml:"partition"`
	Strict    bool   `yaml:"strict" toml:"strict"`
	Metrics   bool   `yaml:"metrics" toml:"metrics"`
	Log       Log    `yaml:"log" toml:"log"`
}

// Log configures the run logger.
type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the settings of the classic puzzle: start at AA, 30
// minutes, 4 minutes lost to the second agent, balanced splits.
func Default() Config {
	opts := search.DefaultOptions()
	return Config{
		Start:     input.DefaultStart,
		Budget:    opts.Budget,
		Overhead:  opts.Overhead,
		Partition: opts.Partition.String(),
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .yaml/.yml or .toml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("decode config file %s: unknown keys %v", path, undecoded)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return cfg, nil
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if c.Start == "" {
		return fmt.Errorf("%w: start valve is empty", ErrInvalid)
	}
	if c.Budget < 0 || c.Budget > search.MaxBudget {
		return fmt.Errorf("%w: budget %d outside [0, %d]", ErrInvalid, c.Budget, search.MaxBudget)
	}
	if c.Overhead < 0 || c.Overhead > c.Budget {
		return fmt.Errorf("%w: overhead %d outside [0, %d]", ErrInvalid, c.Overhead, c.Budget)
	}
	if c.MaxVisits < 0 {
		return fmt.Errorf("%w: max_visits %d is negative", ErrInvalid, c.MaxVisits)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	}
	if _, err := search.ParsePartitionMode(c.Partition); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// SlogLevel maps Level onto the four slog levels the run logger supports.
func (l Log) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
}

// SearchOptions maps the search-related fields onto search.Options.
// Call Validate first; an unknown partition mode falls back to Balanced.
func (c Config) SearchOptions() search.Options {
	mode, _ := search.ParsePartitionMode(c.Partition)
	return search.Options{
		Budget:    c.Budget,
		Overhead:  c.Overhead,
		MaxVisits: c.MaxVisits,
		Workers:   c.Workers,
		Partition: mode,
		Strict:    c.Strict,
	}
}
