// Package config loads the settings shared by the CLI and the in-memory
// runtime from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scheduler names.
const (
	SchedulerImmediate = "immediate"
	SchedulerLoop      = "loop"
)

// Config is the top-level configuration document.
type Config struct {
	// Mount is the id of the container element the root is rendered into.
	Mount     string  `yaml:"mount"`
	Scheduler string  `yaml:"scheduler"`
	Storage   Storage `yaml:"storage"`
	Log       Log     `yaml:"log"`
}

type Storage struct {
	Driver string `yaml:"driver"` // memory, bolt, sqlite, file
	Path   string `yaml:"path"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json, or empty for auto
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mount:     "root",
		Scheduler: SchedulerImmediate,
		Storage:   Storage{Driver: "memory"},
		Log:       Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid configuration")

// Validate checks the fields that have a fixed set of values.
func (c Config) Validate() error {
	if c.Mount == "" {
		return fmt.Errorf("%w: mount must not be empty", ErrInvalid)
	}
	switch c.Scheduler {
	case SchedulerImmediate, SchedulerLoop:
	default:
		return fmt.Errorf("%w: scheduler %q (want %s or %s)", ErrInvalid, c.Scheduler, SchedulerImmediate, SchedulerLoop)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if c.Storage.Driver == "" {
		return fmt.Errorf("%w: storage driver must not be empty", ErrInvalid)
	}
	if c.Storage.Driver != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage driver %q needs a path", ErrInvalid, c.Storage.Driver)
	}
	return nil
}
