// Package config loads retry defaults from ~/.retry.yaml and RETRY_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/utkarsh5026/retry/backoff"
)

const (
	// DefaultConfigFileName is looked up in the home directory.
	DefaultConfigFileName = ".retry.yaml"
	// EnvPrefix starts every environment override, as in RETRY_ATTEMPTS.
	EnvPrefix = "RETRY_"
)

// Config holds the settings a user can keep outside the command line.
type Config struct {
	Backoff backoff.Config
	MaxRate float64
	Quiet   bool
}

// DefaultConfig returns backoff.DefaultConfig with no launch-rate cap.
func DefaultConfig() *Config {
	return &Config{Backoff: backoff.DefaultConfig()}
}

// Validate checks the backoff settings and the launch rate.
func (c *Config) Validate() error {
	err := c.Backoff.Validate()
	if c.MaxRate < 0 {
		err = errors.Join(err, &backoff.ConfigError{Field: "max rate", Reason: fmt.Sprintf("must not be negative, got %g", c.MaxRate)})
	}
	return err
}

// file mirrors the YAML layout. Pointers tell "absent" from a zero value.
type file struct {
	Attempts *int              `yaml:"attempts"`
	MinDelay *delay            `yaml:"min_delay"`
	MaxDelay *delay            `yaml:"max_delay"`
	Jitter   *float64          `yaml:"jitter"`
	Factor   *int              `yaml:"factor"`
	Strategy *backoff.Strategy `yaml:"strategy"`
	MaxRate  *float64          `yaml:"max_rate"`
	Quiet    *bool             `yaml:"quiet"`
}

// delay accepts the same forms as the command line: tenths or a duration.
type delay time.Duration

func (d *delay) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: delay must be a scalar", node.Line)
	}
	v, err := backoff.ParseDelay(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = delay(v)
	return nil
}

// DefaultPath returns $HOME/.retry.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigFileName), nil
}

// Load starts from the defaults, applies the YAML file at path and then the
// RETRY_* environment variables. An empty path means DefaultPath. A missing
// file is not an error.
//
// The result is not validated: command-line flags are applied on top of it
// and the combined configuration is checked once.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := applyFile(cfg, data); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.Attempts != nil {
		cfg.Backoff.MaxAttempts = *f.Attempts
	}
	if f.MinDelay != nil {
		cfg.Backoff.MinDelay = time.Duration(*f.MinDelay)
	}
	if f.MaxDelay != nil {
		cfg.Backoff.MaxDelay = time.Duration(*f.MaxDelay)
	}
	if f.Jitter != nil {
		cfg.Backoff.Jitter = *f.Jitter
	}
	if f.Factor != nil {
		cfg.Backoff.Factor = *f.Factor
	}
	if f.Strategy != nil {
		cfg.Backoff.Strategy = *f.Strategy
	}
	if f.MaxRate != nil {
		cfg.MaxRate = *f.MaxRate
	}
	if f.Quiet != nil {
		cfg.Quiet = *f.Quiet
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}
	envErr := func(name string, err error) error {
		return fmt.Errorf("environment %s%s: %w", EnvPrefix, name, err)
	}

	if v, ok := get("ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr("ATTEMPTS", err)
		}
		cfg.Backoff.MaxAttempts = n
	}
	if v, ok := get("MIN_DELAY"); ok {
		d, err := backoff.ParseDelay(v)
		if err != nil {
			return envErr("MIN_DELAY", err)
		}
		cfg.Backoff.MinDelay = d
	}
	if v, ok := get("MAX_DELAY"); ok {
		d, err := backoff.ParseDelay(v)
		if err != nil {
			return envErr("MAX_DELAY", err)
		}
		cfg.Backoff.MaxDelay = d
	}
	if v, ok := get("JITTER"); ok {
		j, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envErr("JITTER", err)
		}
		cfg.Backoff.Jitter = j
	}
	if v, ok := get("FACTOR"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr("FACTOR", err)
		}
		cfg.Backoff.Factor = n
	}
	if v, ok := get("STRATEGY"); ok {
		s, err := backoff.ParseStrategy(v)
		if err != nil {
			return envErr("STRATEGY", err)
		}
		cfg.Backoff.Strategy = s
	}

	return nil
}
