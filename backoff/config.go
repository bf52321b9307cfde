package backoff

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig matches every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a configuration value that cannot be used. It is raised
// before any attempt runs and is never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Config describes how long to wait between attempts and how many attempts
// to make. The zero value is not valid; start from DefaultConfig.
type Config struct {
	MaxAttempts int           // Total launches allowed, at least 1
	MinDelay    time.Duration // Base unit of every strategy
	MaxDelay    time.Duration // Cap on any single raw wait (0 = no cap)
	Jitter      float64       // 0.0 to <1.0, fraction of randomisation either side
	Factor      int           // Multiplier for Exponential, at least 1
	Strategy    Strategy
}

// DefaultConfig returns the configuration used when nothing is specified:
// three attempts, Fibonacci growth from one second, 30% jitter.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		MinDelay:    1 * time.Second,
		MaxDelay:    0,
		Jitter:      0.3,
		Factor:      2,
		Strategy:    Fibonacci,
	}
}

// Validate checks every constraint and returns all violations joined together.
func (c Config) Validate() error {
	var errs []error

	if c.MaxAttempts < 1 {
		errs = append(errs, &ConfigError{Field: "attempts", Reason: fmt.Sprintf("must be at least 1, got %d", c.MaxAttempts)})
	}
	if c.MinDelay < 0 {
		errs = append(errs, &ConfigError{Field: "min delay", Reason: fmt.Sprintf("must not be negative, got %v", c.MinDelay)})
	}
	if c.MaxDelay < 0 {
		errs = append(errs, &ConfigError{Field: "max delay", Reason: fmt.Sprintf("must not be negative, got %v", c.MaxDelay)})
	} else if c.MaxDelay > 0 && c.MaxDelay < c.MinDelay {
		errs = append(errs, &ConfigError{Field: "max delay", Reason: fmt.Sprintf("%v is below min delay %v", c.MaxDelay, c.MinDelay)})
	}
	if math.IsNaN(c.Jitter) || c.Jitter < 0 || c.Jitter >= 1 {
		errs = append(errs, &ConfigError{Field: "jitter", Reason: fmt.Sprintf("must be in [0, 1), got %g", c.Jitter)})
	}
	if c.Factor < 1 {
		errs = append(errs, &ConfigError{Field: "factor", Reason: fmt.Sprintf("must be at least 1, got %d", c.Factor)})
	}
	if _, ok := strategyNames[c.Strategy]; !ok {
		errs = append(errs, &ConfigError{Field: "strategy", Reason: fmt.Sprintf("unknown strategy %d", int(c.Strategy))})
	}

	return errors.Join(errs...)
}
