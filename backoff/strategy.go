package backoff

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/retry/internal/algorithms"
)

// Strategy selects the growth law between retries.
type Strategy int

const (
	// Fibonacci grows waits along the Fibonacci sequence (default).
	Fibonacci Strategy = iota
	// Fixed waits MinDelay before every retry.
	Fixed
	// NoDelay retries immediately.
	NoDelay
	// Exponential multiplies MinDelay by Factor for every retry.
	Exponential
)

var strategyNames = map[Strategy]string{
	Fibonacci:   "fibonacci",
	Fixed:       "fixed",
	NoDelay:     "no-delay",
	Exponential: "exponential",
}

// Strategies lists every strategy in a stable order, for help text and
// validation messages.
func Strategies() []Strategy {
	return []Strategy{Fibonacci, Fixed, NoDelay, Exponential}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// "nodelay" and "no_delay" are accepted alongside "no-delay".
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if normalized == "nodelay" {
		normalized = "no-delay"
	}

	for _, s := range Strategies() {
		if strategyNames[s] == normalized {
			return s, nil
		}
	}

	return 0, &ConfigError{
		Field:  "strategy",
		Reason: fmt.Sprintf("unknown strategy %q (want one of %s)", name, strategyList()),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("unknown strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so strategies can be read
// from config files and environment variables.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Strategy) backoffType() algorithms.BackoffType {
	switch s {
	case Fixed:
		return algorithms.BackoffFixed
	case NoDelay:
		return algorithms.BackoffNoDelay
	case Exponential:
		return algorithms.BackoffExponential
	default:
		return algorithms.BackoffFibonacci
	}
}

func strategyList() string {
	names := make([]string, 0, len(strategyNames))
	for _, s := range Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
