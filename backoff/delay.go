package backoff

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tenth is the unit of a bare integer delay: "10" means one second.
const Tenth = 100 * time.Millisecond

// ParseDelay reads a delay given either as a bare non-negative integer
// counted in tenths of a second ("10" = 1s) or as a Go duration string
// ("10ms", "2s", "5m30s").
func ParseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ConfigError{Field: "delay", Reason: "empty value"}
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if n > uint64(math.MaxInt64/int64(Tenth)) {
			return 0, &ConfigError{Field: "delay", Reason: fmt.Sprintf("%s tenths of a second is too large", s)}
		}
		return time.Duration(n) * Tenth, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, &ConfigError{Field: "delay", Reason: fmt.Sprintf("%q is neither tenths of a second nor a duration", s)}
	}
	if d < 0 {
		return 0, &ConfigError{Field: "delay", Reason: fmt.Sprintf("must not be negative, got %v", d)}
	}

	return d, nil
}
