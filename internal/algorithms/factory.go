package algorithms

import (
	"math"
	"time"
)

// BackoffType defines the growth law used between retries.
type BackoffType int

const (
	// BackoffFibonacci scales the base delay by the Fibonacci sequence (default).
	BackoffFibonacci BackoffType = iota
	// BackoffFixed waits the base delay every time.
	BackoffFixed
	// BackoffNoDelay retries immediately.
	BackoffNoDelay
	// BackoffExponential multiplies the base delay by factor^attempt.
	BackoffExponential
)

// unbounded is the ceiling used when no maximum delay is configured.
const unbounded = time.Duration(math.MaxInt64)

// NewDelayLaw creates the delay law for backoffType.
// maxDelay <= 0 means the law is bounded only by int64 overflow; factor is
// only consulted by BackoffExponential.
func NewDelayLaw(
	backoffType BackoffType,
	baseDelay, maxDelay time.Duration,
	factor int,
) DelayLaw {
	ceiling := maxDelay
	if ceiling <= 0 {
		ceiling = unbounded
	}

	switch backoffType {
	case BackoffNoDelay:
		return noDelay{}

	case BackoffFixed:
		return newFixedBackoff(baseDelay)

	case BackoffExponential:
		return newExponentialBackoff(baseDelay, factor, ceiling)

	default:
		return newFibonacciBackoff(baseDelay, ceiling)
	}
}
