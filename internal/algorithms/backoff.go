package algorithms

import (
	"math"
	"time"
)

const (
	maxShift = 63 // No factor >= 2 survives this many multiplications in int64
)

// noDelay retries immediately. Every element is zero.
type noDelay struct{}

func (noDelay) Delay(int) time.Duration { return 0 }

// fixedBackoff waits the same base delay before every retry.
type fixedBackoff struct {
	base time.Duration
}

func newFixedBackoff(base time.Duration) *fixedBackoff {
	return &fixedBackoff{base: base}
}

// Delay returns the base delay for any non-negative attempt.
func (fb *fixedBackoff) Delay(attemptNumber int) time.Duration {
	if attemptNumber < 0 {
		return 0
	}
	return fb.base
}

// fibonacciBackoff scales the base delay by the Fibonacci sequence.
// Delay formula: base * fib(attemptNumber), with fib(0)=1, fib(1)=1.
//
// Attempt 0: 1x base
// Attempt 1: 1x base
// Attempt 2: 2x base
// Attempt 3: 3x base
// Attempt 4: 5x base
// ...until the ceiling is reached
//
// Growth is gentler than doubling, which keeps early retries close together
// while still backing off a persistently failing command.
type fibonacciBackoff struct {
	base    time.Duration
	ceiling time.Duration
}

func newFibonacciBackoff(base, ceiling time.Duration) *fibonacciBackoff {
	return &fibonacciBackoff{base: base, ceiling: ceiling}
}

// Delay walks the Fibonacci sequence up to attemptNumber and multiplies by
// the base delay. It stops early once the product passes the ceiling.
func (fb *fibonacciBackoff) Delay(attemptNumber int) time.Duration {
	if attemptNumber < 0 || fb.base <= 0 {
		return 0
	}

	prev, cur := int64(1), int64(1)
	for i := 1; i < attemptNumber; i++ {
		if cur > math.MaxInt64-prev {
			return fb.ceiling
		}
		prev, cur = cur, prev+cur

		if cur > int64(fb.ceiling/fb.base) {
			return fb.ceiling
		}
	}

	return scale(fb.base, cur, fb.ceiling)
}

// exponentialBackoff multiplies the base delay by a constant integer factor.
// Delay formula: base * factor^attemptNumber
//
// With factor=2:
// Attempt 0: 1x base
// Attempt 1: 2x base
// Attempt 2: 4x base
// Attempt 3: 8x base
type exponentialBackoff struct {
	base    time.Duration
	factor  int64
	ceiling time.Duration
}

func newExponentialBackoff(base time.Duration, factor int, ceiling time.Duration) *exponentialBackoff {
	return &exponentialBackoff{
		base:    base,
		factor:  int64(max(factor, 1)),
		ceiling: ceiling,
	}
}

// Delay calculates base * factor^attemptNumber with saturation at the ceiling.
func (eb *exponentialBackoff) Delay(attemptNumber int) time.Duration {
	return calcExponentialDelay(attemptNumber, eb.base, eb.factor, eb.ceiling)
}

func calcExponentialDelay(attemptNumber int, base time.Duration, factor int64, ceiling time.Duration) time.Duration {
	if attemptNumber < 0 || base <= 0 {
		return 0
	}

	if factor == 1 {
		return min(base, ceiling)
	}

	if attemptNumber >= maxShift {
		return ceiling
	}

	multiplier := int64(1)
	for range attemptNumber {
		if multiplier > math.MaxInt64/factor {
			return ceiling
		}
		multiplier *= factor

		if multiplier > int64(ceiling/base) {
			return ceiling
		}
	}

	return scale(base, multiplier, ceiling)
}

// scale returns base*n, or ceiling when the product would exceed it.
func scale(base time.Duration, n int64, ceiling time.Duration) time.Duration {
	if n > int64(ceiling/base) {
		return ceiling
	}
	return min(base*time.Duration(n), ceiling)
}
