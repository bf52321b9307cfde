package algorithms

import (
	"math"
	"math/rand/v2"
	"time"
)

// Jitter spreads d uniformly over [d*(1-fraction), d*(1+fraction)].
//
// The "thundering herd" problem occurs when many supervisors fail at the same
// moment and all retry in lockstep. Jitter breaks that synchronisation.
//
// Example with fraction=0.3:
// Base delay of 1s becomes a random value between 700ms and 1300ms
//
// A zero fraction, a nil rng or a non-positive d returns d unchanged (floored
// at 0). The result is never negative and never overflows.
func Jitter(d time.Duration, fraction float64, rng *rand.Rand) time.Duration {
	if d <= 0 {
		return 0
	}
	if fraction <= 0 || rng == nil {
		return d
	}

	fraction = clamp(fraction, 0, 1)
	multiplier := 1.0 + (rng.Float64()*2-1)*fraction
	jittered := float64(d) * multiplier

	if jittered >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return max(time.Duration(jittered), 0)
}

// SeededRand returns a generator whose stream depends only on seed and index.
// Two calls with the same pair produce identical draws, which makes a jittered
// schedule a pure function of its configuration, seed and position.
func SeededRand(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index))) // #nosec G404 -- crypto rand not needed for backoff jitter
}

// Clamp caps d at ceiling. A non-positive ceiling means "no cap".
func Clamp(d, ceiling time.Duration) time.Duration {
	if ceiling > 0 && d > ceiling {
		return ceiling
	}
	return d
}

func clamp[T int | int64 | float64 | time.Duration](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
