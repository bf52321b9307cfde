// Package algorithms holds the delay growth laws and jitter math behind backoff.Sequence.
package algorithms

import "time"

// DelayLaw computes the raw wait that precedes a retry, before any clamping
// or jitter is applied.
//
// attemptNumber is 0-indexed (0 = the wait after the first failed launch).
// Implementations hold no mutable state: calling Delay twice with the same
// attemptNumber returns the same value, so callers can replay or skip ahead
// freely.
type DelayLaw interface {
	// Delay returns the raw delay for attemptNumber. Negative attempt numbers
	// return 0. Results never overflow: laws saturate at their ceiling.
	Delay(attemptNumber int) time.Duration
}
