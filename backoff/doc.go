// Package backoff turns a retry configuration into the ordered list of waits
// a supervisor sleeps between attempts.
//
// The primary type is Sequence, built from a Config. Element i of a Sequence
// is the wait after the (i+1)th failed launch: the raw value of the chosen
// growth law, clamped to MaxDelay and then jittered. Every element is a pure
// function of the configuration, the sequence seed and i, so a Sequence can
// be read in any order, replayed, or rendered as a schedule without running
// anything.
//
// # Basic Usage
//
//	cfg := backoff.DefaultConfig()
//	cfg.MaxAttempts = 5
//	cfg.MinDelay = 200 * time.Millisecond
//	seq, err := backoff.NewSequence(cfg)
//	if err != nil {
//	    return err
//	}
//	for i, d := range seq.All() {
//	    fmt.Printf("wait %d: %v\n", i, d)
//	}
//
// # Strategies
//
//   - Fibonacci: MinDelay * fib(i) with fib(0)=1, fib(1)=1 (default)
//   - Fixed: MinDelay every time
//   - NoDelay: retry immediately
//   - Exponential: MinDelay * Factor^i
//
// # Attempts and Waits
//
// MaxAttempts counts launches, and the first launch never waits. A Sequence
// therefore has MaxAttempts-1 elements: an always-failing command configured
// with MaxAttempts=3 runs three times and sleeps twice.
package backoff
