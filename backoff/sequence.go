package backoff

import (
	"iter"
	"math"
	"math/rand/v2"
	"time"

	"github.com/utkarsh5026/retry/internal/algorithms"
)

// SequenceOption is a functional option for configuring a Sequence.
type SequenceOption func(*Sequence)

// WithSeed fixes the jitter seed. Two sequences with the same Config and seed
// yield identical delays. If not specified, a random seed is drawn.
func WithSeed(seed uint64) SequenceOption {
	return func(s *Sequence) {
		s.seed = seed
	}
}

// Sequence is the finite, ordered list of waits between attempts.
//
// A Sequence holds no cursor: At(i) is computed on demand from the config,
// the seed and i. The caller that consumes it keeps its own index.
type Sequence struct {
	cfg  Config
	law  algorithms.DelayLaw
	seed uint64
}

// NewSequence validates cfg and returns its delay sequence.
func NewSequence(cfg Config, opts ...SequenceOption) (*Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sequence{
		cfg:  cfg,
		law:  algorithms.NewDelayLaw(cfg.Strategy.backoffType(), cfg.MinDelay, cfg.MaxDelay, cfg.Factor),
		seed: rand.Uint64(), // #nosec G404 -- crypto rand not needed for backoff jitter
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the configuration the sequence was built from.
func (s *Sequence) Config() Config {
	return s.cfg
}

// Seed returns the jitter seed.
func (s *Sequence) Seed() uint64 {
	return s.seed
}

// Len is the number of waits, MaxAttempts-1. The first launch never waits.
func (s *Sequence) Len() int {
	return max(s.cfg.MaxAttempts-1, 0)
}

// Raw returns wait i before jitter: the strategy's value clamped to MaxDelay.
// Indexes outside [0, Len()) return 0.
func (s *Sequence) Raw(i int) time.Duration {
	if i < 0 || i >= s.Len() {
		return 0
	}
	return algorithms.Clamp(s.law.Delay(i), s.cfg.MaxDelay)
}

// At returns jittered wait i and true, or 0 and false once i is outside the
// sequence.
func (s *Sequence) At(i int) (time.Duration, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	}
	return algorithms.Jitter(s.Raw(i), s.cfg.Jitter, algorithms.SeededRand(s.seed, i)), true
}

// All yields (index, delay) pairs in order, computing each element only when
// the consumer asks for it.
func (s *Sequence) All() iter.Seq2[int, time.Duration] {
	return func(yield func(int, time.Duration) bool) {
		for i := range s.Len() {
			d, _ := s.At(i)
			if !yield(i, d) {
				return
			}
		}
	}
}

// Total sums the un-jittered waits, saturating instead of overflowing. It is
// the minimum wall time an always-failing command spends sleeping when
// Jitter is zero.
func (s *Sequence) Total() time.Duration {
	var total time.Duration
	for i := range s.Len() {
		d := s.Raw(i)
		if total > math.MaxInt64-d {
			return time.Duration(math.MaxInt64)
		}
		total += d
	}
	return total
}
