package supervisor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/utkarsh5026/retry/backoff"
)

// scriptedLauncher replays outcomes in order, repeating the last one.
type scriptedLauncher struct {
	mu       sync.Mutex
	outcomes []Outcome
	calls    int
}

func (l *scriptedLauncher) Launch(_ context.Context, _ CommandSpec) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := min(l.calls, len(l.outcomes)-1)
	l.calls++
	return l.outcomes[idx]
}

func (l *scriptedLauncher) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func alwaysFailing(code int) *scriptedLauncher {
	return &scriptedLauncher{outcomes: []Outcome{Failure(code)}}
}

func failThenSucceed(k int) *scriptedLauncher {
	outcomes := make([]Outcome, 0, k+1)
	for range k {
		outcomes = append(outcomes, Failure(1))
	}
	return &scriptedLauncher{outcomes: append(outcomes, Success())}
}

// recordingWaiter returns immediately and remembers every requested delay.
type recordingWaiter struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (w *recordingWaiter) Wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.delays = append(w.delays, d)
	w.mu.Unlock()
	return ctx.Err()
}

func (w *recordingWaiter) Delays() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Duration(nil), w.delays...)
}

// countingNotifier counts retry notices.
type countingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *countingNotifier) NotifyRetry(int, Outcome, time.Duration) {
	n.mu.Lock()
	n.count++
	n.mu.Unlock()
}

func (n *countingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}

// recordingSchedule wraps a schedule and logs every index requested.
type recordingSchedule struct {
	inner   Schedule
	indexes []int
}

func (s *recordingSchedule) At(i int) (time.Duration, bool) {
	s.indexes = append(s.indexes, i)
	return s.inner.At(i)
}

func newSequence(t *testing.T, strategy backoff.Strategy, attempts int, minDelay time.Duration) *backoff.Sequence {
	t.Helper()

	cfg := backoff.DefaultConfig()
	cfg.Strategy = strategy
	cfg.MaxAttempts = attempts
	cfg.MinDelay = minDelay
	cfg.Jitter = 0

	seq, err := backoff.NewSequence(cfg, backoff.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return seq
}

var testSpec = CommandSpec{Path: "flaky", Args: []string{"--fail"}}

func assertExhausted(t *testing.T, err error, attempts int) {
	t.Helper()

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ExhaustedError, got %T: %v", err, err)
	}
	if exhausted.Attempts != attempts {
		t.Errorf("ExhaustedError.Attempts = %d, want %d", exhausted.Attempts, attempts)
	}
	if !errors.Is(err, ErrExhausted) {
		t.Error("expected errors.Is(err, ErrExhausted)")
	}
}
