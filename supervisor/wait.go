package supervisor

import (
	"context"
	"time"

	"github.com/juju/clock"
)

// Waiter blocks between attempts.
type Waiter interface {
	// Wait returns nil once d has elapsed, or the context's error if it ends
	// first.
	Wait(ctx context.Context, d time.Duration) error
}

// WaiterFunc adapts a function to the Waiter interface.
type WaiterFunc func(ctx context.Context, d time.Duration) error

// Wait calls f(ctx, d).
func (f WaiterFunc) Wait(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// NewClockWaiter returns a Waiter that sleeps on clk and wakes early when
// the context is cancelled.
func NewClockWaiter(clk clock.Clock) Waiter {
	return &clockWaiter{clock: clk}
}

type clockWaiter struct {
	clock clock.Clock
}

func (w *clockWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := w.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
