package supervisor

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/juju/clock"
)

// Schedule is the ordered list of waits between attempts. At(i) returns the
// wait after the (i+1)th failed launch, and false once the budget is spent.
// *backoff.Sequence implements it.
type Schedule interface {
	At(i int) (time.Duration, bool)
}

// Driver runs the execute-wait-reexecute loop for one command.
//
// A Driver holds no per-run state, so it may be reused for several runs, but
// each run is strictly sequential: one child at a time.
type Driver struct {
	schedule Schedule
	driverConfig
}

// NewDriver returns a driver consuming schedule.
func NewDriver(schedule Schedule, opts ...DriverOption) *Driver {
	cfg := driverConfig{
		clock:    clock.WallClock,
		notifier: NewWriterNotifier(os.Stderr),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.launcher == nil {
		cfg.launcher = NewExecLauncher()
	}
	if cfg.waiter == nil {
		cfg.waiter = NewClockWaiter(cfg.clock)
	}

	return &Driver{schedule: schedule, driverConfig: cfg}
}

// run carries the loop's own counters. It never escapes Run.
type run struct {
	result Result
	start  time.Time
}

// Run launches spec until it succeeds or the schedule is exhausted.
//
// The first launch is immediate; the total number of launches is one plus the
// number of delays consumed. Errors are *LaunchError (not retried),
// *ExhaustedError (every attempt failed) or *CancelledError (ctx ended).
func (d *Driver) Run(ctx context.Context, spec CommandSpec) (Result, error) {
	r := &run{start: d.clock.Now()}
	r.result.State = StateReady

	logger := d.logger.With(slog.String("command", spec.String()))

	for index := 0; ; index++ {
		if err := d.beforeLaunch(ctx); err != nil {
			return d.cancelled(r, logger, err)
		}

		d.transition(r, logger, StateRunning)
		r.result.Attempts++
		if d.onAttempt != nil {
			d.onAttempt(r.result.Attempts)
		}

		started := d.clock.Now()
		outcome := d.launcher.Launch(ctx, spec)
		outcome.Duration = d.clock.Now().Sub(started)
		r.result.Last = outcome

		logger.Debug("attempt finished",
			slog.Int("attempt", r.result.Attempts),
			slog.String("outcome", outcome.Kind.String()),
			slog.Int("exitCode", outcome.ExitCode),
			slog.Duration("took", outcome.Duration),
		)

		switch outcome.Kind {
		case OutcomeSuccess:
			d.transition(r, logger, StateSucceeded)
			return d.finish(r), nil

		case OutcomeLaunchError:
			if ctx.Err() != nil {
				return d.cancelled(r, logger, context.Cause(ctx))
			}
			d.transition(r, logger, StateLaunchFailed)
			return d.finish(r), &LaunchError{Path: spec.Path, Err: outcome.Err}
		}

		if ctx.Err() != nil {
			return d.cancelled(r, logger, context.Cause(ctx))
		}

		delay, ok := d.schedule.At(index)
		if !ok {
			d.transition(r, logger, StateGaveUp)
			return d.finish(r), &ExhaustedError{
				Attempts:     r.result.Attempts,
				LastExitCode: outcome.ExitCode,
			}
		}

		d.transition(r, logger, StateWillRetry)
		d.notifier.NotifyRetry(r.result.Attempts, outcome, delay)
		if d.onRetry != nil {
			d.onRetry(r.result.Attempts, outcome, delay)
		}

		r.result.Waits++
		if delay > 0 {
			logger.Debug("waiting before next attempt", slog.Duration("delay", delay))
			if err := d.waiter.Wait(ctx, delay); err != nil {
				return d.cancelled(r, logger, err)
			}
			r.result.Slept += delay
		}
	}
}

// beforeLaunch checks for cancellation and honours the launch rate limit.
func (d *Driver) beforeLaunch(ctx context.Context) error {
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	if d.rateLimiter != nil {
		if err := d.rateLimiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return err
		}
	}
	return nil
}

func (d *Driver) transition(r *run, logger *slog.Logger, next State) {
	logger.Debug("state transition",
		slog.String("from", r.result.State.String()),
		slog.String("to", next.String()),
		slog.Int("attempt", r.result.Attempts),
	)
	r.result.State = next
}

func (d *Driver) cancelled(r *run, logger *slog.Logger, cause error) (Result, error) {
	d.transition(r, logger, StateCancelled)
	return d.finish(r), &CancelledError{Attempts: r.result.Attempts, Err: cause}
}

func (d *Driver) finish(r *run) Result {
	r.result.Elapsed = d.clock.Now().Sub(r.start)
	return r.result
}
