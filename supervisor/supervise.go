package supervisor

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"
)

// WatchSignals blocks until one of sigs arrives or ctx ends. It returns a
// *SignalError for the signal, or nil when ctx ended first. With no sigs,
// DefaultSignals are watched.
func WatchSignals(ctx context.Context, sigs ...os.Signal) error {
	if len(sigs) == 0 {
		sigs = DefaultSignals()
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	defer signal.Stop(ch)

	select {
	case <-ctx.Done():
		return nil
	case sig := <-ch:
		return &SignalError{Signal: sig}
	}
}

// Supervise is Run with signal handling. While the loop runs, sigs (or
// DefaultSignals) are trapped instead of killing the supervisor. The first
// one received is forwarded to the running child and aborts the loop with a
// *CancelledError wrapping the *SignalError.
//
// A Ctrl-C typed at a terminal goes to the whole foreground process group,
// so a child that shares the supervisor's group sees SIGINT twice: once from
// the terminal and once forwarded. Children that treat a second interrupt as
// "stop now" will do so.
func (d *Driver) Supervise(ctx context.Context, spec CommandSpec, sigs ...os.Signal) (Result, error) {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return WatchSignals(gctx, sigs...)
	})

	var (
		result Result
		runErr error
	)
	g.Go(func() error {
		defer stop()
		result, runErr = d.Run(gctx, spec)
		return nil
	})

	if err := g.Wait(); err != nil {
		d.logger.Debug("run interrupted", slog.Any("cause", err))
	}

	return result, runErr
}
