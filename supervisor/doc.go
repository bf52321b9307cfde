// Package supervisor re-executes an external command until it succeeds or
// its retry budget runs out.
//
// The primary type is Driver, which consumes a delay schedule (usually a
// *backoff.Sequence) strictly in order. Each iteration launches the command,
// waits for it to exit and classifies the result:
//
//   - Success: the command exited 0. Run returns immediately.
//   - Failure: the command ran and exited non-zero. If a delay remains the
//     driver prints a retry notice, sleeps and launches again; otherwise it
//     returns an *ExhaustedError carrying the attempt count.
//   - LaunchError: the command could not be started at all. This is never
//     retried and is returned as a *LaunchError.
//
// # Basic Usage
//
//	seq, err := backoff.NewSequence(backoff.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	spec, err := supervisor.NewCommandSpec([]string{"curl", "-f", "http://localhost:8080/health"})
//	if err != nil {
//	    return err
//	}
//	result, err := supervisor.NewDriver(seq).Run(ctx, spec)
//
// # Cancellation and Signals
//
// Run honours its context between attempts, while sleeping, and while a
// child is running (the child is sent SIGTERM, then killed after a grace
// period). Supervise additionally traps the given signals, forwards the
// received signal to the running child and aborts the loop.
//
// # Options
//
//   - WithLauncher(l): replace the os/exec based launcher
//   - WithClock(c): the clock used for waits and timings
//   - WithWaiter(w): replace how the driver sleeps between attempts
//   - WithNotifier(n): where the "failed, retrying..." notice goes
//   - WithLogger(l): debug logging of state transitions
//   - WithLaunchRate(perSecond, burst): cap how fast launches happen
//   - WithOnAttempt / WithOnRetry: observe the loop
package supervisor
