package supervisor

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrLaunch matches every *LaunchError.
	ErrLaunch = errors.New("unable to execute")
	// ErrExhausted matches every *ExhaustedError.
	ErrExhausted = errors.New("retries exhausted")
	// ErrCancelled matches every *CancelledError.
	ErrCancelled = errors.New("cancelled")
)

// LaunchError means the command could not be started: missing executable,
// permission denied and the like. It is never retried.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to execute %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLaunch.
func (e *LaunchError) Is(target error) bool { return target == ErrLaunch }

// ExhaustedError means every attempt ran and failed.
type ExhaustedError struct {
	Attempts     int
	LastExitCode int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("command failed after %d %s (last exit status %d)",
		e.Attempts, plural(e.Attempts, "attempt", "attempts"), e.LastExitCode)
}

// Is reports whether target is ErrExhausted.
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

// CancelledError means the run was aborted by its context, typically because
// the supervisor received a signal.
type CancelledError struct {
	Attempts int
	Err      error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("cancelled after %d %s: %v",
		e.Attempts, plural(e.Attempts, "attempt", "attempts"), e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCancelled.
func (e *CancelledError) Is(target error) bool { return target == ErrCancelled }

// SignalError records the signal that interrupted a supervised run. It is
// used as the cancellation cause so the launcher can forward the same signal
// to the child.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("received %v", e.Signal)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
