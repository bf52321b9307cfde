package supervisor

import (
	"fmt"
	"time"
)

// OutcomeKind classifies how a single attempt ended.
type OutcomeKind int

const (
	// OutcomeSuccess means the child ran and exited with status 0.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure means the child ran and exited unsuccessfully.
	OutcomeFailure
	// OutcomeLaunchError means the child could not be started.
	OutcomeLaunchError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeLaunchError:
		return "launch error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one attempt. It lives only for the iteration that
// produced it.
type Outcome struct {
	Kind OutcomeKind

	// ExitCode is the child's exit status. -1 when the child was terminated
	// by a signal; meaningless for OutcomeLaunchError.
	ExitCode int

	// Err carries the OS cause for OutcomeLaunchError.
	Err error

	// Duration is the attempt's wall time as seen by the driver's clock.
	Duration time.Duration
}

// Success reports a clean exit.
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Failure reports a child that ran and exited with code.
func Failure(code int) Outcome {
	return Outcome{Kind: OutcomeFailure, ExitCode: code}
}

// LaunchFailed reports a child that could not be started.
func LaunchFailed(err error) Outcome {
	return Outcome{Kind: OutcomeLaunchError, ExitCode: -1, Err: err}
}

// Result summarises a whole run.
type Result struct {
	// Attempts is the number of launches, successful or not.
	Attempts int
	// Waits is the number of delays consumed; always Attempts-1 unless the
	// run ended on a launch error or a cancellation.
	Waits int
	// Slept is the total time spent waiting between attempts.
	Slept time.Duration
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
	// Last is the outcome of the final attempt.
	Last Outcome
	// State is the terminal state of the driver.
	State State
}
