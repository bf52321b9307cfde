package supervisor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"
)

// DefaultKillGrace is how long a cancelled child gets between the polite
// signal and SIGKILL.
const DefaultKillGrace = 5 * time.Second

// Launcher runs one attempt of a command and blocks until it is over.
//
// Implementations must release every OS resource tied to the attempt before
// returning: the driver may sleep or launch again immediately afterwards.
type Launcher interface {
	Launch(ctx context.Context, spec CommandSpec) Outcome
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context, spec CommandSpec) Outcome

// Launch calls f(ctx, spec).
func (f LauncherFunc) Launch(ctx context.Context, spec CommandSpec) Outcome {
	return f(ctx, spec)
}

// ExecLauncher starts the command with os/exec and wires the supervisor's
// standard streams through to it.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// KillGrace bounds how long Launch waits after cancelling the child
	// before killing it and abandoning its output.
	KillGrace time.Duration
}

// NewExecLauncher returns a launcher attached to the process's own stdio.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		KillGrace: DefaultKillGrace,
	}
}

// Launch starts spec, waits for it and classifies the exit.
//
// When ctx is cancelled while the child runs, the child receives the signal
// recorded in the cancellation cause (see SignalError) or SIGTERM, and is
// killed if it is still alive after KillGrace.
func (l *ExecLauncher) Launch(ctx context.Context, spec CommandSpec) Outcome {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Env = spec.Env
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.Cancel = func() error {
		return interrupt(cmd.Process, context.Cause(ctx))
	}
	cmd.WaitDelay = l.KillGrace

	if err := cmd.Start(); err != nil {
		return LaunchFailed(err)
	}

	err := cmd.Wait()
	return outcomeOf(cmd.ProcessState, err)
}

// outcomeOf maps a finished process to an Outcome. A missing state means
// Wait never saw the process exit, which only happens when it was not
// started.
func outcomeOf(state *os.ProcessState, waitErr error) Outcome {
	if state == nil {
		return LaunchFailed(waitErr)
	}
	if state.Success() {
		return Success()
	}
	return Failure(state.ExitCode())
}
