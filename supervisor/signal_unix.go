//go:build !windows

package supervisor

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultSignals are the signals Supervise traps and forwards when none are
// given.
func DefaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}
}

// interrupt delivers the signal named by cause to p, or SIGTERM when cause
// does not carry one.
func interrupt(p *os.Process, cause error) error {
	sig := unix.SIGTERM

	var sigErr *SignalError
	if errors.As(cause, &sigErr) {
		if s, ok := sigErr.Signal.(syscall.Signal); ok {
			sig = s
		}
	}

	if err := unix.Kill(p.Pid, sig); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
	return nil
}
