//go:build windows

package supervisor

import "os"

// DefaultSignals are the signals Supervise traps and forwards when none are
// given.
func DefaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

// interrupt kills p. Windows has no way to deliver an arbitrary signal to
// another process.
func interrupt(p *os.Process, _ error) error {
	return p.Kill()
}
