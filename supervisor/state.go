package supervisor

import "fmt"

// State is a node in the driver's state machine.
//
//	Ready -> Running -> Succeeded
//	                 -> LaunchFailed
//	                 -> WillRetry -> Running
//	                 -> GaveUp
//	(any) -> Cancelled
type State int

const (
	StateReady        State = iota // Nothing launched yet
	StateRunning                   // A child is running
	StateWillRetry                 // The last attempt failed and a wait follows
	StateSucceeded                 // A child exited 0
	StateGaveUp                    // Every attempt failed
	StateLaunchFailed              // The command could not be started
	StateCancelled                 // The context ended the run
)

var stateNames = [...]string{
	StateReady:        "ready",
	StateRunning:      "running",
	StateWillRetry:    "will-retry",
	StateSucceeded:    "succeeded",
	StateGaveUp:       "gave-up",
	StateLaunchFailed: "launch-failed",
	StateCancelled:    "cancelled",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the driver stops in s.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateGaveUp, StateLaunchFailed, StateCancelled:
		return true
	default:
		return false
	}
}
