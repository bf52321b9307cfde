package supervisor

import (
	"fmt"
	"io"
	"time"
)

// RetryNotice is written between a failed attempt and the next one.
const RetryNotice = "failed, retrying..."

// Notifier tells the user that an attempt failed and another one follows.
type Notifier interface {
	NotifyRetry(attempt int, outcome Outcome, delay time.Duration)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(attempt int, outcome Outcome, delay time.Duration)

// NotifyRetry calls f(attempt, outcome, delay).
func (f NotifierFunc) NotifyRetry(attempt int, outcome Outcome, delay time.Duration) {
	f(attempt, outcome, delay)
}

// NewWriterNotifier writes RetryNotice as a line to w.
func NewWriterNotifier(w io.Writer) Notifier {
	return NotifierFunc(func(int, Outcome, time.Duration) {
		_, _ = fmt.Fprintln(w, RetryNotice)
	})
}

type silentNotifier struct{}

func (silentNotifier) NotifyRetry(int, Outcome, time.Duration) {}
