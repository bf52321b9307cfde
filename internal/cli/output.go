package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/utkarsh5026/retry/supervisor"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// painter returns a color bound to w: plain text unless w is a terminal.
func painter(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// newNoticeNotifier prints the retry notice in yellow.
func newNoticeNotifier(w io.Writer) supervisor.Notifier {
	yellow := painter(w, color.FgYellow)
	return supervisor.NotifierFunc(func(int, supervisor.Outcome, time.Duration) {
		_, _ = yellow.Fprintln(w, supervisor.RetryNotice)
	})
}

// printFailure reports the final error as "retry failed: <message>".
func printFailure(w io.Writer, err error) {
	red := painter(w, color.FgRed)
	_, _ = red.Fprint(w, "retry failed:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}
