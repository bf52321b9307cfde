package cli

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/utkarsh5026/retry/backoff"
	"github.com/utkarsh5026/retry/supervisor"
)

// printSchedule renders the waits a run would use, without launching.
// Jitter is shown as the range each wait can fall in.
func printSchedule(w io.Writer, seq *backoff.Sequence, spec supervisor.CommandSpec) error {
	cfg := seq.Config()
	bold := painter(w, color.Bold)

	_, _ = bold.Fprintf(w, "%s\n", spec)
	_, _ = fmt.Fprintf(w, "strategy %s, %d attempt(s), jitter %.0f%%\n",
		cfg.Strategy, cfg.MaxAttempts, cfg.Jitter*100)

	table := tablewriter.NewWriter(w)
	table.Header("Attempt", "Wait Before", "Range")

	_ = table.Append("1", "-", "-")
	for i, raw := range rawDelays(seq) {
		lo, hi := jitterRange(raw, cfg.Jitter)
		_ = table.Append(
			fmt.Sprintf("%d", i+2),
			raw.String(),
			fmt.Sprintf("%v - %v", lo, hi),
		)
	}

	if err := table.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "total wait before jitter: %v\n", seq.Total())
	return nil
}

func rawDelays(seq *backoff.Sequence) []time.Duration {
	out := make([]time.Duration, seq.Len())
	for i := range out {
		out[i] = seq.Raw(i)
	}
	return out
}

// jitterRange returns the bounds a jittered d falls in. The upper bound
// saturates instead of overflowing.
func jitterRange(d time.Duration, jitter float64) (time.Duration, time.Duration) {
	if jitter == 0 || d == 0 {
		return d, d
	}
	spread := time.Duration(float64(d) * jitter)
	if d > math.MaxInt64-spread {
		return d - spread, math.MaxInt64
	}
	return d - spread, d + spread
}
