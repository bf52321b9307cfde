package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/juju/clock"
	"github.com/schollz/progressbar/v3"
)

const progressTick = 100 * time.Millisecond

// progressWaiter draws a bar that fills up while the next attempt is pending.
type progressWaiter struct {
	w     io.Writer
	clock clock.Clock
	tick  time.Duration
}

func newProgressWaiter(w io.Writer, clk clock.Clock) *progressWaiter {
	return &progressWaiter{w: w, clock: clk, tick: progressTick}
}

func (p *progressWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	bar := progressbar.NewOptions64(d.Milliseconds(),
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(fmt.Sprintf("next attempt in %v", d.Round(time.Millisecond))),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	deadline := p.clock.Now().Add(d)
	for {
		remaining := deadline.Sub(p.clock.Now())
		if remaining <= 0 {
			_ = bar.Finish()
			return nil
		}

		timer := p.clock.NewTimer(min(remaining, p.tick))
		select {
		case <-ctx.Done():
			timer.Stop()
			_ = bar.Clear()
			return context.Cause(ctx)
		case <-timer.Chan():
		}

		_ = bar.Set64((d - deadline.Sub(p.clock.Now())).Milliseconds())
	}
}
