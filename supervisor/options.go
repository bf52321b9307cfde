package supervisor

import (
	"log/slog"
	"time"

	"github.com/juju/clock"
	"golang.org/x/time/rate"
)

// DriverOption is a functional option for configuring a Driver.
type DriverOption func(*driverConfig)

type driverConfig struct {
	launcher    Launcher
	clock       clock.Clock
	waiter      Waiter
	notifier    Notifier
	logger      *slog.Logger
	rateLimiter *rate.Limiter
	onAttempt   func(attempt int)
	onRetry     func(attempt int, outcome Outcome, delay time.Duration)
}

// WithLauncher replaces the os/exec launcher.
func WithLauncher(l Launcher) DriverOption {
	return func(cfg *driverConfig) {
		if l != nil {
			cfg.launcher = l
		}
	}
}

// WithClock sets the clock used for timings and, unless WithWaiter is also
// given, for the waits between attempts.
// If not specified, defaults to clock.WallClock.
func WithClock(c clock.Clock) DriverOption {
	return func(cfg *driverConfig) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithWaiter replaces how the driver sleeps between attempts.
func WithWaiter(w Waiter) DriverOption {
	return func(cfg *driverConfig) {
		if w != nil {
			cfg.waiter = w
		}
	}
}

// WithNotifier sets where the retry notice goes. A nil notifier silences it.
// If not specified, the notice is written to os.Stderr.
func WithNotifier(n Notifier) DriverOption {
	return func(cfg *driverConfig) {
		if n == nil {
			n = silentNotifier{}
		}
		cfg.notifier = n
	}
}

// WithLogger sets the logger for state transitions (debug level).
func WithLogger(l *slog.Logger) DriverOption {
	return func(cfg *driverConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithLaunchRate caps how often the command may be launched.
// launchesPerSecond specifies the sustained rate and burst how many launches
// may happen back to back. This is mostly useful with the no-delay strategy.
// If not specified, launches are not rate limited.
//
// Example:
//
//	WithLaunchRate(2, 1) // at most two launches per second
func WithLaunchRate(launchesPerSecond float64, burst int) DriverOption {
	return func(cfg *driverConfig) {
		if launchesPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(launchesPerSecond), burst)
		}
	}
}

// WithOnAttempt registers a function called just before every launch with the
// 1-based attempt number.
func WithOnAttempt(fn func(attempt int)) DriverOption {
	return func(cfg *driverConfig) {
		cfg.onAttempt = fn
	}
}

// WithOnRetry registers a function called after a failed attempt when another
// one will follow, with the failed attempt's number and outcome and the delay
// about to be slept.
func WithOnRetry(fn func(attempt int, outcome Outcome, delay time.Duration)) DriverOption {
	return func(cfg *driverConfig) {
		cfg.onRetry = fn
	}
}
