package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/juju/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/utkarsh5026/retry/backoff"
	"github.com/utkarsh5026/retry/internal/config"
	"github.com/utkarsh5026/retry/internal/logging"
	"github.com/utkarsh5026/retry/supervisor"
)

const configFileName = config.DefaultConfigFileName

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Streams are the standard streams handed to the command and its child.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewRootCommand builds the retry command. clk drives the waits between
// attempts; pass nil for the wall clock.
func NewRootCommand(streams Streams, clk clock.Clock) *cobra.Command {
	if clk == nil {
		clk = clock.WallClock
	}
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "retry [flags] [--] command [args...]",
		Short: "Run a command until it succeeds",
		Long: `retry runs a command and, while it exits with a non-zero status, runs it
again after a delay that grows according to the chosen strategy.

The first attempt starts immediately. A command that cannot be started at all
(missing executable, permission denied) is reported at once and not retried.

Settings are taken from flags, then RETRY_* environment variables, then the
config file, then built-in defaults.`,
		Example: `  retry -n 5 -- curl -fsS http://localhost:8080/health
  retry --strategy fixed --min-delay 2s make test
  retry --method nodelay --retries 10 ./flaky.sh
  retry --dry-run -n 6 -d 5 true`,
		Version:       version,
		Args:          requireCommand,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, streams, clk, args)
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if errors.Is(err, backoff.ErrInvalidConfig) {
			return err
		}
		return &backoff.ConfigError{Field: "flags", Reason: err.Error()}
	})

	opts.register(cmd.Flags())

	return cmd
}

func requireCommand(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &backoff.ConfigError{Field: "command", Reason: "no command given"}
	}
	return nil
}

// Execute runs the retry command with args and returns the process exit
// status: 0 when the command eventually succeeded, 1 otherwise.
func Execute(ctx context.Context, args []string, streams Streams) int {
	cmd := NewRootCommand(streams, nil)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printFailure(streams.Err, err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, opts *options, streams Streams, clk clock.Clock, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	seq, err := backoff.NewSequence(cfg.Backoff)
	if err != nil {
		return err
	}

	spec, err := supervisor.NewCommandSpec(args)
	if err != nil {
		return err
	}

	if opts.dryRun {
		return printSchedule(streams.Out, seq, spec)
	}

	logger := logging.WithRunID(logging.New(streams.Err, opts.verbose))
	logger.Debug("starting",
		"command", spec.String(),
		"strategy", cfg.Backoff.Strategy.String(),
		"attempts", cfg.Backoff.MaxAttempts,
		"seed", seq.Seed(),
	)

	launcher := supervisor.NewExecLauncher()
	launcher.Stdin = streams.In
	launcher.Stdout = streams.Out
	launcher.Stderr = streams.Err

	var notifier supervisor.Notifier
	if !cfg.Quiet {
		notifier = newNoticeNotifier(streams.Err)
	}

	driverOpts := []supervisor.DriverOption{
		supervisor.WithLauncher(launcher),
		supervisor.WithClock(clk),
		supervisor.WithNotifier(notifier),
		supervisor.WithLogger(logger),
		supervisor.WithLaunchRate(cfg.MaxRate, 1),
	}
	if opts.progress && isTerminal(streams.Err) {
		driverOpts = append(driverOpts, supervisor.WithWaiter(newProgressWaiter(streams.Err, clk)))
	}

	driver := supervisor.NewDriver(seq, driverOpts...)
	result, err := driver.Supervise(cmd.Context(), spec)
	logger.Debug("finished",
		"state", result.State.String(),
		"attempts", result.Attempts,
		"elapsed", result.Elapsed,
	)
	return err
}

// resolveConfig layers flags over the environment, the config file and the
// defaults, then validates the result.
func resolveConfig(fs *pflag.FlagSet, opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		if _, err := os.Stat(opts.configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	opts.apply(fs, &cfg.Backoff, &cfg.MaxRate, &cfg.Quiet)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
