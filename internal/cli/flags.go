package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/utkarsh5026/retry/backoff"
)

// delayValue is a pflag.Value that accepts tenths of a second or a Go
// duration string.
type delayValue time.Duration

func (d *delayValue) Set(s string) error {
	v, err := backoff.ParseDelay(s)
	if err != nil {
		return err
	}
	*d = delayValue(v)
	return nil
}

func (d *delayValue) String() string { return time.Duration(*d).String() }

func (d *delayValue) Type() string { return "delay" }

// strategyValue is a pflag.Value over backoff.Strategy.
type strategyValue backoff.Strategy

func (s *strategyValue) Set(name string) error {
	parsed, err := backoff.ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = strategyValue(parsed)
	return nil
}

func (s *strategyValue) String() string { return backoff.Strategy(*s).String() }

func (s *strategyValue) Type() string { return "strategy" }

// flagAliases maps the older option names to their current ones.
var flagAliases = map[string]string{
	"retries":  "attempts",
	"duration": "min-delay",
	"method":   "strategy",
}

func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

type options struct {
	configPath string
	attempts   int
	minDelay   delayValue
	maxDelay   delayValue
	jitter     float64
	factor     int
	strategy   strategyValue
	maxRate    float64
	dryRun     bool
	progress   bool
	quiet      bool
	verbose    bool
}

func (o *options) register(fs *pflag.FlagSet) {
	def := backoff.DefaultConfig()

	o.attempts = def.MaxAttempts
	o.minDelay = delayValue(def.MinDelay)
	o.maxDelay = delayValue(def.MaxDelay)
	o.jitter = def.Jitter
	o.factor = def.Factor
	o.strategy = strategyValue(def.Strategy)

	fs.SetNormalizeFunc(normalizeFlag)
	fs.SetInterspersed(false)

	fs.IntVarP(&o.attempts, "attempts", "n", o.attempts, "total number of attempts, including the first (alias --retries, which now also counts the first run)")
	fs.VarP(&o.minDelay, "min-delay", "d", "base delay, in tenths of a second (10) or as a duration (2s) (alias --duration)")
	fs.Var(&o.maxDelay, "max-delay", "cap on a single wait before jitter, 0 for none")
	fs.Float64VarP(&o.jitter, "jitter", "j", o.jitter, "randomise each wait by up to this fraction either side, in [0, 1)")
	fs.IntVarP(&o.factor, "factor", "f", o.factor, "growth factor for the exponential strategy")
	fs.VarP(&o.strategy, "strategy", "m", "delay strategy: "+strategyNames()+" (alias --method)")
	fs.Float64Var(&o.maxRate, "max-rate", 0, "maximum launches per second, 0 for unlimited")
	fs.StringVar(&o.configPath, "config", "", "config file (default $HOME/"+configFileName+")")
	fs.BoolVar(&o.dryRun, "dry-run", false, "print the delay schedule and exit without running the command")
	fs.BoolVar(&o.progress, "progress", false, "show a progress bar while waiting (terminal only)")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "do not print the retry notice")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every attempt")
}

// apply overlays every flag the user set on cfg.
func (o *options) apply(fs *pflag.FlagSet, cfg *backoff.Config, maxRate *float64, quiet *bool) {
	if fs.Changed("attempts") {
		cfg.MaxAttempts = o.attempts
	}
	if fs.Changed("min-delay") {
		cfg.MinDelay = time.Duration(o.minDelay)
	}
	if fs.Changed("max-delay") {
		cfg.MaxDelay = time.Duration(o.maxDelay)
	}
	if fs.Changed("jitter") {
		cfg.Jitter = o.jitter
	}
	if fs.Changed("factor") {
		cfg.Factor = o.factor
	}
	if fs.Changed("strategy") {
		cfg.Strategy = backoff.Strategy(o.strategy)
	}
	if fs.Changed("max-rate") {
		*maxRate = o.maxRate
	}
	if fs.Changed("quiet") {
		*quiet = o.quiet
	}
}

func strategyNames() string {
	var names string
	for i, s := range backoff.Strategies() {
		if i > 0 {
			names += ", "
		}
		names += s.String()
	}
	return names
}
