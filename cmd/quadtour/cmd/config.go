package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/quadtour/quadrant"
	"github.com/katalvlaran/quadtour/tsp"
)

// registerSolverFlags declares the tsp.Options knobs shared by solve and batch.
func registerSolverFlags(pf *pflag.FlagSet) {
	def := tsp.DefaultOptions()

	pf.String("algo", def.Algo.String(),
		"Algorithm: segmented, greedy, greedy-2opt, crossing-2opt, multistart or christofides.")
	pf.Bool("polish", def.GlobalPolish, "Run a closed 2-opt pass over the stitched / constructed tour.")
	pf.Bool("crossing", def.CrossingGuided, "Restrict per-quadrant 2-opt (segmented) to crossing edge pairs.")
	pf.Int("workers", def.Workers, "Concurrent quadrant or multi-start solves; 0 means GOMAXPROCS.")
	pf.Int("starts", def.Starts, "Start cities tried by multistart; 0 means all.")
	pf.Int64("seed", def.Seed, "Seed for sampling multistart start cities.")
	pf.Int("max_iters", def.MaxIters, "Cap on accepted 2-opt moves per phase; 0 means unlimited.")
	pf.Duration("time_limit", def.TimeLimit, "Wall-clock budget per local search phase; 0 means none.")
	pf.Float64("eps", def.Eps, "Minimum gain for a 2-opt move to be accepted.")
	pf.Int("shortlist", def.Anchor.Shortlist, "Cities nearest to a quadrant boundary considered as anchors.")
	pf.String("anchor_rule", def.Anchor.Rule.String(), "Anchor choice among the shortlist: extremal or nearest.")
}

// solverOptions maps the resolved configuration onto tsp.Options.
func solverOptions(conf *viper.Viper, log *zap.Logger) (tsp.Options, error) {
	opts := tsp.DefaultOptions()

	algo, err := tsp.ParseAlgorithm(conf.GetString("algo"))
	if err != nil {
		return opts, errors.Wrapf(err, "algo %q", conf.GetString("algo"))
	}
	rule, err := quadrant.ParseAnchorRule(conf.GetString("anchor_rule"))
	if err != nil {
		return opts, errors.Wrapf(err, "anchor_rule %q", conf.GetString("anchor_rule"))
	}

	opts.Algo = algo
	opts.GlobalPolish = conf.GetBool("polish")
	opts.CrossingGuided = conf.GetBool("crossing")
	opts.Workers = conf.GetInt("workers")
	opts.Starts = conf.GetInt("starts")
	opts.Seed = conf.GetInt64("seed")
	opts.MaxIters = conf.GetInt("max_iters")
	opts.TimeLimit = conf.GetDuration("time_limit")
	opts.Eps = conf.GetFloat64("eps")
	opts.Anchor = quadrant.AnchorPolicy{Shortlist: conf.GetInt("shortlist"), Rule: rule}
	opts.Logger = log

	return opts, nil
}

// newLogger builds a zap logger writing to stderr.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log_level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Sampling = nil
	switch format {
	case "json":
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, errors.Errorf("log_format %q: want console or json", format)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	return log, nil
}
