// Package cmd holds the quadtour command tree.
//
// Every flag is bound into a viper instance. Values resolve in the order
// flag > QUADTOUR_<KEY> environment variable > --config file > default; a
// .env file (--env_file) is loaded into the environment before viper reads it.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment override, e.g. QUADTOUR_ALGO.
const EnvPrefix = "QUADTOUR"

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the state shared by the subcommands of one invocation.
type env struct {
	conf *viper.Viper
	log  *zap.Logger
	out  io.Writer
}

// NewRootCmd builds a fresh command tree writing normal output to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	e := &env{conf: viper.New(), log: zap.NewNop(), out: out}

	root := &cobra.Command{
		Use:   "quadtour",
		Short: "Heuristic Euclidean TSP tours by quadrant decomposition",
		Long: `
quadtour reads a list of 2D cities and writes a short closed tour visiting each
exactly once. The default algorithm splits the cities into four quadrants,
solves an anchored path in each with nearest-neighbour + 2-opt and stitches the
paths into one cycle.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = e.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.String("config", "",
		"Configuration file (yaml, json or toml). Overridden by environment variables and flags.")
	pf.String("env_file", ".env", "Dotenv file loaded into the environment if it exists.")
	pf.String("log_level", "info", "Log level: debug, info, warn or error.")
	pf.String("log_format", "console", "Log encoding: console or json.")
	registerSolverFlags(pf)

	root.AddCommand(newSolveCmd(e), newBatchCmd(e))

	return root
}

// setup loads the env file and config, binds the running command's flags and
// builds the logger.
func (e *env) setup(c *cobra.Command, _ []string) error {
	if err := e.conf.BindPFlags(c.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if path := e.conf.GetString("env_file"); path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "load env file %s", path)
		}
	}
	e.conf.SetEnvPrefix(EnvPrefix)
	e.conf.AutomaticEnv()

	if cfg := e.conf.GetString("config"); cfg != "" {
		e.conf.SetConfigFile(cfg)
		if err := e.conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfg)
		}
	}

	log, err := newLogger(e.conf.GetString("log_level"), e.conf.GetString("log_format"))
	if err != nil {
		return err
	}
	e.log = log

	return nil
}
