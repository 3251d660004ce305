package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"qmaze/internal/config"
	"qmaze/internal/solver"
)

const exitNoPath = 2

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qmaze: %v\n", err)
		if errors.Is(err, solver.ErrNoPath) {
			os.Exit(exitNoPath)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	envFile    string
	verbose    bool
	noColor    bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "qmaze",
		Short:         "Solve grid mazes with tabular Q-learning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with QMAZE_* overrides")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log training progress to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	flags.Float64Var(&opts.cfg.Alpha, "alpha", opts.cfg.Alpha, "learning rate (0-1]")
	flags.Float64Var(&opts.cfg.Gamma, "gamma", opts.cfg.Gamma, "discount factor [0-1)")
	flags.Float64Var(&opts.cfg.Epsilon, "epsilon", opts.cfg.Epsilon, "exploration rate (0-1)")
	flags.IntVar(&opts.cfg.Episodes, "episodes", opts.cfg.Episodes, "number of training episodes")
	flags.IntVar(&opts.cfg.MaxSteps, "max-steps", opts.cfg.MaxSteps, "step cap per episode and for path extraction")
	flags.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "deterministic seed (0 for default)")

	root.AddCommand(newSolveCmd(opts), newTrainCmd(opts))
	return root
}

// resolve layers defaults, the config file, the environment and explicitly set flags.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	flagged := o.cfg
	cfg := config.Default()
	var err error
	if o.configPath != "" {
		if cfg, err = config.LoadFile(cfg, o.configPath); err != nil {
			return cfg, err
		}
	}
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return cfg, err
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("alpha") {
		cfg.Alpha = flagged.Alpha
	}
	if set("gamma") {
		cfg.Gamma = flagged.Gamma
	}
	if set("epsilon") {
		cfg.Epsilon = flagged.Epsilon
	}
	if set("episodes") {
		cfg.Episodes = flagged.Episodes
	}
	if set("max-steps") {
		cfg.MaxSteps = flagged.MaxSteps
	}
	if set("seed") {
		cfg.Seed = flagged.Seed
	}
	if set("output") {
		cfg.Output = flagged.Output
	}
	if set("report") {
		cfg.Report = flagged.Report
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}
