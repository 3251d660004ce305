package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qmaze/internal/config"
	"qmaze/internal/maze"
	"qmaze/internal/report"
	"qmaze/internal/solver"
)

func newSolveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [maze.txt]",
		Short: "Train on a maze file, extract the greedy path and write the solved grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			return runSolve(cmd, opts, cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.cfg.Output, "output", "o", opts.cfg.Output, "solved grid file")
	cmd.Flags().StringVar(&opts.cfg.Report, "report", "", "write an HTML training report to this file")
	return cmd
}

func runSolve(cmd *cobra.Command, opts *options, cfg config.Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("%w: no maze file given", solver.ErrInputUnavailable)
	}
	out := cmd.OutOrStdout()
	console := report.NewConsole(out, !opts.noColor)
	fmt.Fprintf(out, "solve config => input=%s episodes=%d seed=%d alpha=%.2f gamma=%.2f epsilon=%.2f max_steps=%d\n",
		cfg.Input, cfg.Episodes, cfg.NormalizedSeed(), cfg.Alpha, cfg.Gamma, cfg.Epsilon, cfg.MaxSteps)

	s := &solver.Solver{
		Source: maze.FileSource{Path: cfg.Input},
		Sink:   maze.FileSink{Path: cfg.Output},
		Config: cfg.EngineConfig(),
		Seed:   cfg.NormalizedSeed(),
		Logger: opts.logger(),
	}
	result, err := s.Solve(cmd.Context())
	if result != nil {
		report.Summarize(result.Snapshots).Print(out)
		if cfg.Report != "" {
			if rerr := writeReport(cfg.Report, result); rerr != nil {
				return rerr
			}
			fmt.Fprintf(out, "report written to %s\n", cfg.Report)
		}
	}
	switch {
	case errors.Is(err, solver.ErrNoPath):
		fmt.Fprintln(out, "No path found in the given maze")
		return err
	case errors.Is(err, solver.ErrOutput):
		fmt.Fprintln(out, "Path Found!")
		console.PrintGrid(result.Grid)
		return err
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "Path Found! (%d steps)\n", result.Path.Steps())
	console.PrintGrid(result.Grid)
	fmt.Fprintf(out, "solved grid written to %s\n", cfg.Output)
	return nil
}

func writeReport(path string, result *solver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Render(f, result.Snapshots, result.QTable.ValueMap(), result.Visits); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
