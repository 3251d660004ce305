package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"qmaze/internal/config"
	"qmaze/internal/maze"
	"qmaze/internal/report"
	"qmaze/internal/solver"
)

func newTrainCmd(opts *options) *cobra.Command {
	var showVisits bool
	cmd := &cobra.Command{
		Use:   "train [maze.txt]",
		Short: "Train on a maze and print the learned values and policy without writing output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			return runTrain(cmd.Context(), cmd, opts, cfg, showVisits)
		},
	}
	cmd.Flags().BoolVar(&showVisits, "visits", false, "print the training visit heatmap")
	return cmd
}

func runTrain(ctx context.Context, cmd *cobra.Command, opts *options, cfg config.Config, showVisits bool) error {
	if cfg.Input == "" {
		return fmt.Errorf("%w: no maze file given", solver.ErrInputUnavailable)
	}
	out := cmd.OutOrStdout()
	grid, err := maze.FileSource{Path: cfg.Input}.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", solver.ErrInputUnavailable, err)
	}
	fmt.Fprintf(out, "train config => input=%s episodes=%d seed=%d alpha=%.2f gamma=%.2f epsilon=%.2f\n",
		cfg.Input, cfg.Episodes, cfg.NormalizedSeed(), cfg.Alpha, cfg.Gamma, cfg.Epsilon)

	s := &solver.Solver{
		Config: cfg.EngineConfig(),
		Seed:   cfg.NormalizedSeed(),
		Logger: opts.logger(),
	}
	result, err := s.Run(ctx, grid)
	if result == nil {
		return err
	}
	console := report.NewConsole(out, !opts.noColor)
	report.Summarize(result.Snapshots).Print(out)
	console.PrintValues(result.QTable.ValueMap())
	fmt.Fprintln(out, "greedy policy:")
	console.PrintPolicy(grid, result.QTable)
	if showVisits {
		fmt.Fprintln(out, "visit heatmap:")
		printVisits(cmd, result.Visits)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "greedy path reaches the goal in %d steps\n", result.Path.Steps())
	return nil
}

func printVisits(cmd *cobra.Command, visits [][]int) {
	out := cmd.OutOrStdout()
	for _, row := range visits {
		for _, count := range row {
			if count == 0 {
				fmt.Fprint(out, "    .")
			} else {
				fmt.Fprintf(out, "%5d", count)
			}
		}
		fmt.Fprintln(out)
	}
}
