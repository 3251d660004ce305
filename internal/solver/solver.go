// Package solver wires a grid source, the Q-learning engine and a grid sink together.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"qmaze/internal/engine"
	"qmaze/internal/maze"
)

var (
	// ErrInputUnavailable means no grid could be obtained from the source.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrNoPath is the logical "unsolvable" outcome, not an I/O failure.
	ErrNoPath = engine.ErrNoPath
	// ErrOutput means the solved grid could not be written; the Result is still valid.
	ErrOutput = errors.New("output write failed")
)

type Solver struct {
	Source maze.GridSource
	Sink   maze.GridSink // optional
	Config engine.Config
	// Seed drives exploration; 0 leaves the engine's default generator in place.
	Seed   int64
	Logger *slog.Logger
	// OnSnapshot, when set, sees every training snapshot as it is produced.
	OnSnapshot func(engine.Snapshot)
}

type Result struct {
	Grid      engine.Grid
	Path      engine.Path
	Summary   engine.Summary
	Snapshots []engine.Snapshot // without ValueMap; use QTable.ValueMap for the final values
	QTable    *engine.QTable
	Visits    [][]int
}

func (s *Solver) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// Solve loads a grid, trains on it, extracts the greedy path and saves the annotated grid.
// On ErrNoPath the loaded grid is returned untouched and nothing is saved.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	log := s.logger()
	if s.Source == nil {
		return nil, fmt.Errorf("%w: no grid source", ErrInputUnavailable)
	}
	grid, err := s.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	if grid.Rows() == 0 || grid.Cols() == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInputUnavailable)
	}
	log.Info("grid loaded", "rows", grid.Rows(), "cols", grid.Cols())

	result, err := s.Run(ctx, grid)
	if err != nil {
		return result, err
	}
	if s.Sink == nil {
		return result, nil
	}
	if err := s.Sink.Save(ctx, result.Grid); err != nil {
		log.Error("saving solved grid", "error", err)
		return result, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	log.Info("solved grid saved")
	return result, nil
}

// Run trains on grid and annotates it in place when a path is found.
func (s *Solver) Run(ctx context.Context, grid engine.Grid) (*Result, error) {
	log := s.logger()
	var rng *rand.Rand
	if s.Seed != 0 {
		rng = rand.New(rand.NewSource(s.Seed))
	}
	trainer := engine.NewTrainer(grid.Clone(), s.Config, rng)
	cfg := trainer.Config()
	log.Info("training started",
		"states", trainer.QTable().Len(),
		"episodes", cfg.Episodes,
		"alpha", cfg.Alpha,
		"gamma", cfg.Gamma,
		"epsilon", cfg.Epsilon,
		"max_steps", cfg.MaxSteps,
		"seed", s.Seed,
	)

	result := &Result{Grid: grid}
	cancelled := false
	for snapshot := range trainer.Run(ctx) {
		if s.OnSnapshot != nil {
			s.OnSnapshot(snapshot)
		}
		if snapshot.Status == engine.StatusCancelled {
			cancelled = true
		}
		snapshot.ValueMap = nil
		result.Snapshots = append(result.Snapshots, snapshot)
	}
	result.QTable = trainer.QTable()
	result.Visits = trainer.Visits()
	if cancelled {
		return result, ctx.Err()
	}
	result.Summary = trainer.Summary()
	log.Info("training finished",
		"episodes", result.Summary.Episodes,
		"success_rate", result.Summary.SuccessRate(),
		"avg_steps", result.Summary.AverageSteps(),
	)

	path, err := engine.ExtractPath(grid, result.QTable, cfg.MaxSteps)
	if err != nil {
		log.Warn("no path found")
		return result, err
	}
	engine.Annotate(grid, path)
	result.Path = path
	log.Info("path found", "steps", path.Steps())
	return result, nil
}
