package maze

import (
	"context"
	"fmt"
	"io"
	"os"

	"qmaze/internal/engine"
)

// DefaultOutputPath is where FileSink writes when no path is given.
const DefaultOutputPath = "OutputMaze.txt"

// GridSource supplies the grid to solve.
type GridSource interface {
	Load(ctx context.Context) (engine.Grid, error)
}

// GridSink receives the solved grid.
type GridSink interface {
	Save(ctx context.Context, grid engine.Grid) error
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (engine.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	grid, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return grid, nil
}

type ReaderSource struct {
	R io.Reader
}

func (s ReaderSource) Load(ctx context.Context) (engine.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(s.R)
}

type FileSink struct {
	Path string
}

func (s FileSink) path() string {
	if s.Path == "" {
		return DefaultOutputPath
	}
	return s.Path
}

func (s FileSink) Save(ctx context.Context, grid engine.Grid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(Format(grid)), 0o644)
}

type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Save(ctx context.Context, grid engine.Grid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(s.W, Format(grid))
	return err
}
