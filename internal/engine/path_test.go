package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainGrid(t *testing.T, grid Grid, seed int64) *QTable {
	t.Helper()
	trainer := NewTrainer(grid, DefaultConfig(), rand.New(rand.NewSource(seed)))
	_, err := trainer.Train(context.Background())
	require.NoError(t, err)
	return trainer.QTable()
}

func TestExtractPathCorridor(t *testing.T) {
	grid := Grid{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	q := trainGrid(t, grid, 1)

	path, err := ExtractPath(grid, q, DefaultMaxSteps)
	require.NoError(t, err)
	assert.Equal(t, Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, path)

	Annotate(grid, path)
	assert.Equal(t, Grid{
		{2, 2, 2},
		{1, 1, 2},
		{0, 0, 2},
	}, grid)
}

func TestExtractPathOpenGridLength(t *testing.T) {
	for _, size := range []struct{ rows, cols int }{{1, 1}, {1, 4}, {3, 3}, {4, 5}} {
		grid := make(Grid, size.rows)
		for r := range grid {
			grid[r] = make([]int, size.cols)
		}
		q := trainGrid(t, grid, 11)

		path, err := ExtractPath(grid, q, DefaultMaxSteps)
		require.NoError(t, err, "grid %dx%d", size.rows, size.cols)
		assert.Equal(t, size.rows+size.cols-2, path.Steps(), "grid %dx%d", size.rows, size.cols)
		assert.Equal(t, grid.Goal(), path[len(path)-1])
	}
}

func TestExtractPathUnreachable(t *testing.T) {
	grid := Grid{
		{0, 1},
		{1, 0},
	}
	q := trainGrid(t, grid, 5)

	path, err := ExtractPath(grid, q, DefaultMaxSteps)
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Nil(t, path)
	assert.Equal(t, Grid{{0, 1}, {1, 0}}, grid)
}

func TestExtractPathBlockedRow(t *testing.T) {
	grid := Grid{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}
	q := trainGrid(t, grid, 9)

	_, err := ExtractPath(grid, q, DefaultMaxSteps)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestExtractPathUntrainedStepsIntoWall(t *testing.T) {
	grid := Grid{
		{0, 0},
		{0, 0},
	}
	// An untrained table prefers "up", which leaves the grid immediately.
	_, err := ExtractPath(grid, NewQTable(grid), DefaultMaxSteps)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestExtractPathStepCap(t *testing.T) {
	grid := Grid{{0, 0, 0, 0}}
	q := NewQTable(grid)
	for _, s := range q.States() {
		q.set(s, ActionRight, 1)
	}

	_, err := ExtractPath(grid, q, 2)
	assert.ErrorIs(t, err, ErrNoPath)

	path, err := ExtractPath(grid, q, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, path.Steps())
}

func TestExtractPathWalledGoal(t *testing.T) {
	grid := Grid{{0, 1}}
	q := NewQTable(grid)
	q.set(State{0, 0}, ActionRight, 1)

	_, err := ExtractPath(grid, q, DefaultMaxSteps)
	assert.ErrorIs(t, err, ErrNoPath)
}
