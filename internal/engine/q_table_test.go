package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQTableKeysAreOpenCells(t *testing.T) {
	grid := Grid{
		{0, 1, 0},
		{0, 0, 1},
	}
	q := NewQTable(grid)

	want := []State{{0, 0}, {0, 2}, {1, 0}, {1, 1}}
	assert.Equal(t, want, q.States())
	for _, s := range want {
		values, ok := q.Values(s)
		assert.True(t, ok)
		assert.Equal(t, [NumActions]float64{}, values)
	}
	for _, s := range []State{{0, 1}, {1, 2}, {-1, 0}, {0, 3}, {2, 0}} {
		assert.False(t, q.Has(s), "unexpected key %v", s)
	}
}

func TestNewQTableAllWalls(t *testing.T) {
	q := NewQTable(Grid{{1, 1}, {1, 1}})
	assert.Zero(t, q.Len())
	assert.Empty(t, q.States())
}

func TestQTableMaxValueOutsideKeys(t *testing.T) {
	q := NewQTable(Grid{{0, 1}, {0, 0}})
	assert.Zero(t, q.MaxValue(State{Row: 0, Col: 1}))
	assert.Zero(t, q.MaxValue(State{Row: -1, Col: 0}))
}

func TestQTableBestActionTieBreak(t *testing.T) {
	q := NewQTable(Grid{{0}})
	s := State{}
	assert.Equal(t, ActionUp, q.BestAction(s))

	q.set(s, ActionLeft, 3)
	q.set(s, ActionRight, 3)
	assert.Equal(t, ActionLeft, q.BestAction(s))
	assert.Equal(t, 3.0, q.MaxValue(s))

	q.set(s, ActionUp, -1)
	q.set(s, ActionDown, 4)
	assert.Equal(t, ActionDown, q.BestAction(s))
}

func TestQTableValueMap(t *testing.T) {
	q := NewQTable(Grid{{0, 1}})
	q.set(State{0, 0}, ActionDown, 2.5)

	values := q.ValueMap()
	assert.Equal(t, 2.5, values[0][0])
	assert.True(t, math.IsNaN(values[0][1]))
}

func TestStateApply(t *testing.T) {
	s := State{Row: 1, Col: 1}
	assert.Equal(t, State{0, 1}, s.Apply(ActionUp))
	assert.Equal(t, State{2, 1}, s.Apply(ActionDown))
	assert.Equal(t, State{1, 0}, s.Apply(ActionLeft))
	assert.Equal(t, State{1, 2}, s.Apply(ActionRight))
	assert.Equal(t, State{-1, 0}, State{}.Apply(ActionUp))
	assert.Equal(t, "right", ActionRight.String())
}
