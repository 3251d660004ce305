package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardModel(t *testing.T) {
	grid := Grid{
		{0, 1, 0},
		{0, 0, 0},
	}
	model := NewRewardModel(grid)

	tests := []struct {
		name string
		next State
		want float64
	}{
		{"above grid", State{-1, 0}, WallPenalty},
		{"left of grid", State{0, -1}, WallPenalty},
		{"below grid", State{2, 0}, WallPenalty},
		{"right of grid", State{0, 3}, WallPenalty},
		{"wall", State{0, 1}, WallPenalty},
		{"goal", State{1, 2}, GoalReward},
		{"open", State{1, 0}, StepPenalty},
		{"start", State{0, 0}, StepPenalty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Reward(tt.next))
		})
	}
}

func TestRewardModelWalledGoal(t *testing.T) {
	model := NewRewardModel(Grid{{0, 1}})
	assert.Equal(t, WallPenalty, model.Reward(State{0, 1}))
}
