package engine

const (
	WallPenalty = -100.0
	GoalReward  = 100.0
	StepPenalty = -1.0
)

// RewardModel scores a candidate next state.
type RewardModel struct {
	Grid Grid
	Goal State
}

func NewRewardModel(grid Grid) RewardModel {
	return RewardModel{Grid: grid, Goal: grid.Goal()}
}

// Reward checks walls and bounds before the goal, so a walled goal still costs WallPenalty.
func (m RewardModel) Reward(next State) float64 {
	if !m.Grid.InBounds(next) || m.Grid.IsWall(next) {
		return WallPenalty
	}
	if next == m.Goal {
		return GoalReward
	}
	return StepPenalty
}
