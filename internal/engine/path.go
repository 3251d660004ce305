package engine

import "errors"

// ErrNoPath means the greedy rollout never reached the goal.
var ErrNoPath = errors.New("no path found")

// Path is the sequence of visited states, start included.
type Path []State

func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// ExtractPath follows the greedy policy of q from the grid's start. The rollout stops
// when it leaves the key set of q, which covers both walls and out-of-bounds cells.
func ExtractPath(grid Grid, q *QTable, maxSteps int) (Path, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	state := grid.Start()
	goal := grid.Goal()
	path := Path{state}
	steps := 0
	for state != goal && steps < maxSteps {
		if !q.Has(state) {
			break
		}
		state = state.Apply(q.BestAction(state))
		path = append(path, state)
		steps++
	}
	if state != goal || !q.Has(state) {
		return nil, ErrNoPath
	}
	return path, nil
}

// Annotate stamps every state on path onto grid as CellPath, in place.
func Annotate(grid Grid, path Path) {
	for _, s := range path {
		if !grid.InBounds(s) {
			continue
		}
		grid[s.Row][s.Col] = CellPath
	}
}
