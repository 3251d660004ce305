package engine

import "fmt"

// State is a grid coordinate. It is only a valid state when it names an open cell.
type State struct {
	Row int
	Col int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Apply moves the state by the action's delta. No bounds check is done here.
func (s State) Apply(a Action) State {
	d := actionDeltas[a]
	return State{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

// Action indexes the action-value vector; the order is fixed.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
)

const NumActions = 4

var actionDeltas = [NumActions]State{
	ActionUp:    {Row: -1, Col: 0},
	ActionDown:  {Row: 1, Col: 0},
	ActionLeft:  {Row: 0, Col: -1},
	ActionRight: {Row: 0, Col: 1},
}

var actionNames = [NumActions]string{"up", "down", "left", "right"}

func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}
