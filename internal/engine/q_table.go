package engine

import "math"

// QTable maps every open cell of a grid to its action values.
// The key set is fixed at construction.
type QTable struct {
	rows   int
	cols   int
	index  []int
	states []State
	data   [][NumActions]float64
}

// NewQTable registers one zero vector per open cell of grid.
func NewQTable(grid Grid) *QTable {
	rows, cols := grid.Rows(), grid.Cols()
	q := &QTable{rows: rows, cols: cols, index: make([]int, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			q.index[r*cols+c] = -1
			s := State{Row: r, Col: c}
			if !grid.IsOpen(s) {
				continue
			}
			q.index[r*cols+c] = len(q.states)
			q.states = append(q.states, s)
		}
	}
	q.data = make([][NumActions]float64, len(q.states))
	return q
}

func (q *QTable) slot(s State) int {
	if s.Row < 0 || s.Row >= q.rows || s.Col < 0 || s.Col >= q.cols {
		return -1
	}
	return q.index[s.Row*q.cols+s.Col]
}

func (q *QTable) Len() int {
	return len(q.states)
}

func (q *QTable) Has(s State) bool {
	return q.slot(s) >= 0
}

// States lists the keys in row-major order.
func (q *QTable) States() []State {
	states := make([]State, len(q.states))
	copy(states, q.states)
	return states
}

func (q *QTable) Values(s State) ([NumActions]float64, bool) {
	i := q.slot(s)
	if i < 0 {
		return [NumActions]float64{}, false
	}
	return q.data[i], true
}

func (q *QTable) get(s State, a Action) float64 {
	return q.data[q.slot(s)][a]
}

func (q *QTable) set(s State, a Action, value float64) {
	q.data[q.slot(s)][a] = value
}

// MaxValue returns the best action value of s, or 0 when s is not a key.
func (q *QTable) MaxValue(s State) float64 {
	i := q.slot(s)
	if i < 0 {
		return 0
	}
	values := q.data[i]
	max := values[0]
	for a := 1; a < NumActions; a++ {
		if values[a] > max {
			max = values[a]
		}
	}
	return max
}

// BestAction returns the highest valued action; ties go to the earliest action.
func (q *QTable) BestAction(s State) Action {
	values := q.data[q.slot(s)]
	best := ActionUp
	for a := 1; a < NumActions; a++ {
		if values[a] > values[best] {
			best = Action(a)
		}
	}
	return best
}

// ValueMap returns the best action value per cell, NaN where the cell is not a key.
func (q *QTable) ValueMap() [][]float64 {
	values := make([][]float64, q.rows)
	for r := 0; r < q.rows; r++ {
		values[r] = make([]float64, q.cols)
		for c := 0; c < q.cols; c++ {
			s := State{Row: r, Col: c}
			if !q.Has(s) {
				values[r][c] = math.NaN()
				continue
			}
			values[r][c] = q.MaxValue(s)
		}
	}
	return values
}
