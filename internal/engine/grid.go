package engine

// Cell codes used by Grid.
const (
	CellOpen = 0
	CellWall = 1
	CellPath = 2
)

// Grid is a rectangular matrix of cell codes. Row lengths are assumed uniform.
type Grid [][]int

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(s State) bool {
	return s.Row >= 0 && s.Row < g.Rows() && s.Col >= 0 && s.Col < len(g[s.Row])
}

func (g Grid) IsOpen(s State) bool {
	return g.InBounds(s) && g[s.Row][s.Col] == CellOpen
}

func (g Grid) IsWall(s State) bool {
	return g.InBounds(s) && g[s.Row][s.Col] == CellWall
}

// Start is the fixed entrance cell.
func (g Grid) Start() State {
	return State{Row: 0, Col: 0}
}

// Goal is the fixed exit cell in the bottom-right corner.
func (g Grid) Goal() State {
	return State{Row: g.Rows() - 1, Col: g.Cols() - 1}
}

func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	copied := make(Grid, len(g))
	for r, row := range g {
		copied[r] = make([]int, len(row))
		copy(copied[r], row)
	}
	return copied
}
