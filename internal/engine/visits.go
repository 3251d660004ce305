package engine

// visitTable counts how often training episodes stood on each cell.
type visitTable struct {
	rows int
	cols int
	data [][]int
}

func newVisitTable(rows, cols int) *visitTable {
	data := make([][]int, rows)
	for r := 0; r < rows; r++ {
		data[r] = make([]int, cols)
	}
	return &visitTable{rows: rows, cols: cols, data: data}
}

func (v *visitTable) record(s State) {
	if s.Row < 0 || s.Row >= v.rows || s.Col < 0 || s.Col >= v.cols {
		return
	}
	v.data[s.Row][s.Col]++
}

func (v *visitTable) cloneData() [][]int {
	copyData := make([][]int, v.rows)
	for r := 0; r < v.rows; r++ {
		copyData[r] = make([]int, v.cols)
		copy(copyData[r], v.data[r])
	}
	return copyData
}
