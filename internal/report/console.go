package report

import (
	"fmt"
	"io"
	"math"

	"github.com/logrusorgru/aurora"

	"qmaze/internal/engine"
)

// Console renders grids and value tables to a terminal.
type Console struct {
	w  io.Writer
	au aurora.Aurora
}

func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, au: aurora.NewAurora(color)}
}

// PrintGrid draws the grid with walls, open cells and path cells in distinct colours.
func (c *Console) PrintGrid(grid engine.Grid) {
	for _, row := range grid {
		for _, cell := range row {
			switch cell {
			case engine.CellWall:
				fmt.Fprint(c.w, c.au.Gray(12, "#"))
			case engine.CellPath:
				fmt.Fprint(c.w, c.au.Green("*"))
			default:
				fmt.Fprint(c.w, c.au.Blue("."))
			}
		}
		fmt.Fprintln(c.w)
	}
}

// PrintValues prints the best action value for each cell, blank where the cell is not a state.
func (c *Console) PrintValues(values [][]float64) {
	fmt.Fprintln(c.w, "value table:")
	for _, row := range values {
		for _, v := range row {
			if math.IsNaN(v) {
				fmt.Fprint(c.w, c.au.Gray(12, fmt.Sprintf("%8s", "#")))
				continue
			}
			cell := fmt.Sprintf("%8.2f", v)
			if v > 0 {
				fmt.Fprint(c.w, c.au.Green(cell))
			} else {
				fmt.Fprint(c.w, c.au.Red(cell))
			}
		}
		fmt.Fprintln(c.w)
	}
}

// PrintPolicy prints the greedy action per state as an arrow.
func (c *Console) PrintPolicy(grid engine.Grid, q *engine.QTable) {
	arrows := map[engine.Action]string{
		engine.ActionUp:    "^",
		engine.ActionDown:  "v",
		engine.ActionLeft:  "<",
		engine.ActionRight: ">",
	}
	goal := grid.Goal()
	for r := 0; r < grid.Rows(); r++ {
		for col := 0; col < grid.Cols(); col++ {
			s := engine.State{Row: r, Col: col}
			switch {
			case !q.Has(s):
				fmt.Fprint(c.w, c.au.Gray(12, "#"))
			case s == goal:
				fmt.Fprint(c.w, c.au.Yellow("G"))
			default:
				fmt.Fprint(c.w, c.au.Cyan(arrows[q.BestAction(s)]))
			}
		}
		fmt.Fprintln(c.w)
	}
}
