/*
Package maze reads and writes maze grids in the digit-per-cell text format.

Each line is one row; each character is a single cell code ('0' open, '1' wall,
'2' path once solved). Rows are joined by a single newline with no trailing newline.
Parse only accepts unsolved grids, so '2' is written but never read.
*/
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"qmaze/internal/engine"
)

var (
	ErrEmptyGrid   = errors.New("grid has no rows")
	ErrRaggedGrid  = errors.New("grid rows differ in length")
	ErrInvalidCell = errors.New("invalid cell")
)

// Parse decodes an unsolved grid of '0' and '1' cells.
// Trailing blank lines and carriage returns are ignored.
func Parse(r io.Reader) (engine.Grid, error) {
	var grid engine.Grid
	scanner := bufio.NewScanner(r)
	line := 0
	blank := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			blank++
			continue
		}
		if blank > 0 && len(grid) > 0 {
			return nil, fmt.Errorf("line %d: blank line inside grid", line-1)
		}
		blank = 0
		text = strings.TrimSpace(text)
		row := make([]int, 0, len(text))
		for i, ch := range text {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("line %d, column %d: %w %q", line, i+1, ErrInvalidCell, ch)
			}
			row = append(row, int(ch-'0'))
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("line %d: %w (want %d cells, got %d)", line, ErrRaggedGrid, len(grid[0]), len(row))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}

func ParseString(s string) (engine.Grid, error) {
	return Parse(strings.NewReader(s))
}

// Format encodes grid with no trailing newline.
func Format(grid engine.Grid) string {
	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(strconv.Itoa(cell))
		}
	}
	return b.String()
}
