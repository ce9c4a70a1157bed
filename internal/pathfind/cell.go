package pathfind

import "fmt"

// Cell identifies one grid square by column and row.
// Cells are plain values and compare by value.
type Cell struct {
	Col, Row int
}

// C is shorthand for Cell{Col: col, Row: row}.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Manhattan returns |Δcol| + |Δrow| between two cells.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.Col-other.Col) + abs(c.Row-other.Row)
}

// Step returns the cell one unit away in direction d.
// Stepping in None returns c unchanged.
func (c Cell) Step(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// neighbors returns the four orthogonal neighbors in a fixed order:
// left, right, up, down. The order is part of the tie-break contract.
func (c Cell) neighbors() [4]Cell {
	return [4]Cell{
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col, Row: c.Row - 1},
		{Col: c.Col, Row: c.Row + 1},
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
