package solver

import (
	"minesolver/internal/game"
)

// Constraint states that exactly Mines of the hidden cells in Cells are
// mined. It is derived from one revealed numbered cell; the required
// count already discounts flagged neighbours.
type Constraint struct {
	X, Y  int   // originating numbered cell
	Cells []int // hidden neighbours, sorted ascending (row-major index)
	Mines int
}

// ExtractConstraints derives one constraint per revealed numbered cell
// that still has hidden neighbours. The scan is row-major, so the
// result order is a pure function of the board. An empty result means
// the board offers nothing to reason about (NoConstraints), which is
// not an error.
func ExtractConstraints(b BoardView) []Constraint {
	var constraints []Constraint
	for y := range b.Height() {
		for x := range b.Width() {
			cell := b.CellAt(x, y)
			if !cell.Revealed() || cell == 0 {
				continue
			}
			var (
				hiddenCells []int
				flags       int
			)
			forEachNeighbor(b, x, y, func(nx, ny int) {
				switch n := b.CellAt(nx, ny); {
				case n == game.Flagged:
					flags++
				case hidden(n):
					hiddenCells = append(hiddenCells, ny*b.Width()+nx)
				}
			})
			if len(hiddenCells) == 0 {
				continue
			}
			// An out-of-range requirement is kept as-is; its
			// component will enumerate to zero solutions and be
			// surfaced as contradictory.
			constraints = append(constraints, Constraint{
				X:     x,
				Y:     y,
				Cells: hiddenCells, // already ascending: neighbours visited row-major
				Mines: int(cell) - flags,
			})
		}
	}
	return constraints
}
