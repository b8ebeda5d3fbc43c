package solver

import (
	"minesolver/internal/game"
)

// BoardView is a read-only snapshot of the player-visible grid. The
// engine never mutates a board; it derives constraints from one
// consistent view and emits actions for the caller to apply.
type BoardView interface {
	Width() int
	Height() int
	CellAt(x, y int) game.CellState
	TotalMines() int
}

// Snapshot is an immutable BoardView backed by a copied grid.
type Snapshot struct {
	W, H  int
	Mines int
	Cells game.Grid
}

func (s Snapshot) Width() int      { return s.W }
func (s Snapshot) Height() int     { return s.H }
func (s Snapshot) TotalMines() int { return s.Mines }

func (s Snapshot) CellAt(x, y int) game.CellState {
	return s.Cells[y*s.W+x]
}

// SnapshotOf captures the current player-visible state of a game.
func SnapshotOf(g *game.GameState) Snapshot {
	return Snapshot{
		W:     g.Width,
		H:     g.Height,
		Mines: g.MineCount,
		Cells: g.PlayerView(),
	}
}

// ParseSnapshot builds a Snapshot from the textual grid form (see
// game.ParseGrid) plus the total mine count.
func ParseSnapshot(text string, mines int) (Snapshot, error) {
	grid, width, err := game.ParseGrid(text)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		W:     width,
		H:     len(grid) / width,
		Mines: mines,
		Cells: grid,
	}, nil
}

func flagCount(b BoardView) (n int) {
	for y := range b.Height() {
		for x := range b.Width() {
			if b.CellAt(x, y) == game.Flagged {
				n++
			}
		}
	}
	return
}

func hidden(c game.CellState) bool {
	return c == game.Unknown || c == game.Question
}

// forEachNeighbor visits the 8-neighbourhood of (x, y), clipped at the
// board edges.
func forEachNeighbor(b BoardView, x, y int, visit func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if 0 <= nx && nx < b.Width() && 0 <= ny && ny < b.Height() {
				visit(nx, ny)
			}
		}
	}
}

func hiddenNeighborCount(b BoardView, x, y int) (n int) {
	forEachNeighbor(b, x, y, func(nx, ny int) {
		if hidden(b.CellAt(nx, ny)) {
			n++
		}
	})
	return
}
