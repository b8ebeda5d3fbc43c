package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	todo             CellState = -10 // internal to the cascade loop
	Question         CellState = -3
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Values 0 to 8 mean the cell is open with the given number of
	 * mined neighbours. The values >= 64 only appear after the game
	 * has ended and the full grid is revealed.
	 */
)

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return "_"
	case s == Flagged:
		return "F"
	case s.Revealed():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player-visible board, row-major, index = y*width + x.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			b.WriteString(g[i].String() + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ParseGrid builds a Grid from the textual form produced by ToString:
// digits for revealed numbers, "F" for flags, "_" for hidden cells.
// Returns the grid and its width.
func ParseGrid(s string) (Grid, int, error) {
	var (
		grid  Grid
		width int
	)
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, 0, errors.New("ragged grid row")
		}
		for _, f := range fields {
			switch f {
			case "_":
				grid = append(grid, Unknown)
			case "F":
				grid = append(grid, Flagged)
			case "?":
				grid = append(grid, Question)
			default:
				n, err := strconv.Atoi(f)
				if err != nil || n < 0 || n > 8 {
					return nil, 0, fmt.Errorf("bad cell %q", f)
				}
				grid = append(grid, CellState(n))
			}
		}
	}
	if width == 0 {
		return nil, 0, errors.New("empty grid")
	}
	return grid, width, nil
}
