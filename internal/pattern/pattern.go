// Package pattern implements the geometric template layer: a small
// fixed library of classic Minesweeper shapes (1-1, 1-2, 1-2-1,
// 1-2-2-1, the H1 hole), each precomputed in its four rotations and
// matched by sliding the pivot across the board.
package pattern

import (
	"github.com/sirupsen/logrus"

	"minesolver/internal/game"
	"minesolver/internal/solver"
)

var Log = logrus.New()

// Offset is a cell position relative to the template pivot.
type Offset struct{ DX, DY int }

// Template is one oriented pattern instance. Numbers are required
// revealed values; Hidden offsets must be covered; Mines and Safes are
// the verdicts a match yields (always a subset of Hidden).
//
// A match additionally requires that every hidden or flagged neighbour
// of each numbered cell lies inside the Hidden set. That closure
// condition is what makes the canned verdicts sound without any global
// reasoning: each number's constraint is then exactly the one the
// template was derived from.
type Template struct {
	Name     string
	Rotation int // degrees, for logging only
	Numbers  map[Offset]int
	Hidden   []Offset
	Mines    []Offset
	Safes    []Offset
}

func rotate(o Offset, degrees int) Offset {
	switch degrees {
	case 90:
		return Offset{-o.DY, o.DX}
	case 180:
		return Offset{-o.DX, -o.DY}
	case 270:
		return Offset{o.DY, -o.DX}
	default:
		return o
	}
}

func (t Template) rotated(degrees int) Template {
	r := Template{
		Name:     t.Name,
		Rotation: degrees,
		Numbers:  make(map[Offset]int, len(t.Numbers)),
	}
	for o, n := range t.Numbers {
		r.Numbers[rotate(o, degrees)] = n
	}
	for _, o := range t.Hidden {
		r.Hidden = append(r.Hidden, rotate(o, degrees))
	}
	for _, o := range t.Mines {
		r.Mines = append(r.Mines, rotate(o, degrees))
	}
	for _, o := range t.Safes {
		r.Safes = append(r.Safes, rotate(o, degrees))
	}
	return r
}

// library holds every template in all four rotations, in a fixed
// order; matching is deterministic because iteration is.
var library []Template

func init() {
	for _, t := range baseTemplates {
		for _, deg := range []int{0, 90, 180, 270} {
			library = append(library, t.rotated(deg))
		}
	}
}

// Step slides every template over the board and returns the verdicts
// of the first match, tagged layer 2. Empty result means no pattern
// applies to this snapshot.
func Step(b solver.BoardView) []solver.Action {
	for _, t := range library {
		for y := range b.Height() {
			for x := range b.Width() {
				if !matches(b, t, x, y) {
					continue
				}
				actions := emit(b, t, x, y)
				if len(actions) == 0 {
					continue
				}
				Log.WithFields(logrus.Fields{
					"pattern":  t.Name,
					"rotation": t.Rotation,
					"x":        x, "y": y,
				}).Debug("pattern match")
				return actions
			}
		}
	}
	return nil
}

func cellAt(b solver.BoardView, x, y int, o Offset) (game.CellState, bool) {
	nx, ny := x+o.DX, y+o.DY
	if nx < 0 || nx >= b.Width() || ny < 0 || ny >= b.Height() {
		return 0, false
	}
	return b.CellAt(nx, ny), true
}

func matches(b solver.BoardView, t Template, x, y int) bool {
	hiddenSet := make(map[Offset]bool, len(t.Hidden))
	for _, o := range t.Hidden {
		c, ok := cellAt(b, x, y, o)
		if !ok || !(c == game.Unknown || c == game.Question) {
			return false
		}
		hiddenSet[o] = true
	}

	for o, n := range t.Numbers {
		c, ok := cellAt(b, x, y, o)
		if !ok || int(c) != n {
			return false
		}
		// Closure: the number's covered neighbourhood must sit
		// entirely inside the template, with no flags skewing its
		// count.
		closed := true
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				no := Offset{o.DX + dx, o.DY + dy}
				nc, ok := cellAt(b, x, y, no)
				if !ok {
					continue
				}
				if nc == game.Flagged {
					closed = false
				} else if (nc == game.Unknown || nc == game.Question) && !hiddenSet[no] {
					closed = false
				}
			}
		}
		if !closed {
			return false
		}
	}
	return true
}

func emit(b solver.BoardView, t Template, x, y int) []solver.Action {
	var actions []solver.Action
	for _, o := range t.Mines {
		actions = append(actions, solver.Action{
			Kind: solver.ActionFlag, X: x + o.DX, Y: y + o.DY,
			Layer: solver.LayerPattern,
		})
	}
	for _, o := range t.Safes {
		actions = append(actions, solver.Action{
			Kind: solver.ActionReveal, X: x + o.DX, Y: y + o.DY,
			Layer: solver.LayerPattern,
		})
	}
	return actions
}
