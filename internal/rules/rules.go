// Package rules implements the single-cell arithmetic layer: the two
// deductions a player makes without cross-referencing numbers. If a
// number's remaining mine count equals its hidden neighbour count,
// every hidden neighbour is a mine; if its flags already satisfy it,
// every hidden neighbour is safe.
package rules

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"minesolver/internal/game"
	"minesolver/internal/solver"
)

var Log = logrus.New()

type inspector struct {
	board   solver.BoardView
	queue   deque.Deque[int]
	queued  map[int]bool
	actions []solver.Action
	acted   map[int]bool
}

// Step inspects every revealed numbered cell once and returns all
// certain actions the two basic rules yield on this snapshot. It never
// mutates the board; an empty result means the layer has no progress
// to offer.
func Step(b solver.BoardView) []solver.Action {
	ins := &inspector{
		board:  b,
		queued: make(map[int]bool),
		acted:  make(map[int]bool),
	}
	for y := range b.Height() {
		for x := range b.Width() {
			if c := b.CellAt(x, y); c.Revealed() && c > 0 {
				ins.enqueue(y*b.Width() + x)
			}
		}
	}
	for ins.queue.Len() != 0 {
		ins.inspect(ins.queue.PopFront())
	}
	if len(ins.actions) > 0 {
		Log.WithFields(logrus.Fields{
			"actions": len(ins.actions),
		}).Debug("rules layer progress")
	}
	return ins.actions
}

func (ins *inspector) enqueue(i int) {
	if !ins.queued[i] {
		ins.queued[i] = true
		ins.queue.PushBack(i)
	}
}

func (ins *inspector) emit(kind solver.ActionKind, i int) {
	if ins.acted[i] {
		return
	}
	ins.acted[i] = true
	ins.actions = append(ins.actions, solver.Action{
		Kind:  kind,
		X:     i % ins.board.Width(),
		Y:     i / ins.board.Width(),
		Layer: solver.LayerRules,
	})
}

func (ins *inspector) inspect(i int) {
	var (
		b      = ins.board
		x, y   = i % b.Width(), i / b.Width()
		number = int(b.CellAt(x, y))
		hidden []int
		flags  int
	)
	forEachNeighbor(b, x, y, func(nx, ny int) {
		switch n := b.CellAt(nx, ny); {
		case n == game.Flagged:
			flags++
		case n == game.Unknown || n == game.Question:
			hidden = append(hidden, ny*b.Width()+nx)
		}
	})
	if len(hidden) == 0 || flags > number {
		return
	}

	remaining := number - flags
	switch {
	case remaining == len(hidden):
		/* every hidden neighbour must be a mine */
		for _, j := range hidden {
			ins.emit(solver.ActionFlag, j)
		}
	case remaining == 0:
		/* mines all accounted for; the rest are safe */
		for _, j := range hidden {
			ins.emit(solver.ActionReveal, j)
		}
	}
}

func forEachNeighbor(b solver.BoardView, x, y int, visit func(nx, ny int)) {
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
