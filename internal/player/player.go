// Package player drives a game to completion by consulting a fixed
// priority list of strategies. Cheap arithmetic rules run first,
// geometric patterns second, exhaustive component search third and a
// probabilistic guess last; any progress restarts the list from the
// top.
package player

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"minesolver/internal/game"
	"minesolver/internal/pattern"
	"minesolver/internal/rules"
	"minesolver/internal/solver"
)

var Log = logrus.New()

// Strategy produces zero or more actions for the current board. An
// empty result means the strategy has nothing to contribute and the
// next one gets a turn.
type Strategy interface {
	Name() string
	Attempt(b solver.BoardView) []solver.Action
}

type rulesStrategy struct{}

func (rulesStrategy) Name() string { return "rules" }
func (rulesStrategy) Attempt(b solver.BoardView) []solver.Action {
	return rules.Step(b)
}

type patternStrategy struct{}

func (patternStrategy) Name() string { return "pattern" }
func (patternStrategy) Attempt(b solver.BoardView) []solver.Action {
	return pattern.Step(b)
}

type deduceStrategy struct{ engine *solver.Engine }

func (deduceStrategy) Name() string { return "search" }
func (s deduceStrategy) Attempt(b solver.BoardView) []solver.Action {
	return s.engine.Deduce(b).Actions
}

type guessStrategy struct{ engine *solver.Engine }

func (guessStrategy) Name() string { return "guess" }
func (s guessStrategy) Attempt(b solver.BoardView) []solver.Action {
	action, err := s.engine.Guess(b)
	if err != nil {
		return nil
	}
	return []solver.Action{action}
}

// Move is one applied action together with the strategy that produced
// it.
type Move struct {
	Action   solver.Action `json:"action"`
	Strategy string        `json:"strategy"`
}

// Outcome summarizes a finished game.
type Outcome struct {
	Won   bool   `json:"won"`
	Moves []Move `json:"moves"`
}

// ByLayer counts the outcome's moves per strategy layer.
func (o Outcome) ByLayer() map[solver.Layer]int {
	counts := make(map[solver.Layer]int)
	for _, m := range o.Moves {
		counts[m.Action.Layer]++
	}
	return counts
}

type Player struct {
	strategies []Strategy
	maxSteps   int
}

// New builds a player around a search engine configured with opt. The
// step limit is generous; it only exists to turn a cycling bug into an
// error instead of a hang.
func New(opt solver.Options) *Player {
	engine := solver.New(opt)
	return &Player{
		strategies: []Strategy{
			rulesStrategy{},
			patternStrategy{},
			deduceStrategy{engine},
			guessStrategy{engine},
		},
		maxSteps: 10_000,
	}
}

// Play drives g until it is won or lost and reports every move made.
func (p *Player) Play(g *game.GameState) (Outcome, error) {
	var outcome Outcome
	for steps := 0; !g.Dead && !g.Won; steps++ {
		if steps >= p.maxSteps {
			return outcome, fmt.Errorf("no resolution after %d steps", steps)
		}
		moves, err := p.Step(g)
		if err != nil {
			return outcome, err
		}
		outcome.Moves = append(outcome.Moves, moves...)
	}
	outcome.Won = g.Won
	return outcome, nil
}

// Step consults the strategies in priority order and applies the first
// non-empty batch of actions. It reports the moves that actually
// changed the board.
func (p *Player) Step(g *game.GameState) ([]Move, error) {
	snapshot := solver.SnapshotOf(g)
	for _, strat := range p.strategies {
		actions := strat.Attempt(snapshot)
		if len(actions) == 0 {
			continue
		}
		moves := applyAll(g, actions, strat.Name())
		if len(moves) == 0 {
			// Every action was stale (already satisfied by an
			// earlier cascade). Treat it as no contribution.
			continue
		}
		return moves, nil
	}
	return nil, errors.New("no strategy produced a move")
}

func applyAll(g *game.GameState, actions []solver.Action, strategy string) []Move {
	var moves []Move
	for _, a := range actions {
		if !apply(g, a) {
			continue
		}
		Log.WithFields(logrus.Fields{
			"strategy": strategy,
			"action":   a.Kind.String(),
			"layer":    a.Layer.String(),
			"x":        a.X, "y": a.Y,
		}).Debug("applied move")
		moves = append(moves, Move{Action: a, Strategy: strategy})
		if g.Dead || g.Won {
			break
		}
	}
	return moves
}

// apply mutates the game and reports whether the action changed
// anything. Reveals of already-open cells and flags on already-flagged
// cells happen when a cascade outruns a queued batch; they are skipped.
func apply(g *game.GameState, a solver.Action) bool {
	cell := g.PlayerGrid[a.Y*g.Width+a.X]
	switch a.Kind {
	case solver.ActionFlag:
		if cell != game.Unknown && cell != game.Question {
			return false
		}
		g.FlagCell(a.X, a.Y)
	case solver.ActionReveal:
		if cell != game.Unknown && cell != game.Question {
			return false
		}
		g.OpenCell(a.X, a.Y)
	}
	return true
}
