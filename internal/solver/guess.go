package solver

import (
	"errors"
	"math"
)

// ErrNoLegalMove is returned when no hidden, unflagged cell remains to
// choose from; the board is terminal.
var ErrNoLegalMove = errors.New("no hidden cell left to choose")

const probEpsilon = 1e-9

// GuessPolicy configures risk selection for probabilistic guesses.
type GuessPolicy struct {
	// SafeThreshold is the maximum acceptable mine probability for a
	// constraint-adjacent guess; above it the selector prefers
	// unconstrained territory.
	SafeThreshold float64
	// InfoGain, when set, breaks near-ties in favour of the cell
	// whose reveal would expose the most new constraints.
	InfoGain bool
	// InfoGainTolerance is the probability distance from the minimum
	// within which InfoGain may reorder candidates.
	InfoGainTolerance float64
}

func DefaultGuessPolicy() GuessPolicy {
	return GuessPolicy{
		SafeThreshold:     0.35,
		InfoGain:          false,
		InfoGainTolerance: 0.05,
	}
}

// SelectGuess picks exactly one reveal from the probability table.
//
// Priority order:
//  1. an inevitable equal-probability group: an isolated, completely
//     enumerated component whose variables all carry the same
//     probability; the tie cannot be broken by waiting, so the risk is
//     paid now rather than cascaded;
//  2. the lowest exact probability at or below the safety threshold
//     (optionally reordered by information gain within tolerance);
//  3. the lowest inexact (capped-component) frequency at or below the
//     threshold;
//  4. an unconstrained cell, farthest from revealed territory;
//  5. the overall lowest estimate, threshold notwithstanding.
//
// Ties are always broken by ascending cell index, so selection is a
// pure function of the snapshot.
func SelectGuess(b BoardView, table ProbabilityTable, enums []Enumeration, policy GuessPolicy) (Action, error) {
	if cell, ok := inevitableGroupCell(b, enums); ok {
		return revealAction(b, cell), nil
	}

	if cell, ok := lowestBelow(b, table, policy, true); ok {
		return revealAction(b, cell), nil
	}
	if cell, ok := lowestBelow(b, table, policy, false); ok {
		return revealAction(b, cell), nil
	}

	if cell, ok := farthestUnconstrained(b, table); ok {
		return revealAction(b, cell), nil
	}

	// Everything is above the threshold and there is no open
	// territory left; take the least bad constrained cell.
	minP := math.Inf(1)
	for _, est := range table.ByCell {
		if est.P < minP {
			minP = est.P
		}
	}
	best := -1
	for cell, est := range table.ByCell {
		if est.P <= minP+probEpsilon && (best == -1 || cell < best) {
			best = cell
		}
	}
	if best >= 0 {
		return revealAction(b, best), nil
	}
	return Action{}, ErrNoLegalMove
}

func revealAction(b BoardView, cell int) Action {
	return Action{
		Kind:  ActionReveal,
		X:     cell % b.Width(),
		Y:     cell / b.Width(),
		Layer: LayerProbabilistic,
	}
}

// inevitableGroupCell looks for a component whose variables all share
// one probability and which can never receive outside information: a
// forced coin flip. Resolving it early is preferred to leaving it for
// the endgame.
func inevitableGroupCell(b BoardView, enums []Enumeration) (int, bool) {
	for _, e := range enums {
		if e.Status != EnumComplete || len(e.Component.Cells) < 2 || e.Solutions() == 0 {
			continue
		}
		total := float64(e.Solutions())
		p := float64(e.MineCounts[0]) / total
		if p > 0.5+probEpsilon {
			continue
		}
		equal := true
		for _, mines := range e.MineCounts[1:] {
			if math.Abs(float64(mines)/total-p) > probEpsilon {
				equal = false
				break
			}
		}
		if equal && componentIsolated(b, e.Component) {
			return e.Component.Cells[0], true
		}
	}
	return 0, false
}

// componentIsolated reports whether no variable of the component has a
// hidden neighbour outside the component, i.e. no future reveal can
// add constraints over these cells.
func componentIsolated(b BoardView, comp Component) bool {
	inComp := make(map[int]bool, len(comp.Cells))
	for _, cell := range comp.Cells {
		inComp[cell] = true
	}
	for _, cell := range comp.Cells {
		x, y := cell%b.Width(), cell/b.Width()
		isolated := true
		forEachNeighbor(b, x, y, func(nx, ny int) {
			j := ny*b.Width() + nx
			if hidden(b.CellAt(nx, ny)) && !inComp[j] {
				isolated = false
			}
		})
		if !isolated {
			return false
		}
	}
	return true
}

func lowestBelow(b BoardView, table ProbabilityTable, policy GuessPolicy, exact bool) (int, bool) {
	minP := math.Inf(1)
	for _, est := range table.ByCell {
		if est.Exact == exact && est.P < minP {
			minP = est.P
		}
	}
	if minP > policy.SafeThreshold+probEpsilon {
		return 0, false
	}

	tolerance := probEpsilon
	if policy.InfoGain {
		tolerance = policy.InfoGainTolerance + probEpsilon
	}

	best, bestGain := -1, -1
	for cell, est := range table.ByCell {
		if est.Exact != exact || est.P > minP+tolerance {
			continue
		}
		gain := 0
		if policy.InfoGain {
			gain = hiddenNeighborCount(b, cell%b.Width(), cell/b.Width())
		}
		if gain > bestGain || (gain == bestGain && (best == -1 || cell < best)) {
			best, bestGain = cell, gain
		}
	}
	return best, best >= 0
}

// farthestUnconstrained picks the unconstrained cell with the largest
// Chebyshev distance to any revealed cell: the most likely spot to
// open a fresh region.
func farthestUnconstrained(b BoardView, table ProbabilityTable) (int, bool) {
	if len(table.Unconstrained) == 0 {
		return 0, false
	}

	var revealed [][2]int
	for y := range b.Height() {
		for x := range b.Width() {
			if b.CellAt(x, y).Revealed() {
				revealed = append(revealed, [2]int{x, y})
			}
		}
	}

	best, bestDist := -1, -1
	for _, cell := range table.Unconstrained {
		x, y := cell%b.Width(), cell/b.Width()
		dist := math.MaxInt
		for _, r := range revealed {
			d := max(absInt(r[0]-x), absInt(r[1]-y))
			if d < dist {
				dist = d
			}
		}
		if len(revealed) == 0 {
			dist = 0
		}
		if dist > bestDist || (dist == bestDist && cell < best) {
			best, bestDist = cell, dist
		}
	}
	return best, true
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
