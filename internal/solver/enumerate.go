package solver

type EnumStatus int8

const (
	// EnumComplete means every satisfying assignment was recorded.
	EnumComplete EnumStatus = iota
	// EnumCapped means enumeration stopped at a limit; the recorded
	// solutions are valid but must not be treated as exhaustive.
	EnumCapped
	// EnumContradictory means the component admits no solution at
	// all, indicating an inconsistent board snapshot.
	EnumContradictory
)

func (s EnumStatus) String() string {
	switch s {
	case EnumComplete:
		return "complete"
	case EnumCapped:
		return "capped"
	case EnumContradictory:
		return "contradictory"
	default:
		return "unknown"
	}
}

// Limits bounds a single component enumeration. MaxSolutions caps the
// recorded solution set; MaxNodes caps explored assignments, which
// keeps runtime bounded even when solutions are sparse in a huge
// search space.
type Limits struct {
	MaxSolutions int
	MaxNodes     int
}

const (
	DefaultMaxSolutions = 5000
	DefaultMaxNodes     = 500_000
)

func (l Limits) withDefaults() Limits {
	if l.MaxSolutions <= 0 {
		l.MaxSolutions = DefaultMaxSolutions
	}
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultMaxNodes
	}
	return l
}

// Enumeration is the solution space of one component.
type Enumeration struct {
	Component  Component
	Assigns    [][]bool // recorded solutions, aligned with Component.Cells
	MineCounts []int    // per variable, solutions assigning it a mine
	Nodes      int
	Status     EnumStatus
}

func (e Enumeration) Solutions() int { return len(e.Assigns) }

// Enumerate finds every mine/safe assignment to the component's
// variables that satisfies all its constraints exactly. The search is
// an explicit-stack depth-first walk in fixed variable order (sorted
// cell index), pruning a branch as soon as some constraint has too
// many mines or can no longer reach its requirement.
func Enumerate(comp Component, lim Limits) Enumeration {
	lim = lim.withDefaults()
	n := len(comp.Cells)

	e := Enumeration{
		Component:  comp,
		MineCounts: make([]int, n),
	}

	// Per-constraint variable positions, so feasibility checks work
	// on positions instead of cell ids.
	positions := make([][]int, len(comp.Constraints))
	needed := make([]int, len(comp.Constraints))
	for i, c := range comp.Constraints {
		needed[i] = c.Mines
		positions[i] = make([]int, 0, len(c.Cells))
		for _, cell := range c.Cells {
			positions[i] = append(positions[i], comp.VarIndex(cell))
		}
	}

	assign := make([]bool, n)

	// feasible reports whether the first k assigned variables can
	// still be extended to satisfy every constraint.
	feasible := func(k int) bool {
		for i, pos := range positions {
			mines, unassigned := 0, 0
			for _, p := range pos {
				if p >= k {
					unassigned++
				} else if assign[p] {
					mines++
				}
			}
			if mines > needed[i] || mines+unassigned < needed[i] {
				return false
			}
		}
		return true
	}

	record := func() {
		sol := make([]bool, n)
		copy(sol, assign)
		e.Assigns = append(e.Assigns, sol)
		for i, mine := range sol {
			if mine {
				e.MineCounts[i]++
			}
		}
	}

	if n == 0 {
		e.Status = EnumContradictory
		return e
	}

	/*
	 * choice[d] is the next value to try at depth d: 0 = safe,
	 * 1 = mine, 2 = both exhausted (backtrack). This replaces the
	 * usual recursion with a flat loop, so depth is bounded by the
	 * component size and the walk can be cut off at any node.
	 */
	choice := make([]int8, n)
	d := 0
	capped := false

	for d >= 0 {
		if choice[d] == 2 {
			choice[d] = 0
			d--
			continue
		}
		assign[d] = choice[d] == 1
		choice[d]++

		e.Nodes++
		if e.Nodes > lim.MaxNodes {
			capped = true
			break
		}

		if !feasible(d + 1) {
			continue
		}
		if d+1 == n {
			record()
			if len(e.Assigns) >= lim.MaxSolutions {
				capped = true
				break
			}
			continue
		}
		d++
	}

	switch {
	case capped:
		e.Status = EnumCapped
	case len(e.Assigns) == 0:
		e.Status = EnumContradictory
	default:
		e.Status = EnumComplete
	}
	return e
}
