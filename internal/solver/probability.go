package solver

// Estimate is the mine probability of one cell. Exact estimates come
// from completely enumerated components; capped components yield
// inexact frequencies that must not be read as true probabilities.
type Estimate struct {
	Cell  int
	P     float64
	Exact bool
}

// ProbabilityTable is the per-cell estimate set for one snapshot,
// recomputed on every probabilistic pass and never retained.
type ProbabilityTable struct {
	ByCell         map[int]Estimate
	Unconstrained  []int // hidden cells in no component, sorted ascending
	UnconstrainedP float64
}

// EstimateProbabilities derives per-variable mine frequencies from the
// enumerated solution spaces, and a single global estimate for hidden
// cells outside every component.
//
// The model is per-component independent frequency: within a component
// P(cell) = mined solutions / all solutions. The global estimate
// subtracts the expected mine count of all components (mean mines per
// solution, including the inexact means of capped components) from the
// remaining mine total and spreads the rest uniformly over the
// unconstrained cells, clamped to [0, 1].
func EstimateProbabilities(b BoardView, enums []Enumeration) ProbabilityTable {
	table := ProbabilityTable{ByCell: make(map[int]Estimate)}

	expectedConstrained := 0.0
	for _, e := range enums {
		total := e.Solutions()
		if total == 0 {
			// A contradictory component tells us nothing; its
			// cells carry maximum uncertainty.
			for _, cell := range e.Component.Cells {
				table.ByCell[cell] = Estimate{Cell: cell, P: 0.5, Exact: false}
			}
			continue
		}
		exact := e.Status == EnumComplete
		for i, cell := range e.Component.Cells {
			p := float64(e.MineCounts[i]) / float64(total)
			table.ByCell[cell] = Estimate{Cell: cell, P: p, Exact: exact}
			expectedConstrained += p
		}
	}

	for y := range b.Height() {
		for x := range b.Width() {
			i := y*b.Width() + x
			if !hidden(b.CellAt(x, y)) {
				continue
			}
			if _, constrained := table.ByCell[i]; !constrained {
				table.Unconstrained = append(table.Unconstrained, i)
			}
		}
	}

	if len(table.Unconstrained) > 0 {
		remaining := float64(b.TotalMines() - flagCount(b))
		p := (remaining - expectedConstrained) / float64(len(table.Unconstrained))
		table.UnconstrainedP = clamp01(p)
	}
	return table
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
