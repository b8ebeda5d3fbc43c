package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates by trying every subset, as a reference for the
// pruned search.
func bruteForce(comp Component) (solutions int, mineCounts []int) {
	n := len(comp.Cells)
	mineCounts = make([]int, n)
	for mask := 0; mask < 1<<n; mask++ {
		ok := true
		for _, c := range comp.Constraints {
			mines := 0
			for _, cell := range c.Cells {
				if mask&(1<<comp.VarIndex(cell)) != 0 {
					mines++
				}
			}
			if mines != c.Mines {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		solutions++
		for i := range n {
			if mask&(1<<i) != 0 {
				mineCounts[i]++
			}
		}
	}
	return solutions, mineCounts
}

func TestEnumerateMatchesBruteForce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		comp Component
	}{
		{
			name: "single constraint",
			comp: Component{
				Constraints: []Constraint{{Cells: []int{0, 1, 2}, Mines: 1}},
				Cells:       []int{0, 1, 2},
			},
		},
		{
			name: "overlapping pair",
			comp: Component{
				Constraints: []Constraint{
					{Cells: []int{0, 1}, Mines: 1},
					{Cells: []int{0, 1, 2}, Mines: 2},
				},
				Cells: []int{0, 1, 2},
			},
		},
		{
			name: "chain of three",
			comp: Component{
				Constraints: []Constraint{
					{Cells: []int{0, 1}, Mines: 1},
					{Cells: []int{0, 1, 2}, Mines: 2},
					{Cells: []int{1, 2}, Mines: 1},
				},
				Cells: []int{0, 1, 2},
			},
		},
		{
			name: "wide single constraint",
			comp: Component{
				Constraints: []Constraint{{Cells: []int{0, 1, 2, 3, 4, 5, 6, 7}, Mines: 3}},
				Cells:       []int{0, 1, 2, 3, 4, 5, 6, 7},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := Enumerate(tt.comp, Limits{})
			wantSolutions, wantCounts := bruteForce(tt.comp)

			assert.Equal(t, EnumComplete, e.Status)
			assert.Equal(t, wantSolutions, e.Solutions())
			assert.Equal(t, wantCounts, e.MineCounts)
		})
	}
}

func TestEnumerateSolutionsSatisfyConstraints(t *testing.T) {
	t.Parallel()

	comp := Component{
		Constraints: []Constraint{
			{Cells: []int{0, 1, 2}, Mines: 1},
			{Cells: []int{2, 3, 4}, Mines: 2},
		},
		Cells: []int{0, 1, 2, 3, 4},
	}
	e := Enumerate(comp, Limits{})
	require.Equal(t, EnumComplete, e.Status)
	require.NotEmpty(t, e.Assigns)

	for _, sol := range e.Assigns {
		for _, c := range comp.Constraints {
			mines := 0
			for _, cell := range c.Cells {
				if sol[comp.VarIndex(cell)] {
					mines++
				}
			}
			assert.Equal(t, c.Mines, mines)
		}
	}
}

func TestEnumerateContradiction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		comp Component
	}{
		{
			name: "requirement exceeds cells",
			comp: Component{
				Constraints: []Constraint{{Cells: []int{0, 1}, Mines: 3}},
				Cells:       []int{0, 1},
			},
		},
		{
			name: "negative requirement",
			comp: Component{
				Constraints: []Constraint{{Cells: []int{0}, Mines: -1}},
				Cells:       []int{0},
			},
		},
		{
			name: "conflicting pair",
			comp: Component{
				Constraints: []Constraint{
					{Cells: []int{0, 1}, Mines: 0},
					{Cells: []int{0, 1}, Mines: 2},
				},
				Cells: []int{0, 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := Enumerate(tt.comp, Limits{})
			assert.Equal(t, EnumContradictory, e.Status)
			assert.Zero(t, e.Solutions())
		})
	}
}

func TestEnumerateSolutionCap(t *testing.T) {
	t.Parallel()

	// C(4,2) = 6 solutions, capped at 3.
	comp := Component{
		Constraints: []Constraint{{Cells: []int{0, 1, 2, 3}, Mines: 2}},
		Cells:       []int{0, 1, 2, 3},
	}
	e := Enumerate(comp, Limits{MaxSolutions: 3})
	assert.Equal(t, EnumCapped, e.Status)
	assert.Equal(t, 3, e.Solutions())
}

func TestEnumerateNodeBudget(t *testing.T) {
	t.Parallel()

	cells := make([]int, 30)
	for i := range cells {
		cells[i] = i
	}
	comp := Component{
		Constraints: []Constraint{{Cells: cells, Mines: 15}},
		Cells:       cells,
	}
	e := Enumerate(comp, Limits{MaxNodes: 1000})
	assert.Equal(t, EnumCapped, e.Status)
	assert.LessOrEqual(t, e.Nodes, 1001)
}
