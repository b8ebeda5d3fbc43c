package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerateBoard(t *testing.T, text string, mines int) (Snapshot, []Enumeration) {
	t.Helper()
	b := mustSnapshot(t, text, mines)
	components := SplitComponents(ExtractConstraints(b))
	enums := make([]Enumeration, len(components))
	for i, comp := range components {
		enums[i] = Enumerate(comp, Limits{})
	}
	return b, enums
}

func TestDeduceUnanimousVerdicts(t *testing.T) {
	t.Parallel()

	// 1-2-1 along a wall forces mine, safe, mine.
	_, enums := enumerateBoard(t, `
		_ _ _
		1 2 1
		0 0 0
	`, 2)

	deductions := Deduce(enums)
	assert.ElementsMatch(t, []Deduction{
		{Cell: 0, Mine: true},
		{Cell: 1, Mine: false},
		{Cell: 2, Mine: true},
	}, deductions)
}

func TestDeduceNothingWhenAmbiguous(t *testing.T) {
	t.Parallel()

	// One mine somewhere in two cells; no verdict is unanimous.
	_, enums := enumerateBoard(t, `
		_ _
		1 1
	`, 1)

	assert.Empty(t, Deduce(enums))
}

func TestDeduceSkipsContradictoryComponents(t *testing.T) {
	t.Parallel()

	enums := []Enumeration{
		{
			Component: Component{
				Constraints: []Constraint{{Cells: []int{0, 1}, Mines: 3}},
				Cells:       []int{0, 1},
			},
			Status: EnumContradictory,
		},
	}
	assert.Empty(t, Deduce(enums))
}

func TestDeduceIgnoresCappedComponents(t *testing.T) {
	t.Parallel()

	comp := Component{
		Constraints: []Constraint{{Cells: []int{0, 1, 2, 3}, Mines: 2}},
		Cells:       []int{0, 1, 2, 3},
	}
	e := Enumerate(comp, Limits{MaxSolutions: 2})
	require.Equal(t, EnumCapped, e.Status)

	// The surviving solutions might agree on a cell, but partial
	// agreement is not proof.
	assert.Empty(t, Deduce([]Enumeration{e}))
}

func TestDeductionToAction(t *testing.T) {
	t.Parallel()

	flag := Deduction{Cell: 7, Mine: true}.Action(5)
	assert.Equal(t, Action{Kind: ActionFlag, X: 2, Y: 1, Layer: LayerCSP}, flag)

	reveal := Deduction{Cell: 3, Mine: false}.Action(5)
	assert.Equal(t, Action{Kind: ActionReveal, X: 3, Y: 0, Layer: LayerCSP}, reveal)
}
