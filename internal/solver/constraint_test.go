package solver

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func mustSnapshot(t *testing.T, text string, mines int) Snapshot {
	t.Helper()
	s, err := ParseSnapshot(text, mines)
	require.NoError(t, err)
	return s
}

func TestExtractConstraints(t *testing.T) {
	t.Parallel()

	b := mustSnapshot(t, `
		_ _ _
		1 2 1
		0 0 0
	`, 2)

	constraints := ExtractConstraints(b)
	require.Len(t, constraints, 3)

	assert.Equal(t, Constraint{X: 0, Y: 1, Cells: []int{0, 1}, Mines: 1}, constraints[0])
	assert.Equal(t, Constraint{X: 1, Y: 1, Cells: []int{0, 1, 2}, Mines: 2}, constraints[1])
	assert.Equal(t, Constraint{X: 2, Y: 1, Cells: []int{1, 2}, Mines: 1}, constraints[2])
}

func TestExtractConstraintsDiscountsFlags(t *testing.T) {
	t.Parallel()

	b := mustSnapshot(t, `
		F _
		2 1
	`, 2)

	constraints := ExtractConstraints(b)
	require.Len(t, constraints, 2)
	// The flag at cell 0 is subtracted from both numbers.
	assert.Equal(t, Constraint{X: 0, Y: 1, Cells: []int{1}, Mines: 1}, constraints[0])
	assert.Equal(t, Constraint{X: 1, Y: 1, Cells: []int{1}, Mines: 0}, constraints[1])
}

func TestExtractConstraintsSkipsSettledNumbers(t *testing.T) {
	t.Parallel()

	// No hidden neighbours anywhere, so nothing to reason about.
	b := mustSnapshot(t, `
		0 1 F
		0 1 1
	`, 1)
	assert.Empty(t, ExtractConstraints(b))

	// A fully hidden board has no numbers to read.
	b = mustSnapshot(t, `
		_ _
		_ _
	`, 1)
	assert.Empty(t, ExtractConstraints(b))
}

func TestSplitComponents(t *testing.T) {
	t.Parallel()

	// Two separate frontiers on one board.
	b := mustSnapshot(t, `
		_ 1 0 1 _
		_ 1 0 1 _
	`, 2)

	components := SplitComponents(ExtractConstraints(b))
	require.Len(t, components, 2)

	assert.Equal(t, []int{0, 5}, components[0].Cells)
	assert.Equal(t, []int{4, 9}, components[1].Cells)
	assert.Len(t, components[0].Constraints, 2)
	assert.Len(t, components[1].Constraints, 2)
}

func TestSplitComponentsMergesSharedCells(t *testing.T) {
	t.Parallel()

	b := mustSnapshot(t, `
		_ _ _
		1 2 1
		0 0 0
	`, 2)

	components := SplitComponents(ExtractConstraints(b))
	require.Len(t, components, 1)
	assert.Equal(t, []int{0, 1, 2}, components[0].Cells)
	assert.Len(t, components[0].Constraints, 3)
}

func TestVarIndex(t *testing.T) {
	t.Parallel()

	comp := Component{Cells: []int{3, 7, 12}}
	assert.Equal(t, 0, comp.VarIndex(3))
	assert.Equal(t, 2, comp.VarIndex(12))
	assert.Equal(t, -1, comp.VarIndex(5))
}
