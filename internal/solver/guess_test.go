package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectOn(t *testing.T, text string, mines int, policy GuessPolicy) (Action, error) {
	t.Helper()
	b, enums := enumerateBoard(t, text, mines)
	table := EstimateProbabilities(b, enums)
	return SelectGuess(b, table, enums, policy)
}

func TestSelectGuessLowestExactProbability(t *testing.T) {
	t.Parallel()

	// Frontier cells sit at 1/3; the unconstrained corner cells are
	// worse. The guess takes the lowest-index frontier cell.
	action, err := selectOn(t, `
		1 _ _
		_ _ _
	`, 3, DefaultGuessPolicy())
	require.NoError(t, err)

	assert.Equal(t, Action{Kind: ActionReveal, X: 1, Y: 0, Layer: LayerProbabilistic}, action)
}

func TestSelectGuessInevitableGroup(t *testing.T) {
	t.Parallel()

	// A closed 50/50 pair. Waiting cannot break the tie, so the
	// flip is taken now, lowest index first.
	action, err := selectOn(t, `
		_ _
		1 1
	`, 1, DefaultGuessPolicy())
	require.NoError(t, err)

	assert.Equal(t, Action{Kind: ActionReveal, X: 0, Y: 0, Layer: LayerProbabilistic}, action)
}

func TestSelectGuessPrefersUnconstrainedOverRiskyFrontier(t *testing.T) {
	t.Parallel()

	// Every frontier cell sits at 2/3, far over the threshold, so
	// the guess heads for open territory, as far from the revealed
	// corner as it can get.
	b, enums := enumerateBoard(t, `
		2 _ _ _
		_ _ _ _
	`, 3)
	table := EstimateProbabilities(b, enums)
	require.NotEmpty(t, table.Unconstrained)

	action, err := SelectGuess(b, table, enums, DefaultGuessPolicy())
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: ActionReveal, X: 3, Y: 0, Layer: LayerProbabilistic}, action)
}

func TestSelectGuessFallsBackToLeastBadCell(t *testing.T) {
	t.Parallel()

	// A contradictory component leaves only maximum-uncertainty
	// cells. Nothing beats the threshold and there is no open
	// territory, so the least bad cell wins, ties by index.
	e := Enumeration{
		Component: Component{
			Constraints: []Constraint{{Cells: []int{0, 1}, Mines: 3}},
			Cells:       []int{0, 1},
		},
		Status: EnumContradictory,
	}
	b := mustSnapshot(t, `
		_ _
		3 3
	`, 3)
	table := EstimateProbabilities(b, []Enumeration{e})

	action, err := SelectGuess(b, table, []Enumeration{e}, DefaultGuessPolicy())
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: ActionReveal, X: 0, Y: 0, Layer: LayerProbabilistic}, action)
}

func TestSelectGuessNoLegalMove(t *testing.T) {
	t.Parallel()

	b := mustSnapshot(t, `
		0 0
		0 0
	`, 0)
	table := EstimateProbabilities(b, nil)
	_, err := SelectGuess(b, table, nil, DefaultGuessPolicy())
	assert.ErrorIs(t, err, ErrNoLegalMove)
}

func TestSelectGuessDeterministic(t *testing.T) {
	t.Parallel()

	text := `
		_ _ _ _
		2 _ _ _
		_ _ _ 1
	`
	first, err := selectOn(t, text, 5, DefaultGuessPolicy())
	require.NoError(t, err)
	for range 10 {
		again, err := selectOn(t, text, 5, DefaultGuessPolicy())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComponentIsolated(t *testing.T) {
	t.Parallel()

	b := mustSnapshot(t, `
		_ _
		1 1
	`, 1)
	comps := SplitComponents(ExtractConstraints(b))
	require.Len(t, comps, 1)
	assert.True(t, componentIsolated(b, comps[0]))

	// The constrained cell touches hidden territory beyond the
	// component, so a later reveal could still inform it.
	open := mustSnapshot(t, `
		1 _ _ _
	`, 1)
	comps = SplitComponents(ExtractConstraints(open))
	require.Len(t, comps, 1)
	assert.False(t, componentIsolated(open, comps[0]))
}
