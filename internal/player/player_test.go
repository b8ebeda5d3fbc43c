package player

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minesolver/internal/game"
	"minesolver/internal/solver"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newTestState(width, height int, mines []int) *game.GameState {
	field := make([]bool, width*height)
	for _, i := range mines {
		field[i] = true
	}
	grid := make(game.Grid, width*height)
	for i := range grid {
		grid[i] = game.Unknown
	}
	return &game.GameState{
		GameParams: game.GameParams{Width: width, Height: height, MineCount: len(mines)},
		Mines:      field,
		PlayerGrid: grid,
	}
}

func TestPlayFinishesEveryGame(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	params := game.GameParams{Width: 9, Height: 9, MineCount: 10}
	p := New(solver.DefaultOptions())

	for seed := uint64(1); seed <= 5; seed++ {
		rnd := rand.New(rand.NewPCG(seed, seed))
		state, err := game.NewGame(&params, 4, 4, rnd)
		require.NoError(t, err)

		outcome, err := p.Play(state)
		require.NoError(t, err)

		assert.True(t, state.Dead || state.Won)
		assert.Equal(t, state.Won, outcome.Won)

		total := 0
		for layer, n := range outcome.ByLayer() {
			assert.Contains(t, []solver.Layer{
				solver.LayerRules,
				solver.LayerPattern,
				solver.LayerCSP,
				solver.LayerProbabilistic,
			}, layer)
			total += n
		}
		assert.Equal(t, len(outcome.Moves), total)
	}
}

func TestStepPrefersCheapestLayer(t *testing.T) {
	t.Parallel()

	// A 1 whose only hidden neighbour is the mine; the arithmetic
	// layer flags it before any heavier machinery runs.
	state := newTestState(4, 1, []int{0})
	state.PlayerGrid[1] = 1
	state.PlayerGrid[2] = 0
	require.True(t, state.Won == false && state.Dead == false)

	moves, err := New(solver.DefaultOptions()).Step(state)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "rules", moves[0].Strategy)
	assert.Equal(t, solver.Action{
		Kind: solver.ActionFlag, X: 0, Y: 0, Layer: solver.LayerRules,
	}, moves[0].Action)
}

func TestStepUsesSearchWhenRulesStall(t *testing.T) {
	t.Parallel()

	// 1-2-1 wall: single-cell arithmetic is stuck, but either the
	// template layer or the exhaustive search resolves all three
	// covered cells with certainty.
	state := newTestState(3, 3, []int{0, 2})
	state.OpenCell(0, 2)
	state.OpenCell(1, 2)
	state.OpenCell(2, 2)
	state.OpenCell(0, 1)
	state.OpenCell(1, 1)
	state.OpenCell(2, 1)

	moves, err := New(solver.DefaultOptions()).Step(state)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.NotEqual(t, "rules", m.Strategy)
		assert.NotEqual(t, "guess", m.Strategy)
	}
	assert.Equal(t, game.Flagged, state.PlayerGrid[0])
	assert.True(t, state.Won, "revealing the safe middle cell ends the game")
}

func TestPlaySolvableWithoutGuessing(t *testing.T) {
	t.Parallel()

	// Single corner mine: the first reveal floods everything else,
	// so the game is over before any strategy runs.
	state := newTestState(4, 4, []int{0})
	state.OpenCell(3, 3)
	require.True(t, state.Won)

	outcome, err := New(solver.DefaultOptions()).Play(state)
	require.NoError(t, err)
	assert.True(t, outcome.Won)
	assert.Empty(t, outcome.Moves)
}

func TestApplySkipsStaleActions(t *testing.T) {
	t.Parallel()

	state := newTestState(3, 1, []int{0})
	state.OpenCell(1, 0)

	// Revealing an already open cell is stale.
	assert.False(t, apply(state, solver.Action{
		Kind: solver.ActionReveal, X: 1, Y: 0,
	}))

	// Flagging a hidden cell is not.
	assert.True(t, apply(state, solver.Action{
		Kind: solver.ActionFlag, X: 0, Y: 0,
	}))
	assert.False(t, apply(state, solver.Action{
		Kind: solver.ActionFlag, X: 0, Y: 0,
	}))
}
