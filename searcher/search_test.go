package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pyl/game"
)

func TestSearchRun(t *testing.T) {
	t.Run("normalizes the initial turn before searching", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard())
		state := game.State{Players: [game.NumPlayers]game.Player{
			{}, // up by default, but has no spins
			{Score: 1000, Earned: 2},
			{Score: 2000, Earned: 1},
		}}

		root := s.Run(state)

		require.Equal(t, uint8(1), root.State().Up, "turn should rotate to the first player with spins")
	})

	t.Run("converges on a small board", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard(), WithMetrics())
		state := game.State{Players: [game.NumPlayers]game.Player{
			{},
			{Score: 1000, Earned: 2},
			{Score: 2000, Earned: 1},
		}}

		root := s.Run(state)
		metric := s.Metric()

		require.True(t, metric.Solved, "a two-spin position should converge well before the depth cap")
		require.NotEmpty(t, metric.Iterations)
		require.NotNil(t, root.IfPlay())
	})

	t.Run("uncertainty never increases across deepening passes", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard(), WithMetrics(), WithMaxUncertainty(0.001))
		state := game.State{Players: [game.NumPlayers]game.Player{
			{},
			{Score: 1000, Earned: 3},
			{Score: 2000, Earned: 2},
		}}

		s.Run(state)
		iterations := s.Metric().Iterations

		require.NotEmpty(t, iterations)
		for i := 1; i < len(iterations); i++ {
			require.LessOrEqual(t, float64(iterations[i].Uncertainty), float64(iterations[i-1].Uncertainty)+1e-9,
				"deeper passes must not lose certainty (depth %d)", iterations[i].Depth)
		}
	})

	t.Run("cache grows monotonically and is shared across runs", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard())
		state := game.State{Players: [game.NumPlayers]game.Player{
			{},
			{Score: 1000, Earned: 2},
			{Score: 2000, Earned: 1},
		}}

		s.Run(state)
		size := s.Cache().Size()
		require.Positive(t, size)

		s.Run(state)
		require.Equal(t, size, s.Cache().Size(), "re-running the same query should reuse every node")
	})
}

// Regression baseline: trailing with three earned spins on the canonical
// board must come out as play, not pass.
func TestSearchRegressionThreeSpinsBehind(t *testing.T) {
	s := NewSearch(game.NewFeb85Board(), WithMetrics())
	state := game.State{Players: [game.NumPlayers]game.Player{
		{},
		{Score: 2000, Earned: 3},
		{Score: 3500, Earned: 2},
	}}

	root := s.Run(state)

	require.Equal(t, Play, root.Decision())
	require.NotNil(t, root.IfPlay())
	require.NotNil(t, root.IfPass())
}
