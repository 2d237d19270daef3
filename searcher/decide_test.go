package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pyl/game"
)

func TestDecideNodeBranchRestrictions(t *testing.T) {
	t.Run("third place never expands a pass branch", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard())
		state := game.State{Players: [game.NumPlayers]game.Player{
			{Score: 500, Earned: 2},
			{Score: 1000, Earned: 1},
			{Score: 2000, Earned: 1},
		}, Up: 0}

		root := s.Run(state)

		require.Nil(t, root.IfPass(), "always-spin-third-place should suppress the pass branch")
		require.NotNil(t, root.IfPlay())
		require.Equal(t, Play, root.Decision(), "with a single branch the decision is forced")
	})

	t.Run("a runaway lead suppresses the play branch", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard(), WithMaxLead(1000))
		state := game.State{Players: [game.NumPlayers]game.Player{
			{Score: 5000, Earned: 1},
			{Score: 1000, Earned: 1},
			{Score: 500},
		}, Up: 0}

		root := s.Run(state)

		require.Nil(t, root.IfPlay(), "lead beyond MaxLead should suppress the play branch")
		require.NotNil(t, root.IfPass())
		require.Equal(t, Pass, root.Decision())
		require.True(t, root.Payoff().Equal(root.IfPass().Payoff()),
			"a lone branch's payoff should propagate unchanged")
	})

	t.Run("children are shared through the node cache", func(t *testing.T) {
		s := NewSearch(game.NewTestBoard())
		state := game.State{Players: [game.NumPlayers]game.Player{
			{Score: 2000, Earned: 2},
			{Score: 1000, Earned: 1},
			{Score: 500},
		}, Up: 0}

		root := s.Run(state)

		require.NotNil(t, root.IfPlay())
		require.Same(t, root.IfPlay(), s.Cache().SpinNode(root.State()),
			"the play branch must be the cached spin node for the same state")
	})
}

func TestDecisionString(t *testing.T) {
	require.Equal(t, "play", Play.String())
	require.Equal(t, "pass", Pass.String())
	require.Equal(t, "undecided", Undecided.String())
}
