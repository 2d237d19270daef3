package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pyl/game"
)

func TestTerminalNodePayoff(t *testing.T) {
	t.Run("solo winner takes all with zero uncertainty", func(t *testing.T) {
		n := newTerminalNode(game.State{Players: [game.NumPlayers]game.Player{
			{Score: 5000}, {Score: 3000}, {Score: 1000},
		}})

		p := n.Payoff()
		require.Equal(t, game.Prob(1), p.At(0))
		require.Equal(t, game.Prob(0), p.At(1))
		require.Equal(t, game.Prob(0), p.At(2))
		require.Equal(t, game.Prob(0), p.Uncertainty(), "terminal payoffs are fully resolved")
	})

	t.Run("ties split the win evenly", func(t *testing.T) {
		n := newTerminalNode(game.State{Players: [game.NumPlayers]game.Player{
			{Score: 4000}, {Score: 4000}, {Score: 1000},
		}})

		p := n.Payoff()
		require.InDelta(t, 0.5, float64(p.At(0)), 1e-12)
		require.InDelta(t, 0.5, float64(p.At(1)), 1e-12)
		require.Equal(t, game.Prob(0), p.At(2))
	})

	t.Run("players who whammied out win nothing even on tied score", func(t *testing.T) {
		n := newTerminalNode(game.State{Players: [game.NumPlayers]game.Player{
			{Score: 4000, Whammies: game.MaxWhammies}, {Score: 4000}, {Score: 1000},
		}})

		p := n.Payoff()
		require.Equal(t, game.Prob(0), p.At(0), "an out player cannot win")
		require.Equal(t, game.Prob(1), p.At(1))
	})

	t.Run("opponents out with zero spins is terminal with a solo payoff", func(t *testing.T) {
		state := game.State{Players: [game.NumPlayers]game.Player{
			{Score: 2000},
			{Score: 3000, Whammies: game.MaxWhammies},
			{Score: 1000, Whammies: game.MaxWhammies},
		}}
		require.True(t, state.Terminal())

		p := newTerminalNode(state).Payoff()
		require.Equal(t, game.Prob(1), p.At(0))
		require.Equal(t, game.Prob(0), p.Uncertainty())
	})

	t.Run("all players out yields the specified all-zero payoff", func(t *testing.T) {
		n := newTerminalNode(game.State{Players: [game.NumPlayers]game.Player{
			{Score: 2000, Whammies: game.MaxWhammies},
			{Score: 3000, Whammies: game.MaxWhammies},
			{Score: 1000, Whammies: game.MaxWhammies},
		}})

		p := n.Payoff()
		for i := 0; i < game.NumPlayers; i++ {
			require.Equal(t, game.Prob(0), p.At(i))
		}
		require.Equal(t, game.Prob(1), p.Uncertainty())
	})
}
