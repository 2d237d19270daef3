package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerTakeSpins(t *testing.T) {
	t.Run("draws from passed spins first", func(t *testing.T) {
		p := Player{Earned: 2, Passed: 3}
		p.TakeSpins(2)
		require.Equal(t, Player{Earned: 2, Passed: 1}, p)
	})

	t.Run("draws the remainder from earned spins", func(t *testing.T) {
		p := Player{Earned: 2, Passed: 1}
		p.TakeSpins(2)
		require.Equal(t, Player{Earned: 1, Passed: 0}, p)
	})
}

func TestStateChangePlayer(t *testing.T) {
	t.Run("keeps the up player while they have spins", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{Earned: 1}, {Earned: 2}, {}}, Up: 1}
		s.ChangePlayer()
		require.Equal(t, uint8(1), s.Up)
	})

	t.Run("advances to the first player with spins", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{}, {}, {Passed: 1}}, Up: 0}
		s.ChangePlayer()
		require.Equal(t, uint8(2), s.Up)
	})

	t.Run("leaves up unchanged when no player can act", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{Score: 1000}, {}, {}}, Up: 1}
		s.ChangePlayer()
		require.Equal(t, uint8(1), s.Up, "no spins anywhere should signal end of game, not rotate")
	})
}

func TestStatePredicates(t *testing.T) {
	t.Run("terminal when the up player has no spins", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{Score: 1000}, {Earned: 1}, {}}, Up: 0}
		require.True(t, s.Terminal())
	})

	t.Run("terminal when both opponents are out", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{
			{Score: 1000, Earned: 2},
			{Whammies: MaxWhammies},
			{Whammies: MaxWhammies},
		}, Up: 0}
		require.True(t, s.Terminal(), "opponents out should end the game even with spins left")
	})

	t.Run("third place means strictly behind both opponents", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{Score: 500, Earned: 1}, {Score: 1000}, {Score: 2000}}, Up: 0}
		require.True(t, s.ThirdPlace())

		tied := State{Players: [NumPlayers]Player{{Score: 1000, Earned: 1}, {Score: 1000}, {Score: 2000}}, Up: 0}
		require.False(t, tied.ThirdPlace(), "a tie for second is not third place")
	})

	t.Run("lead is measured against the leading opponent", func(t *testing.T) {
		s := State{Players: [NumPlayers]Player{{Score: 5000, Earned: 1}, {Score: 1000}, {Score: 3000}}, Up: 0}
		require.Equal(t, 2000, s.Lead())

		behind := State{Players: [NumPlayers]Player{{Score: 1000, Earned: 1}, {Score: 3000}, {}}, Up: 0}
		require.Equal(t, -2000, behind.Lead(), "lead should be negative when trailing")
	})
}

func TestStateHash(t *testing.T) {
	a := State{Players: [NumPlayers]Player{{Score: 1000, Earned: 2}, {Score: 2000}, {Whammies: 1}}, Up: 1}
	b := a
	require.Equal(t, a.Hash(), b.Hash(), "equal states must hash equally")

	b.Players[2].Whammies = 2
	require.NotEqual(t, a.Hash(), b.Hash(), "hash should cover whammy counts")

	c := a
	c.Up = 2
	require.NotEqual(t, a.Hash(), c.Hash(), "hash should cover the up index")
}
