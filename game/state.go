package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// NumPlayers is fixed: this implementation is specific to 3 players.
const NumPlayers = 3

// StateHash identifies a canonical state.
type StateHash uint64

// State is the canonical game state: three players plus the index of the
// player currently up. State is a fixed-size value type; structural
// equality (==) defines canonical identity.
type State struct {
	Players [NumPlayers]Player
	Up      uint8
}

func (s *State) up() *Player { return &s.Players[s.Up] }

// OpponentIndex returns the index of the up player's nth opponent, in
// rotation order.
func (s State) OpponentIndex(n int) int {
	return (int(s.Up) + n + 1) % NumPlayers
}

func (s State) Opponent(n int) Player { return s.Players[s.OpponentIndex(n)] }

// PasseeIndex is the index of the opponent who receives passed spins: the
// higher-scored opponent, ties going to the first opponent in rotation
// order.
func (s State) PasseeIndex() int {
	if s.Opponent(0).Score >= s.Opponent(1).Score {
		return s.OpponentIndex(0)
	}
	return s.OpponentIndex(1)
}

// ChangePlayer updates the up player after spinning or passing. If the up
// player still has spins they remain up; otherwise the first player in
// fixed order with spins remaining becomes up. If no player has spins, up
// is unchanged, which signals the end of the game.
func (s *State) ChangePlayer() {
	if s.up().Spins() > 0 {
		return
	}
	for i := range s.Players {
		if s.Players[i].Spins() > 0 {
			s.Up = uint8(i)
			return
		}
	}
}

func (s State) TotalSpins() int {
	total := 0
	for _, p := range s.Players {
		total += p.Spins()
	}
	return total
}

func (s State) CanPass() bool { return s.Players[s.Up].CanPass() }

// Terminal reports whether the game is over: the up player has no spins
// left, or both opponents are out.
func (s State) Terminal() bool {
	return s.Players[s.Up].Spins() == 0 || (s.Opponent(0).Out() && s.Opponent(1).Out())
}

// ThirdPlace reports whether the up player is strictly behind both
// opponents.
func (s State) ThirdPlace() bool {
	up := s.Players[s.Up]
	return up.Score < s.Opponent(0).Score && up.Score < s.Opponent(1).Score
}

// Lead is the up player's score advantage over the leading opponent.
func (s State) Lead() int {
	return int(s.Players[s.Up].Score) - int(s.Players[s.PasseeIndex()].Score)
}

// Hash combines every semantic field in fixed order. Equal states always
// hash equally.
func (s State) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, s.Up)
	for _, p := range s.Players {
		binary.Write(hasher, binary.LittleEndian, p.Score)
		binary.Write(hasher, binary.LittleEndian, p.Earned)
		binary.Write(hasher, binary.LittleEndian, p.Passed)
		binary.Write(hasher, binary.LittleEndian, p.Whammies)
	}
	return StateHash(hasher.Sum64())
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[P%d", s.Up)
	for _, p := range s.Players {
		fmt.Fprintf(&b, " (%d", p.Score)
		if p.Earned > 0 {
			fmt.Fprintf(&b, " E%d", p.Earned)
		}
		if p.Passed > 0 {
			fmt.Fprintf(&b, " P%d", p.Passed)
		}
		if p.Whammies > 0 {
			fmt.Fprintf(&b, " W%d", p.Whammies)
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}
