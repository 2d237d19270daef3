package searcher

import "pyl/game"

// TerminalNode marks a state where the game is over. It has no children.
type TerminalNode struct {
	node
}

func newTerminalNode(state game.State) *TerminalNode {
	return &TerminalNode{node: newNode(state)}
}

func (n *TerminalNode) scan(s *Search, depth int) {
	n.enter(s, depth)
}

// Payoff in a final state is 1 for a solo winner, split evenly among
// players tied for the strictly highest score, and 0 for everyone else.
// Players who whammied out get nothing even if nominally tied for high
// score. The components always sum to 1, which equates to 0 uncertainty.
func (n *TerminalNode) Payoff() Payoff {
	if !n.payoff.IsNull() {
		return n.payoff
	}

	max := uint16(0)
	count := 0
	for _, p := range n.state.Players {
		switch {
		case p.Out():
		case p.Score == max:
			count++
		case p.Score > max:
			max = p.Score
			count = 1
		}
	}

	n.payoff.clear()
	for i, p := range n.state.Players {
		if p.Score == max && !p.Out() {
			n.payoff.assign(i, 1/game.Prob(count))
		}
	}
	return n.payoff
}
