package searcher

import "pyl/game"

type branch struct {
	prob game.Prob
	node Node
}

// SpinNode represents the up player committing to spin. Its children are
// the weighted outcomes of applying the board.
type SpinNode struct {
	node
	branches []branch
}

func newSpinNode(state game.State) *SpinNode {
	return &SpinNode{node: newNode(state)}
}

// scan evaluates all outcomes of spinning the board.
//
// With passed-spin merging enabled, a player holding passed spins resolves
// several of them as a single pre-multiplied operator. This is valid only
// because a whammy inside the run absorbs its remainder, which the operator
// composition rule already encodes.
func (n *SpinNode) scan(s *Search, depth int) {
	if !n.enter(s, depth) {
		return
	}
	n.payoff.invalidate()

	if len(n.branches) == 0 {
		spins := 1
		if up := n.state.Players[n.state.Up]; s.options.MergePassedSpins && up.Passed > 0 {
			spins = min(int(up.Passed), s.options.MaxMergedSpins)
		}

		next := s.spinOps[spins].Apply(n.state)
		// An outcome that maps the state onto itself makes no progress.
		// Exclude it and renormalize so the remaining weights compensate.
		coverage := game.Prob(1)
		for state, prob := range next {
			if state == n.state {
				coverage -= prob
				continue
			}
			n.branches = append(n.branches, branch{prob: prob, node: s.cache.Node(state)})
		}
		if coverage < 1 {
			for i := range n.branches {
				n.branches[i].prob /= coverage
			}
		}
	}

	for _, b := range n.branches {
		b.node.scan(s, depth-1)
	}
}

// Payoff is the weighted sum of the payoffs of each spin outcome.
func (n *SpinNode) Payoff() Payoff {
	if !n.payoff.IsNull() {
		return n.payoff
	}
	n.payoff.clear()
	for _, b := range n.branches {
		n.payoff.addScaled(b.node.Payoff(), b.prob)
	}
	return n.payoff
}
