package searcher

import "pyl/game"

// Node is one shared search-graph node. The node cache creates exactly one
// node per canonical state and kind, so the search tree has the topology of
// a DAG.
type Node interface {
	State() game.State
	// Payoff computes the node's payoff on first request and caches it.
	Payoff() Payoff
	scan(s *Search, depth int)
	invalidate()
}

// node carries the state shared by all node kinds: the canonical state, the
// lazily computed payoff, and the visited marker for the current pass.
type node struct {
	state   game.State
	payoff  Payoff
	visited bool
}

func newNode(state game.State) node {
	return node{state: state, payoff: nullPayoff()}
}

func (n *node) State() game.State { return n.state }

func (n *node) invalidate() { n.visited = false }

// enter implements the shared scan preamble. It reports whether branches
// should be expanded: not if this node was already visited this pass, if
// the depth budget is spent, or if the payoff cached by a previous
// shallower pass is already within tolerance.
func (n *node) enter(s *Search, depth int) bool {
	if n.visited {
		return false
	}
	n.visited = true
	if depth == 0 {
		return false
	}
	return n.payoff.Uncertainty() > s.options.MaxUncertainty
}
