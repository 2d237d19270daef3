package searcher

import "pyl/game"

// NodeCache interns exactly one node per canonical state and node kind.
// Every node created during a search is owned by the cache and released
// with it; no node is removed mid-search.
type NodeCache struct {
	spinNodes     map[game.State]*SpinNode
	decideNodes   map[game.State]*DecideNode
	terminalNodes map[game.State]*TerminalNode

	finalSpinNodes int
}

func NewNodeCache() *NodeCache {
	return &NodeCache{
		spinNodes:     make(map[game.State]*SpinNode),
		decideNodes:   make(map[game.State]*DecideNode),
		terminalNodes: make(map[game.State]*TerminalNode),
	}
}

// Node returns the unique node for a state, choosing the node kind from the
// state itself.
func (c *NodeCache) Node(state game.State) Node {
	switch {
	case state.Terminal():
		return c.TerminalNode(state)
	case state.CanPass():
		return c.DecideNode(state)
	default:
		return c.SpinNode(state)
	}
}

func (c *NodeCache) SpinNode(state game.State) *SpinNode {
	if n, ok := c.spinNodes[state]; ok {
		return n
	}
	n := newSpinNode(state)
	c.spinNodes[state] = n
	if state.TotalSpins() == 1 {
		c.finalSpinNodes++
	}
	return n
}

func (c *NodeCache) DecideNode(state game.State) *DecideNode {
	if n, ok := c.decideNodes[state]; ok {
		return n
	}
	n := newDecideNode(state)
	c.decideNodes[state] = n
	return n
}

func (c *NodeCache) TerminalNode(state game.State) *TerminalNode {
	if n, ok := c.terminalNodes[state]; ok {
		return n
	}
	n := newTerminalNode(state)
	c.terminalNodes[state] = n
	return n
}

// Size is the number of distinct spin and decide nodes, the key indicator
// of search blow-up.
func (c *NodeCache) Size() int {
	return len(c.spinNodes) + len(c.decideNodes)
}

// FinalSpinNodes counts spin nodes whose state has exactly one spin left.
func (c *NodeCache) FinalSpinNodes() int { return c.finalSpinNodes }

// ForEach visits every cached node, of every kind.
func (c *NodeCache) ForEach(f func(Node)) {
	for _, n := range c.spinNodes {
		f(n)
	}
	for _, n := range c.decideNodes {
		f(n)
	}
	for _, n := range c.terminalNodes {
		f(n)
	}
}
