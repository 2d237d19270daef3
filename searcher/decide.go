package searcher

import "pyl/game"

// Decision reports which branch a DecideNode settled on.
type Decision int

const (
	Undecided Decision = iota
	Play
	Pass
)

func (d Decision) String() string {
	switch d {
	case Play:
		return "play"
	case Pass:
		return "pass"
	default:
		return "undecided"
	}
}

// DecideNode represents the up player's choice between playing their spins
// and passing them. Either branch may be suppressed by the search options.
type DecideNode struct {
	node
	ifPlay Node
	ifPass Node
}

func newDecideNode(state game.State) *DecideNode {
	return &DecideNode{node: newNode(state)}
}

// IfPlay is the branch taken if the up player spins, or nil if suppressed.
func (n *DecideNode) IfPlay() Node { return n.ifPlay }

// IfPass is the branch taken if the up player passes, or nil if suppressed.
func (n *DecideNode) IfPass() Node { return n.ifPass }

// scan expands both choices. Children are created once: a play branch
// unless the up player's lead exceeds MaxLead, and a pass branch unless the
// third-place rule forces a spin.
func (n *DecideNode) scan(s *Search, depth int) {
	if !n.enter(s, depth) {
		return
	}
	n.payoff.invalidate()

	if n.ifPlay == nil && n.ifPass == nil {
		if s.options.MaxLead == 0 || n.state.Lead() <= s.options.MaxLead {
			n.ifPlay = s.cache.SpinNode(n.state)
		}
		if !(s.options.AlwaysSpinThirdPlace && n.state.ThirdPlace()) {
			n.ifPass = s.cache.Node(s.passOp.Apply(n.state))
		}
	}

	if n.ifPlay != nil {
		n.ifPlay.scan(s, depth-1)
	}
	if n.ifPass != nil {
		n.ifPass.scan(s, depth-1)
	}
}

// Payoff propagates the choice more beneficial to the up player:
//
//  1. With neither choice scanned the payoff is unknown (depth limit).
//  2. With only one valid choice, that choice's payoff propagates.
//  3. With a strictly better choice, its payoff propagates.
//  4. On an exact tie, a conservative merge propagates, assuming nothing
//     about which choice would be taken.
func (n *DecideNode) Payoff() Payoff {
	if !n.payoff.IsNull() {
		return n.payoff
	}

	switch {
	case n.ifPlay == nil && n.ifPass == nil:
		n.payoff.clear()
	case n.ifPlay == nil:
		n.payoff = n.ifPass.Payoff()
	case n.ifPass == nil:
		n.payoff = n.ifPlay.Payoff()
	default:
		up := int(n.state.Up)
		winPlay := n.ifPlay.Payoff().At(up)
		winPass := n.ifPass.Payoff().At(up)
		switch {
		case winPlay > winPass:
			n.payoff = n.ifPlay.Payoff()
		case winPass > winPlay:
			n.payoff = n.ifPass.Payoff()
		default:
			n.payoff = merge(n.ifPass.Payoff(), n.ifPlay.Payoff())
		}
	}
	return n.payoff
}

// Decision reports which branch's payoff the node currently propagates, or
// Undecided while unresolved.
func (n *DecideNode) Decision() Decision {
	switch {
	case n.ifPlay != nil && n.payoff.Equal(n.ifPlay.Payoff()):
		return Play
	case n.ifPass != nil && n.payoff.Equal(n.ifPass.Payoff()):
		return Pass
	default:
		return Undecided
	}
}

// solved tests the convergence predicate: a forced decision, play and pass
// intervals that provably do not overlap, or both branches within the
// uncertainty tolerance.
func (n *DecideNode) solved(result *SearchResult, options SearchOptions) bool {
	if n.payoff.IsNull() || (n.ifPlay == nil && n.ifPass == nil) {
		return false
	}

	up := int(n.state.Up)
	if n.ifPlay != nil {
		result.PlayWin = n.ifPlay.Payoff().Range(up)
	}
	if n.ifPass != nil {
		result.PassWin = n.ifPass.Payoff().Range(up)
	}

	if n.ifPlay == nil || n.ifPass == nil {
		return true
	}
	if !result.PlayWin.Overlaps(result.PassWin) {
		return true
	}
	return n.ifPlay.Payoff().Uncertainty() <= options.MaxUncertainty &&
		n.ifPass.Payoff().Uncertainty() <= options.MaxUncertainty
}
