package searcher

import (
	"fmt"
	"strings"

	"pyl/game"
)

// nullValue marks a payoff that has not been computed yet. Probabilities
// are never negative, so a negative first element is unambiguous.
const nullValue = game.Prob(-1)

// Payoff is a per-player win-probability vector. The probabilities need not
// sum to 1: the missing mass is the uncertainty left by incomplete search.
type Payoff struct {
	prob [game.NumPlayers]game.Prob
}

func nullPayoff() Payoff {
	var p Payoff
	p.prob[0] = nullValue
	return p
}

func (p Payoff) IsNull() bool { return p.prob[0] <= nullValue }

func (p *Payoff) invalidate() {
	p.clear()
	p.prob[0] = nullValue
}

func (p *Payoff) clear() {
	for i := range p.prob {
		p.prob[i] = 0
	}
}

// Uncertainty is the probability mass not yet attributed to any player. It
// is 0 exactly when every outcome below the node has been resolved.
func (p Payoff) Uncertainty() game.Prob {
	if p.IsNull() {
		return 1
	}
	total := game.Prob(0)
	for _, v := range p.prob {
		total += v
	}
	return 1 - total
}

// At returns player n's win probability.
func (p Payoff) At(n int) game.Prob { return p.prob[n] }

func (p *Payoff) assign(n int, value game.Prob) { p.prob[n] = value }

// addScaled accumulates other scaled by weight.
func (p *Payoff) addScaled(other Payoff, weight game.Prob) {
	for i := range p.prob {
		p.prob[i] += other.prob[i] * weight
	}
}

func (p Payoff) Equal(other Payoff) bool {
	return p.prob == other.prob
}

// Range expresses player n's win chance as the provable interval
// [probability, probability + uncertainty).
func (p Payoff) Range(n int) Interval[game.Prob] {
	return NewInterval(p.prob[n], p.prob[n]+p.Uncertainty())
}

// merge combines two payoffs when neither choice strictly dominates. The
// element-wise minimum never overstates any player's certainty.
func merge(first, second Payoff) Payoff {
	var res Payoff
	for n := range res.prob {
		res.prob[n] = min(first.prob[n], second.prob[n])
	}
	return res
}

func (p Payoff) String() string {
	if p.IsNull() {
		return "(nil)"
	}
	var b strings.Builder
	b.WriteByte('(')
	for _, v := range p.prob {
		fmt.Fprintf(&b, "%.3f ", v)
	}
	b.WriteByte(')')
	return b.String()
}
