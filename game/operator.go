package game

// ProbState is a weighted set of states: the distribution over successor
// states after a probabilistic action.
type ProbState = WeightedSet[State, Prob]

// Apply computes the state that arises from applying spin result v. This is
// one of the two primitive game operations.
//
// The value's taken count is consumed from the up player's spins, which
// lets powers of the spin operator (repeated spins) be precomputed. A
// whammy zeroes the score, folds passed spins back into earned, and counts
// toward whammy-out.
func (v SpinValue) Apply(s State) State {
	res := s
	up := res.up()
	up.TakeSpins(int(v.Taken))
	if v.Whammy() {
		up.Score = 0
		up.Earned += up.Passed
		up.Passed = 0
		up.Whammies++
		if up.Out() {
			up.Earned = 0
		}
	} else {
		up.Score = uint16(min(int(up.Score)+int(v.Score), MaxScore))
		up.Earned += v.Earned
	}
	res.ChangePlayer()

	// If the now-up player cannot possibly whammy out, because too few
	// spins remain in the game, force their whammy count to zero. This
	// merges states that are behaviorally identical but would otherwise
	// differ. Only the up player need be considered as only that player
	// changed by spinning.
	up = res.up()
	if int(up.Whammies)+res.TotalSpins() < MaxWhammies {
		up.Whammies = 0
	}
	return res
}

// SpinOperator is the probabilistic description of spinning a given board:
// a weighted set of spin results. It can be thought of as "the board".
type SpinOperator struct {
	Expr WeightedSet[SpinValue, Prob]
}

// Apply expands the operator against a state, producing the weighted set of
// successor states. Distinct spin results that lead to the same state have
// their weights summed.
func (op SpinOperator) Apply(s State) ProbState {
	res := NewWeightedSet[State, Prob]()
	for v, p := range op.Expr {
		res.Add(p, v.Apply(s))
	}
	return res
}

// Compose produces the operator for applying op and then other in sequence,
// as the weighted cross product of both expansions.
func (op SpinOperator) Compose(other SpinOperator) SpinOperator {
	res := SpinOperator{Expr: NewWeightedSet[SpinValue, Prob]()}
	for v, p := range op.Expr {
		for w, q := range other.Expr {
			res.Expr.Add(p*q, v.Compose(w))
		}
	}
	return res
}

// Equal reports whether two operators hold exactly the same distribution.
func (op SpinOperator) Equal(other SpinOperator) bool {
	if len(op.Expr) != len(other.Expr) {
		return false
	}
	for v, p := range op.Expr {
		if q, ok := other.Expr[v]; !ok || p != q {
			return false
		}
	}
	return true
}

// PassOperator is the deterministic action of passing spins to an opponent.
// This is the second of the two primitive game operations.
type PassOperator struct{}

// Apply transfers the up player's earned spins to the higher-scored
// opponent and advances the turn.
func (PassOperator) Apply(s State) State {
	res := s
	res.Players[res.PasseeIndex()].Passed += res.up().Earned
	res.up().Earned = 0
	res.ChangePlayer()
	return res
}
