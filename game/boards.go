package game

// Builder helpers for board definitions. Each helper adds one board space;
// the extra argument adds probability mass on top of the normal 1.0 for
// spaces that can also be awarded by a movement space (Big Bucks, Go Back 2
// Spaces, and so on).

func (op *SpinOperator) w() { op.Expr.Add(1, NewSpinValue(0, 0)) }

func (op *SpinOperator) s(score int, extra Prob) { op.Expr.Add(1+extra, NewSpinValue(score, 0)) }

func (op *SpinOperator) se(score int, extra Prob) { op.Expr.Add(1+extra, NewSpinValue(score, 1)) }

func (op *SpinOperator) prize(extra Prob) { op.s(2500, extra) }

// Spread returns a copy of the board with the rarest large values spread
// onto neighboring entries. Less accurate, but the smaller value count may
// allow for a greater depth of search.
func (op SpinOperator) Spread() SpinOperator {
	res := SpinOperator{Expr: NewWeightedSet[SpinValue, Prob]()}
	for v, p := range op.Expr {
		res.Expr[v] = p
	}
	res.Expr.Spread(NewSpinValue(4000, 1), NewSpinValue(3000, 1), NewSpinValue(5000, 1))
	res.Expr.Spread(NewSpinValue(1750, 0), NewSpinValue(1500, 0), NewSpinValue(2000, 0))
	res.Expr.Spread(NewSpinValue(2250, 0), NewSpinValue(2000, 0), NewSpinValue(2500, 0))
	return res
}

// NewUniformBoard is a simple 7-outcome demo board.
func NewUniformBoard() SpinOperator {
	op := SpinOperator{Expr: NewWeightedSet[SpinValue, Prob]()}
	op.Expr.Add(0.1, NewSpinValue(0, 0))    // Whammy
	op.Expr.Add(0.1, NewSpinValue(1000, 1)) // 1000+SPIN
	op.Expr.Add(0.1, NewSpinValue(4000, 1)) // 4000+SPIN
	op.Expr.Add(0.2, NewSpinValue(2000, 0)) // 2000
	op.Expr.Add(0.2, NewSpinValue(500, 0))  // 500
	op.Expr.Add(0.1, NewSpinValue(1000, 0)) // 1000
	op.Expr.Add(0.2, NewSpinValue(2500, 0)) // 2500
	return op
}

// Movement-space probabilities for the February 1985 board.
const (
	feb85PC = Prob(1) / 9 // Pick A Corner
	feb85B2 = Prob(1) / 3 // Go Back 2 Spaces
	feb85M1 = Prob(1) / 6 // Move 1
	feb85A2 = Prob(1) / 3 // Advance 2
	feb85BB = Prob(1) / 3 // Big Bucks
)

// NewFeb85Board is one of the canonical boards from the 1983-86 series,
// this one from February 1985.
func NewFeb85Board() SpinOperator {
	op := SpinOperator{Expr: NewWeightedSet[SpinValue, Prob]()}
	/* 1 */ op.s(1400, feb85PC)
	op.s(1750, feb85PC)
	op.s(2250, feb85PC)
	/* 2 */ op.s(500, 0)
	op.s(1250, 0)
	op.prize(0)
	/* 3 */ op.s(500, 0)
	op.s(2000, 0)
	op.w()
	/* 4 */ op.se(3000, feb85B2+feb85BB)
	op.se(4000, feb85B2+feb85BB)
	op.se(5000, feb85B2+feb85BB)
	/* 5 */ op.s(750, 0)
	op.prize(0)
	op.w()
	/* 6 */ op.se(700, 0) // PC=PickACorner; B2=GoBack2
	/* 7 */ op.s(750, 0)
	op.prize(0)
	op.w()
	/* 8 */ op.se(500, feb85M1)
	op.se(750, feb85M1)
	op.se(1000, feb85M1)
	/* 9 */ op.s(800, 0)
	op.w() // Move1
	/* 10 */ op.prize(feb85PC + feb85M1)
	op.prize(feb85PC + feb85M1)
	op.prize(feb85PC + feb85M1)
	/* 11 */ op.s(1500, 0)
	op.w() // Advance2
	/* 12 */ op.s(500, 0)
	op.w() // BB=BigBucks
	/* 13 */ op.s(1500, feb85A2+feb85M1)
	op.s(2500, feb85A2+feb85M1)
	op.prize(feb85A2 + feb85M1)
	/* 14 */ op.s(2000, 0)
	op.w() // Move1
	/* 15 */ op.se(1000, feb85PC+feb85M1)
	op.s(2000, feb85PC+feb85M1)
	op.prize(feb85PC + feb85M1)
	/* 16 */ op.se(750, 0)
	op.se(1500, 0)
	op.w()
	/* 17 */ op.s(600, 0)
	op.se(700, 0)
	op.prize(0)
	/* 18 */ op.se(750, 0)
	op.se(1000, 0)
	op.w()

	// Normalize at the end so the probabilities sum to 1.
	op.Expr.Normalize()
	return op
}

// NewTestBoard is a tiny already-normalized board for fixtures.
func NewTestBoard() SpinOperator {
	op := SpinOperator{Expr: NewWeightedSet[SpinValue, Prob]()}
	op.Expr.Add(0.20, NewSpinValue(0, 0))    // Whammy
	op.Expr.Add(0.30, NewSpinValue(1000, 1)) // 1000+SPIN
	op.Expr.Add(0.50, NewSpinValue(2000, 0)) // 2000
	return op
}
