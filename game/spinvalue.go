package game

import "fmt"

// MinScoreUnit is the minimum unit of score; all scores are stored as
// multiples of this. Rounding to a coarser unit reduces the number of
// unique values to consider, especially after repeated spins, at the cost
// of some accuracy.
const MinScoreUnit = 250

// MaxScore saturates score values. Must be a multiple of MinScoreUnit.
const MaxScore = 20000

// SpinValue is the result of spinning the board one or more times. There
// are three components: score added, additional spins earned, and spins
// taken. A zero score marks a whammy.
type SpinValue struct {
	Score  uint16
	Earned uint8
	Taken  uint8
}

// NewSpinValue builds a single-spin value (taken = 1). The score is rounded
// to the nearest MinScoreUnit and saturated at MaxScore.
func NewSpinValue(score, earned int) SpinValue {
	quantized := ((score + MinScoreUnit/2) / MinScoreUnit) * MinScoreUnit
	return SpinValue{
		Score:  uint16(min(MaxScore, quantized)),
		Earned: uint8(earned),
		Taken:  1,
	}
}

func (v SpinValue) Whammy() bool { return v.Score == 0 }

// Compose combines two spin results into one with the effect of v followed
// by w. Composition lets repeated spins be precomputed into a single value:
// when neither result is a whammy the components simply add, and a whammy
// absorbs everything from the point it occurs.
func (v SpinValue) Compose(w SpinValue) SpinValue {
	if w.Whammy() {
		return w
	}
	if v.Whammy() {
		return SpinValue{Score: 0, Earned: w.Earned, Taken: 1 + w.Taken}
	}
	return SpinValue{
		Score:  uint16(min(MaxScore, int(v.Score)+int(w.Score))),
		Earned: v.Earned + w.Earned,
		Taken:  v.Taken + w.Taken,
	}
}

func (v SpinValue) String() string {
	return fmt.Sprintf("(%d+%d+%d)", v.Score, v.Earned, v.Taken)
}
