package game

import (
	"golang.org/x/exp/constraints"
)

// Prob is the scalar type for probabilities and weights.
type Prob float64

// WeightedSet holds a set of items, each with an associated weight. Weights
// accumulate on Add and are not required to be normalized during
// construction.
type WeightedSet[T comparable, K constraints.Float] map[T]K

func NewWeightedSet[T comparable, K constraints.Float]() WeightedSet[T, K] {
	return make(WeightedSet[T, K])
}

// Add accumulates scalar onto the weight for term.
func (ws WeightedSet[T, K]) Add(scalar K, term T) {
	ws[term] += scalar
}

// Spread removes value and redistributes its weight onto the two
// neighboring entries, half each. This trades accuracy for a smaller
// number of distinct values, which may allow a greater depth of search.
func (ws WeightedSet[T, K]) Spread(value, min, max T) {
	weight := ws[value]
	ws[min] += weight / 2
	ws[max] += weight / 2
	delete(ws, value)
}

// Weight returns the total weight of all entries.
func (ws WeightedSet[T, K]) Weight() K {
	var res K
	for _, w := range ws {
		res += w
	}
	return res
}

// Normalize scales all weights so the total is 1. The total weight must be
// positive.
func (ws WeightedSet[T, K]) Normalize() {
	w := ws.Weight()
	if w <= 0 {
		panic("cannot normalize weighted set: total weight is not positive")
	}
	for term := range ws {
		ws[term] /= w
	}
}

func (ws WeightedSet[T, K]) Len() int {
	return len(ws)
}
