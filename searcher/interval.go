package searcher

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// Interval is a half-open numeric range [Min, Max).
type Interval[T number] struct {
	min, max T
}

// NewInterval orders its endpoints so that Min <= Max.
func NewInterval[T number](t1, t2 T) Interval[T] {
	if t1 < t2 {
		return Interval[T]{min: t1, max: t2}
	}
	return Interval[T]{min: t2, max: t1}
}

func (i Interval[T]) Min() T   { return i.min }
func (i Interval[T]) Max() T   { return i.max }
func (i Interval[T]) Width() T { return i.max - i.min }

// Less reports strict ordering: every element of i is less than every
// element of other.
func (i Interval[T]) Less(other Interval[T]) bool { return i.max < other.min }

func (i Interval[T]) Greater(other Interval[T]) bool { return i.min > other.max }

// Overlaps reports whether the intersection of the two intervals has
// nonzero width.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return !i.Less(other) && !i.Greater(other)
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%.3f,%.3f)", float64(i.min), float64(i.max))
}
