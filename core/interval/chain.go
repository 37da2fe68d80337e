package interval

import (
	"fmt"
	"iter"
	"strings"
)

// Chain is a sequence of intervals sorted by time where each interval starts
// strictly after the previous one ends. It only grows through TryPushBack
// and only shrinks through Erase, so the ordering holds at all times.
type Chain[T any] struct {
	intervals []IntervalWithData[T]
}

// NewChain returns an empty chain.
func NewChain[T any]() *Chain[T] {
	return &Chain[T]{}
}

// FromInterval returns a chain holding a single interval.
func FromInterval[T any](iv IntervalWithData[T]) *Chain[T] {
	return &Chain[T]{intervals: []IntervalWithData[T]{iv}}
}

// FromIntervals builds a chain from intervals already in time order.
func FromIntervals[T any](ivs ...IntervalWithData[T]) (*Chain[T], error) {
	c := &Chain[T]{intervals: make([]IntervalWithData[T], 0, len(ivs))}
	for i, iv := range ivs {
		if !c.TryPushBack(iv) {
			return nil, fmt.Errorf("%w: %s at position %d", ErrUnordered, iv, i)
		}
	}
	return c, nil
}

// Len returns the number of intervals.
func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.intervals)
}

// IsEmpty reports whether the chain has no intervals.
func (c *Chain[T]) IsEmpty() bool { return c.Len() == 0 }

// At returns the interval at position i. It panics when i is out of range,
// like slice indexing.
func (c *Chain[T]) At(i int) IntervalWithData[T] { return c.intervals[i] }

// First returns the earliest interval.
func (c *Chain[T]) First() (IntervalWithData[T], bool) {
	if c.IsEmpty() {
		return IntervalWithData[T]{}, false
	}
	return c.intervals[0], true
}

// Last returns the latest interval.
func (c *Chain[T]) Last() (IntervalWithData[T], bool) {
	if c.IsEmpty() {
		return IntervalWithData[T]{}, false
	}
	return c.intervals[len(c.intervals)-1], true
}

// All iterates over positions and intervals in time order.
func (c *Chain[T]) All() iter.Seq2[int, IntervalWithData[T]] {
	return func(yield func(int, IntervalWithData[T]) bool) {
		if c == nil {
			return
		}
		for i, iv := range c.intervals {
			if !yield(i, iv) {
				return
			}
		}
	}
}

// Intervals returns a copy of the underlying intervals.
func (c *Chain[T]) Intervals() []IntervalWithData[T] {
	if c.IsEmpty() {
		return nil
	}
	out := make([]IntervalWithData[T], len(c.intervals))
	copy(out, c.intervals)
	return out
}

// Clone returns an independent copy. Payloads are copied by value.
func (c *Chain[T]) Clone() *Chain[T] {
	return &Chain[T]{intervals: c.Intervals()}
}

// TryPushBack appends iv when the chain is empty or iv starts strictly after
// the last interval ends. It reports whether iv was appended and never
// mutates the chain otherwise.
func (c *Chain[T]) TryPushBack(iv IntervalWithData[T]) bool {
	if iv.end <= iv.start {
		return false
	}
	if last, ok := c.Last(); ok && iv.start <= last.end {
		return false
	}
	c.intervals = append(c.intervals, iv)
	return true
}

// Erase removes the interval at position i and reports whether i was in
// range. Positions of later intervals shift down by one.
func (c *Chain[T]) Erase(i int) bool {
	if i < 0 || i >= c.Len() {
		return false
	}
	c.intervals = append(c.intervals[:i:i], c.intervals[i+1:]...)
	return true
}

// ContainedIn reports whether every interval lies inside outer. Since the
// chain is sorted and non-overlapping, checking the first start and the last
// end is enough.
func (c *Chain[T]) ContainedIn(outer Interval) bool {
	first, ok := c.First()
	if !ok {
		return true
	}
	last, _ := c.Last()
	return first.start >= outer.start && last.end <= outer.end
}

// TotalDuration sums the lengths of all intervals.
func (c *Chain[T]) TotalDuration() TimeDelta {
	var total TimeDelta
	for _, iv := range c.All() {
		total += iv.Duration()
	}
	return total
}

// Equal compares the time ranges of both chains, ignoring payloads.
func (c *Chain[T]) Equal(other *Chain[T]) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, iv := range c.All() {
		if !iv.Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

func (c *Chain[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range c.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')
	return b.String()
}
