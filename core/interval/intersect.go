package interval

// IntersectChains returns the sub-intervals present in both a and b.
// Overlaps keep the payload of a. Both chains are walked once, advancing the
// side whose current interval ends first, so the cost is O(len(a)+len(b)).
func IntersectChains[T, U any](a *Chain[T], b *Chain[U]) *Chain[T] {
	out := NewChain[T]()
	i, j := 0, 0
	for i < a.Len() && j < b.Len() {
		x, y := a.intervals[i], b.intervals[j]
		start := max(x.start, y.start)
		end := min(x.end, y.end)
		if start < end {
			// Sorted inputs produce sorted, disjoint overlaps.
			out.intervals = append(out.intervals, IntervalWithData[T]{start: start, end: end, Data: x.Data})
		}
		switch {
		case x.end < y.end:
			i++
		case y.end < x.end:
			j++
		default:
			i++
			j++
		}
	}
	return out
}

// IntersectWith is IntersectChains against a single interval.
func (c *Chain[T]) IntersectWith(iv Interval) *Chain[T] {
	return IntersectChains(c, FromInterval(iv))
}

// IntersectAll folds IntersectChains over chains. The result keeps the
// payload of the first chain; no chains yields an empty chain.
func IntersectAll[T any](chains ...*Chain[T]) *Chain[T] {
	if len(chains) == 0 {
		return NewChain[T]()
	}
	out := chains[0].Clone()
	for _, c := range chains[1:] {
		out = IntersectChains(out, c)
	}
	return out
}

// Shift moves every interval by d. Intervals pushed below zero are clipped;
// those that vanish entirely are dropped.
func (c *Chain[T]) Shift(d TimeDelta) *Chain[T] {
	out := NewChain[T]()
	for _, iv := range c.All() {
		start, ok := addDelta(iv.start, d)
		if !ok {
			if d > 0 {
				break
			}
			start = 0
		}
		end, ok := addDelta(iv.end, d)
		if !ok {
			if d < 0 {
				continue
			}
			break
		}
		if end > start {
			out.intervals = append(out.intervals, IntervalWithData[T]{start: start, end: end, Data: iv.Data})
		}
	}
	return out
}
