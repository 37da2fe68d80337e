package interval

import "fmt"

// NoIndex marks an open side of a gap, i.e. the bound of the outer interval
// rather than an interval of the chain.
const NoIndex = -1

// GapBounds records which chain positions enclose a gap. The indices refer to
// the chain RemoveFrom was called on and go stale as soon as that chain is
// mutated.
type GapBounds struct {
	Prev int
	Next int
}

// HasPrev reports whether an interval of the chain precedes the gap.
func (g GapBounds) HasPrev() bool { return g.Prev != NoIndex }

// HasNext reports whether an interval of the chain follows the gap.
func (g GapBounds) HasNext() bool { return g.Next != NoIndex }

// Gap is an idle stretch of time returned by RemoveFrom.
type Gap = IntervalWithData[GapBounds]

// RemoveFrom returns outer minus the chain: every stretch of positive length
// inside outer that no interval covers. The chain must be contained in
// outer, otherwise ErrNotContained is returned.
func (c *Chain[T]) RemoveFrom(outer Interval) (*Chain[GapBounds], error) {
	if !c.ContainedIn(outer) {
		return nil, fmt.Errorf("%w: chain %s, bound %s", ErrNotContained, c, outer)
	}
	out := &Chain[GapBounds]{intervals: make([]Gap, 0, c.Len()+1)}
	cursor := outer.start
	prev := NoIndex
	for i, iv := range c.All() {
		if iv.start > cursor {
			out.intervals = append(out.intervals, Gap{
				start: cursor,
				end:   iv.start,
				Data:  GapBounds{Prev: prev, Next: i},
			})
		}
		cursor = iv.end
		prev = i
	}
	if outer.end > cursor {
		out.intervals = append(out.intervals, Gap{
			start: cursor,
			end:   outer.end,
			Data:  GapBounds{Prev: prev, Next: NoIndex},
		})
	}
	return out, nil
}
