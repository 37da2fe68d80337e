package interval

import (
	"errors"
	"fmt"
	"math"
)

// Time is an absolute instant measured in seconds.
type Time uint64

// TimeDelta is a signed duration measured in seconds.
type TimeDelta int64

// NoData is the payload of intervals that only carry time information.
type NoData struct{}

var (
	// ErrInvalidInterval is returned when an interval would not have a
	// positive length.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrNotContained is returned by RemoveFrom when the chain reaches outside
	// the bounding interval.
	ErrNotContained = errors.New("chain not contained in bound")
	// ErrUnordered is returned when intervals handed to FromIntervals overlap
	// or are not sorted.
	ErrUnordered = errors.New("intervals not strictly ordered")
)

// IntervalWithData is the time range [start, end) carrying a payload.
// The bounds are only reachable through accessors so that end > start holds
// for every value built by this package.
type IntervalWithData[T any] struct {
	start Time
	end   Time
	Data  T
}

// Interval is a time range without payload.
type Interval = IntervalWithData[NoData]

// New creates an interval without payload.
func New(start, end Time) (Interval, error) {
	return NewWithData(start, end, NoData{})
}

// MustNew is like New but panics on invalid bounds. Intended for constants
// and tests.
func MustNew(start, end Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// NewWithData creates an interval carrying data.
func NewWithData[T any](start, end Time, data T) (IntervalWithData[T], error) {
	if end <= start {
		return IntervalWithData[T]{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}
	return IntervalWithData[T]{start: start, end: end, Data: data}, nil
}

// Start returns the first instant of the interval.
func (iv IntervalWithData[T]) Start() Time { return iv.start }

// End returns the first instant after the interval.
func (iv IntervalWithData[T]) End() Time { return iv.end }

// Duration returns end - start.
func (iv IntervalWithData[T]) Duration() TimeDelta { return TimeDelta(iv.end - iv.start) }

// Contains reports whether t lies in [start, end).
func (iv IntervalWithData[T]) Contains(t Time) bool { return t >= iv.start && t < iv.end }

// Covers reports whether other lies entirely inside iv.
func (iv IntervalWithData[T]) Covers(other Interval) bool {
	return iv.start <= other.start && other.end <= iv.end
}

// Reschedule returns a copy shifted by startDelta at the start and endDelta
// at the end. ok is false when the shifted interval would be empty or leave
// the range of Time.
func (iv IntervalWithData[T]) Reschedule(startDelta, endDelta TimeDelta) (IntervalWithData[T], bool) {
	start, ok := addDelta(iv.start, startDelta)
	if !ok {
		return IntervalWithData[T]{}, false
	}
	end, ok := addDelta(iv.end, endDelta)
	if !ok || end <= start {
		return IntervalWithData[T]{}, false
	}
	return IntervalWithData[T]{start: start, end: end, Data: iv.Data}, true
}

// Bare drops the payload.
func (iv IntervalWithData[T]) Bare() Interval {
	return Interval{start: iv.start, end: iv.end}
}

// WithData returns the same time range carrying data.
func WithData[T, U any](iv IntervalWithData[T], data U) IntervalWithData[U] {
	return IntervalWithData[U]{start: iv.start, end: iv.end, Data: data}
}

// Equal compares bounds only; payloads are ignored.
func (iv IntervalWithData[T]) Equal(other IntervalWithData[T]) bool {
	return iv.start == other.start && iv.end == other.end
}

func (iv IntervalWithData[T]) String() string {
	return fmt.Sprintf("[%d, %d)", iv.start, iv.end)
}

// Intersect returns the overlap of a and b. ok is false when they do not
// overlap.
func Intersect(a, b Interval) (Interval, bool) {
	start := max(a.start, b.start)
	end := min(a.end, b.end)
	if end <= start {
		return Interval{}, false
	}
	return Interval{start: start, end: end}, true
}

// Add shifts t by d, reporting false on under- or overflow.
func (t Time) Add(d TimeDelta) (Time, bool) { return addDelta(t, d) }

func addDelta(t Time, d TimeDelta) (Time, bool) {
	if d >= 0 {
		if uint64(d) > math.MaxUint64-uint64(t) {
			return 0, false
		}
		return t + Time(d), true
	}
	// -d cannot overflow uint64 even for math.MinInt64.
	neg := uint64(-(d + 1)) + 1
	if neg > uint64(t) {
		return 0, false
	}
	return t - Time(neg), true
}
