package schedule

import (
	"fmt"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// RouteKey is an ordered pair of terminals. Driving A->B may take a
// different time than B->A.
type RouteKey struct {
	From model.Terminal
	To   model.Terminal
}

// DrivingTimesMap holds the configured driving time per route.
type DrivingTimesMap map[RouteKey]interval.TimeDelta

// DrivingTimes answers driving time queries from a fixed table. It is never
// modified after construction and is safe for concurrent use.
type DrivingTimes struct {
	table DrivingTimesMap
}

// NewDrivingTimes copies m into a lookup table. Negative durations are
// rejected.
func NewDrivingTimes(m DrivingTimesMap) (*DrivingTimes, error) {
	table := make(DrivingTimesMap, len(m))
	for k, d := range m {
		if d < 0 {
			return nil, fmt.Errorf("driving time %s->%s is negative: %d", k.From, k.To, d)
		}
		table[k] = d
	}
	return &DrivingTimes{table: table}, nil
}

// DrivingTimesFromMatrix builds the table from a square matrix whose rows
// and columns follow order: matrix[i][j] is the time from order[i] to
// order[j].
func DrivingTimesFromMatrix(order []model.Terminal, matrix [][]interval.TimeDelta) (*DrivingTimes, error) {
	if len(matrix) != len(order) {
		return nil, fmt.Errorf("driving matrix has %d rows for %d terminals", len(matrix), len(order))
	}
	m := make(DrivingTimesMap, len(order)*len(order))
	for i, row := range matrix {
		if len(row) != len(order) {
			return nil, fmt.Errorf("driving matrix row %d has %d columns for %d terminals", i, len(row), len(order))
		}
		for j, d := range row {
			m[RouteKey{From: order[i], To: order[j]}] = d
		}
	}
	return NewDrivingTimes(m)
}

// DrivingTime returns the time to drive from from to to. It is zero when
// both are the same terminal.
func (d *DrivingTimes) DrivingTime(from, to model.Terminal) (interval.TimeDelta, error) {
	if from == to {
		return 0, nil
	}
	if d != nil {
		if t, ok := d.table[RouteKey{From: from, To: to}]; ok {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s->%s", ErrUnknownRoute, from, to)
}

// Len returns the number of configured routes.
func (d *DrivingTimes) Len() int {
	if d == nil {
		return 0
	}
	return len(d.table)
}
