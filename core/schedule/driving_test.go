package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

func TestDrivingTimeSameTerminal(t *testing.T) {
	dt, err := NewDrivingTimes(DrivingTimesMap{{From: 1, To: 1}: 99})
	require.NoError(t, err)
	for _, d := range []*DrivingTimes{nil, {}, dt} {
		got, err := d.DrivingTime(1, 1)
		if err != nil || got != 0 {
			t.Fatalf("same terminal: got %d, %v", got, err)
		}
	}
}

func TestDrivingTimeLookup(t *testing.T) {
	dt, err := NewDrivingTimes(DrivingTimesMap{{From: 1, To: 2}: 30})
	require.NoError(t, err)

	got, err := dt.DrivingTime(1, 2)
	require.NoError(t, err)
	assert.Equal(t, interval.TimeDelta(30), got)

	_, err = dt.DrivingTime(2, 1)
	assert.True(t, errors.Is(err, ErrUnknownRoute), "routes are directed")

	_, err = dt.DrivingTime(2, model.AnyTerminal)
	assert.True(t, errors.Is(err, ErrUnknownRoute), "any terminal is not a route")
}

func TestNewDrivingTimesRejectsNegative(t *testing.T) {
	_, err := NewDrivingTimes(DrivingTimesMap{{From: 1, To: 2}: -1})
	assert.Error(t, err)
}

func TestDrivingTimesFromMatrix(t *testing.T) {
	order := []model.Terminal{4, 8}
	dt, err := DrivingTimesFromMatrix(order, [][]interval.TimeDelta{{0, 15}, {20, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, dt.Len())

	got, err := dt.DrivingTime(8, 4)
	require.NoError(t, err)
	assert.Equal(t, interval.TimeDelta(20), got)

	_, err = DrivingTimesFromMatrix(order, [][]interval.TimeDelta{{0, 15}})
	assert.Error(t, err)
	_, err = DrivingTimesFromMatrix(order, [][]interval.TimeDelta{{0, 15}, {20}})
	assert.Error(t, err)
	_, err = DrivingTimesFromMatrix(order, [][]interval.TimeDelta{{0, -15}, {20, 0}})
	assert.Error(t, err)
}

func TestLookupKey(t *testing.T) {
	a := PlaceTimeLookup{From: 1, To: 2, Window: interval.MustNew(0, 100)}
	b := PlaceTimeLookup{From: 1, To: 2, Window: interval.MustNew(0, 100)}
	c := PlaceTimeLookup{From: 2, To: 1, Window: interval.MustNew(0, 100)}
	d := PlaceTimeLookup{From: 1, To: 2, Window: interval.MustNew(0, 101)}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Len(t, a.Key(), lookupKeyLen)
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())
}
