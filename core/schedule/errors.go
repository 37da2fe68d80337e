package schedule

import "errors"

var (
	// ErrUnknownRoute is returned when no driving time is configured for a
	// pair of distinct terminals. Computing driving times on demand is not
	// supported, so this is a configuration error.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrCorruptSchedule is returned when a schedule breaks its invariants,
	// for example a truck itinerary reaching outside the planning period.
	ErrCorruptSchedule = errors.New("corrupt schedule")
	// ErrUnknownTruck is returned for trucks that are not part of the fleet.
	ErrUnknownTruck = errors.New("unknown truck")
)
