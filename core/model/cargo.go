package model

import "github.com/kilianp07/haulplan/core/interval"

// CargoDeliveryInformation is the static data needed to plan the direct
// delivery of one cargo item. It is computed once during setup and only read
// afterwards.
type CargoDeliveryInformation struct {
	// DirectDeliveryStartTimes holds the instants at which a truck can pick
	// the cargo up and drive straight to its destination, arriving while
	// the drop-off is allowed. Terminal opening hours are already applied.
	DirectDeliveryStartTimes *interval.Chain[interval.NoData]
	// DirectDrivingTime is the time needed to drive from From to To.
	DirectDrivingTime interval.TimeDelta
	From              Terminal
	To                Terminal
}

// Feasible reports whether at least one direct delivery start time exists.
func (c CargoDeliveryInformation) Feasible() bool {
	return !c.DirectDeliveryStartTimes.IsEmpty()
}
