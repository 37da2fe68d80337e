package setup

import (
	"github.com/kilianp07/haulplan/core/interval"
)

// Window is a closed-open time range as it appears in input data.
type Window struct {
	Start interval.Time `json:"start"`
	End   interval.Time `json:"end"`
}

// Interval validates w.
func (w Window) Interval() (interval.Interval, error) {
	return interval.New(w.Start, w.End)
}

// Terminal is a place where cargo is picked up or dropped off. A terminal
// without opening hours is open for the whole planning period.
type Terminal struct {
	ID   string   `json:"id"`
	Open []Window `json:"open"`
}

// Truck is a vehicle of the fleet. Zero capacities are unconstrained.
type Truck struct {
	ID               string `json:"id"`
	StartingTerminal string `json:"starting_terminal"`
	MaxWeightKg      int    `json:"max_weight_kg"`
	MaxTEU           int    `json:"max_teu"`
}

// Booking is a request to move one cargo item between two terminals.
type Booking struct {
	Cargo    string `json:"cargo"`
	WeightKg int    `json:"weight_kg"`
	TEU      int    `json:"teu"`
	From     string `json:"from"`
	To       string `json:"to"`
	Pickup   Window `json:"pickup"`
	Dropoff  Window `json:"dropoff"`
}

// Route is the driving time from one terminal to another. Routes are
// directed.
type Route struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	Duration interval.TimeDelta `json:"duration"`
}

// Matrix gives driving times for every ordered pair of Terminals:
// Times[i][j] is the time from Terminals[i] to Terminals[j].
type Matrix struct {
	Terminals []string               `json:"terminals"`
	Times     [][]interval.TimeDelta `json:"times"`
}

// Problem is the raw planning input using external ids. Driving times come
// either from Routes or from Matrix.
type Problem struct {
	PlanningPeriod Window     `json:"planning_period"`
	Terminals      []Terminal `json:"terminals"`
	Trucks         []Truck    `json:"trucks"`
	Bookings       []Booking  `json:"bookings"`
	Routes         []Route    `json:"routes"`
	Matrix         *Matrix    `json:"matrix"`
}
