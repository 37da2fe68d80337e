package model

import "github.com/kilianp07/haulplan/core/interval"

// TransitionInfo is the route and cargo of one truck leg, everything but
// its timing.
type TransitionInfo struct {
	From  Terminal
	To    Terminal
	Cargo Cargo
}

// Transition is a truck leg: when it happens and what it carries.
type Transition = interval.IntervalWithData[TransitionInfo]

// TransitionChain is the itinerary of one truck.
type TransitionChain = interval.Chain[TransitionInfo]

// NewTransition builds a leg from from to to carrying cargo during
// [start, end).
func NewTransition(start, end interval.Time, from, to Terminal, cargo Cargo) (Transition, error) {
	return interval.NewWithData(start, end, TransitionInfo{From: from, To: to, Cargo: cargo})
}

// IsEmptyRun reports whether the leg carries no cargo.
func (i TransitionInfo) IsEmptyRun() bool { return i.Cargo == NoCargo }
