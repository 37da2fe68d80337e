package model

import (
	"maps"
	"slices"
)

// Schedule maps every truck to its itinerary. A Schedule is never modified
// after construction: With returns a new Schedule that shares the chains of
// all other trucks, so callers may keep evaluating the original while a
// candidate is built.
type Schedule struct {
	chains map[Truck]*TransitionChain
}

// NewSchedule builds a schedule from chains. The chains are owned by the
// schedule afterwards and must not be mutated by the caller.
func NewSchedule(chains map[Truck]*TransitionChain) *Schedule {
	s := &Schedule{chains: make(map[Truck]*TransitionChain, len(chains))}
	for truck, c := range chains {
		if c == nil {
			c = &TransitionChain{}
		}
		s.chains[truck] = c
	}
	return s
}

// EmptySchedule returns a schedule where no truck has a leg planned.
func EmptySchedule(trucks []Truck) *Schedule {
	chains := make(map[Truck]*TransitionChain, len(trucks))
	for _, t := range trucks {
		chains[t] = &TransitionChain{}
	}
	return &Schedule{chains: chains}
}

// Chain returns the itinerary of truck. The returned chain is shared and
// must be treated as read-only; Clone it before mutating.
func (s *Schedule) Chain(truck Truck) (*TransitionChain, bool) {
	c, ok := s.chains[truck]
	return c, ok
}

// With returns a copy of s where truck follows chain. Only the truck map is
// copied; chains of other trucks are shared.
func (s *Schedule) With(truck Truck, chain *TransitionChain) *Schedule {
	out := &Schedule{chains: maps.Clone(s.chains)}
	out.chains[truck] = chain
	return out
}

// Trucks returns the trucks of the schedule in ascending order.
func (s *Schedule) Trucks() []Truck {
	return slices.Sorted(maps.Keys(s.chains))
}

// NumTransitions counts the legs planned across the fleet.
func (s *Schedule) NumTransitions() int {
	n := 0
	for _, c := range s.chains {
		n += c.Len()
	}
	return n
}

// ScheduledCargo maps each cargo carried by some leg to the truck carrying
// it. Empty runs are skipped.
func (s *Schedule) ScheduledCargo() map[Cargo]Truck {
	out := make(map[Cargo]Truck)
	for truck, c := range s.chains {
		for _, tr := range c.All() {
			if !tr.Data.IsEmptyRun() {
				out[tr.Data.Cargo] = truck
			}
		}
	}
	return out
}

// Equal reports whether both schedules plan the same legs for the same
// trucks.
func (s *Schedule) Equal(other *Schedule) bool {
	if len(s.chains) != len(other.chains) {
		return false
	}
	for truck, c := range s.chains {
		oc, ok := other.chains[truck]
		if !ok || c.Len() != oc.Len() {
			return false
		}
		for i, tr := range c.All() {
			if !tr.Equal(oc.At(i)) || tr.Data != oc.At(i).Data {
				return false
			}
		}
	}
	return true
}
