package model

import "fmt"

// TruckData describes a vehicle of the fleet.
type TruckData struct {
	ID               Truck
	StartingTerminal Terminal
	MaxWeightKg      int
	MaxTEU           int
}

// Validate checks that the truck description is usable.
func (t TruckData) Validate() error {
	if t.StartingTerminal == AnyTerminal {
		return fmt.Errorf("%s: starting terminal is required", t.ID)
	}
	if t.MaxWeightKg < 0 || t.MaxTEU < 0 {
		return fmt.Errorf("%s: capacity must not be negative", t.ID)
	}
	return nil
}

// CanCarry reports whether a load of the given size fits the truck. A zero
// capacity means the dimension is not constrained.
func (t TruckData) CanCarry(weightKg, teu int) bool {
	if t.MaxWeightKg > 0 && weightKg > t.MaxWeightKg {
		return false
	}
	if t.MaxTEU > 0 && teu > t.MaxTEU {
		return false
	}
	return true
}
