package model

import (
	"fmt"
	"math"
)

// Terminal identifies a location where cargo is picked up or dropped off.
type Terminal uint32

// Cargo identifies one deliverable load.
type Cargo uint32

// Truck identifies a vehicle of the fleet.
type Truck uint32

// AnyTerminal stands for "no constraint on the terminal". Driving to it
// always takes zero time; it is used for the open end of an itinerary.
const AnyTerminal Terminal = math.MaxUint32

// NoCargo marks an empty repositioning drive.
const NoCargo Cargo = math.MaxUint32

func (t Terminal) String() string {
	if t == AnyTerminal {
		return "terminal(any)"
	}
	return fmt.Sprintf("terminal(%d)", uint32(t))
}

func (c Cargo) String() string {
	if c == NoCargo {
		return "cargo(none)"
	}
	return fmt.Sprintf("cargo(%d)", uint32(c))
}

func (t Truck) String() string { return fmt.Sprintf("truck(%d)", uint32(t)) }
