package schedule

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/logger"
	"github.com/kilianp07/haulplan/core/model"
)

// CargoLoad is the physical size of a cargo item, checked against truck
// capacity before insertion.
type CargoLoad struct {
	WeightKg int
	TEU      int
}

// Config is the static planning problem a Generator works on. Everything in
// it is read-only once New returns.
type Config struct {
	PlanningPeriod interval.Interval
	Trucks         []model.TruckData
	Cargo          map[model.Cargo]model.CargoDeliveryInformation
	// CargoLoads is optional. Cargo without an entry fits every truck.
	CargoLoads map[model.Cargo]CargoLoad
	// TerminalOpen holds the opening hours per terminal. Setup already
	// applies them to the cargo windows; the generator only exposes them.
	TerminalOpen map[model.Terminal]*interval.Chain[interval.NoData]
	DrivingTimes *DrivingTimes
	Seed         uint64
	// Policy chooses among insertion candidates. Nil selects RandomPolicy.
	Policy InsertionPolicy
	// AllowRepeatedCargo lets the neighbour move insert cargo that some
	// truck already carries.
	AllowRepeatedCargo bool
	Logger             logger.Logger
}

// shared is the part of a generator common to all its forks.
type shared struct {
	period       interval.Interval
	trucks       map[model.Truck]model.TruckData
	truckIDs     []model.Truck
	cargo        map[model.Cargo]model.CargoDeliveryInformation
	cargoIDs     []model.Cargo
	loads        map[model.Cargo]CargoLoad
	terminalOpen map[model.Terminal]*interval.Chain[interval.NoData]
	driving      *DrivingTimes
	repeated     bool
	cache        *transitionCache
}

// Generator enumerates feasible transitions and produces neighbour
// schedules. AppendPossibleTransitions is safe for concurrent use;
// Neighbour and Seed are not, since they draw from the generator's own
// random source. Use Fork to get one generator per goroutine.
type Generator struct {
	*shared
	rng    *rand.Rand
	policy InsertionPolicy
	log    logger.Logger
}

// New validates cfg and builds a generator.
func New(cfg Config) (*Generator, error) {
	if cfg.PlanningPeriod.Duration() <= 0 {
		return nil, fmt.Errorf("planning period %s is empty", cfg.PlanningPeriod)
	}
	if len(cfg.Trucks) == 0 {
		return nil, errors.New("no trucks configured")
	}
	sh := &shared{
		period:       cfg.PlanningPeriod,
		trucks:       make(map[model.Truck]model.TruckData, len(cfg.Trucks)),
		cargo:        maps.Clone(cfg.Cargo),
		loads:        maps.Clone(cfg.CargoLoads),
		terminalOpen: maps.Clone(cfg.TerminalOpen),
		driving:      cfg.DrivingTimes,
		repeated:     cfg.AllowRepeatedCargo,
		cache:        newTransitionCache(),
	}
	for _, t := range cfg.Trucks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := sh.trucks[t.ID]; dup {
			return nil, fmt.Errorf("%s configured twice", t.ID)
		}
		sh.trucks[t.ID] = t
	}
	sh.truckIDs = slices.Sorted(maps.Keys(sh.trucks))
	if sh.cargo == nil {
		sh.cargo = map[model.Cargo]model.CargoDeliveryInformation{}
	}
	for id, info := range sh.cargo {
		if info.DirectDrivingTime < 0 {
			return nil, fmt.Errorf("%s: negative direct driving time %d", id, info.DirectDrivingTime)
		}
	}
	sh.cargoIDs = slices.Sorted(maps.Keys(sh.cargo))

	policy := cfg.Policy
	if policy == nil {
		policy = RandomPolicy{}
	}
	return &Generator{
		shared: sh,
		rng:    newRand(cfg.Seed),
		policy: policy,
		log:    logger.OrNop(cfg.Logger),
	}, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed resets the random source. Two generators with the same
// configuration and seed produce the same neighbour sequence.
func (g *Generator) Seed(seed uint64) {
	g.rng = newRand(seed)
}

// Fork returns a generator that shares configuration and the transition
// cache with g but draws from its own random source.
func (g *Generator) Fork(seed uint64) *Generator {
	return &Generator{shared: g.shared, rng: newRand(seed), policy: g.policy, log: g.log}
}

// PlanningPeriod returns the interval every itinerary must fit in.
func (g *Generator) PlanningPeriod() interval.Interval { return g.period }

// Trucks returns the fleet in ascending id order.
func (g *Generator) Trucks() []model.Truck { return slices.Clone(g.truckIDs) }

// Cargo returns the known cargo ids in ascending order.
func (g *Generator) Cargo() []model.Cargo { return slices.Clone(g.cargoIDs) }

// CargoInfo returns the delivery information of id.
func (g *Generator) CargoInfo(id model.Cargo) (model.CargoDeliveryInformation, bool) {
	info, ok := g.cargo[id]
	return info, ok
}

// TerminalOpen returns the opening hours of a terminal.
func (g *Generator) TerminalOpen(t model.Terminal) (*interval.Chain[interval.NoData], bool) {
	c, ok := g.terminalOpen[t]
	return c, ok
}

// Truck returns the description of a fleet truck.
func (g *Generator) Truck(id model.Truck) (model.TruckData, error) {
	t, ok := g.trucks[id]
	if !ok {
		return model.TruckData{}, fmt.Errorf("%w: %s", ErrUnknownTruck, id)
	}
	return t, nil
}

// DrivingTime returns the configured time between two terminals.
func (g *Generator) DrivingTime(from, to model.Terminal) (interval.TimeDelta, error) {
	return g.driving.DrivingTime(from, to)
}

// EmptySchedule returns a schedule where no truck moves.
func (g *Generator) EmptySchedule() *model.Schedule {
	return model.EmptySchedule(g.truckIDs)
}

// CheckSchedule verifies that s covers exactly the fleet, that every
// itinerary lies inside the planning period and that every leg carries
// known cargo.
func (g *Generator) CheckSchedule(s *model.Schedule) error {
	for _, truck := range s.Trucks() {
		if _, ok := g.trucks[truck]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTruck, truck)
		}
	}
	for _, truck := range g.truckIDs {
		chain, ok := s.Chain(truck)
		if !ok {
			return fmt.Errorf("%w: %s has no itinerary", ErrCorruptSchedule, truck)
		}
		if !chain.ContainedIn(g.period) {
			return fmt.Errorf("%w: %s itinerary %s exceeds %s", ErrCorruptSchedule, truck, chain, g.period)
		}
		for i, tr := range chain.All() {
			if tr.Data.IsEmptyRun() {
				continue
			}
			if _, ok := g.cargo[tr.Data.Cargo]; !ok {
				return fmt.Errorf("%w: %s leg %d carries unknown %s", ErrCorruptSchedule, truck, i, tr.Data.Cargo)
			}
		}
	}
	return nil
}

// CacheSize returns the number of memoised lookups.
func (g *Generator) CacheSize() int { return g.cache.len() }
