package setup

import (
	"errors"
	"fmt"

	"github.com/kilianp07/haulplan/core/idmap"
	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/logger"
	"github.com/kilianp07/haulplan/core/model"
	"github.com/kilianp07/haulplan/core/schedule"
)

// ErrUnknownTerminal is returned when a truck, booking or route refers to a
// terminal that is not declared.
var ErrUnknownTerminal = errors.New("unknown terminal")

// Instance is a problem translated to dense ids, ready to build a
// schedule.Generator from. The mappers translate back to external ids.
type Instance struct {
	// Config has everything but Seed, Policy, AllowRepeatedCargo and
	// Logger filled in.
	Config    schedule.Config
	Terminals *idmap.Mapper[string]
	Trucks    *idmap.Mapper[string]
	Cargo     *idmap.Mapper[string]
	// Dropped lists bookings that cannot happen inside the planning period.
	Dropped []string
}

// Build validates p and computes per-cargo delivery windows.
//
// Pickup is possible when the origin terminal is open, the booking allows
// it and the planning period is running; dropoff likewise at the
// destination. A delivery may start at s when s is a pickup time and
// s plus the direct driving time is a dropoff time. Bookings without any
// pickup or dropoff time are dropped.
func Build(p Problem, log logger.Logger) (*Instance, error) {
	log = logger.OrNop(log)
	period, err := p.PlanningPeriod.Interval()
	if err != nil {
		return nil, fmt.Errorf("planning period: %w", err)
	}
	periodChain := interval.FromInterval(period)

	inst := &Instance{
		Terminals: idmap.New[string](),
		Trucks:    idmap.New[string](),
		Cargo:     idmap.New[string](),
	}
	cfg := schedule.Config{
		PlanningPeriod: period,
		Cargo:          make(map[model.Cargo]model.CargoDeliveryInformation),
		CargoLoads:     make(map[model.Cargo]schedule.CargoLoad),
		TerminalOpen:   make(map[model.Terminal]*interval.Chain[interval.NoData]),
	}

	for _, t := range p.Terminals {
		if _, dup := inst.Terminals.ID(t.ID); dup {
			return nil, fmt.Errorf("terminal %q declared twice", t.ID)
		}
		id := model.Terminal(inst.Terminals.AddOrFind(t.ID))
		open, err := openHours(t, period)
		if err != nil {
			return nil, err
		}
		cfg.TerminalOpen[id] = open
	}
	terminal := func(name, what string) (model.Terminal, error) {
		id, ok := inst.Terminals.ID(name)
		if !ok {
			return 0, fmt.Errorf("%s: %w %q", what, ErrUnknownTerminal, name)
		}
		return model.Terminal(id), nil
	}

	for _, t := range p.Trucks {
		if _, dup := inst.Trucks.ID(t.ID); dup {
			return nil, fmt.Errorf("truck %q declared twice", t.ID)
		}
		start, err := terminal(t.StartingTerminal, "truck "+t.ID)
		if err != nil {
			return nil, err
		}
		cfg.Trucks = append(cfg.Trucks, model.TruckData{
			ID:               model.Truck(inst.Trucks.AddOrFind(t.ID)),
			StartingTerminal: start,
			MaxWeightKg:      t.MaxWeightKg,
			MaxTEU:           t.MaxTEU,
		})
	}

	cfg.DrivingTimes, err = drivingTimes(p, terminal)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(p.Bookings))
	for _, b := range p.Bookings {
		if _, dup := seen[b.Cargo]; dup {
			return nil, fmt.Errorf("cargo %q booked twice", b.Cargo)
		}
		seen[b.Cargo] = struct{}{}

		from, err := terminal(b.From, "booking "+b.Cargo)
		if err != nil {
			return nil, err
		}
		to, err := terminal(b.To, "booking "+b.Cargo)
		if err != nil {
			return nil, err
		}
		pickupWindow, err := b.Pickup.Interval()
		if err != nil {
			return nil, fmt.Errorf("booking %s pickup: %w", b.Cargo, err)
		}
		dropoffWindow, err := b.Dropoff.Interval()
		if err != nil {
			return nil, fmt.Errorf("booking %s dropoff: %w", b.Cargo, err)
		}

		pickup := interval.IntersectAll(cfg.TerminalOpen[from], interval.FromInterval(pickupWindow), periodChain)
		dropoff := interval.IntersectAll(cfg.TerminalOpen[to], interval.FromInterval(dropoffWindow), periodChain)
		if pickup.IsEmpty() || dropoff.IsEmpty() {
			inst.Dropped = append(inst.Dropped, b.Cargo)
			log.Debugf("dropping booking %s: no pickup or dropoff time in %s", b.Cargo, period)
			continue
		}

		direct, err := cfg.DrivingTimes.DrivingTime(from, to)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.Cargo, err)
		}
		starts := interval.IntersectChains(pickup, dropoff.Shift(-direct))
		if starts.IsEmpty() {
			log.Warnf("booking %s cannot be delivered directly: pickup %s, dropoff %s, driving %d", b.Cargo, pickup, dropoff, direct)
		}

		id := model.Cargo(inst.Cargo.AddOrFind(b.Cargo))
		cfg.Cargo[id] = model.CargoDeliveryInformation{
			DirectDeliveryStartTimes: starts,
			DirectDrivingTime:        direct,
			From:                     from,
			To:                       to,
		}
		cfg.CargoLoads[id] = schedule.CargoLoad{WeightKg: b.WeightKg, TEU: b.TEU}
	}

	inst.Config = cfg
	log.Infof("problem ready: %d terminals, %d trucks, %d cargo, %d bookings dropped",
		inst.Terminals.Len(), inst.Trucks.Len(), inst.Cargo.Len(), len(inst.Dropped))
	return inst, nil
}

func openHours(t Terminal, period interval.Interval) (*interval.Chain[interval.NoData], error) {
	if len(t.Open) == 0 {
		return interval.FromInterval(period), nil
	}
	ivs := make([]interval.Interval, 0, len(t.Open))
	for _, w := range t.Open {
		iv, err := w.Interval()
		if err != nil {
			return nil, fmt.Errorf("terminal %s opening hours: %w", t.ID, err)
		}
		ivs = append(ivs, iv)
	}
	open, err := interval.FromIntervals(ivs...)
	if err != nil {
		return nil, fmt.Errorf("terminal %s opening hours: %w", t.ID, err)
	}
	return open, nil
}

func drivingTimes(p Problem, terminal func(name, what string) (model.Terminal, error)) (*schedule.DrivingTimes, error) {
	if p.Matrix != nil && len(p.Routes) > 0 {
		return nil, errors.New("driving times: give either routes or a matrix, not both")
	}
	if p.Matrix != nil {
		order := make([]model.Terminal, len(p.Matrix.Terminals))
		for i, name := range p.Matrix.Terminals {
			id, err := terminal(name, "driving matrix")
			if err != nil {
				return nil, err
			}
			order[i] = id
		}
		return schedule.DrivingTimesFromMatrix(order, p.Matrix.Times)
	}
	m := make(schedule.DrivingTimesMap, len(p.Routes))
	for _, r := range p.Routes {
		from, err := terminal(r.From, "route")
		if err != nil {
			return nil, err
		}
		to, err := terminal(r.To, "route")
		if err != nil {
			return nil, err
		}
		m[schedule.RouteKey{From: from, To: to}] = r.Duration
	}
	return schedule.NewDrivingTimes(m)
}

// TerminalName returns the external id of t.
func (i *Instance) TerminalName(t model.Terminal) string {
	if t == model.AnyTerminal {
		return ""
	}
	name, _ := i.Terminals.Key(uint32(t))
	return name
}

// TruckName returns the external id of t.
func (i *Instance) TruckName(t model.Truck) string {
	name, _ := i.Trucks.Key(uint32(t))
	return name
}

// CargoName returns the external id of c, or "" for empty runs.
func (i *Instance) CargoName(c model.Cargo) string {
	if c == model.NoCargo {
		return ""
	}
	name, _ := i.Cargo.Key(uint32(c))
	return name
}
