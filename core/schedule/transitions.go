package schedule

import (
	"fmt"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// AppendPossibleTransitions appends to out every direct delivery a truck
// idle at from during window can perform while still reaching to before the
// window closes. For each stretch [s, e) of legal start times two legs are
// offered: one starting at s and one ending at e. Results are memoised per
// (from, to, window); a cached answer is copied into out.
func (g *Generator) AppendPossibleTransitions(from, to model.Terminal, window interval.Interval, out []model.Transition) ([]model.Transition, error) {
	key := PlaceTimeLookup{From: from, To: to, Window: window}
	found, hit, err := g.cache.getOrCompute(key, func() ([]model.Transition, error) {
		return g.computeTransitions(key)
	})
	if err != nil {
		return out, err
	}
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
	} else {
		cacheLookups.WithLabelValues("miss").Inc()
	}
	return append(out, found...), nil
}

func (g *Generator) computeTransitions(key PlaceTimeLookup) ([]model.Transition, error) {
	var out []model.Transition
	for _, id := range g.cargoIDs {
		info := g.cargo[id]
		d := info.DirectDrivingTime
		if d <= 0 || !info.Feasible() {
			continue
		}
		driveTo, err := g.driving.DrivingTime(key.From, info.From)
		if err != nil {
			return nil, fmt.Errorf("reaching %s: %w", id, err)
		}
		var driveBack interval.TimeDelta
		// An open-ended gap has no leg to return for.
		if key.To != model.AnyTerminal {
			driveBack, err = g.driving.DrivingTime(info.To, key.To)
			if err != nil {
				return nil, fmt.Errorf("returning from %s: %w", id, err)
			}
		}
		padded, ok := key.Window.Reschedule(driveTo, -(driveBack + d))
		if !ok {
			continue
		}
		allowed := info.DirectDeliveryStartTimes.IntersectWith(padded)
		for _, starts := range allowed.All() {
			s, e := starts.Start(), starts.End()
			late := s
			if starts.Duration() > d {
				late = e - interval.Time(d)
			}
			for _, begin := range [2]interval.Time{s, late} {
				tr, err := model.NewTransition(begin, begin+interval.Time(d), info.From, info.To, id)
				if err != nil {
					return nil, err
				}
				out = append(out, tr)
			}
		}
	}
	candidatesPerWindow.Observe(float64(len(out)))
	g.log.Debugw("computed transitions", map[string]any{
		"from":       key.From.String(),
		"to":         key.To.String(),
		"window":     key.Window.String(),
		"candidates": len(out),
	})
	return out, nil
}
