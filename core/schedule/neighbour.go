package schedule

import (
	"fmt"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// Neighbour draws a schedule one move away from current. Each try picks a
// truck, then uniformly one of its legs or idle gaps: a leg is removed, a
// gap receives a feasible delivery chosen by the insertion policy. A try
// fails only when the chosen gap admits no delivery. After numTries
// failures Neighbour returns (nil, false, nil).
//
// The move is not uniform over the neighbourhood: removals and insertions
// are weighted by count, not by usefulness.
func (g *Generator) Neighbour(current *model.Schedule, numTries int) (*model.Schedule, bool, error) {
	var scheduled map[model.Cargo]model.Truck
	for try := 0; try < numTries; try++ {
		truck := g.truckIDs[g.rng.IntN(len(g.truckIDs))]
		chain, ok := current.Chain(truck)
		if !ok {
			return nil, false, fmt.Errorf("%w: %s has no itinerary", ErrCorruptSchedule, truck)
		}
		if !chain.ContainedIn(g.period) {
			return nil, false, fmt.Errorf("%w: %s itinerary %s exceeds %s", ErrCorruptSchedule, truck, chain, g.period)
		}
		gaps, err := chain.RemoveFrom(g.period)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %w", ErrCorruptSchedule, truck, err)
		}

		k := g.rng.IntN(chain.Len() + gaps.Len())
		if k < chain.Len() {
			next := chain.Clone()
			next.Erase(k)
			neighbourAttempts.WithLabelValues(outcomeRemoved).Inc()
			g.log.Debugw("neighbour removed leg", map[string]any{"truck": truck.String(), "leg": chain.At(k).String()})
			return current.With(truck, next), true, nil
		}

		if scheduled == nil && !g.repeated {
			scheduled = current.ScheduledCargo()
		}
		next, ok, err := g.insertIntoGap(truck, chain, gaps.At(k-chain.Len()), scheduled)
		if err != nil {
			return nil, false, err
		}
		if ok {
			neighbourAttempts.WithLabelValues(outcomeInserted).Inc()
			return current.With(truck, next), true, nil
		}
		neighbourAttempts.WithLabelValues(outcomeNoCandidate).Inc()
	}
	neighbourAttempts.WithLabelValues(outcomeExhausted).Inc()
	g.log.Debugf("no neighbour found after %d tries", numTries)
	return nil, false, nil
}

// gapWindow returns the terminals bounding gap and the part of it a new leg
// may occupy. A bounded side loses one instant so that the new leg starts
// strictly after its predecessor ends and ends strictly before its
// successor starts.
func (g *Generator) gapWindow(truck model.Truck, chain *model.TransitionChain, gap interval.Gap) (from, to model.Terminal, window interval.Interval, ok bool, err error) {
	td, err := g.Truck(truck)
	if err != nil {
		return 0, 0, interval.Interval{}, false, err
	}
	from, to = td.StartingTerminal, model.AnyTerminal
	lo, hi := gap.Start(), gap.End()
	if gap.Data.HasPrev() {
		from = chain.At(gap.Data.Prev).Data.To
		lo++
	}
	if gap.Data.HasNext() {
		to = chain.At(gap.Data.Next).Data.From
		hi--
	}
	window, err = interval.New(lo, hi)
	if err != nil {
		return from, to, interval.Interval{}, false, nil
	}
	return from, to, window, true, nil
}

func (g *Generator) insertIntoGap(truck model.Truck, chain *model.TransitionChain, gap interval.Gap, scheduled map[model.Cargo]model.Truck) (*model.TransitionChain, bool, error) {
	from, to, window, ok, err := g.gapWindow(truck, chain, gap)
	if err != nil || !ok {
		return nil, false, err
	}
	all, err := g.AppendPossibleTransitions(from, to, window, nil)
	if err != nil {
		return nil, false, err
	}
	td := g.trucks[truck]
	candidates := all[:0]
	for _, tr := range all {
		if !window.Covers(tr.Bare()) {
			continue
		}
		if _, taken := scheduled[tr.Data.Cargo]; taken {
			continue
		}
		if load, ok := g.loads[tr.Data.Cargo]; ok && !td.CanCarry(load.WeightKg, load.TEU) {
			continue
		}
		candidates = append(candidates, tr)
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}
	chosen := candidates[g.policy.Choose(g.rng, gap, candidates)]

	at := chain.Len()
	if gap.Data.HasNext() {
		at = gap.Data.Next
	}
	next := interval.NewChain[model.TransitionInfo]()
	for i, tr := range chain.All() {
		if i == at && !next.TryPushBack(chosen) {
			return nil, false, fmt.Errorf("%w: %s does not fit %s", ErrCorruptSchedule, chosen, truck)
		}
		if !next.TryPushBack(tr) {
			return nil, false, fmt.Errorf("%w: %s legs out of order", ErrCorruptSchedule, truck)
		}
	}
	if at == chain.Len() && !next.TryPushBack(chosen) {
		return nil, false, fmt.Errorf("%w: %s does not fit %s", ErrCorruptSchedule, chosen, truck)
	}
	g.log.Debugw("neighbour inserted leg", map[string]any{"truck": truck.String(), "leg": chosen.String()})
	return next, true, nil
}
