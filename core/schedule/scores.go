package schedule

import (
	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// Score vector positions.
const (
	ScoreDeliveries = iota
	ScoreFreeTrucks
	ScoreDrivingEfficiency
	NumScores
)

// Scores rates s, every entry in [0, 1], higher is better:
//   - the share of feasible cargo that is delivered,
//   - the share of trucks left without any leg,
//   - direct driving time of delivered cargo over the total time trucks
//     spend driving, empty runs included.
func (g *Generator) Scores(s *model.Schedule) ([]float64, error) {
	if err := g.CheckSchedule(s); err != nil {
		return nil, err
	}
	feasible := 0
	for _, info := range g.cargo {
		if info.Feasible() {
			feasible++
		}
	}

	delivered := make(map[model.Cargo]struct{})
	var direct, busy interval.TimeDelta
	free := 0
	for _, truck := range g.truckIDs {
		chain, _ := s.Chain(truck)
		if chain.IsEmpty() {
			free++
			continue
		}
		at := g.trucks[truck].StartingTerminal
		for _, leg := range chain.All() {
			approach, err := g.driving.DrivingTime(at, leg.Data.From)
			if err != nil {
				return nil, err
			}
			busy += approach + leg.Duration()
			at = leg.Data.To
			if leg.Data.IsEmptyRun() {
				continue
			}
			info := g.cargo[leg.Data.Cargo]
			if _, dup := delivered[leg.Data.Cargo]; !dup && info.Feasible() {
				delivered[leg.Data.Cargo] = struct{}{}
				direct += info.DirectDrivingTime
			}
		}
	}

	out := make([]float64, NumScores)
	if feasible > 0 {
		out[ScoreDeliveries] = float64(len(delivered)) / float64(feasible)
	}
	out[ScoreFreeTrucks] = float64(free) / float64(len(g.truckIDs))
	out[ScoreDrivingEfficiency] = float64(direct) / float64(max(busy, 1))
	return out, nil
}
