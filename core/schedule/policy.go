package schedule

import (
	"math/rand/v2"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// InsertionPolicy picks which feasible transition is inserted into an idle
// gap. candidates is never empty; Choose returns an index into it.
type InsertionPolicy interface {
	Choose(rng *rand.Rand, gap interval.Gap, candidates []model.Transition) int
}

// EarliestPolicy inserts the transition that starts first. Ties go to the
// lowest cargo id.
type EarliestPolicy struct{}

func (EarliestPolicy) Choose(_ *rand.Rand, _ interval.Gap, candidates []model.Transition) int {
	best := 0
	for i, c := range candidates[1:] {
		b := candidates[best]
		if c.Start() < b.Start() || (c.Start() == b.Start() && c.Data.Cargo < b.Data.Cargo) {
			best = i + 1
		}
	}
	return best
}

// LatestPolicy inserts the transition that ends last. Ties go to the lowest
// cargo id.
type LatestPolicy struct{}

func (LatestPolicy) Choose(_ *rand.Rand, _ interval.Gap, candidates []model.Transition) int {
	best := 0
	for i, c := range candidates[1:] {
		b := candidates[best]
		if c.End() > b.End() || (c.End() == b.End() && c.Data.Cargo < b.Data.Cargo) {
			best = i + 1
		}
	}
	return best
}

// RandomPolicy picks uniformly among the candidates.
type RandomPolicy struct{}

func (RandomPolicy) Choose(rng *rand.Rand, _ interval.Gap, candidates []model.Transition) int {
	return rng.IntN(len(candidates))
}

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = "random"

// Policies lists the insertion policies selectable from configuration.
var Policies = factory.NewRegistry[InsertionPolicy]()

func init() {
	Policies.MustRegister("earliest", func(map[string]any) (InsertionPolicy, error) { return EarliestPolicy{}, nil })
	Policies.MustRegister("latest", func(map[string]any) (InsertionPolicy, error) { return LatestPolicy{}, nil })
	Policies.MustRegister("random", func(map[string]any) (InsertionPolicy, error) { return RandomPolicy{}, nil })
}
