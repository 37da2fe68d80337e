package search

import (
	"context"
	"errors"

	"github.com/kilianp07/haulplan/core/model"
)

// TabuConfig tunes tabu search.
type TabuConfig struct {
	// TabuListSize is how many recently visited schedules are forbidden.
	TabuListSize int `json:"tabu_list_size"`
	// CandidateNeighbours is how many neighbours are drawn per iteration.
	CandidateNeighbours int `json:"candidate_neighbours"`
	MaxIterations       int `json:"max_iterations"`
}

// SetDefaults fills zero fields.
func (c *TabuConfig) SetDefaults() {
	if c.TabuListSize == 0 {
		c.TabuListSize = 50
	}
	if c.CandidateNeighbours == 0 {
		c.CandidateNeighbours = 10
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
}

// Validate checks the parameters.
func (c TabuConfig) Validate() error {
	if c.TabuListSize < 1 || c.CandidateNeighbours < 1 || c.MaxIterations < 0 {
		return errors.New("tabu: tabu_list_size and candidate_neighbours must be positive")
	}
	return nil
}

// Tabu moves to the best of several neighbours each iteration, even when it
// is worse than the current schedule, but never back to a recently visited
// schedule unless that beats the best one found.
type Tabu struct {
	cfg TabuConfig
}

// NewTabu validates cfg after applying defaults.
func NewTabu(cfg TabuConfig) (*Tabu, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tabu{cfg: cfg}, nil
}

func (t *Tabu) Name() string { return "tabu" }

type candidate struct {
	s     *model.Schedule
	score float64
	vec   []float64
	fp    uint64
}

func (t *Tabu) Run(ctx context.Context, env Env, m Mover, initial *model.Schedule) (*Result, error) {
	r, score, err := newRun(t.Name(), env, m, initial)
	if err != nil {
		return nil, err
	}
	current, vec := initial, r.res.Scores
	tabu := make([]uint64, 0, t.cfg.TabuListSize+1)
	isTabu := func(fp uint64) bool {
		for _, x := range tabu {
			if x == fp {
				return true
			}
		}
		return false
	}

	for i := 0; i < t.cfg.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, err)
		}
		var best, fallback *candidate
		for n := 0; n < t.cfg.CandidateNeighbours; n++ {
			next, ok, err := r.neighbour(current)
			if err != nil {
				return r.finish(ctx, err)
			}
			if !ok {
				continue
			}
			s, v, err := r.score(next)
			if err != nil {
				return r.finish(ctx, err)
			}
			c := &candidate{s: next, score: s, vec: v, fp: Fingerprint(next)}
			if fallback == nil || c.score > fallback.score {
				fallback = c
			}
			if isTabu(c.fp) && c.score <= r.res.BestScore {
				continue
			}
			if best == nil || c.score > best.score {
				best = c
			}
		}
		if best == nil {
			best = fallback
		}
		if best != nil {
			current, score, vec = best.s, best.score, best.vec
			r.res.Accepted++
			tabu = append(tabu, best.fp)
			if len(tabu) > t.cfg.TabuListSize {
				tabu = tabu[1:]
			}
		}
		r.step(current, score, vec, 0)
	}
	return r.finish(ctx, nil)
}
