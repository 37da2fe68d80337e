package search

import (
	"context"
	"errors"

	"github.com/kilianp07/haulplan/core/model"
)

// HillClimbConfig tunes hill climbing.
type HillClimbConfig struct {
	MaxIterations int `json:"max_iterations"`
	// Patience stops the run after that many iterations without
	// improvement. Zero disables it.
	Patience int `json:"patience"`
}

// SetDefaults fills zero fields.
func (c *HillClimbConfig) SetDefaults() {
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
}

// Validate checks the parameters.
func (c HillClimbConfig) Validate() error {
	if c.MaxIterations < 0 || c.Patience < 0 {
		return errors.New("hillclimb: max_iterations and patience must not be negative")
	}
	return nil
}

// HillClimb only ever accepts a neighbour that scores at least as well as
// the current schedule. Equal scores are accepted so the search can drift
// across plateaus.
type HillClimb struct {
	cfg HillClimbConfig
}

// NewHillClimb validates cfg after applying defaults.
func NewHillClimb(cfg HillClimbConfig) (*HillClimb, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HillClimb{cfg: cfg}, nil
}

func (h *HillClimb) Name() string { return "hillclimb" }

func (h *HillClimb) Run(ctx context.Context, env Env, m Mover, initial *model.Schedule) (*Result, error) {
	r, score, err := newRun(h.Name(), env, m, initial)
	if err != nil {
		return nil, err
	}
	current, vec := initial, r.res.Scores
	stale := 0
	for i := 0; i < h.cfg.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, err)
		}
		next, ok, err := r.neighbour(current)
		if err != nil {
			return r.finish(ctx, err)
		}
		improved := false
		if ok {
			s, v, err := r.score(next)
			if err != nil {
				return r.finish(ctx, err)
			}
			if s >= score {
				improved = s > score
				current, score, vec = next, s, v
				r.res.Accepted++
			}
		}
		r.step(current, score, vec, 0)
		if improved {
			stale = 0
			continue
		}
		stale++
		if h.cfg.Patience > 0 && stale >= h.cfg.Patience {
			break
		}
	}
	return r.finish(ctx, nil)
}
