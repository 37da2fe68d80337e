package search

import (
	"context"
	"errors"
	"math"

	"github.com/kilianp07/haulplan/core/model"
)

// AnnealingConfig tunes simulated annealing.
type AnnealingConfig struct {
	InitialTemperature float64 `json:"initial_temperature"`
	FinalTemperature   float64 `json:"final_temperature"`
	// Alpha multiplies the temperature after every iteration.
	Alpha         float64 `json:"alpha"`
	MaxIterations int     `json:"max_iterations"`
}

// SetDefaults fills zero fields.
func (c *AnnealingConfig) SetDefaults() {
	if c.InitialTemperature == 0 {
		c.InitialTemperature = 10
	}
	if c.FinalTemperature == 0 {
		c.FinalTemperature = 1e-3
	}
	if c.Alpha == 0 {
		c.Alpha = 0.99
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 10000
	}
}

// Validate checks the cooling schedule.
func (c AnnealingConfig) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.New("annealing: alpha must be in (0, 1)")
	}
	if c.FinalTemperature <= 0 || c.InitialTemperature <= c.FinalTemperature {
		return errors.New("annealing: need initial_temperature > final_temperature > 0")
	}
	if c.MaxIterations < 0 {
		return errors.New("annealing: max_iterations must not be negative")
	}
	return nil
}

// Annealing accepts every better neighbour and a worse one with
// probability exp(delta/T). T starts at InitialTemperature and decays
// geometrically until it reaches FinalTemperature.
type Annealing struct {
	cfg AnnealingConfig
}

// NewAnnealing validates cfg after applying defaults.
func NewAnnealing(cfg AnnealingConfig) (*Annealing, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Annealing{cfg: cfg}, nil
}

func (a *Annealing) Name() string { return "annealing" }

func (a *Annealing) Run(ctx context.Context, env Env, m Mover, initial *model.Schedule) (*Result, error) {
	r, score, err := newRun(a.Name(), env, m, initial)
	if err != nil {
		return nil, err
	}
	current, vec := initial, r.res.Scores
	temp := a.cfg.InitialTemperature
	for i := 0; i < a.cfg.MaxIterations && temp > a.cfg.FinalTemperature; i++ {
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, err)
		}
		next, ok, err := r.neighbour(current)
		if err != nil {
			return r.finish(ctx, err)
		}
		if ok {
			nextScore, nextVec, err := r.score(next)
			if err != nil {
				return r.finish(ctx, err)
			}
			delta := nextScore - score
			if delta > 0 || r.rng.Float64() < math.Exp(delta/temp) {
				current, score, vec = next, nextScore, nextVec
				r.res.Accepted++
			}
		}
		r.step(current, score, vec, temp)
		temp *= a.cfg.Alpha
	}
	return r.finish(ctx, nil)
}
