package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/haulplan/core/logger"
	"github.com/kilianp07/haulplan/core/model"
	"github.com/kilianp07/haulplan/core/schedule"
	"github.com/kilianp07/haulplan/internal/eventbus"
)

// Mover is what a strategy needs from the schedule generator.
type Mover interface {
	Neighbour(current *model.Schedule, numTries int) (*model.Schedule, bool, error)
	Scores(s *model.Schedule) ([]float64, error)
}

// Strategy explores the neighbourhood of a schedule looking for a better
// one. Implementations hold configuration only and may run concurrently.
type Strategy interface {
	Name() string
	Run(ctx context.Context, env Env, m Mover, initial *model.Schedule) (*Result, error)
}

// DefaultWeights favour delivering cargo over leaving trucks idle or
// driving efficiently.
var DefaultWeights = []float64{1, 0.1, 0.5}

// Env carries what a run needs besides the strategy's own settings.
type Env struct {
	// Weights fold the score vector into one value, see WeightedScore.
	// Nil means DefaultWeights.
	Weights []float64
	// NumTries is passed to every Neighbour call. Zero means 10.
	NumTries int
	// Seed drives the strategy's own random choices, such as annealing
	// acceptance.
	Seed uint64
	// ProgressEvery publishes a progress event every n iterations. Zero
	// disables progress events; improvements are always published.
	ProgressEvery int
	Bus           *eventbus.TypedBus[Event]
	Logger        logger.Logger
}

func (e Env) withDefaults() (Env, error) {
	if e.Weights == nil {
		e.Weights = DefaultWeights
	}
	if len(e.Weights) != schedule.NumScores {
		return e, fmt.Errorf("expected %d score weights, got %d", schedule.NumScores, len(e.Weights))
	}
	if e.NumTries <= 0 {
		e.NumTries = 10
	}
	e.Logger = logger.OrNop(e.Logger)
	return e, nil
}

// WeightedScore folds a score vector into one value, higher is better.
func WeightedScore(scores, weights []float64) (float64, error) {
	if len(scores) != len(weights) {
		return 0, fmt.Errorf("%d scores for %d weights", len(scores), len(weights))
	}
	return floats.Dot(scores, weights), nil
}

// Result is the outcome of one run.
type Result struct {
	RunID     uuid.UUID
	Strategy  string
	Best      *model.Schedule
	BestScore float64
	// Scores is the unweighted score vector of Best.
	Scores       []float64
	Iterations   int
	Accepted     int
	Improvements int
	// ScoreMean and ScoreStdDev summarise the score of the current
	// schedule over all iterations.
	ScoreMean   float64
	ScoreStdDev float64
	Elapsed     time.Duration
	// Interrupted is set when the context ended the run early.
	Interrupted bool
}

// run is the bookkeeping shared by all strategies: scoring, best-so-far
// tracking, events and logs.
type run struct {
	env     Env
	m       Mover
	res     *Result
	rng     *rand.Rand
	started time.Time
	trace   []float64
}

func newRun(name string, env Env, m Mover, initial *model.Schedule) (*run, float64, error) {
	env, err := env.withDefaults()
	if err != nil {
		return nil, 0, err
	}
	r := &run{
		env:     env,
		m:       m,
		rng:     rand.New(rand.NewPCG(env.Seed, 0x5eed)),
		started: time.Now(),
		res:     &Result{RunID: uuid.New(), Strategy: name},
	}
	score, vec, err := r.score(initial)
	if err != nil {
		return nil, 0, err
	}
	r.res.Best, r.res.BestScore, r.res.Scores = initial, score, vec
	r.publish(EventStarted, score, 0)
	env.Logger.Infof("run %s: %s started at score %.4f", r.res.RunID, name, score)
	return r, score, nil
}

func (r *run) score(s *model.Schedule) (float64, []float64, error) {
	vec, err := r.m.Scores(s)
	if err != nil {
		return 0, nil, err
	}
	w, err := WeightedScore(vec, r.env.Weights)
	return w, vec, err
}

func (r *run) neighbour(current *model.Schedule) (*model.Schedule, bool, error) {
	return r.m.Neighbour(current, r.env.NumTries)
}

// step records the schedule the strategy holds after one iteration.
func (r *run) step(current *model.Schedule, score float64, vec []float64, temperature float64) {
	r.res.Iterations++
	r.trace = append(r.trace, score)
	if score > r.res.BestScore {
		r.res.Best, r.res.BestScore, r.res.Scores = current, score, vec
		r.res.Improvements++
		r.publish(EventImproved, score, temperature)
		r.env.Logger.Infof("run %s: %s improved to %.4f at iteration %d", r.res.RunID, r.res.Strategy, score, r.res.Iterations)
		return
	}
	if r.env.ProgressEvery > 0 && r.res.Iterations%r.env.ProgressEvery == 0 {
		r.publish(EventProgress, score, temperature)
	}
}

func (r *run) publish(kind EventKind, score, temperature float64) {
	if r.env.Bus == nil {
		return
	}
	r.env.Bus.Publish(Event{
		RunID:       r.res.RunID,
		Strategy:    r.res.Strategy,
		Kind:        kind,
		Iteration:   r.res.Iterations,
		Score:       score,
		BestScore:   r.res.BestScore,
		Temperature: temperature,
		Time:        time.Now(),
	})
}

// finish completes the result. A context error ends the run normally with
// Interrupted set; any other error is returned.
func (r *run) finish(ctx context.Context, err error) (*Result, error) {
	if err != nil && !errors.Is(err, ctx.Err()) {
		return nil, err
	}
	r.res.Interrupted = ctx.Err() != nil
	switch {
	case len(r.trace) > 1:
		r.res.ScoreMean, r.res.ScoreStdDev = stat.MeanStdDev(r.trace, nil)
	case len(r.trace) == 1:
		r.res.ScoreMean = r.trace[0]
	}
	r.res.Elapsed = time.Since(r.started)
	r.publish(EventFinished, r.res.BestScore, 0)
	r.env.Logger.Infof("run %s: %s finished after %d iterations, best %.4f", r.res.RunID, r.res.Strategy, r.res.Iterations, r.res.BestScore)
	return r.res, nil
}
