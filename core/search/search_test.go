package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
	"github.com/kilianp07/haulplan/core/schedule"
	"github.com/kilianp07/haulplan/internal/eventbus"
)

func newGenerator(t *testing.T, seed uint64) *schedule.Generator {
	t.Helper()
	dt, err := schedule.NewDrivingTimes(schedule.DrivingTimesMap{
		{From: 0, To: 1}: 10,
		{From: 1, To: 2}: 20,
		{From: 2, To: 0}: 10,
		{From: 2, To: 1}: 5,
		{From: 1, To: 0}: 10,
		{From: 0, To: 2}: 10,
	})
	require.NoError(t, err)
	starts := func(lo, hi interval.Time) *interval.Chain[interval.NoData] {
		return interval.FromInterval(interval.MustNew(lo, hi))
	}
	g, err := schedule.New(schedule.Config{
		PlanningPeriod: interval.MustNew(0, 200),
		Trucks:         []model.TruckData{{ID: 0, StartingTerminal: 0}, {ID: 1, StartingTerminal: 2}},
		Cargo: map[model.Cargo]model.CargoDeliveryInformation{
			0: {DirectDeliveryStartTimes: starts(20, 80), DirectDrivingTime: 20, From: 1, To: 2},
			1: {DirectDeliveryStartTimes: starts(0, 150), DirectDrivingTime: 5, From: 2, To: 1},
		},
		DrivingTimes: dt,
		Seed:         seed,
	})
	require.NoError(t, err)
	return g
}

func strategies(t *testing.T) []Strategy {
	a, err := NewAnnealing(AnnealingConfig{MaxIterations: 200})
	require.NoError(t, err)
	tb, err := NewTabu(TabuConfig{MaxIterations: 50, CandidateNeighbours: 4})
	require.NoError(t, err)
	h, err := NewHillClimb(HillClimbConfig{MaxIterations: 200})
	require.NoError(t, err)
	return []Strategy{a, tb, h}
}

func TestStrategiesImproveEmptySchedule(t *testing.T) {
	for _, s := range strategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			g := newGenerator(t, 3)
			initial := g.EmptySchedule()
			res, err := s.Run(context.Background(), Env{Seed: 1}, g, initial)
			require.NoError(t, err)

			assert.Equal(t, s.Name(), res.Strategy)
			assert.Greater(t, res.BestScore, 0.1, "empty schedule scores 0.1")
			assert.Positive(t, res.Scores[schedule.ScoreDeliveries])
			assert.Positive(t, res.Iterations)
			assert.Positive(t, res.Improvements)
			assert.NoError(t, g.CheckSchedule(res.Best))
			assert.False(t, res.Interrupted)
			assert.LessOrEqual(t, res.ScoreMean, res.BestScore+1e-9)
			assert.Equal(t, 0, initial.NumTransitions(), "initial schedule is untouched")
		})
	}
}

func TestRunPublishesEvents(t *testing.T) {
	bus := eventbus.NewTyped[Event]()
	sub := bus.Subscribe()
	h, err := NewHillClimb(HillClimbConfig{MaxIterations: 20})
	require.NoError(t, err)
	g := newGenerator(t, 1)

	res, err := h.Run(context.Background(), Env{Bus: bus}, g, g.EmptySchedule())
	require.NoError(t, err)
	bus.Close()

	var kinds []EventKind
	for ev := range sub {
		assert.Equal(t, res.RunID, ev.RunID)
		kinds = append(kinds, ev.Kind)
	}
	require.GreaterOrEqual(t, len(kinds), 3)
	assert.Equal(t, EventStarted, kinds[0])
	assert.Equal(t, EventImproved, kinds[1])
	assert.Equal(t, EventFinished, kinds[len(kinds)-1])
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range strategies(t) {
		g := newGenerator(t, 1)
		res, err := s.Run(ctx, Env{}, g, g.EmptySchedule())
		require.NoError(t, err, s.Name())
		assert.True(t, res.Interrupted, s.Name())
		assert.Zero(t, res.Iterations, s.Name())
		assert.True(t, res.Best.Equal(g.EmptySchedule()), s.Name())
	}
}

type failingMover struct{ err error }

func (f failingMover) Neighbour(*model.Schedule, int) (*model.Schedule, bool, error) {
	return nil, false, f.err
}

func (f failingMover) Scores(*model.Schedule) ([]float64, error) { return []float64{0, 0, 0}, nil }

func TestRunPropagatesMoverErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, s := range strategies(t) {
		_, err := s.Run(context.Background(), Env{}, failingMover{err: boom}, model.EmptySchedule(nil))
		assert.ErrorIs(t, err, boom, s.Name())
	}
}

func TestEnvRejectsWrongWeights(t *testing.T) {
	h, err := NewHillClimb(HillClimbConfig{})
	require.NoError(t, err)
	g := newGenerator(t, 1)
	_, err = h.Run(context.Background(), Env{Weights: []float64{1}}, g, g.EmptySchedule())
	assert.Error(t, err)
}

func TestWeightedScore(t *testing.T) {
	got, err := WeightedScore([]float64{1, 0.5, 0.25}, []float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)

	_, err = WeightedScore([]float64{1}, DefaultWeights)
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	g := newGenerator(t, 1)
	a := g.EmptySchedule()
	leg, err := model.NewTransition(20, 40, 1, 2, 0)
	require.NoError(t, err)
	c, err := interval.FromIntervals(leg)
	require.NoError(t, err)
	b := a.With(0, c)
	b2 := a.With(0, c.Clone())
	b3 := a.With(1, c.Clone())

	assert.Equal(t, Fingerprint(a), Fingerprint(g.EmptySchedule()))
	assert.Equal(t, Fingerprint(b), Fingerprint(b2))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(b), Fingerprint(b3), "same leg on another truck")
}

func TestMultiStart(t *testing.T) {
	g := newGenerator(t, 1)
	h, err := NewHillClimb(HillClimbConfig{MaxIterations: 50})
	require.NoError(t, err)

	best, all, err := MultiStart(context.Background(), g, h, Env{}, 4, 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	ids := map[string]struct{}{}
	for _, r := range all {
		require.NotNil(t, r)
		assert.LessOrEqual(t, r.BestScore, best.BestScore)
		ids[r.RunID.String()] = struct{}{}
	}
	assert.Len(t, ids, 4)
	assert.Positive(t, g.CacheSize(), "forks fill the shared cache")

	_, _, err = MultiStart(context.Background(), g, h, Env{}, 0, 1)
	assert.Error(t, err)
}

func TestStrategyRegistry(t *testing.T) {
	assert.Equal(t, []string{"annealing", "hillclimb", "tabu"}, Strategies.Names())

	s, err := Strategies.Create(factory.ModuleConfig{Type: "annealing", Conf: map[string]any{"alpha": "0.5", "max_iterations": 7}})
	require.NoError(t, err)
	a, ok := s.(*Annealing)
	require.True(t, ok)
	assert.Equal(t, 0.5, a.cfg.Alpha)
	assert.Equal(t, 7, a.cfg.MaxIterations)
	assert.Equal(t, 10.0, a.cfg.InitialTemperature)

	_, err = Strategies.Create(factory.ModuleConfig{Type: "annealing", Conf: map[string]any{"alpha": 2}})
	assert.Error(t, err)
	_, err = Strategies.Create(factory.ModuleConfig{Type: "tabu", Conf: map[string]any{"tabu_list_size": -1}})
	assert.Error(t, err)

	s, err = Strategies.Create(factory.ModuleConfig{Type: "hillclimb"})
	require.NoError(t, err)
	assert.Equal(t, "hillclimb", s.Name())
}
