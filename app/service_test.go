package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/config"
	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/setup"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Problem: setup.Problem{
			PlanningPeriod: setup.Window{Start: 0, End: 1000},
			Terminals:      []setup.Terminal{{ID: "depot"}, {ID: "port"}},
			Trucks:         []setup.Truck{{ID: "t1", StartingTerminal: "depot"}},
			Bookings: []setup.Booking{{
				Cargo:   "c1",
				From:    "depot",
				To:      "port",
				Pickup:  setup.Window{Start: 0, End: 500},
				Dropoff: setup.Window{Start: 0, End: 1000},
			}},
			Routes: []setup.Route{
				{From: "depot", To: "port", Duration: 30},
				{From: "port", To: "depot", Duration: 30},
			},
		},
		Generator: config.GeneratorConfig{Seed: 3},
		Search: config.SearchConfig{
			Strategy: factory.ModuleConfig{Type: "hillclimb", Conf: map[string]any{"max_iterations": 50}},
			Starts:   2,
		},
		Metrics: config.MetricsConfig{Sinks: []factory.ModuleConfig{{Type: "nop"}}},
	}
	cfg.SetDefaults()
	return cfg
}

func TestServicePlan(t *testing.T) {
	svc, err := New(testConfig())
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	res, err := svc.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hillclimb", res.Strategy)
	assert.Len(t, res.Best.ScheduledCargo(), 1, "the only booking is delivered")
	assert.Greater(t, res.BestScore, 1.0)
	require.NoError(t, svc.Generator.CheckSchedule(res.Best))
}

func TestServiceCancelledPlan(t *testing.T) {
	svc, err := New(testConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := svc.Plan(ctx)
	require.NoError(t, err)
	assert.True(t, res.Interrupted)
}

func TestNewErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Problem.Trucks[0].StartingTerminal = "nowhere"
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Search.Strategy.Type = "genetic"
	_, err = New(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "kafka"}}
	_, err = New(cfg)
	assert.Error(t, err)
}
