package app

import (
	"context"
	"fmt"

	"github.com/kilianp07/haulplan/config"
	"github.com/kilianp07/haulplan/core/schedule"
	"github.com/kilianp07/haulplan/core/search"
	"github.com/kilianp07/haulplan/core/setup"
	"github.com/kilianp07/haulplan/infra/logger"
	"github.com/kilianp07/haulplan/infra/metrics"
	"github.com/kilianp07/haulplan/internal/eventbus"
)

const eventBuffer = 256

// Service builds the schedule generator for the configured problem and
// runs the configured search on it.
type Service struct {
	Instance  *setup.Instance
	Generator *schedule.Generator
	Strategy  search.Strategy
	cfg       *config.Config
	sink      metrics.Sink
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	inst, err := setup.Build(cfg.Problem, logger.New("setup"))
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	for _, c := range inst.Dropped {
		logg.Warnf("booking %s cannot happen in the planning period", c)
	}

	policy, err := cfg.Generator.InsertionPolicy()
	if err != nil {
		return nil, fmt.Errorf("insertion policy: %w", err)
	}
	gcfg := inst.Config
	gcfg.Seed = cfg.Generator.Seed
	gcfg.Policy = policy
	gcfg.AllowRepeatedCargo = cfg.Generator.AllowRepeatedCargo
	gcfg.Logger = logger.New("generator")
	gen, err := schedule.New(gcfg)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	strategy, err := search.Strategies.Create(cfg.Search.Strategy)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	sink, err := metrics.NewSinks(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sinks: %w", err)
	}
	return &Service{
		Instance:  inst,
		Generator: gen,
		Strategy:  strategy,
		cfg:       cfg,
		sink:      sink,
		log:       logg,
	}, nil
}

// Plan runs the search from the empty schedule and blocks until it
// finishes, the configured timeout elapses or ctx is cancelled. The
// returned result is the best of all starts.
func (s *Service) Plan(ctx context.Context) (*search.Result, error) {
	if s.cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Search.Timeout)
		defer cancel()
	}
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		srvCtx, stop := context.WithCancel(ctx)
		defer stop()
		go func() {
			if err := metrics.StartPromServer(srvCtx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	bus := eventbus.NewTypedWithBuffer[search.Event](eventBuffer)
	collected := metrics.StartEventCollector(context.Background(), bus, s.sink)
	env := search.Env{
		Weights:       s.cfg.Search.Weights,
		NumTries:      s.cfg.Generator.NumTries,
		ProgressEvery: s.cfg.Search.ProgressEvery,
		Bus:           bus,
		Logger:        logger.New("search"),
	}
	best, all, err := search.MultiStart(ctx, s.Generator, s.Strategy, env, s.cfg.Search.Starts, s.cfg.Generator.Seed)
	// Closing the bus lets the collector drain what is still buffered.
	bus.Close()
	<-collected
	if n := bus.Dropped(); n > 0 {
		s.log.Warnf("%d search events dropped by slow metrics sinks", n)
	}
	if err != nil {
		return nil, err
	}
	s.log.Infof("%s: best score %.4f after %d starts, %d transitions planned, %d cached windows",
		s.Strategy.Name(), best.BestScore, len(all), best.Best.NumTransitions(), s.Generator.CacheSize())
	return best, nil
}

// Close releases the connections held by metrics sinks.
func (s *Service) Close() error {
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
