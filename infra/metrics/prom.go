package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/haulplan/core/search"
)

// PromSink exposes search progress as Prometheus metrics.
type PromSink struct {
	events      *prometheus.CounterVec
	best        *prometheus.GaugeVec
	iterations  *prometheus.GaugeVec
	temperature *prometheus.GaugeVec
}

// NewPromSink registers search metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Metrics
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "haulplan_search_events_total",
		Help: "Search events by strategy and kind",
	}, []string{"strategy", "kind"})
	best := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "haulplan_search_best_score",
		Help: "Best weighted score of the latest run per strategy",
	}, []string{"strategy"})
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "haulplan_search_iterations",
		Help: "Iterations performed by the latest run per strategy",
	}, []string{"strategy"})
	temperature := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "haulplan_search_temperature",
		Help: "Current annealing temperature",
	}, []string{"strategy"})

	var err error
	if events, err = register(reg, events); err != nil {
		return nil, err
	}
	if best, err = register(reg, best); err != nil {
		return nil, err
	}
	if iterations, err = register(reg, iterations); err != nil {
		return nil, err
	}
	if temperature, err = register(reg, temperature); err != nil {
		return nil, err
	}
	return &PromSink{events: events, best: best, iterations: iterations, temperature: temperature}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSearchEvent updates the counters and gauges for ev.
func (s *PromSink) RecordSearchEvent(ev search.Event) error {
	s.events.WithLabelValues(ev.Strategy, string(ev.Kind)).Inc()
	s.iterations.WithLabelValues(ev.Strategy).Set(float64(ev.Iteration))
	s.best.WithLabelValues(ev.Strategy).Set(ev.BestScore)
	if ev.Temperature > 0 {
		s.temperature.WithLabelValues(ev.Strategy).Set(ev.Temperature)
	}
	return nil
}
