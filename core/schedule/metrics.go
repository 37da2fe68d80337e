package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Neighbour outcomes used as metric labels.
const (
	outcomeRemoved     = "removed"
	outcomeInserted    = "inserted"
	outcomeNoCandidate = "no_candidate"
	outcomeExhausted   = "exhausted"
)

var (
	neighbourAttempts   *prometheus.CounterVec
	cacheLookups        *prometheus.CounterVec
	candidatesPerWindow prometheus.Histogram
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, *prometheus.CounterVec, prometheus.Histogram) {
	attempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "haulplan_neighbour_attempts_total",
			Help: "Neighbour generation attempts by outcome",
		},
		[]string{"outcome"},
	)
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "haulplan_transition_cache_lookups_total",
			Help: "Feasible transition cache lookups by result",
		},
		[]string{"result"},
	)
	candidates := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "haulplan_candidate_transitions",
			Help:    "Number of feasible transitions found for a travel window",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
	return attempts, lookups, candidates
}

func init() {
	neighbourAttempts, cacheLookups, candidatesPerWindow = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers generator metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(neighbourAttempts, cacheLookups, candidatesPerWindow)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	neighbourAttempts, cacheLookups, candidatesPerWindow = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
