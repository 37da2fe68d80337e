package config

import (
	"fmt"
	"slices"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/infra/metrics"
)

// MetricsConfig lists where search events go.
type MetricsConfig struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr serves /metrics when set, for example ":2112".
	PrometheusAddr string `json:"prometheus_addr"`
}

// Validate checks every sink type is known.
func (c MetricsConfig) Validate() error {
	known := metrics.Sinks.Names()
	for _, s := range c.Sinks {
		if !slices.Contains(known, s.Type) {
			return fmt.Errorf("%w %q", factory.ErrUnknownModule, s.Type)
		}
	}
	return nil
}
