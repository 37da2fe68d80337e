package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/schedule"
	"github.com/kilianp07/haulplan/core/search"
)

// SearchConfig selects the optimiser run on top of the generator.
type SearchConfig struct {
	Strategy factory.ModuleConfig `json:"strategy"`
	// Starts is the number of concurrent runs; the best one wins.
	Starts int `json:"starts"`
	// Weights fold the score vector, one per score.
	Weights []float64 `json:"weights"`
	// Timeout bounds the whole search. Zero means no limit.
	Timeout       time.Duration `json:"timeout"`
	ProgressEvery int           `json:"progress_every"`
}

// SetDefaults applies sane defaults.
func (c *SearchConfig) SetDefaults() {
	if c.Strategy.Type == "" {
		c.Strategy.Type = search.DefaultStrategy
	}
	if c.Starts <= 0 {
		c.Starts = 1
	}
	if len(c.Weights) == 0 {
		c.Weights = slices.Clone(search.DefaultWeights)
	}
}

// Validate checks the strategy is known and the weights match the scores.
func (c SearchConfig) Validate() error {
	if !slices.Contains(search.Strategies.Names(), c.Strategy.Type) {
		return fmt.Errorf("%w %q", factory.ErrUnknownModule, c.Strategy.Type)
	}
	if len(c.Weights) != schedule.NumScores {
		return fmt.Errorf("expected %d weights, got %d", schedule.NumScores, len(c.Weights))
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}
