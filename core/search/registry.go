package search

import (
	"github.com/kilianp07/haulplan/core/factory"
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = "annealing"

// Strategies lists the search strategies selectable from configuration.
var Strategies = factory.NewRegistry[Strategy]()

func init() {
	Strategies.MustRegister("annealing", func(conf map[string]any) (Strategy, error) {
		var cfg AnnealingConfig
		if err := factory.Decode(conf, &cfg); err != nil {
			return nil, err
		}
		return NewAnnealing(cfg)
	})
	Strategies.MustRegister("tabu", func(conf map[string]any) (Strategy, error) {
		var cfg TabuConfig
		if err := factory.Decode(conf, &cfg); err != nil {
			return nil, err
		}
		return NewTabu(cfg)
	})
	Strategies.MustRegister("hillclimb", func(conf map[string]any) (Strategy, error) {
		var cfg HillClimbConfig
		if err := factory.Decode(conf, &cfg); err != nil {
			return nil, err
		}
		return NewHillClimb(cfg)
	})
}
