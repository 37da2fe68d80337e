package config

import (
	"fmt"
	"slices"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/schedule"
)

// GeneratorConfig tunes the schedule generator.
type GeneratorConfig struct {
	Seed uint64 `json:"seed"`
	// NumTries bounds the attempts of one neighbour move.
	NumTries int `json:"num_tries"`
	// Policy picks among insertion candidates: earliest, latest or random.
	Policy             factory.ModuleConfig `json:"policy"`
	AllowRepeatedCargo bool                 `json:"allow_repeated_cargo"`
}

// SetDefaults applies sane defaults.
func (c *GeneratorConfig) SetDefaults() {
	if c.NumTries <= 0 {
		c.NumTries = 10
	}
	if c.Policy.Type == "" {
		c.Policy.Type = schedule.DefaultPolicy
	}
}

// Validate checks the policy is known.
func (c GeneratorConfig) Validate() error {
	if !slices.Contains(schedule.Policies.Names(), c.Policy.Type) {
		return fmt.Errorf("%w %q", factory.ErrUnknownModule, c.Policy.Type)
	}
	return nil
}

// InsertionPolicy builds the configured policy.
func (c GeneratorConfig) InsertionPolicy() (schedule.InsertionPolicy, error) {
	return schedule.Policies.Create(c.Policy)
}
