package metrics

import (
	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/core/search"
)

// Sink records search progress events.
type Sink interface {
	RecordSearchEvent(search.Event) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordSearchEvent(search.Event) error { return nil }

// Sinks lists the sink types selectable from configuration.
var Sinks = factory.NewRegistry[Sink]()

// NewSinks builds every configured sink and fans out to them. No
// configuration yields a NopSink.
func NewSinks(cfgs []factory.ModuleConfig) (Sink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	sinks := make([]Sink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := Sinks.Create(c)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return NewMultiSink(sinks...), nil
}
