package metrics

import (
	"errors"

	"github.com/kilianp07/haulplan/core/search"
)

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSearchEvent forwards the event to every sink, even after one
// fails, and joins the errors.
func (m *MultiSink) RecordSearchEvent(ev search.Event) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordSearchEvent(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that holds a connection.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
