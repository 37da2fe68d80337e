package metrics

import (
	"path"
	"time"

	"github.com/kilianp07/haulplan/core/search"
)

// Publisher sends a JSON-encoded value to a topic.
type Publisher interface {
	Publish(topic string, v any) error
}

// MQTTSink publishes every event to <prefix>/<run id>/<kind>.
type MQTTSink struct {
	pub    Publisher
	prefix string
}

// NewMQTTSink returns a sink publishing under prefix, "haulplan/search"
// when empty.
func NewMQTTSink(pub Publisher, prefix string) *MQTTSink {
	if prefix == "" {
		prefix = "haulplan/search"
	}
	return &MQTTSink{pub: pub, prefix: prefix}
}

type eventMessage struct {
	RunID       string    `json:"run_id"`
	Strategy    string    `json:"strategy"`
	Kind        string    `json:"kind"`
	Iteration   int       `json:"iteration"`
	Score       float64   `json:"score"`
	BestScore   float64   `json:"best_score"`
	Temperature float64   `json:"temperature,omitempty"`
	Time        time.Time `json:"time"`
}

// RecordSearchEvent publishes ev.
func (s *MQTTSink) RecordSearchEvent(ev search.Event) error {
	id := ev.RunID.String()
	return s.pub.Publish(path.Join(s.prefix, id, string(ev.Kind)), eventMessage{
		RunID:       id,
		Strategy:    ev.Strategy,
		Kind:        string(ev.Kind),
		Iteration:   ev.Iteration,
		Score:       ev.Score,
		BestScore:   ev.BestScore,
		Temperature: ev.Temperature,
		Time:        ev.Time,
	})
}

// Close disconnects the publisher when it supports it.
func (s *MQTTSink) Close() {
	if d, ok := s.pub.(interface{ Disconnect() }); ok {
		d.Disconnect()
	}
}
