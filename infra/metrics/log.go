package metrics

import (
	"github.com/kilianp07/haulplan/core/logger"
	"github.com/kilianp07/haulplan/core/search"
)

// LogSink writes every event as a structured debug line.
type LogSink struct {
	log logger.Logger
}

// NewLogSink wraps l. A nil logger discards events.
func NewLogSink(l logger.Logger) *LogSink {
	return &LogSink{log: logger.OrNop(l)}
}

func (s *LogSink) RecordSearchEvent(ev search.Event) error {
	s.log.Debugw("search event", map[string]any{
		"run_id":     ev.RunID.String(),
		"strategy":   ev.Strategy,
		"kind":       string(ev.Kind),
		"iteration":  ev.Iteration,
		"score":      ev.Score,
		"best_score": ev.BestScore,
	})
	return nil
}
