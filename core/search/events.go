package search

import (
	"time"

	"github.com/google/uuid"
)

// EventKind tells what happened in a run.
type EventKind string

const (
	EventStarted  EventKind = "started"
	EventImproved EventKind = "improved"
	EventProgress EventKind = "progress"
	EventFinished EventKind = "finished"
)

// Event reports search progress on the run's bus.
type Event struct {
	RunID     uuid.UUID
	Strategy  string
	Kind      EventKind
	Iteration int
	// Score is the weighted score of the current schedule.
	Score     float64
	BestScore float64
	// Temperature is only set by simulated annealing.
	Temperature float64
	Time        time.Time
}
