package metrics

import (
	"context"

	"github.com/kilianp07/haulplan/core/search"
	"github.com/kilianp07/haulplan/internal/eventbus"
	"github.com/kilianp07/haulplan/infra/logger"
)

// StartEventCollector subscribes to the bus and records every event on
// sink. It stops when the context is canceled or the bus is closed; the
// returned channel is closed once it has stopped.
func StartEventCollector(ctx context.Context, bus *eventbus.TypedBus[search.Event], sink Sink) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	log := logger.New("event-collector")
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := sink.RecordSearchEvent(ev); err != nil {
					log.Warnf("record %s event of run %s: %v", ev.Kind, ev.RunID, err)
				}
			}
		}
	}()
	return done
}
