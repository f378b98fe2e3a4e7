package workers

import (
	"context"
	"fmt"
	"greeting-hub/domain/event"
	"log/slog"
)

// Deliverer pushes one event to the live subscribers of its target.
type Deliverer interface {
	Deliver(ctx context.Context, e event.Event) int
}

// DispatchWorker drains a single dispatch shard.
// Events of a shard are delivered strictly one after the other.
type DispatchWorker struct {
	log       *slog.Logger
	shard     int
	events    chan event.Event
	deliverer Deliverer
}

func NewDispatchWorker(log *slog.Logger, shard int, events chan event.Event, deliverer Deliverer) *DispatchWorker {
	return &DispatchWorker{log: log, shard: shard, events: events, deliverer: deliverer}
}

func (w *DispatchWorker) Name() string {
	return fmt.Sprintf("DispatchWorker-%d", w.shard)
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker", "name", w.Name())
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed", "name", w.Name())
				return nil
			}
			n := w.deliverer.Deliver(ctx, evt)
			w.log.Debug("Event delivered",
				"kind", evt.Kind(),
				"target", evt.Target.Key(),
				"connections", n)
		}
	}
}
