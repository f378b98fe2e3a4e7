package runtime

import (
	"context"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"greeting-hub/runtime/workers"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Dispatcher fans an event out to the live subscribers of its target.
//
// Events are partitioned by target over a fixed set of shards. Each shard is
// drained by exactly one DispatchWorker, so every target has a single ordered
// point of origin: two events enqueued for the same target in causal order
// reach each of its connections in that order. Nothing is guaranteed across
// targets.
//
// A failing connection never aborts the batch and never surfaces to the caller.
type Dispatcher struct {
	log         *slog.Logger
	registry    *Registry
	router      *Router
	shards      []chan event.Event
	sinkTimeout time.Duration
	maxFailures int32
}

func NewDispatcher(log *slog.Logger, registry *Registry, router *Router,
	shardCount, bufferSize int, sinkTimeout time.Duration, maxFailures int) *Dispatcher {
	if shardCount < 1 {
		shardCount = 1
	}
	if maxFailures < 1 {
		maxFailures = 1
	}
	shards := make([]chan event.Event, shardCount)
	for i := range shards {
		shards[i] = make(chan event.Event, bufferSize)
	}
	return &Dispatcher{
		log:         log,
		registry:    registry,
		router:      router,
		shards:      shards,
		sinkTimeout: sinkTimeout,
		maxFailures: int32(maxFailures),
	}
}

// Dispatch enqueues the event on the shard owning its target.
// It only blocks while the shard buffer is full, and gives up when ctx ends.
func (d *Dispatcher) Dispatch(ctx context.Context, e event.Event) error {
	if !e.Target.IsValid() || e.Payload == nil {
		return fmt.Errorf("%w: event %s has no valid target or payload", errors.ErrInvalidRequest, e.ID)
	}
	select {
	case d.shardFor(e) <- e:
		return nil
	case <-ctx.Done():
		d.log.Warn("Dispatch abandoned", "kind", e.Kind(), "target", e.Target.Key(), "error", ctx.Err())
		return ctx.Err()
	}
}

func (d *Dispatcher) shardFor(e event.Event) chan event.Event {
	return d.shards[xxhash.Sum64String(e.Target.Key())%uint64(len(d.shards))]
}

// Deliver resolves the subscribers of the event target at this instant and
// sends the event to each of them in turn. It returns the number of
// connections that accepted the event.
func (d *Dispatcher) Deliver(ctx context.Context, e event.Event) int {
	conns := d.router.Resolve(e.Target)
	if len(conns) == 0 {
		d.log.Debug("No subscriber for target", "kind", e.Kind(), "target", e.Target.Key())
		return 0
	}

	delivered := 0
	for _, conn := range conns {
		sendCtx, cancel := context.WithTimeout(ctx, d.sinkTimeout)
		err := conn.Send(sendCtx, e)
		cancel()

		if err == nil {
			conn.failures.Store(0)
			delivered++
			continue
		}
		d.onSendFailure(conn, e, err)
	}
	return delivered
}

// onSendFailure isolates a failed send to its connection. A closed channel is
// an implicit disconnect; a slow one is only dropped after repeated failures.
func (d *Dispatcher) onSendFailure(conn *Connection, e event.Event, err error) {
	if errors.Is(err, errors.ErrConnectionClosed) {
		d.log.Info("Connection closed during delivery, unregistering",
			"connection_id", conn.ID, "user_id", conn.Identity.UserID, "kind", e.Kind())
		d.registry.Unregister(conn.ID)
		return
	}

	strikes := conn.failures.Add(1)
	d.log.Warn("Delivery failed",
		"connection_id", conn.ID,
		"user_id", conn.Identity.UserID,
		"kind", e.Kind(),
		"strikes", strikes,
		"error", fmt.Errorf("%w: %v", errors.ErrDelivery, err))

	if strikes >= d.maxFailures {
		d.log.Info("Too many delivery failures, unregistering", "connection_id", conn.ID)
		d.registry.Unregister(conn.ID)
	}
}

// Workers returns one worker per shard, to be run under supervision.
func (d *Dispatcher) Workers() []contract.Worker {
	res := make([]contract.Worker, 0, len(d.shards))
	for i, shard := range d.shards {
		res = append(res, workers.NewDispatchWorker(d.log, i, shard, d))
	}
	return res
}

// QueueDepth is the number of events waiting across all shards.
func (d *Dispatcher) QueueDepth() int {
	depth := 0
	for _, shard := range d.shards {
		depth += len(shard)
	}
	return depth
}

func (d *Dispatcher) QueueCapacity() int {
	capacity := 0
	for _, shard := range d.shards {
		capacity += cap(shard)
	}
	return capacity
}
