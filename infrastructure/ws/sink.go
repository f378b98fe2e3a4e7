package ws

import (
	"context"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"sync"
)

// Sink buffers the events of one websocket connection until its write pump picks them up.
type Sink struct {
	events chan event.Event
	done   chan struct{}
	once   sync.Once
}

func NewSink(bufferSize int) *Sink {
	return &Sink{
		events: make(chan event.Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume is called by the dispatch workers.
// It waits for room in the buffer until ctx ends, so a slow client only costs its own deadline.
func (s *Sink) Consume(ctx context.Context, e event.Event) error {
	select {
	case <-s.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sink) Events() <-chan event.Event {
	return s.events
}

func (s *Sink) Done() <-chan struct{} {
	return s.done
}

// Close never closes the events channel, a concurrent Consume would panic.
func (s *Sink) Close() {
	s.once.Do(func() { close(s.done) })
}
