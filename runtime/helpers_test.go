package runtime

import (
	"context"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"sync"
	"time"
)

// recordingSink keeps every event it accepts. fail makes Consume return that error,
// block makes it wait for ctx like a saturated connection would.
type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
	closed int
	fail   error
	block  bool
}

func (s *recordingSink) Consume(ctx context.Context, e event.Event) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed > 0 {
		return errors.ErrConnectionClosed
	}
	if s.fail != nil {
		return s.fail
	}
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
}

func (s *recordingSink) received() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

func (s *recordingSink) kinds() []event.Kind {
	var kinds []event.Kind
	for _, e := range s.received() {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

func (s *recordingSink) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// eventually polls cond until it holds or the deadline passes.
func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
