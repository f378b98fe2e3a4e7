package runtime

import (
	"greeting-hub/domain"
	"log/slog"
	"sync"
	"time"
)

// Scheduler arms one timer per pending greeting.
// Cancel and the timer firing race freely: whoever reaches the lifecycle
// machine second is rejected there, so the scheduler itself stays simple.
type Scheduler struct {
	mu     sync.Mutex
	log    *slog.Logger
	timers map[domain.GreetingID]*time.Timer
	now    func() time.Time
}

func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		log:    log,
		timers: make(map[domain.GreetingID]*time.Timer),
		now:    time.Now,
	}
}

// Schedule replaces any timer already armed for the greeting.
// A date in the past fires immediately.
func (s *Scheduler) Schedule(id domain.GreetingID, at time.Time, fire func()) {
	delay := at.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.timers[id]; ok {
		previous.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if current, ok := s.timers[id]; ok && current == timer {
			delete(s.timers, id)
		}
		s.mu.Unlock()
		fire()
	})
	s.timers[id] = timer
	s.log.Debug("Greeting scheduled", "greeting_id", id, "in", delay)
}

// Cancel disarms the timer of a greeting and reports whether it was still armed.
func (s *Scheduler) Cancel(id domain.GreetingID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	return timer.Stop()
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop disarms every timer, used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
