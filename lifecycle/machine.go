// Package lifecycle governs greeting status transitions.
// Every accepted transition is persisted first, then reflected as events;
// a transition whose write fails leaves the greeting untouched and emits nothing.
package lifecycle

import (
	"context"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"greeting-hub/internal/keylock"
	"log/slog"
	"time"
)

type Machine struct {
	log          *slog.Logger
	store        contract.IGreetingStore
	dispatcher   contract.IDispatcher
	materializer contract.IMaterializer
	presence     contract.IPresence
	scheduler    contract.IScheduler
	locks        *keylock.KeyedMutex
	now          func() time.Time
}

func NewMachine(
	log *slog.Logger,
	store contract.IGreetingStore,
	dispatcher contract.IDispatcher,
	materializer contract.IMaterializer,
	presence contract.IPresence,
	scheduler contract.IScheduler,
) *Machine {
	return &Machine{
		log:          log,
		store:        store,
		dispatcher:   dispatcher,
		materializer: materializer,
		presence:     presence,
		scheduler:    scheduler,
		locks:        keylock.New(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Created reflects a greeting that has just been committed with its initial status.
//
// For a user recipient the notification is materialized first; its push is the
// recipient's greeting_created event. If that write fails nothing is emitted.
// A pending greeting is armed on the scheduler, a sent one is delivered at once
// when the recipient is online.
func (m *Machine) Created(ctx context.Context, greeting domain.Greeting) error {
	if greeting.Status != domain.StatusPending && greeting.Status != domain.StatusSent {
		return fmt.Errorf("%w: greeting %s created as %q", errors.ErrInvalidTransition, greeting.ID, greeting.Status)
	}

	unlock := m.locks.Lock(string(greeting.ID))

	if greeting.RecipientType == domain.RecipientUser {
		if _, err := m.materializer.Materialize(ctx, greeting, notificationMessage(greeting)); err != nil {
			unlock()
			return err
		}
	} else {
		m.emit(ctx, greeting.RecipientTarget(), event.GreetingCreated{Greeting: greeting})
	}
	if greeting.SenderTarget() != greeting.RecipientTarget() {
		m.emit(ctx, greeting.SenderTarget(), event.GreetingCreated{Greeting: greeting})
	}

	if greeting.Status == domain.StatusPending && greeting.ScheduledAt != nil {
		id := greeting.ID
		m.scheduler.Schedule(id, *greeting.ScheduledAt, func() {
			_ = m.FireScheduled(context.Background(), id)
		})
	}
	unlock()

	if greeting.Status == domain.StatusSent {
		m.deliverIfOnline(ctx, greeting)
	}
	return nil
}

// Transition moves a greeting to a new status.
// Transitions on the same greeting are mutually exclusive.
func (m *Machine) Transition(ctx context.Context, id domain.GreetingID, to domain.Status, cause string) (domain.Greeting, error) {
	return m.transition(ctx, id, to, cause, nil)
}

// transition persists the new status then enqueues the status events, all
// while holding the greeting lock. extra may add events that must follow the
// status change in order.
func (m *Machine) transition(ctx context.Context, id domain.GreetingID, to domain.Status, cause string,
	extra func(updated domain.Greeting) []event.Event) (domain.Greeting, error) {
	unlock := m.locks.Lock(string(id))

	current, err := m.store.GetGreeting(ctx, id)
	if err != nil {
		unlock()
		return domain.Greeting{}, storeError(err)
	}

	if !domain.CanTransition(current.Status, to) {
		unlock()
		m.log.Warn("Transition rejected",
			"greeting_id", id, "from", current.Status, "to", to, "cause", cause)
		return current, fmt.Errorf("%w: %s -> %s", errors.ErrInvalidTransition, current.Status, to)
	}

	updated, err := m.store.UpdateGreetingStatus(ctx, id, to, m.now())
	if err != nil {
		unlock()
		m.log.Error("Status persistence failed",
			"greeting_id", id, "from", current.Status, "to", to, "error", err)
		return current, storeError(err)
	}

	if current.Status == domain.StatusPending {
		m.scheduler.Cancel(id)
	}

	m.log.Debug("Greeting transitioned", "greeting_id", id, "from", current.Status, "to", to, "cause", cause)
	for _, target := range statusTargets(updated) {
		m.emit(ctx, target, event.GreetingStatusChanged{Greeting: updated, Previous: current.Status})
	}
	if extra != nil {
		for _, e := range extra(updated) {
			m.dispatch(ctx, e)
		}
	}
	unlock()

	if to == domain.StatusSent {
		m.deliverIfOnline(ctx, updated)
	}
	return updated, nil
}

// SendNow releases a pending greeting before its scheduled time. Only the sender may do it.
// If the timer already won, the call is rejected with ErrInvalidTransition.
func (m *Machine) SendNow(ctx context.Context, id domain.GreetingID, actor domain.UserID) (domain.Greeting, error) {
	greeting, err := m.store.GetGreeting(ctx, id)
	if err != nil {
		return domain.Greeting{}, storeError(err)
	}
	if greeting.SenderID != actor {
		return domain.Greeting{}, fmt.Errorf("%w: only the sender can send greeting %s", errors.ErrForbidden, id)
	}
	// The timer is only disarmed once the new status is persisted
	return m.Transition(ctx, id, domain.StatusSent, "send now")
}

// FireScheduled is what the scheduler calls when scheduled_at is reached.
func (m *Machine) FireScheduled(ctx context.Context, id domain.GreetingID) error {
	_, err := m.Transition(ctx, id, domain.StatusSent, "schedule reached")
	if errors.Is(err, errors.ErrNotFound) {
		// Deleted before the timer fired
		err = fmt.Errorf("%w: greeting %s no longer exists", errors.ErrInvalidTransition, id)
	}
	if err != nil {
		m.log.Info("Scheduled send not applied", "greeting_id", id, "error", err)
	}
	return err
}

// Acknowledge records the recipient side confirmation.
// Group membership of the actor is checked by the caller, which owns the member store.
func (m *Machine) Acknowledge(ctx context.Context, id domain.GreetingID, actor domain.UserID) (domain.Greeting, error) {
	greeting, err := m.store.GetGreeting(ctx, id)
	if err != nil {
		return domain.Greeting{}, storeError(err)
	}
	if greeting.RecipientType == domain.RecipientUser && domain.UserID(greeting.RecipientID) != actor {
		return domain.Greeting{}, fmt.Errorf("%w: only the recipient can acknowledge greeting %s", errors.ErrForbidden, id)
	}
	return m.Transition(ctx, id, domain.StatusDelivered, "acknowledged")
}

// Fail marks an irrecoverable delivery problem, such as a recipient that no longer exists.
func (m *Machine) Fail(ctx context.Context, id domain.GreetingID, cause string) (domain.Greeting, error) {
	return m.Transition(ctx, id, domain.StatusFailed, cause)
}

// Moderate applies an admin decision. A rejection fails the greeting; both
// outcomes are reported to the sender with a moderation_action event.
func (m *Machine) Moderate(ctx context.Context, id domain.GreetingID, action domain.ModerationAction,
	reason string, moderator domain.Identity) (domain.Greeting, error) {
	if !moderator.IsAdmin() {
		return domain.Greeting{}, fmt.Errorf("%w: moderation requires the admin role", errors.ErrForbidden)
	}

	moderationEvent := func(g domain.Greeting) event.Event {
		return event.New(g.SenderTarget(), event.ModerationAction{
			GreetingID:  g.ID,
			Action:      action,
			Reason:      reason,
			ModeratorID: moderator.UserID,
			Status:      g.Status,
		}, m.now())
	}

	switch action {
	case domain.ModerationReject:
		return m.transition(ctx, id, domain.StatusFailed, "moderation rejected",
			func(updated domain.Greeting) []event.Event {
				return []event.Event{moderationEvent(updated)}
			})
	case domain.ModerationApprove:
		unlock := m.locks.Lock(string(id))
		defer unlock()
		greeting, err := m.store.GetGreeting(ctx, id)
		if err != nil {
			return domain.Greeting{}, storeError(err)
		}
		m.dispatch(ctx, moderationEvent(greeting))
		return greeting, nil
	default:
		return domain.Greeting{}, fmt.Errorf("%w: unknown moderation action %q", errors.ErrInvalidCommand, action)
	}
}

// Removed reflects a deletion committed by the write path. Best effort: the
// events are enqueued but failures are only logged.
func (m *Machine) Removed(ctx context.Context, greeting domain.Greeting) {
	unlock := m.locks.Lock(string(greeting.ID))
	defer unlock()

	m.scheduler.Cancel(greeting.ID)
	payload := event.GreetingRemoved{GreetingID: greeting.ID, SenderID: greeting.SenderID}
	m.emit(ctx, greeting.SenderTarget(), payload)
	if greeting.RecipientTarget() != greeting.SenderTarget() {
		m.emit(ctx, greeting.RecipientTarget(), payload)
	}
}

// Reflect emits status events for a change that was persisted outside the machine.
func (m *Machine) Reflect(ctx context.Context, greeting domain.Greeting, previous domain.Status) {
	unlock := m.locks.Lock(string(greeting.ID))
	defer unlock()
	for _, target := range statusTargets(greeting) {
		m.emit(ctx, target, event.GreetingStatusChanged{Greeting: greeting, Previous: previous})
	}
}

// RecoverScheduled re-arms the timers of pending greetings after a restart.
// Past due greetings fire immediately.
func (m *Machine) RecoverScheduled(ctx context.Context) (int, error) {
	pending, err := m.store.ListPendingGreetings(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	armed := 0
	for _, g := range pending {
		if g.ScheduledAt == nil {
			continue
		}
		id := g.ID
		m.scheduler.Schedule(id, *g.ScheduledAt, func() {
			_ = m.FireScheduled(context.Background(), id)
		})
		armed++
	}
	return armed, nil
}

func (m *Machine) deliverIfOnline(ctx context.Context, greeting domain.Greeting) {
	if !m.presence.HasSubscribers(greeting.RecipientTarget()) {
		return
	}
	if _, err := m.Transition(ctx, greeting.ID, domain.StatusDelivered, "recipient online"); err != nil {
		m.log.Debug("Online delivery not applied", "greeting_id", greeting.ID, "error", err)
	}
}

func (m *Machine) emit(ctx context.Context, target domain.Target, payload event.Payload) {
	m.dispatch(ctx, event.New(target, payload, m.now()))
}

func (m *Machine) dispatch(ctx context.Context, e event.Event) {
	if err := m.dispatcher.Dispatch(ctx, e); err != nil {
		m.log.Warn("Event not dispatched", "kind", e.Kind(), "target", e.Target.Key(), "error", err)
	}
}

// statusTargets: the sender always sees its greeting status; the recipient
// only hears about sent and delivered.
func statusTargets(g domain.Greeting) []domain.Target {
	targets := []domain.Target{g.SenderTarget()}
	if (g.Status == domain.StatusSent || g.Status == domain.StatusDelivered) &&
		g.RecipientTarget() != g.SenderTarget() {
		targets = append(targets, g.RecipientTarget())
	}
	return targets
}

func storeError(err error) error {
	if errors.Is(err, errors.ErrNotFound) || errors.Is(err, errors.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
}

func notificationMessage(g domain.Greeting) string {
	return fmt.Sprintf("You received a new greeting from %s", g.SenderID)
}
