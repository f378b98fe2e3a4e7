package notification

import (
	"context"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Materializer makes every user facing push durable before it is sent.
// A push is never emitted for a notification that was not stored.
type Materializer struct {
	log        *slog.Logger
	store      contract.INotificationStore
	dispatcher contract.IDispatcher
	now        func() time.Time
}

func NewMaterializer(log *slog.Logger, store contract.INotificationStore, dispatcher contract.IDispatcher) *Materializer {
	return &Materializer{
		log:        log,
		store:      store,
		dispatcher: dispatcher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Materialize stores a notification for the recipient of a user greeting and
// pushes greeting_created, carrying both the greeting and the notification, to
// the recipient's personal channel.
func (m *Materializer) Materialize(ctx context.Context, greeting domain.Greeting, message string) (domain.Notification, error) {
	if greeting.RecipientType != domain.RecipientUser || greeting.RecipientID == "" {
		return domain.Notification{}, fmt.Errorf("%w: greeting %s has no user recipient", errors.ErrInvalidRequest, greeting.ID)
	}

	greetingID := greeting.ID
	stored, err := m.store.InsertNotification(ctx, domain.Notification{
		ID:         domain.NotificationID(uuid.NewString()),
		UserID:     domain.UserID(greeting.RecipientID),
		GreetingID: &greetingID,
		Message:    message,
		CreatedAt:  m.now(),
	})
	if err != nil {
		m.log.Error("Notification persistence failed", "greeting_id", greeting.ID, "user_id", greeting.RecipientID, "error", err)
		return domain.Notification{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	e := event.New(greeting.RecipientTarget(), event.GreetingCreated{Greeting: greeting, Notification: &stored}, m.now())
	if err := m.dispatcher.Dispatch(ctx, e); err != nil {
		// The notification is durable, the client reconciles it through List.
		m.log.Warn("Notification push not dispatched", "notification_id", stored.ID, "error", err)
	}
	return stored, nil
}

// MarkRead sets read_at once. Notifications of another user are reported as not found.
func (m *Materializer) MarkRead(ctx context.Context, userID domain.UserID, id domain.NotificationID) (domain.Notification, error) {
	n, err := m.store.MarkNotificationRead(ctx, userID, id, m.now())
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) || errors.Is(err, errors.ErrAlreadyRead) {
			return domain.Notification{}, err
		}
		return domain.Notification{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return n, nil
}

// List is the reconciliation path for clients coming back online.
func (m *Materializer) List(ctx context.Context, userID domain.UserID, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := m.store.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return notifications, nil
}
