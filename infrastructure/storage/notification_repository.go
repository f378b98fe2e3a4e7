package storage

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type diskNotification struct {
	ID         string  `cbor:"id"`
	UserID     string  `cbor:"user_id"`
	GreetingID *string `cbor:"greeting_id,omitempty"`
	Message    string  `cbor:"message"`
	ReadAt     *int64  `cbor:"read_at,omitempty"`
	CreatedAt  int64   `cbor:"created_at"`
}

// NotificationRepository keeps one inbox per user under
// "notif:{user}:{created_padded}:{id}" and a pointer "notif_id:{id}" -> inbox key.
type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, log: log}
}

func inboxKey(n domain.Notification) string {
	return fmt.Sprintf("notif:%s:%019d:%s", n.UserID, n.CreatedAt.UnixNano(), n.ID)
}

func notificationPointerKey(id domain.NotificationID) string {
	return fmt.Sprintf("notif_id:%s", id)
}

func (r *NotificationRepository) InsertNotification(_ context.Context, n domain.Notification) (domain.Notification, error) {
	key := inboxKey(n)
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := setValue(txn, key, fromNotification(n)); err != nil {
			return err
		}
		return txn.Set([]byte(notificationPointerKey(n.ID)), []byte(key))
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

// ListNotifications returns the inbox of a user, most recent first.
func (r *NotificationRepository) ListNotifications(_ context.Context, userID domain.UserID, unreadOnly bool) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("notif:%s:", userID))
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			var dn diskNotification
			if err := it.Item().Value(func(val []byte) error {
				return unmarshal(val, &dn)
			}); err != nil {
				return err
			}
			if unreadOnly && dn.ReadAt != nil {
				continue
			}
			notifications = append(notifications, toNotification(dn))
		}
		return nil
	})
	return notifications, err
}

// MarkNotificationRead sets read_at once. A notification owned by someone else is not found.
func (r *NotificationRepository) MarkNotificationRead(_ context.Context, userID domain.UserID, id domain.NotificationID, at time.Time) (domain.Notification, error) {
	var updated domain.Notification
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(notificationPointerKey(id)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrNotFound
			}
			return err
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		var dn diskNotification
		if err := getValue(txn, string(key), &dn); err != nil {
			return err
		}
		if dn.UserID != string(userID) {
			return errors.ErrNotFound
		}
		if dn.ReadAt != nil {
			return errors.ErrAlreadyRead
		}
		dn.ReadAt = lo.ToPtr(at.UnixNano())
		if err := setValue(txn, string(key), dn); err != nil {
			return err
		}
		updated = toNotification(dn)
		return nil
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return updated, nil
}

func fromNotification(n domain.Notification) diskNotification {
	dn := diskNotification{
		ID:        string(n.ID),
		UserID:    string(n.UserID),
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UnixNano(),
	}
	if n.GreetingID != nil {
		dn.GreetingID = lo.ToPtr(string(*n.GreetingID))
	}
	if n.ReadAt != nil {
		dn.ReadAt = lo.ToPtr(n.ReadAt.UnixNano())
	}
	return dn
}

func toNotification(dn diskNotification) domain.Notification {
	n := domain.Notification{
		ID:        domain.NotificationID(dn.ID),
		UserID:    domain.UserID(dn.UserID),
		Message:   dn.Message,
		CreatedAt: time.Unix(0, dn.CreatedAt).UTC(),
	}
	if dn.GreetingID != nil {
		n.GreetingID = lo.ToPtr(domain.GreetingID(*dn.GreetingID))
	}
	if dn.ReadAt != nil {
		n.ReadAt = lo.ToPtr(time.Unix(0, *dn.ReadAt).UTC())
	}
	return n
}
