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

type diskMedia struct {
	ID       string `cbor:"id"`
	MimeType string `cbor:"mime_type"`
	Size     int    `cbor:"size"`
}

type diskGreeting struct {
	ID            string     `cbor:"id"`
	SenderID      string     `cbor:"sender_id"`
	RecipientType string     `cbor:"recipient_type"`
	RecipientID   string     `cbor:"recipient_id"`
	Message       string     `cbor:"message"`
	Media         *diskMedia `cbor:"media,omitempty"`
	Status        string     `cbor:"status"`
	ScheduledAt   *int64     `cbor:"scheduled_at,omitempty"`
	CreatedAt     int64      `cbor:"created_at"`
	UpdatedAt     int64      `cbor:"updated_at"`
}

// GreetingRepository stores greetings under "greeting:{id}".
// Two key-only indexes are kept in the same transaction:
//   - "greeting_pending:{id}" while the status is pending, read back on restart
//   - "greeting_sender:{sender}:{created_padded}:{id}" for the sender outbox
type GreetingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGreetingRepository(db *badger.DB, log *slog.Logger) *GreetingRepository {
	return &GreetingRepository{db: db, log: log}
}

func greetingKey(id domain.GreetingID) string {
	return fmt.Sprintf("greeting:%s", id)
}

func pendingKey(id domain.GreetingID) string {
	return fmt.Sprintf("greeting_pending:%s", id)
}

func senderKey(g domain.Greeting) string {
	return fmt.Sprintf("greeting_sender:%s:%019d:%s", g.SenderID, g.CreatedAt.UnixNano(), g.ID)
}

func (r *GreetingRepository) InsertGreeting(_ context.Context, greeting domain.Greeting) (domain.Greeting, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := setValue(txn, greetingKey(greeting.ID), fromGreeting(greeting)); err != nil {
			return err
		}
		if err := txn.Set([]byte(senderKey(greeting)), nil); err != nil {
			return err
		}
		if greeting.Status == domain.StatusPending {
			return txn.Set([]byte(pendingKey(greeting.ID)), nil)
		}
		return nil
	})
	if err != nil {
		return domain.Greeting{}, err
	}
	return greeting, nil
}

func (r *GreetingRepository) GetGreeting(_ context.Context, id domain.GreetingID) (domain.Greeting, error) {
	var dg diskGreeting
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, greetingKey(id), &dg)
	})
	if err != nil {
		return domain.Greeting{}, err
	}
	return toGreeting(dg), nil
}

// UpdateGreetingStatus rewrites the status and keeps the pending index in sync.
func (r *GreetingRepository) UpdateGreetingStatus(_ context.Context, id domain.GreetingID, status domain.Status, at time.Time) (domain.Greeting, error) {
	var updated domain.Greeting
	err := r.db.Update(func(txn *badger.Txn) error {
		var dg diskGreeting
		if err := getValue(txn, greetingKey(id), &dg); err != nil {
			return err
		}
		dg.Status = string(status)
		dg.UpdatedAt = at.UnixNano()
		if err := setValue(txn, greetingKey(id), dg); err != nil {
			return err
		}
		if status != domain.StatusPending {
			if err := txn.Delete([]byte(pendingKey(id))); err != nil {
				return err
			}
		}
		updated = toGreeting(dg)
		return nil
	})
	if err != nil {
		return domain.Greeting{}, err
	}
	return updated, nil
}

func (r *GreetingRepository) DeleteGreeting(_ context.Context, id domain.GreetingID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var dg diskGreeting
		if err := getValue(txn, greetingKey(id), &dg); err != nil {
			return err
		}
		for _, key := range []string{greetingKey(id), pendingKey(id), senderKey(toGreeting(dg))} {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GreetingRepository) ListPendingGreetings(_ context.Context) ([]domain.Greeting, error) {
	var greetings []domain.Greeting
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanKeySuffixes(txn, "greeting_pending:")
		if err != nil {
			return err
		}
		for _, id := range ids {
			var dg diskGreeting
			if err := getValue(txn, greetingKey(domain.GreetingID(id)), &dg); err != nil {
				if errors.Is(err, errors.ErrNotFound) {
					r.log.Warn("Dangling pending index", "greeting_id", id)
					continue
				}
				return err
			}
			greetings = append(greetings, toGreeting(dg))
		}
		return nil
	})
	return greetings, err
}

// ListGreetingsBySender returns the outbox of a sender, most recent first.
func (r *GreetingRepository) ListGreetingsBySender(_ context.Context, sender domain.UserID) ([]domain.Greeting, error) {
	var greetings []domain.Greeting
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("greeting_sender:%s:", sender))
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			id := key[len(prefix)+20:]
			var dg diskGreeting
			if err := getValue(txn, greetingKey(domain.GreetingID(id)), &dg); err != nil {
				if errors.Is(err, errors.ErrNotFound) {
					continue
				}
				return err
			}
			greetings = append(greetings, toGreeting(dg))
		}
		return nil
	})
	return greetings, err
}

// scanKeySuffixes lists what follows prefix in every key, without reading values.
func scanKeySuffixes(txn *badger.Txn, prefix string) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var res []string
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		res = append(res, string(it.Item().Key()[len(p):]))
	}
	return res, nil
}

func fromGreeting(g domain.Greeting) diskGreeting {
	dg := diskGreeting{
		ID:            string(g.ID),
		SenderID:      string(g.SenderID),
		RecipientType: string(g.RecipientType),
		RecipientID:   g.RecipientID,
		Message:       g.Message,
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt.UnixNano(),
		UpdatedAt:     g.UpdatedAt.UnixNano(),
	}
	if g.Media != nil {
		dg.Media = &diskMedia{ID: g.Media.ID, MimeType: g.Media.MimeType, Size: g.Media.Size}
	}
	if g.ScheduledAt != nil {
		dg.ScheduledAt = lo.ToPtr(g.ScheduledAt.UnixNano())
	}
	return dg
}

func toGreeting(dg diskGreeting) domain.Greeting {
	g := domain.Greeting{
		ID:            domain.GreetingID(dg.ID),
		SenderID:      domain.UserID(dg.SenderID),
		RecipientType: domain.RecipientType(dg.RecipientType),
		RecipientID:   dg.RecipientID,
		Message:       dg.Message,
		Status:        domain.Status(dg.Status),
		CreatedAt:     time.Unix(0, dg.CreatedAt).UTC(),
		UpdatedAt:     time.Unix(0, dg.UpdatedAt).UTC(),
	}
	if dg.Media != nil {
		g.Media = &domain.Media{ID: dg.Media.ID, MimeType: dg.Media.MimeType, Size: dg.Media.Size}
	}
	if dg.ScheduledAt != nil {
		g.ScheduledAt = lo.ToPtr(time.Unix(0, *dg.ScheduledAt).UTC())
	}
	return g
}
