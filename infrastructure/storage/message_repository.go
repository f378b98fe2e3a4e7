package storage

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type diskChatMessage struct {
	ID            string   `cbor:"id"`
	GroupID       string   `cbor:"group_id"`
	SenderID      string   `cbor:"sender_id"`
	Content       string   `cbor:"content"`
	Lang          string   `cbor:"lang,omitempty"`
	CensoredWords []string `cbor:"censored_words,omitempty"`
	CreatedAt     int64    `cbor:"created_at"`
}

type MessageRepository struct {
	db            *badger.DB
	index         *MessageIndex
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, index *MessageIndex, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, index: index, log: log, limitMessages: limitMessages}
}

// messageKey is formatted as "msg:{group_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func messageKey(m domain.ChatMessage) string {
	return fmt.Sprintf("msg:%s:%019d:%s", m.GroupID, m.CreatedAt.UnixNano(), m.ID)
}

// InsertChatMessage persists the message then indexes it.
// An indexing failure is logged: the message stays listable, only search misses it.
func (m *MessageRepository) InsertChatMessage(_ context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	key := messageKey(message)
	err := m.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, key, fromChatMessage(message))
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}
	if m.index != nil {
		if err := m.index.Index(key, message); err != nil {
			m.log.Warn("Chat message not indexed", "message_id", message.ID, "error", err)
		}
	}
	return message, nil
}

// ListChatMessages walks a group history backwards, most recent first.
// The returned cursor is the key suffix of the last message read; passing it
// back resumes right after it. It stops once limitMessages is reached.
func (m *MessageRepository) ListChatMessages(_ context.Context, groupID domain.GroupID, cursor *string) ([]domain.ChatMessage, *string, error) {
	var messages []domain.ChatMessage
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", groupID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Start after the most recent possible key, then walk back in time
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug("Maximum of messages reached", "limit", *m.limitMessages)
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			var dm diskChatMessage
			if err := item.Value(func(value []byte) error {
				return unmarshal(value, &dm)
			}); err != nil {
				return err
			}
			message, err := toChatMessage(dm)
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, &lastKey, nil
}

func (m *MessageRepository) SearchChatMessages(ctx context.Context, groupID domain.GroupID, terms string, limit int) ([]domain.ChatMessage, error) {
	if m.index == nil {
		return nil, fmt.Errorf("%w: search index disabled", errors.ErrNotFound)
	}
	keys, err := m.index.Search(ctx, groupID, terms, limit)
	if err != nil {
		return nil, err
	}

	var messages []domain.ChatMessage
	err = m.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			var dm diskChatMessage
			if err := getValue(txn, key, &dm); err != nil {
				if errors.Is(err, errors.ErrNotFound) {
					continue
				}
				return err
			}
			message, err := toChatMessage(dm)
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	return messages, err
}

func fromChatMessage(m domain.ChatMessage) diskChatMessage {
	return diskChatMessage{
		ID:            m.ID.String(),
		GroupID:       string(m.GroupID),
		SenderID:      string(m.SenderID),
		Content:       m.Content,
		Lang:          m.Lang,
		CensoredWords: m.CensoredWords,
		CreatedAt:     m.CreatedAt.UnixNano(),
	}
}

func toChatMessage(dm diskChatMessage) (domain.ChatMessage, error) {
	parsedID, err := uuid.Parse(dm.ID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.ChatMessage{
		ID:            parsedID,
		GroupID:       domain.GroupID(dm.GroupID),
		SenderID:      domain.UserID(dm.SenderID),
		Content:       dm.Content,
		Lang:          dm.Lang,
		CensoredWords: dm.CensoredWords,
		CreatedAt:     time.Unix(0, dm.CreatedAt).UTC(),
	}, nil
}
