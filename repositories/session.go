//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"crm-assistant/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ISessionRepository interface {
	Append(message domain.ChatMessage) error
	Transcript(sessionID string) ([]domain.ChatMessage, error)
}

// SessionRepository persists chat transcripts in BadgerDB.
type SessionRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, limitMessages *int) SessionRepository {
	return SessionRepository{db: db, log: log, limitMessages: limitMessages}
}

type diskMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language,omitempty"`
	At        int64     `json:"at"`
}

// Append persists one message. The key is formatted as
// "msg:{session_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the UUID as a collision disconnector if
//     two messages arrive at the same nanosecond.
func (r SessionRepository) Append(message domain.ChatMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.SessionID,
		message.CreatedAt.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(fromChatMessage(message))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Transcript returns the session's messages in chronological order via a
// prefix scan. Thanks to the padded timestamp in the key, no sort is
// needed. Collection stops once the configured limit is reached.
func (r SessionRepository) Transcript(sessionID string) ([]domain.ChatMessage, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", sessionID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(raw) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *r.limitMessages))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, 0, len(raw))
	for _, bytes := range raw {
		var disk diskMessage
		if err := json.Unmarshal(bytes, &disk); err != nil {
			return nil, err
		}
		messages = append(messages, toChatMessage(disk))
	}
	return messages, nil
}

func fromChatMessage(message domain.ChatMessage) diskMessage {
	return diskMessage{
		ID:        message.ID,
		SessionID: message.SessionID,
		UserID:    message.UserID,
		Role:      string(message.Role),
		Content:   message.Content,
		Language:  message.Language,
		At:        message.CreatedAt.UnixNano(),
	}
}

func toChatMessage(disk diskMessage) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        disk.ID,
		SessionID: disk.SessionID,
		UserID:    disk.UserID,
		Role:      domain.Role(disk.Role),
		Content:   disk.Content,
		Language:  disk.Language,
		CreatedAt: time.Unix(0, disk.At).UTC(),
	}
}
