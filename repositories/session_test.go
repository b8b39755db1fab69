package repositories

import (
	"log/slog"
	"testing"
	"time"

	"crm-assistant/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSessionRepository_Append_And_Transcript_Sorted(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repo := NewSessionRepository(db, slog.Default(), nil)
	sessionID := "session-42"
	now := time.Now().UTC().Truncate(time.Nanosecond)

	messages := []domain.ChatMessage{
		{
			ID:        uuid.New(),
			SessionID: sessionID,
			UserID:    "user-1",
			Role:      domain.RoleAssistant,
			Content:   "Contact deleted.",
			CreatedAt: now.Add(2 * time.Second),
		},
		{
			ID:        uuid.New(),
			SessionID: sessionID,
			UserID:    "user-1",
			Role:      domain.RoleUser,
			Content:   "I want to delete a contact",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			SessionID: sessionID,
			UserID:    "user-1",
			Role:      domain.RoleUser,
			Content:   "thanks",
			Language:  "eng",
			CreatedAt: now.Add(5 * time.Second),
		},
	}

	// Insert out of order on purpose, keys must restore chronology.
	for _, message := range messages {
		req.NoError(repo.Append(message))
	}

	fetched, err := repo.Transcript(sessionID)
	req.NoError(err)
	req.Len(fetched, len(messages))
	req.Equal("I want to delete a contact", fetched[0].Content)
	req.Equal("Contact deleted.", fetched[1].Content)
	req.Equal("thanks", fetched[2].Content)
	req.Equal(domain.RoleUser, fetched[0].Role)
	req.Equal("eng", fetched[2].Language)
	req.True(fetched[0].CreatedAt.Equal(now))
}

func TestSessionRepository_Transcript_Limit(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repo := NewSessionRepository(db, slog.Default(), lo.ToPtr(2))
	sessionID := "session-limited"
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		req.NoError(repo.Append(domain.ChatMessage{
			ID:        uuid.New(),
			SessionID: sessionID,
			UserID:    "user-1",
			Role:      domain.RoleUser,
			Content:   "message",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	fetched, err := repo.Transcript(sessionID)
	req.NoError(err)
	req.Len(fetched, 2)
}

func TestSessionRepository_Transcript_Isolates_Sessions(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repo := NewSessionRepository(db, slog.Default(), nil)
	now := time.Now().UTC()

	req.NoError(repo.Append(domain.ChatMessage{
		ID: uuid.New(), SessionID: "session-a", UserID: "user-1",
		Role: domain.RoleUser, Content: "show my deals", CreatedAt: now,
	}))
	req.NoError(repo.Append(domain.ChatMessage{
		ID: uuid.New(), SessionID: "session-b", UserID: "user-2",
		Role: domain.RoleUser, Content: "create a task", CreatedAt: now,
	}))

	fetched, err := repo.Transcript("session-a")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("show my deals", fetched[0].Content)

	empty, err := repo.Transcript("session-missing")
	req.NoError(err)
	req.Empty(empty)
}
