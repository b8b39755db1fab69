//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"

	"crm-assistant/domain"

	"github.com/blugelabs/bluge"
)

type ITranscriptIndex interface {
	Index(message domain.ChatMessage) error
	Search(ctx context.Context, sessionID, query string, limit int) ([]TranscriptHit, error)
}

type TranscriptHit struct {
	MessageID string
	SessionID string
	Content   string
}

// TranscriptIndex mirrors the Badger transcript store into a Bluge
// full-text index so past conversations stay searchable.
type TranscriptIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewTranscriptIndex(writer *bluge.Writer, log *slog.Logger) TranscriptIndex {
	return TranscriptIndex{writer: writer, log: log}
}

func (t TranscriptIndex) Index(message domain.ChatMessage) error {
	doc := bluge.NewDocument(message.ID.String())
	doc.AddField(bluge.NewKeywordField("session_id", message.SessionID).StoreValue())
	doc.AddField(bluge.NewKeywordField("role", string(message.Role)))
	doc.AddField(bluge.NewTextField("content", message.Content).StoreValue())
	return t.writer.Update(doc.ID(), doc)
}

// Search runs a match query over message contents, optionally scoped to a
// single session. Results come back in relevance order.
func (t TranscriptIndex) Search(ctx context.Context, sessionID, query string, limit int) ([]TranscriptHit, error) {
	reader, err := t.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField("content"))
	if sessionID != "" {
		boolean.AddMust(bluge.NewTermQuery(sessionID).SetField("session_id"))
	}

	request := bluge.NewTopNSearch(limit, boolean).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []TranscriptHit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit TranscriptHit
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID = string(value)
			case "session_id":
				hit.SessionID = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
