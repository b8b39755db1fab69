package vector

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	apperrors "crm-assistant/errors"
)

// DefaultMinSimilarity is the floor applied by text searches.
const DefaultMinSimilarity = 0.2

// Entry is one stored document with its unit-normalized embedding.
// Entries are replaced wholesale by id, never partially updated.
type Entry struct {
	ID        string
	Text      string
	Embedding []float64
	Metadata  map[string]string
}

// Result is an entry ranked by similarity to a query.
type Result struct {
	Entry
	Similarity float64
}

// Store is an in-memory vector collection searched by full linear scan.
// No index: acceptable only for small corpora.
type Store struct {
	log *slog.Logger
	dim int

	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

func NewStore(dim int, log *slog.Logger) *Store {
	return &Store{
		log:     log,
		dim:     dim,
		entries: make(map[string]Entry),
	}
}

// Add embeds the text and upserts the entry by id.
func (s *Store) Add(id, text string, metadata map[string]string) error {
	if id == "" {
		return fmt.Errorf("vector store: empty id")
	}
	entry := Entry{ID: id, Text: text, Embedding: Embed(text, s.dim), Metadata: metadata}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[id]; !exists {
		s.order = append(s.order, id)
	}
	s.entries[id] = entry
	return nil
}

// AddBatch upserts several documents; it stops at the first failure.
func (s *Store) AddBatch(docs map[string]string) error {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := s.Add(id, docs[id], nil); err != nil {
			return err
		}
	}
	return nil
}

// Dim returns the embedding dimensionality the store was built with.
func (s *Store) Dim() int {
	return s.dim
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Search ranks every stored entry by cosine similarity to the query
// vector and returns the topK best. A dimension mismatch is a contract
// error and fails fast.
func (s *Store) Search(query []float64, topK int) ([]Result, error) {
	if len(query) != s.dim {
		return nil, fmt.Errorf("%w: query has %d dimensions, store expects %d",
			apperrors.ErrDimensionMismatch, len(query), s.dim)
	}

	s.mu.RLock()
	results := make([]Result, 0, len(s.order))
	for _, id := range s.order {
		entry := s.entries[id]
		results = append(results, Result{Entry: entry, Similarity: Cosine(query, entry.Embedding)})
	}
	s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// SearchByText embeds the query, searches, and drops results below the
// minimum similarity floor.
func (s *Store) SearchByText(query string, topK int, minSimilarity float64) ([]Result, error) {
	results, err := s.Search(Embed(query, s.dim), topK)
	if err != nil {
		return nil, err
	}
	filtered := results[:0]
	for _, result := range results {
		if result.Similarity >= minSimilarity {
			filtered = append(filtered, result)
		}
	}
	return filtered, nil
}
