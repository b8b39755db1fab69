// Package kb ranks curated help articles against a query with a hybrid
// signal: vector cosine similarity weighted 0.7 and a keyword score
// weighted 0.3.
package kb

import (
	"log/slog"
	"sort"
	"strings"

	"crm-assistant/domain"
	"crm-assistant/nlp"
	"crm-assistant/vector"
)

const (
	vectorWeight  = 0.7
	keywordWeight = 0.3
	scoreFloor    = 0.1
	maxResults    = 5

	titleHitWeight = 3.0
	tagHitWeight   = 2.0
	bodyHitWeight  = 1.0
	keywordDivisor = 10.0
)

// Ref is a ranked article reference returned to the chat layer.
type Ref struct {
	ID    string
	Title string
	Score float64
}

// Retriever searches the article corpus. Embeddings live in the shared
// vector store, indexed once at construction.
type Retriever struct {
	log      *slog.Logger
	store    *vector.Store
	articles map[string]domain.Article
}

func NewRetriever(articles []domain.Article, dim int, log *slog.Logger) *Retriever {
	store := vector.NewStore(dim, log)
	byID := make(map[string]domain.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
		if err := store.Add(article.ID, article.Title+" "+article.Content, map[string]string{"title": article.Title}); err != nil {
			log.Warn("Article skipped", "id", article.ID, "error", err)
		}
	}
	return &Retriever{log: log, store: store, articles: byID}
}

// Search returns up to 5 articles whose combined score clears the floor,
// best first.
func (r *Retriever) Search(query string) []Ref {
	results, err := r.store.Search(vector.Embed(query, r.store.Dim()), 0)
	if err != nil {
		r.log.Error("Article search failed", "error", err)
		return nil
	}
	tokens := nlp.Tokenize(query)

	var refs []Ref
	for _, result := range results {
		article := r.articles[result.ID]
		keyword := keywordScore(tokens, article)
		combined := vectorWeight*result.Similarity + keywordWeight*keyword
		if combined < scoreFloor {
			continue
		}
		refs = append(refs, Ref{ID: article.ID, Title: article.Title, Score: combined})
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Score > refs[j].Score })
	if len(refs) > maxResults {
		refs = refs[:maxResults]
	}
	return refs
}

// keywordScore counts query-token hits in the title (x3), the tags (x2)
// and the body (x1), scaled down by a fixed divisor.
func keywordScore(tokens []string, article domain.Article) float64 {
	title := strings.ToLower(article.Title)
	body := strings.ToLower(article.Content)

	titleHits, tagHits, bodyHits := 0, 0, 0
	for _, token := range tokens {
		if strings.Contains(title, token) {
			titleHits++
		}
		for _, tag := range article.Tags {
			if strings.Contains(strings.ToLower(tag), token) {
				tagHits++
				break
			}
		}
		if strings.Contains(body, token) {
			bodyHits++
		}
	}
	score := titleHitWeight*float64(titleHits) + tagHitWeight*float64(tagHits) + bodyHitWeight*float64(bodyHits)
	return score / keywordDivisor
}
