package domain

// Article is a curated knowledge-base entry.
// Embeddings are owned by the retriever, not by the article itself.
type Article struct {
	ID       string
	Title    string
	Content  string
	Category string
	Tags     []string
}
