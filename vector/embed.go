// Package vector provides deterministic hash-based text embeddings and a
// small in-memory similarity store. Hash collisions between terms are an
// accepted dimensionality reduction, not an error.
package vector

import (
	"math"

	"crm-assistant/nlp"
)

// DefaultDim is the embedding width used across the assistant.
const DefaultDim = 128

// Embed maps text into a fixed-length bag-of-words vector: each distinct
// term is hashed into a bucket and weighted by its relative frequency,
// then the vector is L2-normalized. Empty input yields the zero vector.
func Embed(text string, dim int) []float64 {
	vec := make([]float64, dim)
	tokens := nlp.Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	total := float64(len(tokens))
	for term, count := range counts {
		vec[hashTerm(term)%uint64(dim)] += float64(count) / total
	}
	return normalize(vec)
}

// hashTerm is a DJB2-style polynomial hash; order-sensitive so that
// anagram terms land in different buckets.
func hashTerm(term string) uint64 {
	h := uint64(5381)
	for _, b := range []byte(term) {
		h = h*33 + uint64(b)
	}
	return h
}

// Cosine returns the directional closeness of two vectors, or 0 when
// either norm is zero. Callers guarantee equal dimensions.
func Cosine(a, b []float64) float64 {
	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func normalize(vec []float64) []float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
