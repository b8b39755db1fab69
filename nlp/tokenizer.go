// Package nlp provides the text primitives shared by the classifier,
// the response generator and the embedding layer: tokenization,
// singularization and edit-distance similarity.
package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

// stopwords are dropped during tokenization. The set is intentionally
// small: only glue words that carry no intent signal.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "you": {}, "your": {}, "with": {},
	"that": {}, "this": {}, "from": {}, "have": {}, "has": {}, "can": {},
	"are": {}, "was": {}, "will": {}, "what": {}, "how": {}, "all": {},
	"our": {}, "not": {}, "but": {}, "please": {}, "would": {}, "could": {},
	"about": {}, "there": {}, "they": {}, "them": {}, "want": {}, "like": {},
}

// irregularPlurals covers forms the suffix rules cannot handle.
var irregularPlurals = map[string]string{
	"people":   "person",
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
}

// Tokenize lower-cases the input, strips non-word characters, splits on
// whitespace, drops stopwords and tokens of length <= 2, and singularizes
// what remains. Deterministic, re-tokenizes from scratch on each call.
func Tokenize(text string) []string {
	clean := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	var tokens []string
	for _, field := range strings.Fields(clean) {
		if len(field) <= 2 {
			continue
		}
		if _, ok := stopwords[field]; ok {
			continue
		}
		tokens = append(tokens, Singularize(field))
	}
	return tokens
}

// Singularize reduces a plural token to its singular form using exact
// suffix rules, with a fuzzy fallback over the irregular-plural table for
// misspelled irregular forms.
func Singularize(word string) string {
	if singular, ok := irregularPlurals[word]; ok {
		return singular
	}
	switch {
	case len(word) > 3 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case hasAnySuffix(word, "ses", "xes", "zes", "ches", "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	if len(word) > 3 {
		for plural, singular := range irregularPlurals {
			if FuzzyMatch(word, plural) {
				return singular
			}
		}
	}
	return word
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(word) > len(suffix) && strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
