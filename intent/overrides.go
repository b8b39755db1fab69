package intent

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// OverrideRule forces an intent when the raw message contains any of a
// fixed literal vocabulary. Rules are evaluated in order, before any
// scoring, so the override set stays inspectable and testable on its own.
type OverrideRule struct {
	Intent     string
	Confidence float64
	Patterns   []string
	matcher    *goahocorasick.Machine
}

// NewOverrideRule builds the Aho-Corasick automaton over the lowercased
// pattern vocabulary.
func NewOverrideRule(intent string, confidence float64, patterns []string) (OverrideRule, error) {
	runes := make([][]rune, len(patterns))
	for i, pattern := range patterns {
		runes[i] = []rune(strings.ToLower(pattern))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(runes); err != nil {
		return OverrideRule{}, err
	}
	return OverrideRule{
		Intent:     intent,
		Confidence: confidence,
		Patterns:   patterns,
		matcher:    m,
	}, nil
}

// Matches reports whether the raw message contains any pattern of the rule.
func (r OverrideRule) Matches(text string) bool {
	if r.matcher == nil {
		return false
	}
	hits := r.matcher.MultiPatternSearch([]rune(strings.ToLower(text)), true)
	return len(hits) > 0
}

// DefaultOverrides returns the production override set: a single rule
// routing failure vocabulary straight to error_handling.
func DefaultOverrides() ([]OverrideRule, error) {
	errorRule, err := NewOverrideRule(IntentError, 0.95, []string{
		"failed", "fail", "error", "bug", "issue",
		"not working", "broke", "broken", "crash", "crashed",
	})
	if err != nil {
		return nil, err
	}
	return []OverrideRule{errorRule}, nil
}
