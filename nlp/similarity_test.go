package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "Identical strings", a: "contact", b: "contact", expected: 0},
		{name: "Classic kitten sitting", a: "kitten", b: "sitting", expected: 3},
		{name: "Adjacent transposition counts once", a: "ab", b: "ba", expected: 1},
		{name: "Transposition inside a word", a: "conatct", b: "contact", expected: 1},
		{name: "Empty against word", a: "", b: "deal", expected: 4},
		{name: "Both empty", a: "", b: "", expected: 0},
		{name: "Single substitution", a: "task", b: "tusk", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, Distance(tt.a, tt.b))
			req.Equal(tt.expected, Distance(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	req := require.New(t)

	req.Equal(1.0, Similarity("report", "report"))
	req.Equal(0.95, Similarity("contact", "contacts"))
	req.Equal(0.95, Similarity("contacts", "contact"))
	req.Equal(0.0, Similarity("", "report"))

	// kitten/sitting: 1 - 3/7
	req.InDelta(1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestTypoThreshold(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		length   int
		expected float64
	}{
		{1, 0.40},
		{2, 0.40},
		{3, 0.50},
		{4, 0.55},
		{5, 0.55},
		{6, 0.60},
		{7, 0.65},
		{8, 0.65},
		{9, 0.55},
		{15, 0.55},
	}
	for _, tt := range tests {
		req.Equal(tt.expected, TypoThreshold(tt.length), "length %d", tt.length)
	}
}

func TestFuzzyMatch(t *testing.T) {
	req := require.New(t)

	// One transposition in a 7-letter word stays above the bar.
	req.True(FuzzyMatch("conatct", "contact"))
	// Unrelated words do not.
	req.False(FuzzyMatch("pipeline", "report"))
}
