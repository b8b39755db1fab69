package nlp

import "strings"

// Distance computes the Damerau-Levenshtein distance between two strings
// with unit cost for insertion, deletion, substitution and adjacent
// transposition.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 1; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = minInt(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = minInt(d[i][j], d[i-2][j-2]+1) // transposition
			}
		}
	}
	return d[la][lb]
}

// Similarity maps edit distance into [0,1]. Equal strings short-circuit
// to 1.0 and containment to 0.95, a deliberate bias toward prefix and
// stem matches before paying for the full distance computation.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.95
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	return 1 - float64(Distance(a, b))/float64(maxLen)
}

// TypoThreshold returns the minimum similarity for a fuzzy match at the
// given word length. Shorter words get a lower bar since a single edit
// dominates their distance.
func TypoThreshold(length int) float64 {
	switch {
	case length <= 2:
		return 0.40
	case length <= 3:
		return 0.50
	case length <= 5:
		return 0.55
	case length <= 6:
		return 0.60
	case length <= 8:
		return 0.65
	default:
		return 0.55
	}
}

// FuzzyMatch reports whether two words are close enough to count as the
// same word modulo typos, using the length-adaptive threshold of the
// longer word.
func FuzzyMatch(a, b string) bool {
	length := max(len([]rune(a)), len([]rune(b)))
	return Similarity(a, b) >= TypoThreshold(length)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
