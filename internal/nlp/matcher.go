package nlp

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the minimum similarity a candidate must reach
// before BestMatch reports it.
const DefaultThreshold = 0.7

// Match is a vocabulary entry paired with its similarity score.
type Match struct {
	Value string
	Score float64
}

// Matcher resolves a free-form candidate string against a vocabulary.
type Matcher interface {
	BestMatch(candidate string, vocab []string) (Match, bool)
}

// LevenshteinMatcher scores candidates by normalized edit distance.
// Similarity is 1 - distance/maxLen over the lowercased rune strings,
// so identical strings score 1.0 and fully disjoint strings score 0.
type LevenshteinMatcher struct {
	Threshold float64
}

// NewLevenshteinMatcher returns a matcher with the given threshold,
// falling back to DefaultThreshold when threshold is not positive.
func NewLevenshteinMatcher(threshold float64) *LevenshteinMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &LevenshteinMatcher{Threshold: threshold}
}

// BestMatch returns the highest-scoring vocabulary entry at or above the
// threshold. Ties keep the earliest entry so results stay deterministic
// for vocabularies built in dataset row order.
func (m *LevenshteinMatcher) BestMatch(candidate string, vocab []string) (Match, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(vocab) == 0 {
		return Match{}, false
	}

	best := Match{Score: -1}
	for _, entry := range vocab {
		score := Similarity(candidate, entry)
		if score > best.Score {
			best = Match{Value: entry, Score: score}
		}
	}
	if best.Score < m.Threshold {
		return Match{}, false
	}
	return best, true
}

// Similarity returns a score in [0, 1] for two strings, case-insensitive.
func Similarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la == lb {
		return 1.0
	}
	maxLen := len([]rune(la))
	if n := len([]rune(lb)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(la, lb)
	return 1.0 - float64(dist)/float64(maxLen)
}
