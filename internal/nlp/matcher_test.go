package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "btech", b: "btech", want: 1.0},
		{name: "case folded", a: "BTech", b: "btech", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "disjoint", a: "ab", b: "xy", want: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}

	// kitten/sitting is 3 edits over 7 runes.
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestLevenshteinMatcherBestMatch(t *testing.T) {
	vocab := []string{
		"rajasthan institute of engineering",
		"sunrise polytechnic college",
		"modern college of arts",
	}
	m := NewLevenshteinMatcher(0.7)

	t.Run("exact", func(t *testing.T) {
		match, ok := m.BestMatch("sunrise polytechnic college", vocab)
		require.True(t, ok)
		assert.Equal(t, "sunrise polytechnic college", match.Value)
		assert.InDelta(t, 1.0, match.Score, 1e-9)
	})

	t.Run("typo within threshold", func(t *testing.T) {
		match, ok := m.BestMatch("sunrise polytecnic college", vocab)
		require.True(t, ok)
		assert.Equal(t, "sunrise polytechnic college", match.Value)
	})

	t.Run("below threshold", func(t *testing.T) {
		_, ok := m.BestMatch("harvard", vocab)
		assert.False(t, ok)
	})

	t.Run("empty candidate", func(t *testing.T) {
		_, ok := m.BestMatch("   ", vocab)
		assert.False(t, ok)
	})

	t.Run("empty vocab", func(t *testing.T) {
		_, ok := m.BestMatch("anything", nil)
		assert.False(t, ok)
	})
}

func TestLevenshteinMatcherTiebreak(t *testing.T) {
	// Both entries score identically; the earlier one wins.
	m := NewLevenshteinMatcher(0.4)
	match, ok := m.BestMatch("abcd", []string{"abcx", "abcy"})
	require.True(t, ok)
	assert.Equal(t, "abcx", match.Value)
}

func TestNewLevenshteinMatcherDefaultThreshold(t *testing.T) {
	m := NewLevenshteinMatcher(0)
	assert.InDelta(t, DefaultThreshold, m.Threshold, 1e-9)
}

func TestSuggest(t *testing.T) {
	vocab := []string{
		"rajasthan institute of engineering",
		"sunrise polytechnic college",
		"modern college of arts",
	}

	t.Run("subsequence match", func(t *testing.T) {
		got := Suggest("engineering", vocab, 3)
		require.NotEmpty(t, got)
		assert.Contains(t, got, "rajasthan institute of engineering")
	})

	t.Run("limit", func(t *testing.T) {
		got := Suggest("college", vocab, 1)
		assert.Len(t, got, 1)
	})

	t.Run("edit distance fallback", func(t *testing.T) {
		got := Suggest("mtceh", []string{"mtech", "mba"}, 3)
		assert.Equal(t, []string{"mtech"}, got)
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Nil(t, Suggest("zzzzzzzzzz", vocab, 3))
	})

	t.Run("empty term", func(t *testing.T) {
		assert.Nil(t, Suggest("  ", vocab, 3))
	})
}
