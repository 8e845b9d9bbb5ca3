package nlp

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to max vocabulary entries that loosely resemble term,
// best matches first. It ranks subsequence matches with fuzzysearch and,
// when nothing matches that way, falls back to the closest entry by edit
// distance so the caller always has something to offer for a typo.
func Suggest(term string, vocab []string, max int) []string {
	term = strings.TrimSpace(term)
	if term == "" || len(vocab) == 0 || max <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(term, vocab)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		out := make([]string, 0, max)
		for _, r := range ranks {
			out = append(out, r.Target)
			if len(out) == max {
				break
			}
		}
		return out
	}

	closest := ""
	best := -1.0
	for _, entry := range vocab {
		if score := Similarity(term, entry); score > best {
			best = score
			closest = entry
		}
	}
	if best < 0.5 {
		return nil
	}
	return []string{closest}
}
