// Package nlp provides the entity-recognition and fuzzy-matching
// collaborators used by the query pipeline.
package nlp

import (
	"strings"
	"unicode"
)

// Label classifies a recognized span.
type Label string

const (
	// LabelPlace marks a geographic place span.
	LabelPlace Label = "place"
	// LabelOrg marks an organization span.
	LabelOrg Label = "org"
)

// Span is a recognized entity span within a query.
type Span struct {
	Text  string
	Label Label
	Start int // token offset of the span's anchor in the query
}

// Recognizer identifies place and organization spans in free text. The
// query pipeline depends only on this contract; implementations are
// substitutable.
type Recognizer interface {
	Recognize(text string) []Span
}

// Organization marker words that anchor candidate college-name spans.
var orgMarkers = map[string]bool{
	"college":     true,
	"institute":   true,
	"university":  true,
	"polytechnic": true,
	"academy":     true,
	"school":      true,
}

// Connector words allowed inside an organization span.
var orgConnectors = map[string]bool{
	"of":  true,
	"the": true,
}

// maxPlaceTokens bounds the n-gram scan for multi-word place names.
const maxPlaceTokens = 3

// GazetteerRecognizer is the default Recognizer. Places come from a
// gazetteer of known names; organizations are anchored on marker words
// (college, institute, ...) and on runs of capitalized tokens. Candidate
// spans are deliberately generous: the caller validates them against the
// college-name vocabulary with a fuzzy matcher.
type GazetteerRecognizer struct {
	places map[string]bool
}

// NewGazetteerRecognizer builds a recognizer over the given place names.
// Names are matched case-insensitively and may span multiple tokens.
func NewGazetteerRecognizer(places []string) *GazetteerRecognizer {
	set := make(map[string]bool, len(places))
	for _, p := range places {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			set[p] = true
		}
	}
	return &GazetteerRecognizer{places: set}
}

// Recognize returns place and organization spans in token order.
func (g *GazetteerRecognizer) Recognize(text string) []Span {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var spans []Span
	spans = append(spans, g.placeSpans(tokens)...)
	spans = append(spans, orgSpans(tokens)...)

	// Stable sort by anchor token so extraction order follows appearance
	// order. The slices are tiny; insertion sort keeps it simple.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}

	return spans
}

// placeSpans scans token n-grams against the gazetteer, longest first so a
// multi-word place wins over its prefix.
func (g *GazetteerRecognizer) placeSpans(tokens []token) []Span {
	var spans []Span
	for i := 0; i < len(tokens); i++ {
		for n := maxPlaceTokens; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			candidate := joinTokens(tokens[i : i+n])
			if g.places[candidate] {
				spans = append(spans, Span{Text: candidate, Label: LabelPlace, Start: i})
				break
			}
		}
	}
	return spans
}

// orgSpans emits candidate organization spans from two heuristics: windows
// around marker words and runs of capitalized tokens.
func orgSpans(tokens []token) []Span {
	var spans []Span
	seen := make(map[string]bool)

	emit := func(text string, start int) {
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		spans = append(spans, Span{Text: text, Label: LabelOrg, Start: start})
	}

	// Marker windows: up to three tokens to the left of the marker, with a
	// trailing "of <word>" extension.
	for i, tok := range tokens {
		if !orgMarkers[tok.lower] {
			continue
		}

		end := i + 1
		if i+2 < len(tokens) && tokens[i+1].lower == "of" {
			end = i + 3
		}

		for k := 1; k <= 3 && i-k >= 0; k++ {
			left := tokens[i-k]
			if orgMarkers[left.lower] {
				break
			}
			emit(joinTokens(tokens[i-k:end]), i-k)
		}
		// The marker alone with its "of" extension ("college of arts").
		if end > i+1 {
			emit(joinTokens(tokens[i:end]), i)
		}
	}

	// Capitalized runs of two or more tokens; "of" and "the" may join a run
	// but never start or end one.
	runStart := -1
	flush := func(endExclusive int) {
		if runStart < 0 {
			return
		}
		end := endExclusive
		for end > runStart && orgConnectors[tokens[end-1].lower] {
			end--
		}
		if end-runStart >= 2 {
			emit(joinTokens(tokens[runStart:end]), runStart)
		}
		runStart = -1
	}

	for i, tok := range tokens {
		switch {
		case tok.capitalized:
			if runStart < 0 {
				runStart = i
			}
		case runStart >= 0 && orgConnectors[tok.lower]:
			// keep the run open
		default:
			flush(i)
		}
	}
	flush(len(tokens))

	return spans
}

// token is a query token with its folded and shape information.
type token struct {
	lower       string
	capitalized bool
}

// tokenize splits text on whitespace and trims surrounding punctuation,
// mirroring the raw token view the extractors work with.
func tokenize(text string) []token {
	fields := strings.Fields(text)
	tokens := make([]token, 0, len(fields))
	for _, f := range fields {
		trimmed := strings.Trim(f, ".,!?;:()[]{}'\"")
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		tokens = append(tokens, token{
			lower:       strings.ToLower(trimmed),
			capitalized: unicode.IsUpper(runes[0]),
		})
	}
	return tokens
}

// Tokens returns the lowercased tokens of text, punctuation trimmed.
func Tokens(text string) []string {
	toks := tokenize(text)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.lower
	}
	return out
}

func joinTokens(toks []token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.lower
	}
	return strings.Join(parts, " ")
}
