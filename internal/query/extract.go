package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/nlp"
)

// feeRangePattern matches "<digits> to <digits>" anywhere in a query.
var feeRangePattern = regexp.MustCompile(`(\d+)\s*to\s*(\d+)`)

// Entities holds everything the extractors pulled out of one query.
type Entities struct {
	Locations []string
	Colleges  []string
	Course    string
	FeeMin    int
	FeeMax    int
	HasFee    bool
}

// Extractor runs the entity extractors against the dataset vocabulary.
// Every method is a pure function of the query text and the index.
type Extractor struct {
	index      *dataset.Index
	recognizer nlp.Recognizer
	matcher    nlp.Matcher
}

// NewExtractor builds an extractor over the given index. The recognizer's
// gazetteer is seeded with the index's known cities and states.
func NewExtractor(ix *dataset.Index, matcher nlp.Matcher) *Extractor {
	places := append([]string{}, ix.Cities()...)
	places = append(places, ix.States()...)
	return &Extractor{
		index:      ix,
		recognizer: nlp.NewGazetteerRecognizer(places),
		matcher:    matcher,
	}
}

// Extract runs all extractors over the query.
func (e *Extractor) Extract(query string) Entities {
	ents := Entities{
		Locations: e.Locations(query),
		Colleges:  e.CollegeNames(query),
	}
	if course, ok := e.CourseName(query); ok {
		ents.Course = course
	}
	if min, max, ok := e.FeeRange(query); ok {
		ents.FeeMin, ents.FeeMax, ents.HasFee = min, max, true
	}
	return ents
}

// Locations returns the location entities of the query: recognized place
// spans plus any query token that equals a known city or state. The union
// is case-folded, deduplicated and kept in order of first appearance.
func (e *Extractor) Locations(query string) []string {
	type candidate struct {
		start int
		text  string
	}
	var cands []candidate

	for _, span := range e.recognizer.Recognize(query) {
		if span.Label == nlp.LabelPlace {
			cands = append(cands, candidate{start: span.Start, text: span.Text})
		}
	}
	for i, tok := range nlp.Tokens(query) {
		if e.index.HasLocation(tok) {
			cands = append(cands, candidate{start: i, text: tok})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].start < cands[j].start })

	seen := make(map[string]bool, len(cands))
	var out []string
	for _, c := range cands {
		if !seen[c.text] {
			seen[c.text] = true
			out = append(out, c.text)
		}
	}
	return out
}

// CollegeNames returns the fuzzy-validated college names mentioned in the
// query, in order of first appearance, duplicates removed. Each recognized
// organization span must match a known college name above the matcher's
// threshold to count; an empty result means no college was mentioned, not
// an error.
func (e *Extractor) CollegeNames(query string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, span := range e.recognizer.Recognize(query) {
		if span.Label != nlp.LabelOrg {
			continue
		}
		match, ok := e.matcher.BestMatch(span.Text, e.index.CollegeNames())
		if !ok || seen[match.Value] {
			continue
		}
		seen[match.Value] = true
		out = append(out, match.Value)
	}
	return out
}

// CourseName returns the first known course that appears as a substring of
// the lowercased query. The vocabulary is scanned in dataset row order, so
// when one course name contains another the earlier row wins.
func (e *Extractor) CourseName(query string) (string, bool) {
	q := strings.ToLower(query)
	for _, course := range e.index.Courses() {
		if strings.Contains(q, course) {
			return course, true
		}
	}
	return "", false
}

// FeeRange returns the min and max of the first "<digits> to <digits>"
// pattern in the query.
func (e *Extractor) FeeRange(query string) (min, max int, ok bool) {
	m := feeRangePattern.FindStringSubmatch(query)
	if m == nil {
		return 0, 0, false
	}
	min, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
