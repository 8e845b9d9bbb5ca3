package dataset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Index is the immutable, process-wide view of the college dataset. It is
// built once at load time and must not be mutated afterwards; concurrent
// readers need no locking.
type Index struct {
	records []Record

	cities map[string]bool
	states map[string]bool

	cityList    []string
	stateList   []string
	courseList  []string
	collegeList []string
}

// NewIndex builds an Index over the given records. Vocabularies are
// lowercased and deduplicated, preserving first-appearance (row) order so
// that iteration is deterministic.
func NewIndex(records []Record) *Index {
	ix := &Index{
		records: records,
		cities:  make(map[string]bool),
		states:  make(map[string]bool),
	}

	seenCourse := make(map[string]bool)
	seenCollege := make(map[string]bool)

	for _, r := range records {
		if city := strings.ToLower(r.City); city != strings.ToLower(NA) && !ix.cities[city] {
			ix.cities[city] = true
			ix.cityList = append(ix.cityList, city)
		}
		if state := strings.ToLower(r.State); state != strings.ToLower(NA) && !ix.states[state] {
			ix.states[state] = true
			ix.stateList = append(ix.stateList, state)
		}
		if course := strings.ToLower(r.CoursesOffered); course != strings.ToLower(NA) && !seenCourse[course] {
			seenCourse[course] = true
			ix.courseList = append(ix.courseList, course)
		}
		if name := strings.ToLower(r.Name); name != strings.ToLower(NA) && !seenCollege[name] {
			seenCollege[name] = true
			ix.collegeList = append(ix.collegeList, name)
		}
	}

	return ix
}

// Load reads all records from src and builds the Index.
func Load(src Source) (*Index, error) {
	records, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return NewIndex(records), nil
}

// Len returns the number of records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Records returns all records in row order. Callers must not modify the
// returned slice.
func (ix *Index) Records() []Record {
	return ix.records
}

// Cities returns the known city vocabulary, lowercased, in row order.
func (ix *Index) Cities() []string {
	return ix.cityList
}

// States returns the known state vocabulary, lowercased, in row order.
func (ix *Index) States() []string {
	return ix.stateList
}

// Courses returns the course-offering vocabulary, lowercased, in row order.
// One entry per distinct Courses Offered value; iteration order is fixed and
// first-match-wins lookups depend on it.
func (ix *Index) Courses() []string {
	return ix.courseList
}

// CollegeNames returns the known college names, lowercased, in row order.
func (ix *Index) CollegeNames() []string {
	return ix.collegeList
}

// HasLocation reports whether token equals a known city or state,
// case-insensitively.
func (ix *Index) HasLocation(token string) bool {
	t := strings.ToLower(token)
	return ix.cities[t] || ix.states[t]
}

// LookupByName returns the first record whose name equals name,
// case-insensitively.
func (ix *Index) LookupByName(name string) (Record, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, r := range ix.records {
		if strings.ToLower(r.Name) == target {
			return r, true
		}
	}
	return Record{}, false
}

// FilterByLocation returns records whose city or state equals token,
// case-insensitively, preserving row order.
func (ix *Index) FilterByLocation(token string) []Record {
	t := strings.ToLower(strings.TrimSpace(token))
	var out []Record
	for _, r := range ix.records {
		if strings.ToLower(r.City) == t || strings.ToLower(r.State) == t {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCourseSubstring returns records whose course offerings contain
// token as a case-insensitive substring, preserving row order.
func (ix *Index) FilterByCourseSubstring(token string) []Record {
	t := strings.ToLower(strings.TrimSpace(token))
	var out []Record
	for _, r := range ix.records {
		if strings.Contains(strings.ToLower(r.CoursesOffered), t) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByFeeRange returns records whose course fee parses to an integer in
// [min, max]. Records with an unparsable or NA fee are excluded.
func (ix *Index) FilterByFeeRange(min, max int) []Record {
	var out []Record
	for _, r := range ix.records {
		fee, ok := ParseNumericFee(r.CourseFee)
		if !ok {
			continue
		}
		if fee >= min && fee <= max {
			out = append(out, r)
		}
	}
	return out
}

// ParseNumericFee extracts the leading numeric value from a fee string.
// Thousands separators are stripped first, then the first maximal digit run
// is parsed as a base-10 integer. Returns false when the string holds no
// digits, which covers the NA sentinel.
func ParseNumericFee(s string) (int, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	run := digitRun.FindString(cleaned)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}
