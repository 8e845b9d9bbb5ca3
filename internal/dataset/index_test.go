package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	rows := []map[string]string{
		{
			ColName:              "Rajasthan Institute of Engineering",
			ColEstablished:       "1998",
			ColAffiliation:       "RTU",
			ColLocation:          "Jaipur, Rajasthan, India",
			ColCoursesOffered:    "BTech, MTech, MBA",
			ColCourseDuration:    "4 years",
			ColAdmissionCriteria: "Merit based on JEE",
			ColEntranceExam:      "JEE Main",
			ColCourseFee:         "1,20,000",
			ColHostelFee:         "45,000",
			ColPlacement:         "85%",
		},
		{
			ColName:              "Sunrise Polytechnic College",
			ColEstablished:       "2005",
			ColLocation:          "Udaipur, Rajasthan, India",
			ColCoursesOffered:    "Diploma in Civil Engineering",
			ColCourseDuration:    "3 years",
			ColAdmissionCriteria: "Rajasthan Polytechnic entrance",
			ColEntranceExam:      "Rajasthan Polytechnic",
			ColCourseFee:         "55,000",
			ColHostelFee:         "30,000",
			ColPlacement:         "70%",
		},
		{
			ColName:           "Modern College of Arts",
			ColLocation:       "Jaipur, Rajasthan, India",
			ColCoursesOffered: "BA, MA",
			ColCourseDuration: "3 years",
		},
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = fromRow(row)
	}
	return records
}

func testIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(testRecords())
}

func TestFromRow_NormalizesMissingCells(t *testing.T) {
	r := fromRow(map[string]string{
		ColName:     "Some College",
		ColLocation: "Kota, Rajasthan, India",
	})

	assert.Equal(t, "Some College", r.Name)
	assert.Equal(t, NA, r.CourseFee)
	assert.Equal(t, NA, r.Website)
}

func TestRecord_DeriveLocation(t *testing.T) {
	tests := []struct {
		name                 string
		location             string
		city, state, country string
	}{
		{"three parts", "Jaipur, Rajasthan, India", "Jaipur", "Rajasthan", "India"},
		{"two parts", "Kota, Rajasthan", "Kota", "Rajasthan", NA},
		{"single part tolerated", "Jodhpur", "Jodhpur", NA, NA},
		{"extra commas stay in country", "Ajmer, Rajasthan, India, Asia", "Ajmer", "Rajasthan", "India, Asia"},
		{"missing location", "", NA, NA, NA},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := fromRow(map[string]string{ColName: "X", ColLocation: tc.location})
			assert.Equal(t, tc.city, r.City)
			assert.Equal(t, tc.state, r.State)
			assert.Equal(t, tc.country, r.Country)
		})
	}
}

func TestIndex_Vocabularies(t *testing.T) {
	ix := testIndex(t)

	// Jaipur appears twice but is indexed once, in row order.
	assert.Equal(t, []string{"jaipur", "udaipur"}, ix.Cities())
	assert.Equal(t, []string{"rajasthan"}, ix.States())
	assert.Equal(t, []string{
		"btech, mtech, mba",
		"diploma in civil engineering",
		"ba, ma",
	}, ix.Courses())
	assert.Equal(t, []string{
		"rajasthan institute of engineering",
		"sunrise polytechnic college",
		"modern college of arts",
	}, ix.CollegeNames())
}

func TestIndex_HasLocation(t *testing.T) {
	ix := testIndex(t)

	assert.True(t, ix.HasLocation("jaipur"))
	assert.True(t, ix.HasLocation("Rajasthan"))
	assert.False(t, ix.HasLocation("mumbai"))
}

func TestIndex_LookupByName(t *testing.T) {
	ix := testIndex(t)

	rec, ok := ix.LookupByName("sunrise polytechnic college")
	require.True(t, ok)
	assert.Equal(t, "Sunrise Polytechnic College", rec.Name)

	_, ok = ix.LookupByName("Unknown College")
	assert.False(t, ok)
}

func TestIndex_FilterByLocation(t *testing.T) {
	ix := testIndex(t)

	jaipur := ix.FilterByLocation("Jaipur")
	require.Len(t, jaipur, 2)
	assert.Equal(t, "Rajasthan Institute of Engineering", jaipur[0].Name)
	assert.Equal(t, "Modern College of Arts", jaipur[1].Name)

	// State match includes every record.
	assert.Len(t, ix.FilterByLocation("rajasthan"), 3)

	assert.Empty(t, ix.FilterByLocation("mumbai"))
}

func TestIndex_FilterByCourseSubstring(t *testing.T) {
	ix := testIndex(t)

	recs := ix.FilterByCourseSubstring("mtech")
	require.Len(t, recs, 1)
	assert.Equal(t, "Rajasthan Institute of Engineering", recs[0].Name)

	assert.Empty(t, ix.FilterByCourseSubstring("phd"))
}

func TestIndex_FilterByFeeRange(t *testing.T) {
	ix := testIndex(t)

	recs := ix.FilterByFeeRange(50000, 150000)
	require.Len(t, recs, 2)
	assert.Equal(t, "Rajasthan Institute of Engineering", recs[0].Name)
	assert.Equal(t, "Sunrise Polytechnic College", recs[1].Name)

	// NA fees are excluded for every range.
	assert.Len(t, ix.FilterByFeeRange(0, 100000000), 2)

	assert.Empty(t, ix.FilterByFeeRange(200000, 300000))
}

func TestParseNumericFee(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1,20,000", 120000, true},
		{"55,000", 55000, true},
		{"INR 95,000 per year", 95000, true},
		{"45000", 45000, true},
		{NA, 0, false},
		{"free", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseNumericFee(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
