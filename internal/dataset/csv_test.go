package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colleges.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const csvHeader = "College Name,Established,Affiliation,Location,Courses Offered," +
	"Course Duration,Admission Criteria,Entrance Exam,Hostel Availability," +
	"Course Fee,Hostel Fee,Placement,Facilities,Society Contribution," +
	"Contact Information,Website\n"

func TestCSVSource_Read(t *testing.T) {
	path := writeCSV(t, csvHeader+
		`Rajasthan Institute of Engineering,1998,RTU,"Jaipur, Rajasthan, India","BTech, MTech",4 years,Merit,JEE Main,Yes,"1,20,000","45,000",85%,Library,,0141-123456,rie.example.org`+"\n"+
		`Sunrise Polytechnic College,2005,,"Udaipur, Rajasthan, India",Diploma,3 years,,,Yes,"55,000",,,,,,`+"\n")

	records, err := NewCSVSource(path).Read()
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Rajasthan Institute of Engineering", first.Name)
	assert.Equal(t, "Jaipur", first.City)
	assert.Equal(t, "Rajasthan", first.State)
	assert.Equal(t, "India", first.Country)
	assert.Equal(t, "1,20,000", first.CourseFee)

	second := records[1]
	assert.Equal(t, NA, second.Affiliation)
	assert.Equal(t, NA, second.HostelFee)
	assert.Equal(t, NA, second.Website)
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource("/nonexistent/colleges.csv").Read()
	assert.Error(t, err)
}

func TestCSVSource_MissingColumn(t *testing.T) {
	path := writeCSV(t, "College Name,Location\nA,\"Jaipur, Rajasthan, India\"\n")

	_, err := NewCSVSource(path).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestCSVSource_HeaderCaseInsensitive(t *testing.T) {
	lower := "college name,established,affiliation,location,courses offered," +
		"course duration,admission criteria,entrance exam,hostel availability," +
		"course fee,hostel fee,placement,facilities,society contribution," +
		"contact information,website\n"
	path := writeCSV(t, lower+`A,,,"Kota, Rajasthan, India",,,,,,,,,,,,`+"\n")

	records, err := NewCSVSource(path).Read()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Kota", records[0].City)
}

func TestLoad_BuildsIndex(t *testing.T) {
	path := writeCSV(t, csvHeader+
		`A College,,,"Jaipur, Rajasthan, India","BSc",3 years,,,,,,,,,,`+"\n")

	ix, err := Load(NewCSVSource(path))
	require.NoError(t, err)
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{"jaipur"}, ix.Cities())
}
