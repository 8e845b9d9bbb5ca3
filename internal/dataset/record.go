// Package dataset provides the immutable college dataset index and its
// tabular sources.
package dataset

import "strings"

// NA is the sentinel written into every missing or empty cell at load time.
const NA = "N/A"

// Column names expected from the tabular source.
const (
	ColName                = "College Name"
	ColEstablished         = "Established"
	ColAffiliation         = "Affiliation"
	ColLocation            = "Location"
	ColCoursesOffered      = "Courses Offered"
	ColCourseDuration      = "Course Duration"
	ColAdmissionCriteria   = "Admission Criteria"
	ColEntranceExam        = "Entrance Exam"
	ColHostelAvailability  = "Hostel Availability"
	ColCourseFee           = "Course Fee"
	ColHostelFee           = "Hostel Fee"
	ColPlacement           = "Placement"
	ColFacilities          = "Facilities"
	ColSocietyContribution = "Society Contribution"
	ColContactInfo         = "Contact Information"
	ColWebsite             = "Website"
)

// Columns lists every expected column in canonical order.
var Columns = []string{
	ColName,
	ColEstablished,
	ColAffiliation,
	ColLocation,
	ColCoursesOffered,
	ColCourseDuration,
	ColAdmissionCriteria,
	ColEntranceExam,
	ColHostelAvailability,
	ColCourseFee,
	ColHostelFee,
	ColPlacement,
	ColFacilities,
	ColSocietyContribution,
	ColContactInfo,
	ColWebsite,
}

// Record is one college's full attribute set. City, State and Country are
// derived once at load time from the combined Location column.
type Record struct {
	Name                string
	Established         string
	Affiliation         string
	LocationRaw         string
	City                string
	State               string
	Country             string
	CoursesOffered      string
	CourseDuration      string
	AdmissionCriteria   string
	EntranceExam        string
	HostelAvailability  string
	CourseFee           string
	HostelFee           string
	Placement           string
	Facilities          string
	SocietyContribution string
	ContactInfo         string
	Website             string
}

// normalizeCell replaces empty or whitespace-only cells with the NA sentinel.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NA
	}
	return s
}

// deriveLocation splits LocationRaw into City, State and Country on commas,
// at most three parts, trimmed. Rows with fewer than two comma-separated
// parts are tolerated; the missing parts stay NA.
func (r *Record) deriveLocation() {
	r.City, r.State, r.Country = NA, NA, NA
	if r.LocationRaw == NA {
		return
	}

	parts := strings.SplitN(r.LocationRaw, ",", 3)
	if len(parts) > 0 {
		r.City = normalizeCell(parts[0])
	}
	if len(parts) > 1 {
		r.State = normalizeCell(parts[1])
	}
	if len(parts) > 2 {
		r.Country = normalizeCell(parts[2])
	}
}

// fromRow builds a Record from a column-name keyed row, normalizing missing
// cells and deriving the location fields.
func fromRow(row map[string]string) Record {
	get := func(col string) string {
		return normalizeCell(row[col])
	}

	r := Record{
		Name:                get(ColName),
		Established:         get(ColEstablished),
		Affiliation:         get(ColAffiliation),
		LocationRaw:         get(ColLocation),
		CoursesOffered:      get(ColCoursesOffered),
		CourseDuration:      get(ColCourseDuration),
		AdmissionCriteria:   get(ColAdmissionCriteria),
		EntranceExam:        get(ColEntranceExam),
		HostelAvailability:  get(ColHostelAvailability),
		CourseFee:           get(ColCourseFee),
		HostelFee:           get(ColHostelFee),
		Placement:           get(ColPlacement),
		Facilities:          get(ColFacilities),
		SocietyContribution: get(ColSocietyContribution),
		ContactInfo:         get(ColContactInfo),
		Website:             get(ColWebsite),
	}
	r.deriveLocation()
	return r
}
