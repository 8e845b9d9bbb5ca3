package query

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/campusassist/collegebot/internal/dataset"
)

// Fallback is the fixed apology returned when no router branch matches.
const Fallback = "Sorry, I couldn't understand the query. Could you please rephrase it?"

// Formatter renders matched records into the label-value text blocks the
// chat surface displays. All methods are pure; formatting the same input
// twice yields identical text.
type Formatter struct{}

// NewFormatter creates a formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Comparison renders a side-by-side block for two records.
func (f *Formatter) Comparison(a, b dataset.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Comparison between %s and %s:\n\n", a.Name, b.Name)
	fmt.Fprintf(&sb, "Course Fee: %s vs %s\n", a.CourseFee, b.CourseFee)
	fmt.Fprintf(&sb, "Hostel Fee: %s vs %s\n", a.HostelFee, b.HostelFee)
	fmt.Fprintf(&sb, "Courses Offered: %s vs %s\n", a.CoursesOffered, b.CoursesOffered)
	fmt.Fprintf(&sb, "Placement: %s vs %s\n", a.Placement, b.Placement)
	fmt.Fprintf(&sb, "Admission Criteria: %s vs %s\n", a.AdmissionCriteria, b.AdmissionCriteria)
	return sb.String()
}

// DurationList renders one duration sentence per record offering the course.
func (f *Formatter) DurationList(course string, recs []dataset.Record) string {
	if len(recs) == 0 {
		return fmt.Sprintf("No details found for the course %s.", capitalizeFirst(course))
	}
	var sb strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&sb, "The duration of %s at %s is %s.\n",
			capitalizeFirst(course), rec.Name, rec.CourseDuration)
	}
	return sb.String()
}

// CollegeInLocation renders the records of one college restricted to one
// location, with intent-specific fields.
func (f *Formatter) CollegeInLocation(college, location string, intent Intent, recs []dataset.Record) string {
	college = capitalizeFirst(college)
	location = capitalizeFirst(location)
	if len(recs) == 0 {
		return fmt.Sprintf("No details found for %s in %s.", college, location)
	}

	var sb strings.Builder
	for _, rec := range recs {
		switch intent {
		case IntentAdmission:
			fmt.Fprintf(&sb, "Admission Criteria for %s in %s:\n", college, location)
			fmt.Fprintf(&sb, "Admission Criteria: %s\n", rec.AdmissionCriteria)
			fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
		case IntentDuration:
			fmt.Fprintf(&sb, "Course Duration for %s in %s:\n", college, location)
			fmt.Fprintf(&sb, "Course Duration: %s\n", rec.CourseDuration)
		case IntentExam:
			fmt.Fprintf(&sb, "Entrance Exams for %s in %s:\n", college, location)
			fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
		default:
			fmt.Fprintf(&sb, "Details for %s in %s:\n", college, location)
			f.detailBlock(&sb, rec)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// SingleCollege renders one record with intent-specific fields.
func (f *Formatter) SingleCollege(rec dataset.Record, intent Intent) string {
	var sb strings.Builder
	switch intent {
	case IntentAdmission:
		fmt.Fprintf(&sb, "Admission Criteria for %s:\n", rec.Name)
		fmt.Fprintf(&sb, "Admission Criteria: %s\n", rec.AdmissionCriteria)
		fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
	case IntentDuration:
		fmt.Fprintf(&sb, "Course Duration for %s:\n", rec.Name)
		fmt.Fprintf(&sb, "Course Duration: %s\n", rec.CourseDuration)
	case IntentExam:
		fmt.Fprintf(&sb, "Entrance Exams for %s:\n", rec.Name)
		fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
	default:
		fmt.Fprintf(&sb, "Details for %s:\n", rec.Name)
		f.detailBlock(&sb, rec)
	}
	return sb.String()
}

// FeeRangeList renders the records whose numeric fee falls within the range.
func (f *Formatter) FeeRangeList(min, max int, recs []dataset.Record) string {
	if len(recs) == 0 {
		return fmt.Sprintf("No colleges found within the fee range of %d to %d.", min, max)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Colleges with course fee between %d and %d:\n", min, max)
	for _, rec := range recs {
		fmt.Fprintf(&sb, "College Name: %s\n", rec.Name)
		fmt.Fprintf(&sb, "Location: %s\n", rec.LocationRaw)
		fmt.Fprintf(&sb, "Courses Offered: %s\n", rec.CoursesOffered)
		fmt.Fprintf(&sb, "Course Fee: %s\n", rec.CourseFee)
		sb.WriteString("\n")
	}
	return sb.String()
}

// LocationList renders all records in one location with intent-specific
// fields per record.
func (f *Formatter) LocationList(location string, intent Intent, recs []dataset.Record) string {
	location = capitalizeFirst(location)
	if len(recs) == 0 {
		return fmt.Sprintf("No colleges found in %s.", location)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Colleges in %s:\n", location)
	for _, rec := range recs {
		switch intent {
		case IntentAdmission:
			fmt.Fprintf(&sb, "Course Offered: %s\n", rec.CoursesOffered)
			fmt.Fprintf(&sb, "Admission Criteria: %s\n", rec.AdmissionCriteria)
			fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
		case IntentDuration:
			fmt.Fprintf(&sb, "Course Duration: %s\n", rec.CourseDuration)
		case IntentExam:
			fmt.Fprintf(&sb, "Course Offered: %s\n", rec.CoursesOffered)
			fmt.Fprintf(&sb, "Entrance Exam: %s\n", rec.EntranceExam)
		default:
			f.detailBlock(&sb, rec)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// CourseList renders all records offering the course.
func (f *Formatter) CourseList(course string, recs []dataset.Record) string {
	if len(recs) == 0 {
		return fmt.Sprintf("No colleges found offering the course %s.", capitalizeFirst(course))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Colleges offering %s:\n", capitalizeFirst(course))
	for _, rec := range recs {
		fmt.Fprintf(&sb, "College Name: %s\n", rec.Name)
		fmt.Fprintf(&sb, "Location: %s\n", rec.LocationRaw)
		fmt.Fprintf(&sb, "Course Duration: %s\n", rec.CourseDuration)
		fmt.Fprintf(&sb, "Course Fee: %s\n", rec.CourseFee)
		sb.WriteString("\n")
	}
	return sb.String()
}

// NotFound renders the message for a name with no exact record.
func (f *Formatter) NotFound(name string) string {
	return fmt.Sprintf("No details found for %s.", capitalizeFirst(name))
}

// detailBlock writes the full record dump in canonical column order.
func (f *Formatter) detailBlock(sb *strings.Builder, rec dataset.Record) {
	fmt.Fprintf(sb, "College Name: %s\n", rec.Name)
	fmt.Fprintf(sb, "Established: %s\n", rec.Established)
	fmt.Fprintf(sb, "Affiliation: %s\n", rec.Affiliation)
	fmt.Fprintf(sb, "Location: %s\n", rec.LocationRaw)
	fmt.Fprintf(sb, "Courses Offered: %s\n", rec.CoursesOffered)
	fmt.Fprintf(sb, "Course Duration: %s\n", rec.CourseDuration)
	fmt.Fprintf(sb, "Admission Criteria: %s\n", rec.AdmissionCriteria)
	fmt.Fprintf(sb, "Entrance Exam: %s\n", rec.EntranceExam)
	fmt.Fprintf(sb, "Hostel Availability: %s\n", rec.HostelAvailability)
	fmt.Fprintf(sb, "Course Fee: %s\n", rec.CourseFee)
	fmt.Fprintf(sb, "Hostel Fee: %s\n", rec.HostelFee)
	fmt.Fprintf(sb, "Placement: %s\n", rec.Placement)
	fmt.Fprintf(sb, "Facilities: %s\n", rec.Facilities)
	fmt.Fprintf(sb, "Society Contribution: %s\n", rec.SocietyContribution)
	fmt.Fprintf(sb, "Contact Information: %s\n", rec.ContactInfo)
	fmt.Fprintf(sb, "Website: %s\n", rec.Website)
}

// capitalizeFirst uppercases the first rune and lowercases the rest.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
