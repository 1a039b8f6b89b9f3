package records

import (
	"strings"

	"github.com/Mutie886/aims-directory-generator/pkg/textnorm"
)

// Header keyword sets. The first non-empty line of an input is discarded as
// a header when it contains any of these as a case-insensitive substring.
var (
	studentHeaderKeywords = []string{"lastname", "firstname", "surname", "name", "nom", "prenom", "student"}
	courseHeaderKeywords  = []string{"course", "coursename", "courses", "name", "subject"}
)

// ParseStudents parses already-decoded text into student records, one
// "Lastname, Firstname" pair per line. Lines that cannot produce a valid
// record are reported as issues and skipped; input order is preserved and
// duplicates are kept.
func ParseStudents(text string) ([]Student, []Issue) {
	var students []Student
	var issues []Issue

	headerChecked := false
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !headerChecked {
			headerChecked = true
			if isHeaderLine(trimmed, studentHeaderKeywords) {
				continue
			}
		}

		if !strings.Contains(trimmed, ",") {
			issues = append(issues, Issue{Line: lineNo, Input: trimmed, Reason: "no comma separating last and first name"})
			continue
		}

		// Split on the first comma only: everything after it is the
		// first name, commas included, until normalization strips them.
		parts := strings.SplitN(trimmed, ",", 2)
		last := textnorm.CapitalizeName(textnorm.Normalize(parts[0]))
		first := textnorm.CapitalizeName(textnorm.Normalize(parts[1]))

		switch {
		case len(last) <= 1 || len(first) <= 1:
			issues = append(issues, Issue{Line: lineNo, Input: trimmed, Reason: "name shorter than 2 characters after normalization"})
		case isHeaderKeyword(last, studentHeaderKeywords) || isHeaderKeyword(first, studentHeaderKeywords):
			issues = append(issues, Issue{Line: lineNo, Input: trimmed, Reason: "looks like a header row"})
		default:
			students = append(students, Student{LastName: last, FirstName: first})
		}
	}

	return students, issues
}

// ParseCourses parses already-decoded text into course name tokens, one
// course per line, each word capitalized independently.
func ParseCourses(text string) ([]string, []Issue) {
	var courses []string
	var issues []Issue

	headerChecked := false
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !headerChecked {
			headerChecked = true
			if isHeaderLine(trimmed, courseHeaderKeywords) {
				continue
			}
		}

		course := textnorm.CapitalizeWords(textnorm.Normalize(trimmed))
		if len(course) <= 1 {
			issues = append(issues, Issue{Line: lineNo, Input: trimmed, Reason: "course name shorter than 2 characters after normalization"})
			continue
		}
		courses = append(courses, course)
	}

	return courses, issues
}

// ParseStudentData decodes an uploaded file with the encoding fallback chain
// and parses it. The encoding that was used is returned so callers can
// report it.
func ParseStudentData(data []byte) ([]Student, []Issue, string) {
	text, encoding := DecodeText(data)
	students, issues := ParseStudents(text)
	return students, issues, encoding
}

// ParseCourseData is the file-source variant of ParseCourses.
func ParseCourseData(data []byte) ([]string, []Issue, string) {
	text, encoding := DecodeText(data)
	courses, issues := ParseCourses(text)
	return courses, issues, encoding
}

func isHeaderLine(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isHeaderKeyword(token string, keywords []string) bool {
	lower := strings.ToLower(token)
	for _, kw := range keywords {
		if lower == kw {
			return true
		}
	}
	return false
}
