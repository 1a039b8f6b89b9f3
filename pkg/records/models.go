// Package records parses raw student and course lists into validated records.
package records

// Student is a validated (last name, first name) pair ready for directory
// construction. Both parts are normalized, capitalized tokens.
type Student struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
}

// FullName returns the display form "First Last" used inside README files.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Folder returns the student directory name "Last, First".
func (s Student) Folder() string {
	return s.LastName + ", " + s.FirstName
}

// Issue describes an input line that could not be turned into a record.
// Issues are informational: parsing always continues with the next line.
type Issue struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}
