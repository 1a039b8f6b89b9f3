// Package workspace materializes the student/course directory tree and
// renders it back as a text preview.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mutie886/aims-directory-generator/pkg/records"
)

// ReadmeName is the fixed documentation file created in every course folder.
const ReadmeName = "README.txt"

// Result aggregates what a single Build run created or left in place.
type Result struct {
	StudentsProcessed    int    `json:"students_processed"`
	StudentsCreated      int    `json:"students_created"`
	StudentsSkipped      int    `json:"students_skipped"`
	CourseFoldersCreated int    `json:"course_folders_created"`
	CourseFoldersSkipped int    `json:"course_folders_skipped"`
	ReadmesCreated       int    `json:"readmes_created"`
	ReadmesSkipped       int    `json:"readmes_skipped"`
	BaseFolder           string `json:"base_folder"`

	// Issues holds per-unit filesystem failures. A failed unit is counted
	// as skipped and the run carries on with the remaining units.
	Issues []Issue `json:"issues,omitempty"`
}

// Issue records a filesystem failure for a single directory or file.
type Issue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Build creates the full student×course directory structure under
// baseFolder: one "Last, First" folder per student, one course subfolder per
// course inside it, and a README in every course folder. Every step is
// skip-if-exists, so rerunning with the same input leaves the tree untouched
// and reports everything as skipped.
func Build(students []records.Student, courses []string, baseFolder string) *Result {
	res := &Result{
		StudentsProcessed: len(students),
		BaseFolder:        baseFolder,
	}

	// An existing root is never an error; a failure to create it is
	// reported once and the per-unit steps below surface the fallout.
	if _, err := ensureDir(baseFolder); err != nil {
		res.Issues = append(res.Issues, Issue{Path: baseFolder, Reason: err.Error()})
	}

	for _, student := range students {
		studentPath := filepath.Join(baseFolder, student.Folder())
		created, err := ensureDir(studentPath)
		switch {
		case err != nil:
			res.Issues = append(res.Issues, Issue{Path: studentPath, Reason: err.Error()})
			res.StudentsSkipped++
		case created:
			res.StudentsCreated++
		default:
			res.StudentsSkipped++
		}

		for _, course := range courses {
			coursePath := filepath.Join(studentPath, course)
			created, err := ensureDir(coursePath)
			switch {
			case err != nil:
				res.Issues = append(res.Issues, Issue{Path: coursePath, Reason: err.Error()})
				res.CourseFoldersSkipped++
			case created:
				res.CourseFoldersCreated++
			default:
				res.CourseFoldersSkipped++
			}

			created, err = ensureReadme(coursePath, course, student)
			switch {
			case err != nil:
				res.Issues = append(res.Issues, Issue{Path: filepath.Join(coursePath, ReadmeName), Reason: err.Error()})
				res.ReadmesSkipped++
			case created:
				res.ReadmesCreated++
			default:
				res.ReadmesSkipped++
			}
		}
	}

	return res
}

// Summary returns a one-line human summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Processed %d students: %d student folders, %d course folders, %d READMEs created (%d issues)",
		r.StudentsProcessed, r.StudentsCreated, r.CourseFoldersCreated, r.ReadmesCreated, len(r.Issues))
}

// ensureDir creates dir if it is missing and reports whether it was created.
func ensureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// ensureReadme writes the course README if absent and reports whether it was
// created. Existing files are never overwritten.
func ensureReadme(courseDir, course string, student records.Student) (bool, error) {
	path := filepath.Join(courseDir, ReadmeName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	content := fmt.Sprintf("Course: %s\nStudent: %s\n\nThis directory is for coursework and projects.",
		course, student.FullName())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}
