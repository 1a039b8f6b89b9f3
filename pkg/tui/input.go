package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/Mutie886/aims-directory-generator/pkg/records"
	"github.com/Mutie886/aims-directory-generator/pkg/session"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// runUploadTUI loads both rosters from CSV or text files on disk, decoding
// with the encoding fallback chain.
func runUploadTUI(st *session.State) error {
	var studentPath, coursePath string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student list file").
				Description("CSV or text file with one 'Lastname, Firstname' per line.").
				Placeholder("students.csv").
				Value(&studentPath).
				Validate(fileExists),

			huh.NewInput().
				Title("Course list file").
				Description("CSV or text file with one course name per line.").
				Placeholder("courses.csv").
				Value(&coursePath).
				Validate(fileExists),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var students []records.Student
	var courses []string
	var studentIssues, courseIssues []records.Issue
	var studentEnc, courseEnc string
	var readErr error

	_ = spinner.New().
		Title("Reading and validating lists...").
		Action(func() {
			data, err := os.ReadFile(studentPath)
			if err != nil {
				readErr = fmt.Errorf("failed to read student list: %w", err)
				return
			}
			students, studentIssues, studentEnc = records.ParseStudentData(data)

			data, err = os.ReadFile(coursePath)
			if err != nil {
				readErr = fmt.Errorf("failed to read course list: %w", err)
				return
			}
			courses, courseIssues, courseEnc = records.ParseCourseData(data)
		}).
		Run()

	if readErr != nil {
		return readErr
	}

	fmt.Printf("Decoded student list as %s, course list as %s.\n", studentEnc, courseEnc)
	return reviewAndStore(st, students, courses, studentIssues, courseIssues)
}

// runManualInputTUI collects both rosters from pasted text. Manual entry is
// already decoded, so the encoding chain is skipped.
func runManualInputTUI(st *session.State) error {
	var studentText, courseText string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Student list").
				Description("One student per line, as 'Lastname, Firstname'.").
				Placeholder("Mutie, Josiah\nKanziga, Belise\nNg'ang'a, John").
				Value(&studentText),

			huh.NewText().
				Title("Course list").
				Description("One course name per line.").
				Placeholder("Python Programming\nData Science").
				Value(&courseText),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	students, studentIssues := records.ParseStudents(studentText)
	courses, courseIssues := records.ParseCourses(courseText)
	return reviewAndStore(st, students, courses, studentIssues, courseIssues)
}

// reviewAndStore previews the parsed records and per-line warnings, then
// saves them into the session once the user confirms.
func reviewAndStore(st *session.State, students []records.Student, courses []string, studentIssues, courseIssues []records.Issue) error {
	printSection("students", len(students))
	for _, s := range students {
		fmt.Printf("👤 %s\n", s.Folder())
	}
	printIssues(studentIssues)

	printSection("courses", len(courses))
	for _, c := range courses {
		fmt.Printf("📚 %s\n", c)
	}
	printIssues(courseIssues)

	if len(students) == 0 || len(courses) == 0 {
		fmt.Println(errorStyle.Render("\nNo valid records found. Please check the input format."))
		return nil
	}

	keep := true
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Keep %d students and %d courses?", len(students), len(courses))).
				Value(&keep),
		),
	).WithTheme(GetTheme())

	if err := confirm.Run(); err != nil {
		return err
	}
	if !keep {
		return nil
	}

	st.Students = students
	st.Courses = courses
	return session.Save(st)
}

func printSection(kind string, count int) {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- %s (%d) ---", titler.String(kind), count)))
}

func printIssues(issues []records.Issue) {
	for _, issue := range issues {
		fmt.Println(warnStyle.Render(fmt.Sprintf("⚠ line %d %q: %s", issue.Line, issue.Input, issue.Reason)))
	}
}

func fileExists(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
