package records

import (
	"reflect"
	"testing"
)

func TestParseStudents(t *testing.T) {
	t.Run("basic roster", func(t *testing.T) {
		input := "Mutie, Josiah\nKanziga, Belise\n"
		students, issues := ParseStudents(input)

		want := []Student{
			{LastName: "Mutie", FirstName: "Josiah"},
			{LastName: "Kanziga", FirstName: "Belise"},
		}
		if !reflect.DeepEqual(students, want) {
			t.Fatalf("ParseStudents() = %+v, want %+v", students, want)
		}
		if len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})

	t.Run("header row is dropped", func(t *testing.T) {
		input := "LastName,FirstName\nMutie, Josiah\n"
		students, _ := ParseStudents(input)

		if len(students) != 1 {
			t.Fatalf("expected 1 student, got %d: %+v", len(students), students)
		}
		if students[0].LastName != "Mutie" {
			t.Errorf("header row was parsed as a student: %+v", students[0])
		}
	})

	t.Run("header detection uses first non-empty line", func(t *testing.T) {
		input := "\n\nSurname, Prenom\nMutie, Josiah\n"
		students, _ := ParseStudents(input)

		if len(students) != 1 || students[0].LastName != "Mutie" {
			t.Fatalf("expected header after blank lines to be dropped, got %+v", students)
		}
	})

	t.Run("line without comma is rejected and reported", func(t *testing.T) {
		students, issues := ParseStudents("JustOneToken\nMutie, Josiah\n")

		if len(students) != 1 {
			t.Fatalf("expected 1 student, got %+v", students)
		}
		if len(issues) != 1 {
			t.Fatalf("expected 1 issue, got %+v", issues)
		}
		if issues[0].Line != 1 || issues[0].Input != "JustOneToken" {
			t.Errorf("issue should point at line 1, got %+v", issues[0])
		}
	})

	t.Run("apostrophes and accents are normalized", func(t *testing.T) {
		students, _ := ParseStudents("O'Neil, Jean-Paul\nNg'ang'a, John\n")

		want := []Student{
			{LastName: "Oneil", FirstName: "Jean-Paul"},
			{LastName: "Nganga", FirstName: "John"},
		}
		if !reflect.DeepEqual(students, want) {
			t.Fatalf("ParseStudents() = %+v, want %+v", students, want)
		}
	})

	t.Run("only first comma splits", func(t *testing.T) {
		students, _ := ParseStudents("Mutie, Josiah, Jr\n")

		if len(students) != 1 {
			t.Fatalf("expected 1 student, got %+v", students)
		}
		// Text after the first comma is the first name; the embedded comma
		// is stripped by normalization.
		if students[0].FirstName != "Josiah jr" {
			t.Errorf("expected first name %q, got %q", "Josiah jr", students[0].FirstName)
		}
	})

	t.Run("single letter names are rejected", func(t *testing.T) {
		students, issues := ParseStudents("X, Josiah\n")

		if len(students) != 0 {
			t.Fatalf("expected no students, got %+v", students)
		}
		if len(issues) != 1 {
			t.Errorf("expected 1 issue, got %+v", issues)
		}
	})

	t.Run("header-like residual line is rejected", func(t *testing.T) {
		// Not the first line, so it escapes header detection and must be
		// caught by the keyword re-check.
		students, issues := ParseStudents("Mutie, Josiah\nSurname, Prenom\n")

		if len(students) != 1 {
			t.Fatalf("expected 1 student, got %+v", students)
		}
		if len(issues) != 1 {
			t.Errorf("expected header-like line to be reported, got %+v", issues)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		students, issues := ParseStudents("")
		if len(students) != 0 || len(issues) != 0 {
			t.Errorf("empty input should produce nothing, got %+v / %+v", students, issues)
		}

		students, issues = ParseStudents("   \n\t\n")
		if len(students) != 0 || len(issues) != 0 {
			t.Errorf("whitespace input should produce nothing, got %+v / %+v", students, issues)
		}
	})

	t.Run("duplicates are kept in order", func(t *testing.T) {
		students, _ := ParseStudents("Mutie, Josiah\nMutie, Josiah\n")
		if len(students) != 2 {
			t.Errorf("duplicates must not be deduplicated, got %+v", students)
		}
	})
}

func TestParseCourses(t *testing.T) {
	t.Run("words capitalized independently", func(t *testing.T) {
		courses, issues := ParseCourses("python programming\nDATA SCIENCE\n")

		want := []string{"Python Programming", "Data Science"}
		if !reflect.DeepEqual(courses, want) {
			t.Fatalf("ParseCourses() = %+v, want %+v", courses, want)
		}
		if len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})

	t.Run("header row is dropped", func(t *testing.T) {
		courses, _ := ParseCourses("Course Name\nPython Programming\n")

		if len(courses) != 1 || courses[0] != "Python Programming" {
			t.Fatalf("expected header to be dropped, got %+v", courses)
		}
	})

	t.Run("too short after normalization is rejected", func(t *testing.T) {
		courses, issues := ParseCourses("C\n···\nData Science\n")

		if len(courses) != 1 {
			t.Fatalf("expected 1 course, got %+v", courses)
		}
		if len(issues) != 2 {
			t.Errorf("expected 2 issues, got %+v", issues)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		courses, issues := ParseCourses("")
		if len(courses) != 0 || len(issues) != 0 {
			t.Errorf("empty input should produce nothing, got %+v / %+v", courses, issues)
		}
	})
}

func TestParseStudentData(t *testing.T) {
	// Latin-1 encoded "García, José" — é is 0xE9, í is 0xED.
	data := []byte{'G', 'a', 'r', 'c', 0xED, 'a', ',', ' ', 'J', 'o', 's', 0xE9, '\n'}

	students, issues, encoding := ParseStudentData(data)
	if encoding == "utf-8" {
		t.Fatalf("expected a fallback encoding, got %s", encoding)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
	if len(students) != 1 || students[0].LastName != "Garcia" || students[0].FirstName != "Jose" {
		t.Errorf("expected Garcia/Jose, got %+v", students)
	}
}

func TestParseCourseData(t *testing.T) {
	courses, issues, encoding := ParseCourseData([]byte("maths\n"))
	if encoding != "utf-8" {
		t.Fatalf("expected utf-8, got %s", encoding)
	}
	if len(issues) != 0 || len(courses) != 1 || courses[0] != "Maths" {
		t.Errorf("expected [Maths], got %+v (%+v)", courses, issues)
	}
}
