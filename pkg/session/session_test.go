package session

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Mutie886/aims-directory-generator/pkg/records"
	"github.com/Mutie886/aims-directory-generator/pkg/workspace"
)

func TestSessionLoadSave(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// 1. Load with no existing session returns an empty state.
	st, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing session, got: %v", err)
	}
	if st == nil || st.HasData() {
		t.Fatalf("expected empty state, got %+v", st)
	}

	// 2. Save a populated state.
	st.Students = []records.Student{{LastName: "Mutie", FirstName: "Josiah"}}
	st.Courses = []string{"Data Science"}
	st.LastResult = &workspace.Result{
		StudentsProcessed: 1,
		StudentsCreated:   1,
		BaseFolder:        "Test-Workspace",
	}

	if err := Save(st); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	if st.UpdatedAt.IsZero() {
		t.Errorf("Save should stamp UpdatedAt")
	}

	expectedPath := filepath.Join(tempDir, ".aimsgen", "session.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected session file at %s", expectedPath)
	}

	// 3. Load round trip.
	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing session: %v", err)
	}
	if !loaded.HasData() {
		t.Errorf("loaded state should have data")
	}
	if !reflect.DeepEqual(loaded.Students, st.Students) {
		t.Errorf("students mismatch: %+v vs %+v", loaded.Students, st.Students)
	}
	if loaded.LastResult == nil || loaded.LastResult.BaseFolder != "Test-Workspace" {
		t.Errorf("last result mismatch: %+v", loaded.LastResult)
	}
}

func TestSessionClear(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Clearing without a saved session is fine.
	if err := Clear(); err != nil {
		t.Fatalf("clearing a missing session should not fail: %v", err)
	}

	if err := Save(&State{Courses: []string{"Maths"}}); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	if err := Clear(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}

	st, err := Load()
	if err != nil {
		t.Fatalf("failed to load after clear: %v", err)
	}
	if len(st.Courses) != 0 {
		t.Errorf("expected empty state after clear, got %+v", st)
	}
}

func TestSessionParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	path := filepath.Join(tempDir, ".aimsgen", "session.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}
