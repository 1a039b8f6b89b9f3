// Package session persists loaded records and the last generation result
// between interactive runs.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mutie886/aims-directory-generator/pkg/records"
	"github.com/Mutie886/aims-directory-generator/pkg/workspace"
)

// State is the on-disk session format. It carries everything the interactive
// flow needs to resume: the loaded rosters and the result of the last build.
type State struct {
	UpdatedAt  time.Time         `json:"updated_at"`
	Students   []records.Student `json:"students,omitempty"`
	Courses    []string          `json:"courses,omitempty"`
	LastResult *workspace.Result `json:"last_result,omitempty"`
}

// HasData reports whether both rosters are loaded and generation can run.
func (s *State) HasData() bool {
	return s != nil && len(s.Students) > 0 && len(s.Courses) > 0
}

func statePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".aimsgen")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create session directory: %w", err)
	}
	return filepath.Join(dir, "session.json"), nil
}

// Load reads the saved session. A missing file yields an empty state.
func Load() (*State, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session JSON: %w", err)
	}
	return &st, nil
}

// Save writes the session back to disk, stamping the update time.
func Save(st *State) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	st.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the saved session. Clearing a missing session is a no-op.
func Clear() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
