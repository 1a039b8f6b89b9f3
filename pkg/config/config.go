package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWorkspaceName is used when the user has not configured their own.
const DefaultWorkspaceName = "AIMS-Rwanda-Workspace"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DefaultWorkspace string `json:"default_workspace,omitempty"`
	AccentColor      string `json:"accent_color,omitempty"`
}

// WorkspaceName returns the configured default workspace folder name.
func (c *AppConfig) WorkspaceName() string {
	if c == nil || c.DefaultWorkspace == "" {
		return DefaultWorkspaceName
	}
	return c.DefaultWorkspace
}

// getConfigPath returns the absolute path to ~/.aimsgen.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".aimsgen.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
