// Package testutil provides reusable test utilities for clear-resume tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
)

// TestEnv provides access to an isolated project directory
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Test project directory
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	t.Setenv("HOME", tmpHome)
	// Keep git from discovering a repository above the temp dirs
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(tmpProject))

	return &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		t:          t,
	}
}

// Config returns the default configuration rooted at the project directory
func (e *TestEnv) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Project.Root = e.ProjectDir
	return cfg
}

// CreateFile creates a file relative to the project directory.
func (e *TestEnv) CreateFile(relPath, content string) string {
	e.t.Helper()

	fullPath := filepath.Join(e.ProjectDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", relPath, err)
	}
	return fullPath
}

// CreateDir creates a directory relative to the project directory.
func (e *TestEnv) CreateDir(relPath string) string {
	e.t.Helper()

	fullPath := filepath.Join(e.ProjectDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", relPath, err)
	}
	return fullPath
}

// ReadFile reads a file relative to the project directory.
func (e *TestEnv) ReadFile(relPath string) string {
	e.t.Helper()

	data, err := os.ReadFile(filepath.Join(e.ProjectDir, filepath.FromSlash(relPath)))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", relPath, err)
	}
	return string(data)
}

// FileExists checks if a file exists relative to the project directory.
func (e *TestEnv) FileExists(relPath string) bool {
	e.t.Helper()

	_, err := os.Stat(filepath.Join(e.ProjectDir, filepath.FromSlash(relPath)))
	return err == nil
}
