package tui

import (
	"path/filepath"
	"testing"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
	"github.com/studiowebux/quickie/internal/toolchain"
)

// CreateTestStore creates a config store backed by a throwaway file
func CreateTestStore(t *testing.T) *config.Store {
	t.Helper()

	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Failed to load test store: %v", err)
	}

	return store
}

// CreateTestHistory creates a history manager backed by a throwaway database
func CreateTestHistory(t *testing.T) *history.Manager {
	t.Helper()

	mgr, err := history.NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create test history manager: %v", err)
	}
	t.Cleanup(func() {
		mgr.Close()
	})

	return mgr
}

// CreateTestProject creates a project directory under a temporary root
func CreateTestProject(t *testing.T, name string) project.Project {
	t.Helper()

	proj := project.New(t.TempDir(), name)
	if _, err := proj.EnsureDir(); err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return proj
}

// CreateTestMainScreen wires a main screen against throwaway config, history
// and project state, sized large enough for both panes
func CreateTestMainScreen(t *testing.T) *mainScreen {
	t.Helper()

	s := newMainScreen(CreateTestProject(t, "demo"), CreateTestStore(t), toolchain.Default(), CreateTestHistory(t))
	s.SetSize(100, 40)

	return s
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
