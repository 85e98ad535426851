package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestStore_DefaultsWhenFileMissing(t *testing.T) {
	store := NewStore(testStorePath(t))

	if err := store.Load(); err != nil {
		t.Fatalf("Load with missing file returned error: %v", err)
	}

	got := store.Settings()
	want := DefaultSettings()
	if got != want {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestStore_Defaults(t *testing.T) {
	defaults := DefaultSettings()

	if defaults.BorderTitleAlign != "right" {
		t.Errorf("Expected default align 'right', got %q", defaults.BorderTitleAlign)
	}
	if defaults.BackgroundColor != "#1e1e2e" {
		t.Errorf("Expected default background '#1e1e2e', got %q", defaults.BackgroundColor)
	}
	if defaults.TextareaBgColor != "#2b2b3b" {
		t.Errorf("Expected default textarea bg '#2b2b3b', got %q", defaults.TextareaBgColor)
	}
	if defaults.TerminalBgColor != "#1a1a28" {
		t.Errorf("Expected default terminal bg '#1a1a28', got %q", defaults.TerminalBgColor)
	}
	if defaults.AccentColor != "#89b4fa" {
		t.Errorf("Expected default accent '#89b4fa', got %q", defaults.AccentColor)
	}
	if defaults.EditorTheme != "monokai" {
		t.Errorf("Expected default theme 'monokai', got %q", defaults.EditorTheme)
	}
	if !defaults.ShowLineNumbers {
		t.Error("Expected line numbers enabled by default")
	}
	if defaults.SoftWrap {
		t.Error("Expected soft wrap disabled by default")
	}
	if defaults.ClearTerminalOnRun {
		t.Error("Expected clear-terminal-on-run disabled by default")
	}
	if !defaults.AutoSaveOnRun {
		t.Error("Expected auto-save-on-run enabled by default")
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := testStorePath(t)

	store := NewStore(path)
	store.settings = Settings{
		BorderTitleAlign:   "left",
		BackgroundColor:    "#000000",
		TextareaBgColor:    "#111111",
		TerminalBgColor:    "#222222",
		AccentColor:        "#ff00ff",
		EditorTheme:        "dracula",
		ShowLineNumbers:    false,
		SoftWrap:           true,
		ClearTerminalOnRun: true,
		AutoSaveOnRun:      false,
	}

	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if loaded.Settings() != store.Settings() {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", store.Settings(), loaded.Settings())
	}
}

func TestStore_SaveUsesTwoSpaceIndent(t *testing.T) {
	path := testStorePath(t)

	store := NewStore(path)
	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}

	if !strings.Contains(string(data), "\n  \"border_title_align\"") {
		t.Error("Expected 2-space indented JSON record")
	}
}

func TestStore_PartialRecordKeepsDefaults(t *testing.T) {
	path := testStorePath(t)

	partial := `{"editor_theme": "vscode_dark", "soft_wrap": true}`
	if err := os.WriteFile(path, []byte(partial), FilePermissions); err != nil {
		t.Fatalf("Failed to write partial record: %v", err)
	}

	store := NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	got := store.Settings()
	if got.EditorTheme != "vscode_dark" {
		t.Errorf("Expected theme from record, got %q", got.EditorTheme)
	}
	if !got.SoftWrap {
		t.Error("Expected soft wrap from record")
	}
	// Keys missing from the record keep their defaults
	if got.BackgroundColor != "#1e1e2e" {
		t.Errorf("Expected default background for missing key, got %q", got.BackgroundColor)
	}
	if !got.AutoSaveOnRun {
		t.Error("Expected default auto-save for missing key")
	}
}

func TestStore_CorruptRecordIgnored(t *testing.T) {
	path := testStorePath(t)

	if err := os.WriteFile(path, []byte("{not json"), FilePermissions); err != nil {
		t.Fatalf("Failed to write corrupt record: %v", err)
	}

	store := NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load with corrupt record returned error: %v", err)
	}

	if store.Settings() != DefaultSettings() {
		t.Errorf("Expected defaults after corrupt record, got %+v", store.Settings())
	}
}

func TestStore_UnknownKeysIgnored(t *testing.T) {
	path := testStorePath(t)

	record := `{"editor_theme": "dracula", "future_option": 42}`
	if err := os.WriteFile(path, []byte(record), FilePermissions); err != nil {
		t.Fatalf("Failed to write record: %v", err)
	}

	store := NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if store.Settings().EditorTheme != "dracula" {
		t.Errorf("Expected theme 'dracula', got %q", store.Settings().EditorTheme)
	}
}

func TestStore_SettersWriteThrough(t *testing.T) {
	path := testStorePath(t)

	store := NewStore(path)
	if err := store.SetEditorTheme("github_light"); err != nil {
		t.Fatalf("SetEditorTheme returned error: %v", err)
	}

	// A fresh store reading the same path sees the change immediately
	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Settings().EditorTheme != "github_light" {
		t.Errorf("Expected persisted theme 'github_light', got %q", loaded.Settings().EditorTheme)
	}

	if err := store.SetBackgroundColor("#aabbcc"); err != nil {
		t.Fatalf("SetBackgroundColor returned error: %v", err)
	}
	if err := store.SetBorderTitleAlign("center"); err != nil {
		t.Fatalf("SetBorderTitleAlign returned error: %v", err)
	}
	if err := store.SetShowLineNumbers(false); err != nil {
		t.Fatalf("SetShowLineNumbers returned error: %v", err)
	}
	if err := store.SetSoftWrap(true); err != nil {
		t.Fatalf("SetSoftWrap returned error: %v", err)
	}
	if err := store.SetClearTerminalOnRun(true); err != nil {
		t.Fatalf("SetClearTerminalOnRun returned error: %v", err)
	}
	if err := store.SetAutoSaveOnRun(false); err != nil {
		t.Fatalf("SetAutoSaveOnRun returned error: %v", err)
	}
	if err := store.SetAccentColor("#ffffff"); err != nil {
		t.Fatalf("SetAccentColor returned error: %v", err)
	}
	if err := store.SetTextareaBgColor("#101010"); err != nil {
		t.Fatalf("SetTextareaBgColor returned error: %v", err)
	}
	if err := store.SetTerminalBgColor("#202020"); err != nil {
		t.Fatalf("SetTerminalBgColor returned error: %v", err)
	}

	loaded = NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	got := loaded.Settings()
	want := Settings{
		BorderTitleAlign:   "center",
		BackgroundColor:    "#aabbcc",
		TextareaBgColor:    "#101010",
		TerminalBgColor:    "#202020",
		AccentColor:        "#ffffff",
		EditorTheme:        "github_light",
		ShowLineNumbers:    false,
		SoftWrap:           true,
		ClearTerminalOnRun: true,
		AutoSaveOnRun:      false,
	}
	if got != want {
		t.Errorf("Write-through mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

	store := NewStore(path)
	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected settings file to exist: %v", err)
	}
}
