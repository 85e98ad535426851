package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the persisted application configuration record
type Settings struct {
	BorderTitleAlign   string `json:"border_title_align"`
	BackgroundColor    string `json:"background_color"`
	TextareaBgColor    string `json:"textarea_bg_color"`
	TerminalBgColor    string `json:"terminal_bg_color"`
	AccentColor        string `json:"accent_color"`
	EditorTheme        string `json:"editor_theme"`
	ShowLineNumbers    bool   `json:"show_line_numbers"`
	SoftWrap           bool   `json:"soft_wrap"`
	ClearTerminalOnRun bool   `json:"clear_terminal_on_run"`
	AutoSaveOnRun      bool   `json:"auto_save_on_run"`
}

// DefaultSettings returns the hard-coded defaults used when no record exists
func DefaultSettings() Settings {
	return Settings{
		BorderTitleAlign:   "right",
		BackgroundColor:    "#1e1e2e",
		TextareaBgColor:    "#2b2b3b",
		TerminalBgColor:    "#1a1a28",
		AccentColor:        "#89b4fa",
		EditorTheme:        "monokai",
		ShowLineNumbers:    true,
		SoftWrap:           false,
		ClearTerminalOnRun: false,
		AutoSaveOnRun:      true,
	}
}

// EditorThemes lists the selectable editor color schemes
var EditorThemes = []string{"monokai", "dracula", "github_light", "vscode_dark"}

// Store handles loading and write-through persistence of the settings record.
// Every setter mutates one logical field and immediately saves the whole record.
type Store struct {
	path     string
	settings Settings
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		settings: DefaultSettings(),
	}
}

// Load reads the settings file from disk.
// A missing file leaves the defaults in place. Keys absent from the record
// keep their default values. A corrupt record is ignored wholesale.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// If file doesn't exist, use defaults
		s.settings = DefaultSettings()
		return nil
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		// If config is corrupted, use defaults
		s.settings = DefaultSettings()
		return nil
	}

	s.settings = settings
	return nil
}

// Save writes the entire settings record to disk
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Settings returns a copy of the current settings record
func (s *Store) Settings() Settings {
	return s.settings
}

// SetBorderTitleAlign sets the border title alignment and saves
func (s *Store) SetBorderTitleAlign(align string) error {
	s.settings.BorderTitleAlign = align
	return s.Save()
}

// SetBackgroundColor sets the app background color and saves
func (s *Store) SetBackgroundColor(color string) error {
	s.settings.BackgroundColor = color
	return s.Save()
}

// SetTextareaBgColor sets the editor pane background color and saves
func (s *Store) SetTextareaBgColor(color string) error {
	s.settings.TextareaBgColor = color
	return s.Save()
}

// SetTerminalBgColor sets the terminal pane background color and saves
func (s *Store) SetTerminalBgColor(color string) error {
	s.settings.TerminalBgColor = color
	return s.Save()
}

// SetAccentColor sets the accent color and saves
func (s *Store) SetAccentColor(color string) error {
	s.settings.AccentColor = color
	return s.Save()
}

// SetEditorTheme sets the editor syntax theme and saves
func (s *Store) SetEditorTheme(theme string) error {
	s.settings.EditorTheme = theme
	return s.Save()
}

// SetShowLineNumbers sets whether the editor shows line numbers and saves
func (s *Store) SetShowLineNumbers(enabled bool) error {
	s.settings.ShowLineNumbers = enabled
	return s.Save()
}

// SetSoftWrap sets whether the editor soft-wraps long lines and saves
func (s *Store) SetSoftWrap(enabled bool) error {
	s.settings.SoftWrap = enabled
	return s.Save()
}

// SetClearTerminalOnRun sets whether running clears the scrollback first and saves
func (s *Store) SetClearTerminalOnRun(enabled bool) error {
	s.settings.ClearTerminalOnRun = enabled
	return s.Save()
}

// SetAutoSaveOnRun sets whether running saves the active file first and saves
func (s *Store) SetAutoSaveOnRun(enabled bool) error {
	s.settings.AutoSaveOnRun = enabled
	return s.Save()
}
