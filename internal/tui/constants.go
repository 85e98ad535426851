package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Workspace Split - editor takes 3 parts, terminal 2 parts of the body height
	EditorPaneRatio   = 3
	TerminalPaneRatio = 2

	// Chrome Heights
	HeaderHeight = 1 // App title + project name line
	FooterHeight = 1 // Keybind help + status line

	// Pane Overhead
	PaneBorderWidth   = 2 // Width consumed by borders
	PaneTitleLines    = 1 // Title line inside the editor pane
	TerminalInputLine = 1 // Command input line docked at the pane bottom

	// Quick-Open Dimensions
	QuickOpenWidth    = 60 // Picker width in columns
	QuickOpenMaxRows  = 15 // Visible file rows
	QuickOpenOverhead = 6  // Border + input + padding lines

	// Status Messages
	StatusMessageTimeout = 3 * time.Second // Transient footer notifications
	StatusMessageMaxLen  = 100             // Truncation threshold for footer display

	// Command History
	HistorySeedLimit = 100 // Persisted commands preloaded for recall and search
)
