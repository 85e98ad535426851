/*
Package tui implements the terminal user interface for Quickie.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

The root model (app.go) owns a stack of Screen values. Only the top screen
is rendered and receives keyboard input; screens below it stay mounted so
background work they started keeps landing in their state.

# Key Components

  - app.go: Root model, screen stack, app-wide shortcut routing
  - screen.go: Screen interface, stack messages, capability interfaces
  - keys.go: Application key map
  - styles.go: Config-driven lipgloss styles and pane chrome

# Screens

  - welcome_screen.go: Project name entry and bootstrap
  - main_screen.go: Editor and terminal panes, file cache, save/run actions
  - settings_screen.go: Live-persisting settings form
  - quick_open_modal.go: Substring file picker over the project tree
  - help_modal.go: Rendered shortcut reference

# Capability Routing

App-wide shortcuts are resolved against what the top screen can do. A screen
opts into a shortcut by implementing the matching interface from screen.go
(FileSaver, FileRunner, QuickOpener, FocusToggler, ProjectHolder); the root
model type-asserts and ignores keys the top screen does not support.

# Threading Model

The TUI runs in a single goroutine (Bubble Tea's event loop), but spawns
goroutines through tea.Cmd for:
  - Project bootstrap (directory creation, toolchain init)
  - Terminal command execution
  - Clipboard writes

Bootstrap and terminal execution are exclusive per owner: starting a new
task cancels the previous one and a generation counter drops stale results.

# Example Usage

	app := NewApp(store, tc, hist, "")
	program := tea.NewProgram(&app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		log.Fatal(err)
	}
*/
package tui
