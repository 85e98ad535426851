package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/quickie/internal/project"
)

// Screen is one layer of the navigation stack. Exactly one screen (the top
// of the stack) receives key input and is rendered; screens underneath keep
// their state and continue to receive background task messages.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Title() string
}

// Capability interfaces. The app shell routes global shortcuts by checking
// which of these the top screen implements, instead of probing attributes.

// ProjectHolder is implemented by screens attached to a project
type ProjectHolder interface {
	Project() project.Project
}

// FileSaver is implemented by screens that can save the active file (ctrl+s)
type FileSaver interface {
	SaveFile() tea.Cmd
}

// FileRunner is implemented by screens that can run the active file (ctrl+r)
type FileRunner interface {
	RunFile() tea.Cmd
}

// QuickOpener is implemented by screens that can open the file picker (ctrl+e)
type QuickOpener interface {
	QuickOpen() tea.Cmd
}

// FocusToggler is implemented by screens with an editor/terminal focus pair (ctrl+o)
type FocusToggler interface {
	ToggleFocus() tea.Cmd
}

// Navigation messages processed by the app shell
type pushScreenMsg struct {
	screen Screen
}

type popScreenMsg struct {
	// result is delivered to the screen revealed underneath, may be nil
	result tea.Msg
}

type replaceScreenMsg struct {
	screen Screen
}

// openSettingsMsg asks the app shell to open the settings screen. The shell
// resolves the project from whichever screen is current.
type openSettingsMsg struct{}

func pushScreen(s Screen) tea.Cmd {
	return func() tea.Msg {
		return pushScreenMsg{screen: s}
	}
}

func popScreen(result tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return popScreenMsg{result: result}
	}
}

func replaceScreen(s Screen) tea.Cmd {
	return func() tea.Msg {
		return replaceScreenMsg{screen: s}
	}
}

func openSettings() tea.Cmd {
	return func() tea.Msg {
		return openSettingsMsg{}
	}
}
