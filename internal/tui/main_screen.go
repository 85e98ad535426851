package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/debug"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
	"github.com/studiowebux/quickie/internal/toolchain"
)

// openFile is one cached buffer. Its content is authoritative over disk from
// the moment the file is opened until it is saved.
type openFile struct {
	path     string
	content  string
	modified bool
}

// Transient footer notifications
type statusNoteMsg string
type errorNoteMsg string
type clearStatusMsg struct{}
type clearErrorMsg struct{}

// mainScreen is the editor/terminal workspace for one project. It owns the
// open-file cache; the visible editor buffer always belongs to activeFile.
type mainScreen struct {
	proj  project.Project
	store *config.Store
	tc    toolchain.Toolchain
	hist  *history.Manager

	theme    paneTheme
	editor   editorPane
	terminal terminalPane

	openFiles  map[string]*openFile
	activeFile string

	statusMsg string
	errorMsg  string

	width  int
	height int
}

func newMainScreen(proj project.Project, store *config.Store, tc toolchain.Toolchain, hist *history.Manager) *mainScreen {
	// Styles are derived from the settings as they are right now; settings
	// changed later apply to the next mainScreen, not this one.
	settings := store.Settings()

	s := &mainScreen{
		proj:      proj,
		store:     store,
		tc:        tc,
		hist:      hist,
		theme:     themeFromSettings(settings),
		editor:    newEditorPane(settings),
		terminal:  newTerminalPane(proj, hist, settings),
		openFiles: make(map[string]*openFile),
	}

	entryFile, err := proj.EnsureDefaultFile()
	if err != nil {
		debug.Log("default file: %v", err)
	}
	s.openFile(entryFile)

	return s
}

func (s *mainScreen) Init() tea.Cmd {
	return s.editor.Focus()
}

func (s *mainScreen) Title() string {
	return s.proj.Name
}

// Project implements ProjectHolder
func (s *mainScreen) Project() project.Project {
	return s.proj
}

func (s *mainScreen) SetSize(width, height int) {
	s.width = width
	s.height = height

	body := height - HeaderHeight - FooterHeight
	if body < 2 {
		body = 2
	}
	editorHeight := body * EditorPaneRatio / (EditorPaneRatio + TerminalPaneRatio)
	if editorHeight < 1 {
		editorHeight = 1
	}
	terminalHeight := body - editorHeight
	if terminalHeight < 1 {
		terminalHeight = 1
	}

	s.editor.SetSize(width, editorHeight)
	s.terminal.SetSize(width, terminalHeight)
}

func (s *mainScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commandFinishedMsg:
		// Applies even while this screen is suspended under a modal
		return s.terminal.Update(msg)
	case fileChosenMsg:
		s.openFile(msg.path)
		return nil
	case statusNoteMsg:
		return s.setStatusMessage(string(msg))
	case errorNoteMsg:
		return s.setErrorMessage(string(msg))
	case clearStatusMsg:
		s.statusMsg = ""
		return nil
	case clearErrorMsg:
		s.errorMsg = ""
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.updateFocusedPane(msg)
}

func (s *mainScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Settings):
		return openSettings()
	case key.Matches(msg, keys.CopyPath):
		return s.copyActiveFilePath()
	case key.Matches(msg, keys.CopyOutput):
		return s.copyLastOutput()
	}
	return s.updateFocusedPane(msg)
}

func (s *mainScreen) updateFocusedPane(msg tea.Msg) tea.Cmd {
	if s.editor.Focused() {
		return s.editor.Update(msg)
	}
	return s.terminal.Update(msg)
}

// openFile makes path the active buffer. The live editor text is flushed
// into the cache of the file being switched away from, and a path opened
// before is restored from cache without touching disk.
func (s *mainScreen) openFile(path string) {
	if s.activeFile != "" {
		if entry, ok := s.openFiles[s.activeFile]; ok {
			entry.content = s.editor.Content()
		}
	}

	entry, ok := s.openFiles[path]
	if !ok {
		content := ""
		if data, err := os.ReadFile(path); err == nil {
			content = string(data)
		}
		entry = &openFile{path: path, content: content}
		s.openFiles[path] = entry
	}

	s.activeFile = path
	s.editor.SetContent(entry.content)
	s.editor.SetFile(path)
}

// SaveFile implements FileSaver (ctrl+s)
func (s *mainScreen) SaveFile() tea.Cmd {
	if s.activeFile == "" {
		return s.setErrorMessage("No file to save")
	}

	content := s.editor.Content()
	if err := os.WriteFile(s.activeFile, []byte(content), config.FilePermissions); err != nil {
		return s.setErrorMessage(fmt.Sprintf("Save failed: %v", err))
	}

	entry := s.openFiles[s.activeFile]
	entry.content = content
	entry.modified = false

	return s.setStatusMessage(fmt.Sprintf("Saved %s", filepath.Base(s.activeFile)))
}

// RunFile implements FileRunner (ctrl+r)
func (s *mainScreen) RunFile() tea.Cmd {
	if s.activeFile == "" {
		return s.setErrorMessage("No file to run")
	}

	var cmds []tea.Cmd

	// Behavior flags are read live, unlike styles
	settings := s.store.Settings()
	if settings.AutoSaveOnRun {
		cmds = append(cmds, s.SaveFile())
	}
	if settings.ClearTerminalOnRun {
		s.terminal.Clear()
	}

	rel, err := s.proj.RelPath(s.activeFile)
	if err != nil {
		return s.setErrorMessage(fmt.Sprintf("Run failed: %v", err))
	}
	cmds = append(cmds, s.terminal.RunCommand(s.tc.RunCommand(rel)))

	return tea.Batch(cmds...)
}

// QuickOpen implements QuickOpener (ctrl+e)
func (s *mainScreen) QuickOpen() tea.Cmd {
	return pushScreen(newQuickOpenScreen(s.proj, s.store.Settings()))
}

// ToggleFocus implements FocusToggler (ctrl+o)
func (s *mainScreen) ToggleFocus() tea.Cmd {
	if s.editor.Focused() {
		s.editor.Blur()
		return s.terminal.Focus()
	}
	s.terminal.Blur()
	return s.editor.Focus()
}

func (s *mainScreen) copyActiveFilePath() tea.Cmd {
	if s.activeFile == "" {
		return s.setErrorMessage("No file to copy")
	}
	path := s.activeFile
	return func() tea.Msg {
		if err := clipboard.WriteAll(path); err != nil {
			return errorNoteMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusNoteMsg("File path copied to clipboard")
	}
}

func (s *mainScreen) copyLastOutput() tea.Cmd {
	output := s.terminal.LastOutput()
	if output == "" {
		return s.setErrorMessage("No output to copy")
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(output); err != nil {
			return errorNoteMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusNoteMsg("Output copied to clipboard")
	}
}

func (s *mainScreen) setStatusMessage(msg string) tea.Cmd {
	if len(msg) > StatusMessageMaxLen {
		msg = msg[:StatusMessageMaxLen-3] + "..."
	}
	s.statusMsg = msg
	s.errorMsg = ""
	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (s *mainScreen) setErrorMessage(msg string) tea.Cmd {
	if len(msg) > StatusMessageMaxLen {
		msg = msg[:StatusMessageMaxLen-3] + "..."
	}
	s.errorMsg = msg
	s.statusMsg = ""
	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func (s *mainScreen) View() string {
	return s.headerView() + "\n" +
		s.editor.View() + "\n" +
		s.terminal.View() + "\n" +
		s.footerView()
}

func (s *mainScreen) headerView() string {
	left := "  " + styleTitle.Render("Quickie")
	right := styleSubtle.Render(s.proj.Name) + "  "
	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *mainScreen) footerView() string {
	if s.errorMsg != "" {
		return "  " + styleError.Render(s.errorMsg)
	}
	if s.statusMsg != "" {
		return "  " + styleSuccess.Render(s.statusMsg)
	}

	entries := []string{
		helpEntry(keys.Quit),
		helpEntry(keys.Save),
		helpEntry(keys.Run),
		helpEntry(keys.Open),
		helpEntry(keys.Focus),
		helpEntry(keys.Settings),
	}
	return "  " + styleSubtle.Render(strings.Join(entries, "  "))
}
