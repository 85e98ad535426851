package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/project"
)

// settingsRow enumerates the focusable controls top to bottom
type settingsRow int

const (
	rowTheme settingsRow = iota
	rowLineNumbers
	rowSoftWrap
	rowAlignLeft
	rowAlignCenter
	rowAlignRight
	rowAutoSave
	rowClearTerminal
	rowColorBackground
	rowColorEditor
	rowColorTerminal
	rowColorAccent
	rowApplyColors
	rowCount
)

const shortcutsMarkdown = `# Quickie

- **Ctrl+S**: Save file
- **Ctrl+R**: Run code
- **Ctrl+E**: Open file
- **Ctrl+O**: Switch focus
- **Ctrl+Y**: Copy file path
- **Ctrl+G**: Copy last output
- **Ctrl+Q**: Quit
- **F1**: Help
- **Escape**: Settings

## Editor

- **Ctrl+V**: Paste
- **Ctrl+K**: Delete to end of line
- **Ctrl+U**: Delete to start of line
- **Home/End**: Jump to line start/end

## Terminal

- **Enter**: Run command
- **Up/Down**: Recall history
- **Ctrl+F**: Search history
`

// settingsScreen is a read/write view over the config store. Every control
// persists its field the moment it changes; nothing waits for the screen to
// close. Styles of an already-open workspace are not touched.
type settingsScreen struct {
	proj  project.Project
	store *config.Store
	theme paneTheme

	focus       settingsRow
	colorInputs [4]textinput.Model
	shortcuts   string
	status      string

	width  int
	height int
}

func newSettingsScreen(proj project.Project, store *config.Store) *settingsScreen {
	settings := store.Settings()
	defaults := config.DefaultSettings()

	values := []string{
		settings.BackgroundColor,
		settings.TextareaBgColor,
		settings.TerminalBgColor,
		settings.AccentColor,
	}
	placeholders := []string{
		defaults.BackgroundColor,
		defaults.TextareaBgColor,
		defaults.TerminalBgColor,
		defaults.AccentColor,
	}

	s := &settingsScreen{
		proj:  proj,
		store: store,
		theme: themeFromSettings(settings),
	}
	for i := range s.colorInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.SetValue(values[i])
		ti.CharLimit = 16
		ti.Width = 12
		s.colorInputs[i] = ti
	}
	s.renderShortcuts(60)

	return s
}

func (s *settingsScreen) Init() tea.Cmd {
	return nil
}

func (s *settingsScreen) Title() string {
	return "Settings"
}

// Project implements ProjectHolder
func (s *settingsScreen) Project() project.Project {
	return s.proj
}

func (s *settingsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.renderShortcuts(s.panelWidth() - 4)
}

func (s *settingsScreen) panelWidth() int {
	w := (s.width - 3*PaneBorderWidth) / 3
	if w < 20 {
		w = 20
	}
	return w
}

func (s *settingsScreen) renderShortcuts(width int) {
	if width < 20 {
		width = 20
	}
	s.shortcuts = shortcutsMarkdown
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return
	}
	if rendered, err := renderer.Render(shortcutsMarkdown); err == nil {
		s.shortcuts = rendered
	}
}

func (s *settingsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clearStatusMsg:
		s.status = ""
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if i, ok := s.focusedColorInput(); ok {
		var cmd tea.Cmd
		s.colorInputs[i], cmd = s.colorInputs[i].Update(msg)
		return cmd
	}
	return nil
}

func (s *settingsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return popScreen(nil)
	case "up", "shift+tab":
		s.setFocus((s.focus - 1 + rowCount) % rowCount)
		return nil
	case "down", "tab":
		s.setFocus((s.focus + 1) % rowCount)
		return nil
	case "enter":
		return s.activate()
	}

	if i, ok := s.focusedColorInput(); ok {
		var cmd tea.Cmd
		s.colorInputs[i], cmd = s.colorInputs[i].Update(msg)
		return cmd
	}

	switch msg.String() {
	case " ":
		return s.activate()
	case "left":
		if s.focus == rowTheme {
			return s.cycleTheme(-1)
		}
	case "right":
		if s.focus == rowTheme {
			return s.cycleTheme(1)
		}
	}
	return nil
}

// focusedColorInput returns the index of the color input owning the focus
func (s *settingsScreen) focusedColorInput() (int, bool) {
	if s.focus >= rowColorBackground && s.focus <= rowColorAccent {
		return int(s.focus - rowColorBackground), true
	}
	return 0, false
}

func (s *settingsScreen) setFocus(r settingsRow) {
	if i, ok := s.focusedColorInput(); ok {
		s.colorInputs[i].Blur()
	}
	s.focus = r
	if i, ok := s.focusedColorInput(); ok {
		s.colorInputs[i].Focus()
	}
}

func (s *settingsScreen) activate() tea.Cmd {
	switch s.focus {
	case rowTheme:
		return s.cycleTheme(1)
	case rowLineNumbers:
		return s.persist(s.store.SetShowLineNumbers(!s.store.Settings().ShowLineNumbers), "")
	case rowSoftWrap:
		return s.persist(s.store.SetSoftWrap(!s.store.Settings().SoftWrap), "")
	case rowAlignLeft:
		return s.setAlign("left")
	case rowAlignCenter:
		return s.setAlign("center")
	case rowAlignRight:
		return s.setAlign("right")
	case rowAutoSave:
		return s.persist(s.store.SetAutoSaveOnRun(!s.store.Settings().AutoSaveOnRun), "")
	case rowClearTerminal:
		return s.persist(s.store.SetClearTerminalOnRun(!s.store.Settings().ClearTerminalOnRun), "")
	case rowApplyColors:
		return s.applyColors()
	}
	return nil
}

func (s *settingsScreen) cycleTheme(delta int) tea.Cmd {
	current := s.store.Settings().EditorTheme
	index := 0
	for i, theme := range config.EditorThemes {
		if theme == current {
			index = i
			break
		}
	}
	next := config.EditorThemes[(index+delta+len(config.EditorThemes))%len(config.EditorThemes)]
	return s.persist(s.store.SetEditorTheme(next), fmt.Sprintf("Theme set to %s", next))
}

func (s *settingsScreen) setAlign(align string) tea.Cmd {
	return s.persist(s.store.SetBorderTitleAlign(align), "Border alignment set to "+align)
}

// applyColors saves every color field that passes validation. Invalid
// values are skipped without a message; valid ones in the same batch are
// still applied.
func (s *settingsScreen) applyColors() tea.Cmd {
	setters := []func(string) error{
		s.store.SetBackgroundColor,
		s.store.SetTextareaBgColor,
		s.store.SetTerminalBgColor,
		s.store.SetAccentColor,
	}
	for i, set := range setters {
		value := s.colorInputs[i].Value()
		if !validHexColor(value) {
			continue
		}
		if err := set(value); err != nil {
			return s.notify(fmt.Sprintf("Save failed: %v", err))
		}
	}
	return s.notify("Colors updated! Restart the app to see changes.")
}

func validHexColor(value string) bool {
	return value != "" && strings.HasPrefix(value, "#") && (len(value) == 4 || len(value) == 7)
}

func (s *settingsScreen) persist(err error, status string) tea.Cmd {
	if err != nil {
		return s.notify(fmt.Sprintf("Save failed: %v", err))
	}
	if status == "" {
		return nil
	}
	return s.notify(status)
}

func (s *settingsScreen) notify(status string) tea.Cmd {
	s.status = status
	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (s *settingsScreen) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Width(s.width).
		Align(lipgloss.Center).
		Background(s.theme.accent).
		Render("Settings")

	panelHeight := s.height - 1 - FooterHeight - PaneBorderWidth
	if panelHeight < 4 {
		panelHeight = 4
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.accent).
		Padding(0, 1).
		Width(s.panelWidth()).
		Height(panelHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(s.editorPanel()),
		panel.Render(s.behaviorPanel()),
		panel.Render(s.shortcuts),
	)

	return title + "\n" + body + "\n" + s.footerView()
}

func (s *settingsScreen) editorPanel() string {
	settings := s.store.Settings()
	lines := []string{
		styleTitle.Render("Editor"),
		"",
		s.row(rowTheme, fmt.Sprintf("Theme: < %s >", settings.EditorTheme)),
		s.checkbox(rowLineNumbers, "Show line numbers", settings.ShowLineNumbers),
		s.checkbox(rowSoftWrap, "Soft wrap", settings.SoftWrap),
		"",
		styleTitle.Render("Border Title"),
		styleSubtle.Render("Current: " + settings.BorderTitleAlign),
		s.row(rowAlignLeft, "[ Left ]"),
		s.row(rowAlignCenter, "[ Center ]"),
		s.row(rowAlignRight, "[ Right ]"),
	}
	return strings.Join(lines, "\n")
}

func (s *settingsScreen) behaviorPanel() string {
	settings := s.store.Settings()
	lines := []string{
		styleTitle.Render("Behavior"),
		"",
		s.checkbox(rowAutoSave, "Auto-save before run", settings.AutoSaveOnRun),
		s.checkbox(rowClearTerminal, "Clear terminal on run", settings.ClearTerminalOnRun),
		"",
		styleTitle.Render("Colors"),
		styleSubtle.Render("Background"),
		s.row(rowColorBackground, s.colorInputs[0].View()),
		styleSubtle.Render("Editor Background"),
		s.row(rowColorEditor, s.colorInputs[1].View()),
		styleSubtle.Render("Terminal Background"),
		s.row(rowColorTerminal, s.colorInputs[2].View()),
		styleSubtle.Render("Accent Color"),
		s.row(rowColorAccent, s.colorInputs[3].View()),
		"",
		s.row(rowApplyColors, "[ Apply Colors ]"),
	}
	return strings.Join(lines, "\n")
}

func (s *settingsScreen) row(r settingsRow, label string) string {
	if r == s.focus {
		return styleTitle.Render("> ") + label
	}
	return "  " + label
}

func (s *settingsScreen) checkbox(r settingsRow, label string, checked bool) string {
	mark := "[ ] "
	if checked {
		mark = "[x] "
	}
	return s.row(r, mark+label)
}

func (s *settingsScreen) footerView() string {
	if s.status != "" {
		return "  " + styleSuccess.Render(s.status)
	}
	hints := []string{"↑/↓ navigate", "enter select", "esc back"}
	return "  " + styleSubtle.Render(strings.Join(hints, "  "))
}
