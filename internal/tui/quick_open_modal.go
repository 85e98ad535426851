package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/project"
)

// fileChosenMsg is the quick-open result delivered to the screen underneath
type fileChosenMsg struct {
	path string
}

// quickOpenScreen is the file picker modal. The project tree is enumerated
// once when the screen is created; typing filters that snapshot.
type quickOpenScreen struct {
	project project.Project
	theme   paneTheme

	input   textinput.Model
	entries []project.FileEntry
	visible []project.FileEntry
	index   int

	width  int
	height int
}

func newQuickOpenScreen(proj project.Project, settings config.Settings) *quickOpenScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search files..."
	ti.CharLimit = 0
	ti.Focus()

	s := &quickOpenScreen{
		project: proj,
		theme:   themeFromSettings(settings),
		input:   ti,
	}

	// Enumeration happens once; a failed walk leaves the list empty
	if entries, err := proj.ListFiles(); err == nil {
		s.entries = entries
	}
	s.applyFilter()

	return s
}

func (s *quickOpenScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *quickOpenScreen) Title() string {
	return "Open File"
}

func (s *quickOpenScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *quickOpenScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc":
		return popScreen(nil)
	case "enter":
		if len(s.visible) > 0 {
			return popScreen(fileChosenMsg{path: s.visible[s.index].Path})
		}
		return nil
	case "up":
		s.moveUp()
		return nil
	case "down":
		s.moveDown()
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(keyMsg)
	if s.input.Value() != before {
		s.applyFilter()
	}
	return cmd
}

// applyFilter rebuilds the visible list from the enumeration snapshot and
// resets the highlight to the first row.
func (s *quickOpenScreen) applyFilter() {
	query := strings.ToLower(s.input.Value())

	visible := make([]project.FileEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.RelPath), query) {
			visible = append(visible, entry)
		}
	}
	s.visible = visible
	s.index = 0
}

func (s *quickOpenScreen) moveUp() {
	if len(s.visible) == 0 {
		return
	}
	if s.index > 0 {
		s.index--
	} else {
		s.index = len(s.visible) - 1
	}
}

func (s *quickOpenScreen) moveDown() {
	if len(s.visible) == 0 {
		return
	}
	if s.index < len(s.visible)-1 {
		s.index++
	} else {
		s.index = 0
	}
}

func (s *quickOpenScreen) View() string {
	var rows []string

	start := 0
	if s.index >= QuickOpenMaxRows {
		start = s.index - QuickOpenMaxRows + 1
	}
	end := start + QuickOpenMaxRows
	if end > len(s.visible) {
		end = len(s.visible)
	}

	highlight := lipgloss.NewStyle().Background(s.theme.accent)
	for i := start; i < end; i++ {
		row := s.visible[i].RelPath
		if i == s.index {
			row = highlight.Render(row)
		}
		rows = append(rows, row)
	}
	if len(s.visible) == 0 {
		rows = append(rows, styleSubtle.Render("No files found"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.accent).
		Padding(0, 1).
		Width(QuickOpenWidth).
		Render(s.input.View() + "\n\n" + strings.Join(rows, "\n"))

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}
