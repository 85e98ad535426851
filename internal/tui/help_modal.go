package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
)

// helpScreen is a scrollable shortcut reference pushed on top of any screen
type helpScreen struct {
	theme    paneTheme
	viewport viewport.Model

	width  int
	height int
}

func newHelpScreen(settings config.Settings) *helpScreen {
	return &helpScreen{
		theme:    themeFromSettings(settings),
		viewport: viewport.New(0, 0),
	}
}

func (s *helpScreen) Init() tea.Cmd {
	return nil
}

func (s *helpScreen) Title() string {
	return "Help"
}

func (s *helpScreen) SetSize(width, height int) {
	s.width = width
	s.height = height

	boxWidth := 70
	if boxWidth > width-4 {
		boxWidth = width - 4
	}
	if boxWidth < 20 {
		boxWidth = 20
	}
	s.viewport.Width = boxWidth - PaneBorderWidth - 2
	s.viewport.Height = height - 6
	if s.viewport.Height < 3 {
		s.viewport.Height = 3
	}

	content := shortcutsMarkdown
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(s.viewport.Width))
	if err == nil {
		if rendered, err := renderer.Render(shortcutsMarkdown); err == nil {
			content = rendered
		}
	}
	s.viewport.SetContent(content)
}

func (s *helpScreen) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "f1", "q":
			return popScreen(nil)
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *helpScreen) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.accent).
		Padding(0, 1).
		Render(s.viewport.View())

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}
