package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
	"github.com/studiowebux/quickie/internal/toolchain"
)

// projectPreparedMsg reports the directory-creation stage of a bootstrap
type projectPreparedMsg struct {
	seq     int
	proj    project.Project
	created bool
	err     error
}

// projectInitializedMsg reports the toolchain-init stage of a bootstrap
type projectInitializedMsg struct {
	seq  int
	proj project.Project
	err  error
}

// welcomeScreen asks for a project name and bootstraps the project directory.
// Only one bootstrap runs at a time; submitting again cancels the one in
// flight and stale stage messages are dropped by seq.
type welcomeScreen struct {
	store *config.Store
	tc    toolchain.Toolchain
	hist  *history.Manager

	theme  paneTheme
	input  textinput.Model
	status string
	busy   bool

	ctx    context.Context
	cancel context.CancelFunc
	seq    int

	// autoSubmit is a project name supplied on the command line,
	// submitted as soon as the screen starts.
	autoSubmit string

	width  int
	height int
}

func newWelcomeScreen(store *config.Store, tc toolchain.Toolchain, hist *history.Manager, autoSubmit string) *welcomeScreen {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter project name..."
	ti.CharLimit = 0
	ti.Focus()

	return &welcomeScreen{
		store:      store,
		tc:         tc,
		hist:       hist,
		theme:      themeFromSettings(store.Settings()),
		input:      ti,
		autoSubmit: autoSubmit,
	}
}

func (s *welcomeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if s.autoSubmit != "" {
		s.input.SetValue(s.autoSubmit)
		s.input.CursorEnd()
		if cmd := s.submit(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (s *welcomeScreen) Title() string {
	return "Welcome"
}

func (s *welcomeScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *welcomeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.busy {
			return nil
		}
		if msg.String() == "enter" {
			return s.submit()
		}
	case projectPreparedMsg:
		return s.handlePrepared(msg)
	case projectInitializedMsg:
		return s.handleInitialized(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *welcomeScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.input.Value())
	if err := project.ValidateName(name); err != nil {
		s.status = err.Error()
		return nil
	}
	return s.startBootstrap(name)
}

func (s *welcomeScreen) startBootstrap(name string) tea.Cmd {
	proj := project.New(config.ProjectsDir, name)

	s.busy = true
	s.input.Blur()
	s.status = fmt.Sprintf("Creating %s...", proj.Path)

	if s.cancel != nil {
		s.cancel()
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.seq++

	seq := s.seq
	return func() tea.Msg {
		created, err := proj.EnsureDir()
		return projectPreparedMsg{seq: seq, proj: proj, created: created, err: err}
	}
}

func (s *welcomeScreen) handlePrepared(msg projectPreparedMsg) tea.Cmd {
	if msg.seq != s.seq {
		return nil
	}
	if msg.err != nil {
		return s.fail("Error: " + msg.err.Error())
	}
	if !msg.created {
		s.status = "Opening existing project..."
		return s.openProject(msg.proj)
	}

	s.status = fmt.Sprintf("Running %s init...", s.tc.Name)
	ctx := s.ctx
	argv := s.tc.InitArgv()
	seq := s.seq
	proj := msg.proj
	return func() tea.Msg {
		err := proj.RunInit(ctx, argv)
		return projectInitializedMsg{seq: seq, proj: proj, err: err}
	}
}

func (s *welcomeScreen) handleInitialized(msg projectInitializedMsg) tea.Cmd {
	if msg.seq != s.seq {
		return nil
	}
	if msg.err != nil {
		return s.fail("Error: " + msg.err.Error())
	}
	return s.openProject(msg.proj)
}

// fail shows the error and reopens the input for another attempt
func (s *welcomeScreen) fail(status string) tea.Cmd {
	s.status = status
	s.busy = false
	return s.input.Focus()
}

func (s *welcomeScreen) openProject(proj project.Project) tea.Cmd {
	return replaceScreen(newMainScreen(proj, s.store, s.tc, s.hist))
}

func (s *welcomeScreen) View() string {
	title := styleTitle.Render("Quickie")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.accent).
		Padding(1, 2).
		Width(50).
		Render(s.input.View() + "\n\n" + s.status)

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", box)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
}
