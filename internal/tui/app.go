package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
	"github.com/studiowebux/quickie/internal/toolchain"
)

// App is the root bubbletea model. It owns the screen stack: the top screen
// gets keyboard input and the View, screens underneath stay mounted so
// commands they started (file runs, bootstraps) can still deliver results.
type App struct {
	store *config.Store
	tc    toolchain.Toolchain
	hist  *history.Manager

	stack []Screen

	width  int
	height int
}

// NewApp builds the root model with the welcome screen mounted. When
// projectName is non-empty the welcome screen submits it automatically.
func NewApp(store *config.Store, tc toolchain.Toolchain, hist *history.Manager, projectName string) App {
	return App{
		store: store,
		tc:    tc,
		hist:  hist,
		stack: []Screen{newWelcomeScreen(store, tc, hist, projectName)},
	}
}

func (a *App) top() Screen {
	return a.stack[len(a.stack)-1]
}

func (a *App) Init() tea.Cmd {
	return a.top().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, s := range a.stack {
			s.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case pushScreenMsg:
		msg.screen.SetSize(a.width, a.height)
		a.stack = append(a.stack, msg.screen)
		return a, msg.screen.Init()

	case popScreenMsg:
		if len(a.stack) > 1 {
			a.stack = a.stack[:len(a.stack)-1]
		}
		if msg.result != nil {
			return a, a.top().Update(msg.result)
		}
		return a, nil

	case replaceScreenMsg:
		msg.screen.SetSize(a.width, a.height)
		a.stack[len(a.stack)-1] = msg.screen
		return a, msg.screen.Init()

	case openSettingsMsg:
		// Settings adopt the project of whichever screen is current;
		// screens without one get a placeholder.
		proj := project.New(config.ProjectsDir, "default")
		if holder, ok := a.top().(ProjectHolder); ok {
			proj = holder.Project()
		}
		return a.Update(pushScreenMsg{screen: newSettingsScreen(proj, a.store)})

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.top().Update(msg)
	}

	// Everything else is broadcast: completion messages must reach the
	// screen that started the work even when another screen covers it.
	var cmds []tea.Cmd
	for _, s := range a.stack {
		if cmd := s.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

// handleKey resolves app-wide shortcuts against what the top screen can do,
// then hands everything else to the top screen.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	top := a.top()

	switch {
	case key.Matches(msg, keys.Quit):
		a.Cleanup()
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if _, ok := top.(*helpScreen); !ok {
			return pushScreen(newHelpScreen(a.store.Settings()))
		}

	case key.Matches(msg, keys.Save):
		if saver, ok := top.(FileSaver); ok {
			return saver.SaveFile()
		}

	case key.Matches(msg, keys.Run):
		if runner, ok := top.(FileRunner); ok {
			return runner.RunFile()
		}

	case key.Matches(msg, keys.Open):
		if opener, ok := top.(QuickOpener); ok {
			return opener.QuickOpen()
		}

	case key.Matches(msg, keys.Focus):
		if toggler, ok := top.(FocusToggler); ok {
			return toggler.ToggleFocus()
		}
	}

	return top.Update(msg)
}

func (a App) View() string {
	return a.top().View()
}

// Cleanup closes database connections and cleans up resources
func (a *App) Cleanup() {
	if a.hist != nil {
		if err := a.hist.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing history database: %v\n", err)
		}
	}
}

// Run starts the TUI
func Run(projectName string) error {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return err
	}

	store := config.NewStore(config.ConfigFile)
	if err := store.Load(); err != nil {
		return err
	}

	tc := toolchain.Load(config.ToolchainFile)

	hist, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}

	app := NewApp(store, tc, hist, projectName)

	// Start TUI (pass pointer since Update uses pointer receiver)
	// Note: Mouse is disabled by default in bubbletea
	p := tea.NewProgram(&app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Cleanup()
		return err
	}

	return nil
}
