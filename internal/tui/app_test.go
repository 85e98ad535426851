package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/quickie/internal/config"
)

func createTestApp(t *testing.T) *App {
	t.Helper()

	app := NewApp(CreateTestStore(t), trueToolchain, CreateTestHistory(t), "")
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &app
}

func TestNewApp_StartsOnWelcome(t *testing.T) {
	app := createTestApp(t)

	if len(app.stack) != 1 {
		t.Fatalf("Expected 1 stacked screen, got %d", len(app.stack))
	}
	AssertModelField(t, "Title", app.top().Title(), "Welcome")
}

func TestApp_PushAndPopScreens(t *testing.T) {
	app := createTestApp(t)

	app.Update(pushScreenMsg{screen: newHelpScreen(config.DefaultSettings())})
	if len(app.stack) != 2 {
		t.Fatalf("Expected 2 stacked screens, got %d", len(app.stack))
	}
	AssertModelField(t, "Title", app.top().Title(), "Help")

	app.Update(popScreenMsg{})
	AssertModelField(t, "Title", app.top().Title(), "Welcome")

	// The last screen never pops
	app.Update(popScreenMsg{})
	if len(app.stack) != 1 {
		t.Errorf("Expected the base screen to survive, got %d screens", len(app.stack))
	}
}

func TestApp_ReplaceScreen(t *testing.T) {
	app := createTestApp(t)

	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	if len(app.stack) != 1 {
		t.Fatalf("Expected 1 stacked screen after replace, got %d", len(app.stack))
	}
	AssertModelField(t, "Title", app.top().Title(), "demo")

	// The replacement was sized on entry
	AssertModelField(t, "width", main.width, 100)
}

func TestApp_PopDeliversResultToRevealedScreen(t *testing.T) {
	app := createTestApp(t)
	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	// Sorts ahead of main.py, so the picker highlights it first
	other := filepath.Join(main.proj.Path, "aaa.py")
	AssertNoError(t, os.WriteFile(other, []byte("print('a')\n"), 0644))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd == nil {
		t.Fatal("Expected quick open to push a screen")
	}
	app.Update(cmd())
	if _, ok := app.top().(*quickOpenScreen); !ok {
		t.Fatalf("Expected quick-open on top, got %T", app.top())
	}

	// Confirming the picker pops it and hands the selection to the workspace
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected enter to pop with a selection")
	}
	app.Update(cmd())

	AssertModelField(t, "Title", app.top().Title(), "demo")
	AssertModelField(t, "activeFile", main.activeFile, other)
	AssertModelField(t, "editor content", main.editor.Content(), "print('a')\n")
}

func TestApp_GlobalShortcutsUseTopScreenCapabilities(t *testing.T) {
	app := createTestApp(t)
	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	// ctrl+s saves through the FileSaver capability
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	AssertModelField(t, "statusMsg", main.statusMsg, "Saved main.py")

	// ctrl+o switches pane focus through FocusToggler
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	AssertModelField(t, "terminal focused", main.terminal.Focused(), true)
}

func TestApp_GlobalShortcutsIgnoredWithoutCapability(t *testing.T) {
	app := createTestApp(t)

	// The welcome screen cannot save, run, or open files
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("Expected ctrl+s to be ignored on the welcome screen")
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd != nil {
		t.Error("Expected ctrl+e to be ignored on the welcome screen")
	}
	if len(app.stack) != 1 {
		t.Errorf("Expected no screens pushed, got %d", len(app.stack))
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	app := createTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyF1})
	if cmd == nil {
		t.Fatal("Expected f1 to push the help screen")
	}
	app.Update(cmd())
	if _, ok := app.top().(*helpScreen); !ok {
		t.Fatalf("Expected help screen on top, got %T", app.top())
	}

	// f1 on the help screen closes it instead of stacking another
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyF1})
	if cmd == nil {
		t.Fatal("Expected f1 to close the help screen")
	}
	app.Update(cmd())
	AssertModelField(t, "Title", app.top().Title(), "Welcome")
}

func TestApp_QuitReturnsQuitCmd(t *testing.T) {
	app := createTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatal("Expected a cmd from ctrl+q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg from ctrl+q")
	}
}

func TestApp_SettingsAdoptCurrentProject(t *testing.T) {
	app := createTestApp(t)
	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected esc to open settings")
	}
	app.Update(cmd())

	settings, ok := app.top().(*settingsScreen)
	if !ok {
		t.Fatalf("Expected settings on top, got %T", app.top())
	}
	AssertModelField(t, "project", settings.proj.Name, main.proj.Name)
}

func TestApp_BroadcastReachesSuspendedScreens(t *testing.T) {
	app := createTestApp(t)
	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	// Start a command, then cover the workspace with the settings screen
	runCmd := main.terminal.RunCommand("echo bg")
	_, pushCmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if pushCmd == nil {
		t.Fatal("Expected esc to open settings")
	}
	app.Update(pushCmd())
	if _, ok := app.top().(*settingsScreen); !ok {
		t.Fatalf("Expected settings on top, got %T", app.top())
	}

	// The completion lands in the hidden workspace
	app.Update(runCmd())
	AssertModelField(t, "LastOutput", main.terminal.LastOutput(), "bg")
	AssertModelField(t, "Running", main.terminal.Running(), false)
}

func TestApp_WindowSizeReachesEveryScreen(t *testing.T) {
	app := createTestApp(t)
	main := CreateTestMainScreen(t)
	app.Update(replaceScreenMsg{screen: main})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(cmd())
	settings := app.top().(*settingsScreen)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	AssertModelField(t, "main width", main.width, 80)
	AssertModelField(t, "settings width", settings.width, 80)
}
