package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/debug"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
)

// commandFinishedMsg is delivered when a terminal command completes. The seq
// field identifies which submission produced it; completions from superseded
// submissions are dropped.
type commandFinishedMsg struct {
	seq   int
	lines []string
}

// terminalPane is the shell half of the workspace: a scrollback viewport with
// a command input docked at the bottom. Commands run one at a time; a new
// submission cancels the one in flight.
type terminalPane struct {
	project project.Project
	hist    *history.Manager

	theme    paneTheme
	viewport viewport.Model
	input    textinput.Model

	lines      []string
	lastOutput string

	// Command recall state. recallIndex == len(recall) means the live prompt.
	recall      []string
	recallIndex int
	draft       string

	// Fuzzy history search (ctrl+f)
	searching     bool
	searchQuery   string
	searchMatches []string
	searchIndex   int

	cancelRun context.CancelFunc
	runSeq    int

	width   int
	height  int
	focused bool
}

func newTerminalPane(proj project.Project, hist *history.Manager, settings config.Settings) terminalPane {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type command..."
	ti.CharLimit = 0

	t := terminalPane{
		project:  proj,
		hist:     hist,
		theme:    themeFromSettings(settings),
		viewport: viewport.New(0, 0),
		input:    ti,
		lines:    []string{"$ "},
	}

	// Seed recall with the project's persisted history, oldest first
	if hist != nil {
		if entries, err := hist.Recent(proj.Name, HistorySeedLimit); err == nil {
			for i := len(entries) - 1; i >= 0; i-- {
				t.recall = append(t.recall, entries[i].Command)
			}
		}
	}
	t.recallIndex = len(t.recall)

	return t
}

func (t *terminalPane) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.viewport.Width = t.innerWidth()
	t.viewport.Height = t.innerHeight()
	t.input.Width = t.innerWidth() - 1
	t.refreshViewport()
}

func (t *terminalPane) innerWidth() int {
	w := t.width - PaneBorderWidth
	if w < 1 {
		w = 1
	}
	return w
}

func (t *terminalPane) innerHeight() int {
	h := t.height - PaneBorderWidth - TerminalInputLine
	if h < 1 {
		h = 1
	}
	return h
}

func (t *terminalPane) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *terminalPane) Blur() {
	t.focused = false
	t.input.Blur()
}

func (t *terminalPane) Focused() bool {
	return t.focused
}

// Running reports whether a submitted command has not completed yet
func (t *terminalPane) Running() bool {
	return t.cancelRun != nil
}

// Lines returns a copy of the scrollback
func (t *terminalPane) Lines() []string {
	return append([]string(nil), t.lines...)
}

// LastOutput returns the output block of the most recently completed command
func (t *terminalPane) LastOutput() string {
	return t.lastOutput
}

// Clear empties the scrollback and starts it over with a fresh prompt
func (t *terminalPane) Clear() {
	t.lines = t.lines[:0]
	t.appendLines("$ ")
}

// RunCommand records the command in the session recall list and the persisted
// history, echoes it into the scrollback, and returns a tea.Cmd that executes
// it through the shell in the project directory. Any command still in flight
// is cancelled; its completion will be dropped by seq.
func (t *terminalPane) RunCommand(command string) tea.Cmd {
	t.recall = append(t.recall, command)
	t.recallIndex = len(t.recall)
	t.draft = ""

	if t.hist != nil {
		if err := t.hist.Append(t.project.Name, command); err != nil {
			debug.Log("history append failed: %v", err)
		}
	}

	t.appendLines(command)

	if t.cancelRun != nil {
		t.cancelRun()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancelRun = cancel
	t.runSeq++

	seq := t.runSeq
	dir := t.project.Path
	return func() tea.Msg {
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Dir = dir
		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf
		start := time.Now()
		err := cmd.Run()
		debug.LogTiming(command, time.Since(start))

		output := strings.TrimSpace(buf.String())
		var lines []string
		var exitErr *exec.ExitError
		switch {
		case err == nil, errors.As(err, &exitErr):
			// A failing command already reported itself through the
			// merged output; only a failure to run it at all gets an
			// error line.
			if output != "" {
				lines = strings.Split(output, "\n")
			}
		default:
			lines = []string{"Error: " + err.Error()}
		}
		return commandFinishedMsg{seq: seq, lines: lines}
	}
}

func (t *terminalPane) handleCommandFinished(msg commandFinishedMsg) {
	if msg.seq != t.runSeq {
		return // superseded by a newer submission
	}
	if t.cancelRun != nil {
		t.cancelRun()
		t.cancelRun = nil
	}
	t.lastOutput = strings.Join(msg.lines, "\n")
	if len(msg.lines) > 0 {
		t.appendLines(msg.lines...)
	}
	t.appendLines("$ ")
}

func (t *terminalPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commandFinishedMsg:
		t.handleCommandFinished(msg)
		return nil
	case tea.KeyMsg:
		return t.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *terminalPane) handleKey(msg tea.KeyMsg) tea.Cmd {
	if t.searching {
		t.handleSearchKey(msg)
		return nil
	}

	switch msg.String() {
	case "enter":
		command := strings.TrimSpace(t.input.Value())
		if command == "" {
			return nil
		}
		t.input.SetValue("")
		return t.RunCommand(command)
	case "up":
		t.recallPrev()
		return nil
	case "down":
		t.recallNext()
		return nil
	case "ctrl+f":
		t.startSearch()
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *terminalPane) recallPrev() {
	if len(t.recall) == 0 {
		return
	}
	if t.recallIndex == len(t.recall) {
		t.draft = t.input.Value()
	}
	if t.recallIndex > 0 {
		t.recallIndex--
	}
	t.input.SetValue(t.recall[t.recallIndex])
	t.input.CursorEnd()
}

func (t *terminalPane) recallNext() {
	if t.recallIndex >= len(t.recall) {
		return
	}
	t.recallIndex++
	if t.recallIndex == len(t.recall) {
		t.input.SetValue(t.draft)
	} else {
		t.input.SetValue(t.recall[t.recallIndex])
	}
	t.input.CursorEnd()
}

func (t *terminalPane) startSearch() {
	t.searching = true
	t.searchQuery = ""
	t.searchMatches = nil
	t.searchIndex = 0
}

func (t *terminalPane) handleSearchKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		t.searching = false
	case "enter":
		if len(t.searchMatches) > 0 {
			t.input.SetValue(t.searchMatches[t.searchIndex])
			t.input.CursorEnd()
		}
		t.searching = false
	case "ctrl+f":
		if len(t.searchMatches) > 0 {
			t.searchIndex = (t.searchIndex + 1) % len(t.searchMatches)
		}
	case "backspace":
		if t.searchQuery != "" {
			runes := []rune(t.searchQuery)
			t.searchQuery = string(runes[:len(runes)-1])
			t.refreshSearch()
		}
	default:
		switch msg.Type {
		case tea.KeySpace:
			t.searchQuery += " "
			t.refreshSearch()
		case tea.KeyRunes:
			t.searchQuery += string(msg.Runes)
			t.refreshSearch()
		}
	}
}

func (t *terminalPane) refreshSearch() {
	t.searchMatches = nil
	t.searchIndex = 0
	if t.searchQuery == "" {
		return
	}
	for _, match := range fuzzy.Find(t.searchQuery, t.recallNewestFirst()) {
		t.searchMatches = append(t.searchMatches, match.Str)
	}
}

func (t *terminalPane) recallNewestFirst() []string {
	out := make([]string, 0, len(t.recall))
	for i := len(t.recall) - 1; i >= 0; i-- {
		out = append(out, t.recall[i])
	}
	return out
}

func (t *terminalPane) appendLines(lines ...string) {
	t.lines = append(t.lines, lines...)
	t.refreshViewport()
}

func (t *terminalPane) refreshViewport() {
	content := strings.Join(t.lines, "\n")
	if t.viewport.Width > 0 {
		// Wrap long output lines instead of clipping them
		content = lipgloss.NewStyle().Width(t.viewport.Width).Render(content)
	}
	t.viewport.SetContent(content)
	t.viewport.GotoBottom()
}

func (t *terminalPane) View() string {
	body := t.viewport.View() + "\n" + t.inputView()
	return paneBorder(t.theme, t.focused).
		Background(t.theme.terminalBg).
		Width(t.innerWidth()).
		Height(t.height - PaneBorderWidth).
		Render(body)
}

func (t *terminalPane) inputView() string {
	if t.searching {
		hint := styleSubtle.Render("(no match)")
		if len(t.searchMatches) > 0 {
			hint = t.searchMatches[t.searchIndex] + " " +
				styleWarning.Render(fmt.Sprintf("(%d/%d)", t.searchIndex+1, len(t.searchMatches)))
		}
		return styleWarning.Render("search: ") + t.searchQuery + " " + hint
	}
	return t.input.View()
}
