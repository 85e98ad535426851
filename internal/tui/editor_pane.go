package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
)

// languageByExtension maps file extensions to syntax-highlighting languages.
// Extensions not listed here are rendered without highlighting.
var languageByExtension = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".json": "json",
	".md":   "markdown",
	".html": "html",
	".css":  "css",
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
	".sh":   "bash",
	".rs":   "rust",
	".go":   "go",
}

func languageForFile(path string) string {
	return languageByExtension[strings.ToLower(filepath.Ext(path))]
}

// chromaStyleByTheme maps the persisted editor theme names to chroma styles
var chromaStyleByTheme = map[string]string{
	"monokai":      "monokai",
	"dracula":      "dracula",
	"github_light": "github",
	"vscode_dark":  "github-dark",
}

func chromaStyleName(theme string) string {
	if name, ok := chromaStyleByTheme[theme]; ok {
		return name
	}
	return "monokai"
}

// highlightCode applies syntax highlighting to code using chroma.
// Falls back to plain text if highlighting fails.
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// editorPane is the code editing half of the workspace. While focused it is
// a live textarea; while blurred it renders a read-only highlighted view of
// the same buffer.
type editorPane struct {
	textarea textarea.Model
	theme    paneTheme

	chromaStyle string
	language    string
	fileName    string
	lineNumbers bool

	width   int
	height  int
	focused bool
}

func newEditorPane(settings config.Settings) editorPane {
	theme := themeFromSettings(settings)

	ta := textarea.New()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = settings.ShowLineNumbers
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Background(theme.editorBg)
	ta.BlurredStyle.Base = lipgloss.NewStyle().Background(theme.editorBg)

	return editorPane{
		textarea:    ta,
		theme:       theme,
		chromaStyle: chromaStyleName(settings.EditorTheme),
		fileName:    "main.py",
		language:    "python",
		lineNumbers: settings.ShowLineNumbers,
	}
}

func (e *editorPane) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.textarea.SetWidth(e.innerWidth())
	e.textarea.SetHeight(e.innerHeight())
}

func (e *editorPane) innerWidth() int {
	w := e.width - PaneBorderWidth
	if w < 1 {
		w = 1
	}
	return w
}

func (e *editorPane) innerHeight() int {
	h := e.height - PaneBorderWidth - PaneTitleLines
	if h < 1 {
		h = 1
	}
	return h
}

func (e *editorPane) Focus() tea.Cmd {
	e.focused = true
	return e.textarea.Focus()
}

func (e *editorPane) Blur() {
	e.focused = false
	e.textarea.Blur()
}

func (e *editorPane) Focused() bool {
	return e.focused
}

// SetFile points the pane at a file: the title shows its base name and the
// highlight language follows its extension.
func (e *editorPane) SetFile(path string) {
	e.fileName = filepath.Base(path)
	e.language = languageForFile(path)
}

func (e *editorPane) SetContent(content string) {
	e.textarea.SetValue(content)
}

func (e *editorPane) Content() string {
	return e.textarea.Value()
}

func (e *editorPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return cmd
}

func (e *editorPane) View() string {
	title := renderPaneTitle(e.innerWidth(), e.theme.titleAlign, e.fileName)
	return paneBorder(e.theme, e.focused).
		Width(e.innerWidth()).
		Height(e.height - PaneBorderWidth).
		Render(title + "\n" + e.bodyView())
}

func (e *editorPane) bodyView() string {
	if e.focused || e.language == "" {
		return e.textarea.View()
	}

	lines := strings.Split(highlightCode(e.textarea.Value(), e.language, e.chromaStyle), "\n")
	if e.lineNumbers {
		gutter := len(fmt.Sprintf("%d", len(lines)))
		for i, line := range lines {
			lines[i] = styleSubtle.Render(fmt.Sprintf(" %*d ", gutter, i+1)) + line
		}
	}
	if len(lines) > e.innerHeight() {
		lines = lines[:e.innerHeight()]
	}
	return strings.Join(lines, "\n")
}
