package tui

import (
	"strings"
	"testing"

	"github.com/studiowebux/quickie/internal/config"
)

func TestLanguageForFile(t *testing.T) {
	tests := []struct {
		path     string
		language string
	}{
		{"main.py", "python"},
		{"APP.PY", "python"},
		{"/tmp/proj/util.go", "go"},
		{"script.sh", "bash"},
		{"README.md", "markdown"},
		{"values.yml", "yaml"},
		{"notes.txt", ""},
		{"Makefile", ""},
	}

	for _, tt := range tests {
		if got := languageForFile(tt.path); got != tt.language {
			t.Errorf("languageForFile(%q) = %q, want %q", tt.path, got, tt.language)
		}
	}
}

func TestChromaStyleName(t *testing.T) {
	tests := []struct {
		theme string
		style string
	}{
		{"monokai", "monokai"},
		{"dracula", "dracula"},
		{"github_light", "github"},
		{"vscode_dark", "github-dark"},
		{"does-not-exist", "monokai"},
	}

	for _, tt := range tests {
		if got := chromaStyleName(tt.theme); got != tt.style {
			t.Errorf("chromaStyleName(%q) = %q, want %q", tt.theme, got, tt.style)
		}
	}
}

func TestHighlightCode(t *testing.T) {
	result := highlightCode("def main():\n    pass\n", "python", "monokai")

	if result == "" {
		t.Fatal("Expected highlighted output")
	}
	if !strings.Contains(result, "def") {
		t.Error("Expected token text to survive highlighting")
	}
	if !strings.Contains(result, "\x1b[") {
		t.Error("Expected ANSI color sequences in highlighted output")
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	code := "some opaque text"
	result := highlightCode(code, "", "monokai")

	// Falls through to the plain-text lexer without losing content
	if !strings.Contains(result, "some opaque text") {
		t.Errorf("Expected content to survive fallback, got %q", result)
	}
}

func TestNewEditorPane(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())

	AssertModelField(t, "fileName", e.fileName, "main.py")
	AssertModelField(t, "language", e.language, "python")
	AssertModelField(t, "chromaStyle", e.chromaStyle, "monokai")
	AssertModelField(t, "Focused", e.Focused(), false)
	AssertModelField(t, "lineNumbers", e.lineNumbers, true)
}

func TestEditorPane_SetFile(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())

	e.SetFile("/home/user/Code/Quickies/demo/helpers/util.go")
	AssertModelField(t, "fileName", e.fileName, "util.go")
	AssertModelField(t, "language", e.language, "go")

	e.SetFile("notes.txt")
	AssertModelField(t, "fileName", e.fileName, "notes.txt")
	AssertModelField(t, "language", e.language, "")
}

func TestEditorPane_HoldsLargeBuffers(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())
	e.SetSize(80, 20)

	// Well past the textarea's default character and line limits
	content := strings.Repeat("x", 500) + "\n" + strings.TrimRight(strings.Repeat("line\n", 120), "\n")
	e.SetContent(content)

	if got := e.Content(); got != content {
		t.Errorf("Expected buffer of %d bytes to survive, got %d bytes", len(content), len(got))
	}
}

func TestEditorPane_FocusBlur(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())

	if cmd := e.Focus(); cmd == nil {
		t.Error("Expected cursor cmd from Focus")
	}
	AssertModelField(t, "Focused", e.Focused(), true)

	e.Blur()
	AssertModelField(t, "Focused", e.Focused(), false)
}

func TestEditorPane_BlurredViewIsHighlighted(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())
	e.SetSize(80, 20)
	e.SetContent("def main():\n    pass\n")
	e.Blur()

	body := e.bodyView()
	if !strings.Contains(body, "\x1b[") {
		t.Error("Expected highlighted body while blurred")
	}
	// Line-number gutter is rendered for the highlighted view
	if !strings.Contains(body, " 1 ") {
		t.Error("Expected line-number gutter in blurred view")
	}
}

func TestEditorPane_ViewShowsFileName(t *testing.T) {
	e := newEditorPane(config.DefaultSettings())
	e.SetSize(80, 20)
	e.SetFile("util.go")

	if !strings.Contains(e.View(), "util.go") {
		t.Error("Expected pane title to show the file name")
	}
}
