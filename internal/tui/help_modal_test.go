package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/quickie/internal/config"
)

func TestHelpScreen_CloseKeys(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyF1} {
		s := newHelpScreen(config.DefaultSettings())
		s.SetSize(80, 24)

		cmd := s.Update(tea.KeyMsg{Type: keyType})
		if cmd == nil {
			t.Fatalf("Expected %v to close the help screen", keyType)
		}
		popMsg, ok := cmd().(popScreenMsg)
		if !ok {
			t.Fatalf("Expected popScreenMsg from %v", keyType)
		}
		if popMsg.result != nil {
			t.Errorf("Expected nil result, got %v", popMsg.result)
		}
	}

	// q closes too
	s := newHelpScreen(config.DefaultSettings())
	if cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("Expected q to close the help screen")
	}
}

func TestHelpScreen_RendersShortcuts(t *testing.T) {
	s := newHelpScreen(config.DefaultSettings())
	s.SetSize(80, 24)

	view := s.View()
	if view == "" {
		t.Fatal("Expected rendered help content")
	}
	AssertModelField(t, "Title", s.Title(), "Help")
}
