package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skybird/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionActivate, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionActivate, false},
		{"w", runeKey('w'), core.ActionActivate, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionDismiss, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; expected %v, %v", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapModalKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		// Letters and space are typed into the name
		{"q", runeKey('q'), core.ActionNone, false},
		{"w", runeKey('w'), core.ActionNone, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionDismiss, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapModalKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapModalKey(%s) = %v, %v; expected %v, %v", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultGameKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
