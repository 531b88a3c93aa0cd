package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skybird/internal/core"
)

// GameKeyMap defines the key bindings for a game session.
type GameKeyMap struct {
	Activate   key.Binding
	Submit     key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.Submit, k.Dismiss},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Activate: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fly / start"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Activate):
		return core.ActionActivate, false
	case key.Matches(msg, km.keys.Submit):
		return core.ActionSubmit, false
	case key.Matches(msg, km.keys.Dismiss):
		return core.ActionDismiss, false
	}
	return core.ActionNone, false
}

// MapModalKey translates a key while the name dialog has focus.
// Printable keys belong to the text field, so only ctrl+c quits.
func (km *KeyMapper) MapModalKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Submit):
		return core.ActionSubmit, false
	case key.Matches(msg, km.keys.Dismiss):
		return core.ActionDismiss, false
	}
	return core.ActionNone, false
}
