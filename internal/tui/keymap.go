package tui

import (
	"github.com/Veraticus/passforge/internal/session"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Select     key.Binding
	Toggle     key.Binding
	ToggleAt   key.Binding
	Regenerate key.Binding
	Copy       key.Binding
	Back       key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "shorter"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "longer"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("Space/x", "toggle option"),
		),
		ToggleAt: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle option n"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c/y", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc", "backspace"),
			key.WithHelp("q/Esc", "back to list"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// stateKeyMap narrows the help view to the bindings that apply in one state.
type stateKeyMap struct {
	keys       KeyMap
	state      session.State
	hasOptions bool
}

// ShortHelp returns key bindings for the short help view.
func (s stateKeyMap) ShortHelp() []key.Binding {
	k := s.keys
	if s.state == session.StateBrowsing {
		return []key.Binding{k.Down, k.Select, k.Copy, k.Help, k.Quit}
	}
	if s.hasOptions {
		return []key.Binding{k.Left, k.Right, k.Toggle, k.Copy, k.Help, k.Back}
	}
	return []key.Binding{k.Left, k.Right, k.Copy, k.Help, k.Back}
}

// FullHelp returns all key bindings for the full help view.
func (s stateKeyMap) FullHelp() [][]key.Binding {
	k := s.keys
	if s.state == session.StateBrowsing {
		return [][]key.Binding{
			{k.Up, k.Down, k.Select},
			{k.Regenerate, k.Copy},
			{k.Help, k.Quit, k.ForceQuit},
		}
	}
	columns := [][]key.Binding{
		{k.Left, k.Right, k.Regenerate, k.Copy},
	}
	if s.hasOptions {
		columns = append(columns, []key.Binding{k.Up, k.Down, k.Toggle, k.ToggleAt})
	}
	return append(columns, []key.Binding{k.Help, k.Back, k.ForceQuit})
}
