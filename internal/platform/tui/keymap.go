package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	SoftDrop   key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "k", "x"),
			key.WithHelp("↑/w", "rotate"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "hard drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.SoftDrop, k.HardDrop},
		{k.Pause, k.Confirm, k.Screenshot, k.Quit},
	}
}

// keyInput is a physical key classified by the key map.
type keyInput int

const (
	keyNone keyInput = iota
	keyLeft
	keyRight
	keyRotate
	keySoftDrop
	keyHardDrop
	keyPause
	keyConfirm
	keyScreenshot
	keyQuit
	keyLevelUp
	keyLevelDown
)

// match classifies a key message. The "+" and "-" keys are always level
// controls; the home screen also treats left and right as level controls.
func (k KeyMap) match(msg tea.KeyMsg) keyInput {
	switch {
	case key.Matches(msg, k.Quit):
		return keyQuit
	case key.Matches(msg, k.Screenshot):
		return keyScreenshot
	case key.Matches(msg, k.Left):
		return keyLeft
	case key.Matches(msg, k.Right):
		return keyRight
	case key.Matches(msg, k.Rotate):
		return keyRotate
	case key.Matches(msg, k.SoftDrop):
		return keySoftDrop
	case key.Matches(msg, k.HardDrop):
		return keyHardDrop
	case key.Matches(msg, k.Pause):
		return keyPause
	case key.Matches(msg, k.Confirm):
		return keyConfirm
	}
	switch msg.String() {
	case "+", "=":
		return keyLevelUp
	case "-", "_":
		return keyLevelDown
	}
	return keyNone
}
