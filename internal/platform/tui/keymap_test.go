package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMatch(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want keyInput
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, keyLeft},
		{"a", runeKey('a'), keyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, keyRight},
		{"d", runeKey('d'), keyRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, keyRotate},
		{"x", runeKey('x'), keyRotate},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, keySoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, keyHardDrop},
		{"p", runeKey('p'), keyPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, keyPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, keyConfirm},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, keyScreenshot},
		{"q", runeKey('q'), keyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, keyQuit},
		{"plus", runeKey('+'), keyLevelUp},
		{"minus", runeKey('-'), keyLevelDown},
		{"unbound", runeKey('z'), keyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.match(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	var n int
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 9, n, "every binding appears in the full help")
}
