package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// startBlockfall opens a real game with the shipped defaults and starts a run.
func startBlockfall(t *testing.T) (Model, *blockfall.Game, *clock) {
	t.Helper()
	rules := config.DefaultConfig()
	g := blockfall.New(rules, nil)
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewModel(g, nil, cfg, Options{HoldRelease: rules.HoldRelease()})
	c := &clock{t: time.Unix(1000, 0)}
	m.now = c.now

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = frames(t, m, c, 1)
	require.Equal(t, phaseActive, m.GameState().Phase)
	return m, g, c
}

func frames(t *testing.T, m Model, c *clock, n int) Model {
	t.Helper()
	for range n {
		c.advance(time.Second / 60)
		m = update(t, m, c.tick())
	}
	return m
}

func TestTapMovesOneColumn(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyRight} {
		m, g, c := startBlockfall(t)
		col := g.Snapshot().PieceCol

		m = update(t, m, tea.KeyMsg{Type: k})
		frames(t, m, c, 18)

		want := col - 1
		if k == tea.KeyRight {
			want = col + 1
		}
		assert.Equal(t, want, g.Snapshot().PieceCol, "key %v", k)
	}
}

func TestTapSoftDropsOneRow(t *testing.T) {
	m, g, c := startBlockfall(t)
	row := g.Snapshot().PieceRow

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	frames(t, m, c, 18)

	assert.Equal(t, row-1, g.Snapshot().PieceRow)
}

func TestHeldKeyKeepsMoving(t *testing.T) {
	m, g, c := startBlockfall(t)
	col := g.Snapshot().PieceCol

	// Terminal key repeat every 50ms for 300ms.
	for range 6 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		m = frames(t, m, c, 3)
	}
	frames(t, m, c, 18)

	moved := col - g.Snapshot().PieceCol
	assert.Greater(t, moved, 1, "a held key repeats")
	assert.LessOrEqual(t, moved, 5)
}
