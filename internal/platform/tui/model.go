package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Game is the contract the terminal loop drives once per tick.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	// LastRun returns the finished run since the last Reset, or nil.
	LastRun() *storage.Run
}

// Lifecycle phases reported in core.GameState.Phase.
const (
	phaseHome     = "home"
	phaseActive   = "active"
	phasePaused   = "paused"
	phaseGameOver = "game_over"
)

// Options tune a Model beyond the runtime config.
type Options struct {
	Logger      *log.Logger   // nil discards
	HoldRelease time.Duration // see HoldTracker; zero uses DefaultHoldRelease
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	quitting   bool
	runSaved   bool // whether the run has been stored for the current game over
}

// NewModel creates a model and resets the game onto its home screen.
// The bottom terminal row is reserved for the help line.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:      store,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.HoldRelease),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key press into actions for the next tick, depending on
// which screen the game is showing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.match(msg)
	switch in {
	case keyQuit:
		m.quitting = true
		return m, tea.Quit
	case keyScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	switch m.gameState.Phase {
	case phaseHome:
		switch in {
		case keyLeft, keyLevelDown:
			m.inputFrame.Set(core.ActionLevelDown)
		case keyRight, keyLevelUp:
			m.inputFrame.Set(core.ActionLevelUp)
		case keyConfirm:
			m.inputFrame.Set(core.ActionConfirm)
		}

	case phaseActive:
		switch in {
		case keyLeft:
			m.hold.PressMove(-1, m.now(), &m.inputFrame)
		case keyRight:
			m.hold.PressMove(1, m.now(), &m.inputFrame)
		case keySoftDrop:
			m.hold.PressSoftDrop(m.now(), &m.inputFrame)
		case keyRotate:
			m.inputFrame.Set(core.ActionRotate)
		case keyHardDrop:
			m.inputFrame.Set(core.ActionHardDrop)
		case keyPause:
			// Held keys cannot be released while paused, so let go first.
			m.hold.ReleaseAll(&m.inputFrame)
			m.inputFrame.Set(core.ActionPause)
		}

	case phasePaused:
		switch in {
		case keyPause:
			m.inputFrame.Set(core.ActionPause)
		case keyConfirm:
			m.inputFrame.Set(core.ActionConfirm)
		}

	case phaseGameOver:
		if in == keyConfirm {
			m.inputFrame.Set(core.ActionConfirm)
		}
	}

	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal. The game
// lays itself out on every render, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the actions gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.Phase == phaseActive {
		m.hold.Expire(now, &m.inputFrame)
	} else {
		m.hold.ReleaseAll(&m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. A failed save is logged and play goes on.
func (m Model) saveRun() {
	run := m.game.LastRun()
	if run == nil || m.store == nil {
		return
	}
	if err := m.store.SaveRun(*run); err != nil {
		m.logger.Error("cannot save run", "id", run.ID, "error", err)
		return
	}
	m.logger.Info("run saved", "id", run.ID, "score", run.Score, "lines", run.Lines, "level", run.Level)
}

// saveScreenshot writes the current screen as plain text under ~/.blockfall/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the game followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameState returns the state reported by the last step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
