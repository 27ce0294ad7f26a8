// Package blockfall adapts the engine to the platform's fixed-tick game contract:
// it turns input frames into engine intents, draws the playfield into a screen
// buffer and keeps a journal of each run so it can be stored and replayed.
package blockfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Game implements the Blockfall game on top of an engine.Session.
type Game struct {
	cfg     config.Config
	ruleset string
	logger  *log.Logger

	session  *engine.Session
	runtime  core.RuntimeConfig
	seed     int64
	dt       time.Duration
	step     int
	journal  []storage.Frame
	lastRun  *storage.Run
	recorded bool
}

// New creates a game with the given ruleset. A nil logger discards engine events.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ruleset := ""
	if data, err := cfg.Marshal(); err == nil {
		ruleset = string(data)
	} else {
		logger.Warn("cannot snapshot ruleset", "error", err)
	}
	return &Game{
		cfg:     cfg,
		ruleset: ruleset,
		logger:  logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts over on the home screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc
	g.dt = time.Second / time.Duration(rc.TickRate)
	g.lastRun = nil
	g.begin(rc.Seed)
}

// begin creates a fresh session and an empty journal.
func (g *Game) begin(seed int64) {
	sc := g.cfg.Session(seed)
	sc.Listener = eventLogger{logger: g.logger}
	g.session = engine.NewSession(sc)
	g.seed = seed
	g.step = 0
	g.journal = nil
	g.recorded = false
}

// Step applies the frame's actions in order and advances the clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var applied []string
	for _, a := range in.Actions {
		intent, ok := intentFor(a)
		if !ok {
			continue
		}
		before := g.session.State()
		g.session.Apply(intent)

		// Leaving a run for the home screen starts a new journal so every
		// stored run replays from its own seed.
		if before != engine.StateHome && g.session.State() == engine.StateHome {
			g.begin(g.seed + 1)
			applied = nil
			continue
		}
		applied = append(applied, a.String())
	}
	if len(applied) > 0 {
		g.journal = append(g.journal, storage.Frame{Step: g.step, Actions: applied})
	}

	g.session.Tick(g.dt)
	g.step++

	if g.session.State() == engine.StateGameOver && !g.recorded {
		g.recorded = true
		g.lastRun = g.buildRun()
	}
	return core.StepResult{State: g.State()}
}

// intentFor maps a platform action onto an engine intent.
func intentFor(a core.Action) (engine.Intent, bool) {
	switch a {
	case core.ActionMoveLeft:
		return engine.Move(-1), true
	case core.ActionMoveRight:
		return engine.Move(1), true
	case core.ActionMoveStop:
		return engine.Move(0), true
	case core.ActionRotate:
		return engine.RotateOnce(), true
	case core.ActionSoftDropStart:
		return engine.SoftDrop(true), true
	case core.ActionSoftDropStop:
		return engine.SoftDrop(false), true
	case core.ActionHardDrop:
		return engine.HardDrop(), true
	case core.ActionPause:
		return engine.Pause(), true
	case core.ActionConfirm:
		return engine.Confirm(), true
	case core.ActionLevelUp:
		return engine.ChangeStartLevel(1), true
	case core.ActionLevelDown:
		return engine.ChangeStartLevel(-1), true
	default:
		return engine.Intent{}, false
	}
}

func (g *Game) buildRun() *storage.Run {
	frames := make([]storage.Frame, len(g.journal))
	copy(frames, g.journal)
	return &storage.Run{
		ID:         uuid.NewString(),
		Seed:       g.seed,
		TickRate:   g.runtime.TickRate,
		StartLevel: g.session.StartLevel(),
		Ruleset:    g.ruleset,
		Score:      g.session.Score(),
		Lines:      g.session.Lines(),
		Level:      g.session.Level(),
		Steps:      g.step,
		Frames:     frames,
	}
}

// LastRun returns the most recent finished run since Reset, or nil.
func (g *Game) LastRun() *storage.Run {
	return g.lastRun
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Phase:    string(st),
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		Level:    g.session.Level(),
		GameOver: st == engine.StateGameOver,
		Paused:   st == engine.StatePaused,
	}
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}
