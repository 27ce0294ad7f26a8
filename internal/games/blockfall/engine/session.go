package engine

import (
	"math/rand"
	"time"
)

// State is the session's lifecycle state.
type State string

const (
	StateHome     State = "home"
	StateActive   State = "active"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// Config configures a Session. Zero fields fall back to defaults.
type Config struct {
	Width      int
	Height     int
	StartLevel int
	Rules      Rules
	Timing     Timing
	Seed       int64
	Listener   Listener // optional; receives every event synchronously
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.StartLevel < 1 {
		c.StartLevel = 1
	}
	if c.Rules == (Rules{}) {
		c.Rules = DefaultRules()
	}
	if c.Timing == (Timing{}) {
		c.Timing = DefaultTiming()
	}
	return c
}

// Session owns the grid, the active piece and the drop scheduler.
// It is single-threaded: intents and ticks must be delivered from one goroutine.
type Session struct {
	cfg   Config
	grid  *Grid
	sched *Scheduler
	rng   *rand.Rand

	state      State
	startLevel int
	level      int
	score      int
	lines      int
	active     *Piece
	next       Kind
	nextID     PieceID
	ticks      uint64

	pending []Event
}

// NewSession creates a session on the Home screen.
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height),
		sched: NewScheduler(cfg.Timing),
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	s.home()
	return s
}

// home resets the session to a fresh Home state.
func (s *Session) home() {
	s.state = StateHome
	s.startLevel = s.cfg.StartLevel
	s.level = s.startLevel
	s.score = 0
	s.lines = 0
	s.active = nil
	s.next = KindNone
	s.grid.Reset()
	s.sched.Reset(s.level)
}

// Apply delivers one intent and returns the events it raised.
// Intents that make no sense in the current state are ignored.
func (s *Session) Apply(in Intent) []Event {
	switch s.state {
	case StateHome:
		s.applyHome(in)
	case StateActive:
		s.applyActive(in)
	case StatePaused:
		s.applyPaused(in)
	case StateGameOver:
		if in.Kind == IntentConfirm {
			s.home()
		}
	}
	return s.flush()
}

func (s *Session) applyHome(in Intent) {
	switch in.Kind {
	case IntentChangeStartLevel:
		if in.Direction == 0 {
			return
		}
		lvl := max(1, s.startLevel+in.Direction)
		if lvl == s.startLevel {
			return
		}
		s.startLevel = lvl
		s.level = lvl
		s.emit(Event{Kind: EventLevelChanged, Level: lvl})
	case IntentConfirm:
		s.start()
	}
}

func (s *Session) applyActive(in Intent) {
	switch in.Kind {
	case IntentMove:
		s.sched.SetMove(in.Direction)
		if in.Direction != 0 {
			s.active.Move(s.grid, in.Direction)
			s.sched.MarkMove()
		}
	case IntentRotate:
		s.active.Rotate(s.grid)
	case IntentSoftDrop:
		if !in.Start {
			s.sched.StopSoftDrop()
			return
		}
		s.sched.StartSoftDrop()
		s.dropStep()
	case IntentHardDrop:
		s.active.HardDrop(s.grid)
		s.rest()
		s.sched.MarkDrop()
	case IntentPause:
		s.state = StatePaused
		s.emit(Event{Kind: EventPausedChanged, Paused: true})
	}
}

func (s *Session) applyPaused(in Intent) {
	switch in.Kind {
	case IntentPause:
		s.state = StateActive
		s.emit(Event{Kind: EventPausedChanged, Paused: false})
	case IntentConfirm:
		s.home()
		s.emit(Event{Kind: EventPausedChanged, Paused: false})
	}
}

// Tick advances the game clock by elapsed and returns the events raised.
// Time only passes while a run is active.
func (s *Session) Tick(elapsed time.Duration) []Event {
	if s.state != StateActive {
		return s.flush()
	}
	s.ticks++
	s.sched.Advance(elapsed)

	if s.sched.MoveDue() {
		s.active.Move(s.grid, s.sched.MoveDir())
		s.sched.MarkMove()
	}
	if s.state == StateActive && s.sched.DropDue() {
		s.dropStep()
	}
	return s.flush()
}

// start begins a run from Home.
func (s *Session) start() {
	s.grid.Reset()
	s.score = 0
	s.lines = 0
	s.level = s.startLevel
	s.ticks = 0
	s.sched.Reset(s.level)
	s.state = StateActive
	s.emit(Event{Kind: EventLevelChanged, Level: s.level})
	s.emit(Event{Kind: EventScoreChanged, Score: s.score})
	s.next = s.draw()
	s.spawn()
}

// dropStep lowers the active piece one row, handling rest, and resets the drop reference.
func (s *Session) dropStep() {
	if s.active.Drop(s.grid) {
		s.rest()
	}
	s.sched.MarkDrop()
}

// rest commits the active piece, scores cleared lines and spawns the next piece.
func (s *Session) rest() {
	s.emit(Event{Kind: EventPieceRested})
	// ErrSpawnBlocked is the normal game-over path. ErrIllegalPlacement cannot
	// happen through validated moves and ends the run the same way.
	if err := s.grid.Commit(s.active); err != nil {
		s.gameOver()
		return
	}
	s.active = nil

	cleared := s.grid.ClearCompletedLines()
	s.grid.TakeConsumed()
	if cleared > 0 {
		s.emit(Event{Kind: EventLinesCleared, Count: cleared})
		s.score += s.cfg.Rules.ScoreDelta(cleared, s.level)
		s.emit(Event{Kind: EventScoreChanged, Score: s.score})

		prev := s.lines
		s.lines += cleared
		if gain := s.cfg.Rules.LevelGain(prev, s.lines); gain > 0 {
			s.level += gain
			s.sched.SetLevel(s.level)
			s.emit(Event{Kind: EventLevelChanged, Level: s.level})
		}
	}
	s.spawn()
}

// spawn promotes the preview kind to the active piece and draws a new preview.
// A spawn position already overlapping the stack ends the run.
func (s *Session) spawn() {
	kind := s.next
	s.next = s.draw()
	s.nextID++
	p := NewPiece(s.nextID, MustShape(kind), SpawnCell(s.grid.Width(), s.grid.Height()))
	if !IsValidMove(s.grid, p.Cells()) {
		s.gameOver()
		return
	}
	s.active = p
	s.sched.ResetHolds()
	s.sched.MarkDrop()
	s.emit(Event{Kind: EventPieceSpawned, Shape: kind, Next: s.next})
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.active = nil
	s.sched.ResetHolds()
	s.emit(Event{Kind: EventGameOver, Score: s.score})
}

func (s *Session) draw() Kind {
	return kinds[s.rng.Intn(len(kinds))]
}

func (s *Session) emit(e Event) {
	s.pending = append(s.pending, e)
	if s.cfg.Listener != nil {
		Dispatch(s.cfg.Listener, e)
	}
}

func (s *Session) flush() []Event {
	out := s.pending
	s.pending = nil
	return out
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the total lines cleared this run.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// StartLevel returns the level the next run will start at.
func (s *Session) StartLevel() int { return s.startLevel }

// Next returns the preview kind, or KindNone before a run starts.
func (s *Session) Next() Kind { return s.next }

// Ticks returns the number of active ticks in the current run.
func (s *Session) Ticks() uint64 { return s.ticks }

// Piece returns a copy of the active piece.
func (s *Session) Piece() (Piece, bool) {
	if s.active == nil {
		return Piece{}, false
	}
	return *s.active, true
}

// Field returns read-only access to the grid.
func (s *Session) Field() View { return s.grid }

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }
