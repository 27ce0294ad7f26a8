package engine

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	Lines      int
	Level      int
	StartLevel int
	Next       Kind
	Piece      Kind
	PieceCol   int
	PieceRow   int
	Rotation   int
	Grid       string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.ticks,
		State:      s.state,
		Score:      s.score,
		Lines:      s.lines,
		Level:      s.level,
		StartLevel: s.startLevel,
		Next:       s.next,
		Grid:       s.grid.String(),
	}
	if s.active != nil {
		snap.Piece = s.active.Kind()
		snap.PieceCol = s.active.Pos.Col
		snap.PieceRow = s.active.Pos.Row
		snap.Rotation = s.active.Rotation
	}
	return snap
}
