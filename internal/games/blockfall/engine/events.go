package engine

import "fmt"

// EventKind enumerates the outbound notifications.
type EventKind int

const (
	EventPieceSpawned EventKind = iota
	EventPieceRested
	EventLinesCleared
	EventScoreChanged
	EventLevelChanged
	EventGameOver
	EventPausedChanged
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPieceSpawned:
		return "PieceSpawned"
	case EventPieceRested:
		return "PieceRested"
	case EventLinesCleared:
		return "LinesCleared"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventLevelChanged:
		return "LevelChanged"
	case EventGameOver:
		return "GameOver"
	case EventPausedChanged:
		return "PausedChanged"
	default:
		return "Unknown"
	}
}

// Event is one outbound notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Shape  Kind // PieceSpawned: the new active piece
	Next   Kind // PieceSpawned: the preview piece
	Count  int  // LinesCleared
	Score  int  // ScoreChanged, GameOver
	Level  int  // LevelChanged
	Paused bool // PausedChanged
}

// String returns a compact description for logs and test failures.
func (e Event) String() string {
	switch e.Kind {
	case EventPieceSpawned:
		return fmt.Sprintf("%s(%s, next %s)", e.Kind, e.Shape, e.Next)
	case EventLinesCleared:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Count)
	case EventScoreChanged, EventGameOver:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Score)
	case EventLevelChanged:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Level)
	case EventPausedChanged:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Paused)
	default:
		return e.Kind.String()
	}
}

// Listener receives session events as they are raised.
type Listener interface {
	OnPieceSpawned(shape, next Kind)
	OnPieceRested()
	OnLinesCleared(count int)
	OnScoreChanged(total int)
	OnLevelChanged(level int)
	OnGameOver(finalScore int)
	OnPausedChanged(paused bool)
}

// NopListener implements Listener with empty methods. Embed it to handle a subset.
type NopListener struct{}

func (NopListener) OnPieceSpawned(Kind, Kind) {}
func (NopListener) OnPieceRested()            {}
func (NopListener) OnLinesCleared(int)        {}
func (NopListener) OnScoreChanged(int)        {}
func (NopListener) OnLevelChanged(int)        {}
func (NopListener) OnGameOver(int)            {}
func (NopListener) OnPausedChanged(bool)      {}

// Dispatch delivers an event to the matching Listener method.
func Dispatch(l Listener, e Event) {
	switch e.Kind {
	case EventPieceSpawned:
		l.OnPieceSpawned(e.Shape, e.Next)
	case EventPieceRested:
		l.OnPieceRested()
	case EventLinesCleared:
		l.OnLinesCleared(e.Count)
	case EventScoreChanged:
		l.OnScoreChanged(e.Score)
	case EventLevelChanged:
		l.OnLevelChanged(e.Level)
	case EventGameOver:
		l.OnGameOver(e.Score)
	case EventPausedChanged:
		l.OnPausedChanged(e.Paused)
	}
}
