package engine

import "testing"

// place writes resting blocks straight into the grid, bypassing validation.
func place(t *testing.T, g *Grid, id PieceID, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		if !g.inBounds(c) {
			t.Fatalf("place: %v out of bounds", c)
		}
		g.cells[g.index(c)] = Occupant{Piece: id, Kind: KindI}
		g.blocks[id]++
	}
}

// fillRow occupies every column of a row except the listed ones.
func fillRow(t *testing.T, g *Grid, id PieceID, row int, except ...int) {
	t.Helper()
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < g.Width(); col++ {
		if !skip[col] {
			place(t, g, id, C(col, row))
		}
	}
}

// recorder is a Listener that keeps every event it receives.
type recorder struct {
	events []Event
}

func (r *recorder) OnPieceSpawned(shape, next Kind) {
	r.events = append(r.events, Event{Kind: EventPieceSpawned, Shape: shape, Next: next})
}
func (r *recorder) OnPieceRested() { r.events = append(r.events, Event{Kind: EventPieceRested}) }
func (r *recorder) OnLinesCleared(n int) {
	r.events = append(r.events, Event{Kind: EventLinesCleared, Count: n})
}
func (r *recorder) OnScoreChanged(total int) {
	r.events = append(r.events, Event{Kind: EventScoreChanged, Score: total})
}
func (r *recorder) OnLevelChanged(level int) {
	r.events = append(r.events, Event{Kind: EventLevelChanged, Level: level})
}
func (r *recorder) OnGameOver(score int) {
	r.events = append(r.events, Event{Kind: EventGameOver, Score: score})
}
func (r *recorder) OnPausedChanged(paused bool) {
	r.events = append(r.events, Event{Kind: EventPausedChanged, Paused: paused})
}

func kindsOf(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
