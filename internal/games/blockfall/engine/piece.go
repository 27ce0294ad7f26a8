package engine

// PieceID identifies a piece instance within a session. Zero means no piece.
type PieceID uint64

// Piece is the player-controlled piece.
// Pos is the origin cell; block cells are Pos plus the offsets of the current rotation.
type Piece struct {
	ID       PieceID
	Shape    Shape
	Pos      Cell
	Rotation int
}

// SpawnCell returns the origin cell for new pieces on a field of the given size.
// Shapes extend one row above the origin, so most pieces start partly above the field.
func SpawnCell(width, height int) Cell {
	return C(width/2-1, height-1)
}

// NewPiece creates a piece of the given shape at pos in its spawn orientation.
func NewPiece(id PieceID, shape Shape, pos Cell) *Piece {
	return &Piece{ID: id, Shape: shape, Pos: pos}
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() Kind {
	return p.Shape.Kind
}

// Cells returns the absolute block cells.
func (p *Piece) Cells() []Cell {
	return p.CellsAt(p.Pos, p.Rotation)
}

// CellsAt returns the block cells the piece would occupy at pos and rotation.
func (p *Piece) CellsAt(pos Cell, rotation int) []Cell {
	offsets := p.Shape.offsets(rotation)
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = pos.Add(o.X, o.Y)
	}
	return cells
}

// Move shifts the piece one column left (dir < 0) or right (dir > 0).
// A zero direction is a no-op. Returns whether the piece moved.
func (p *Piece) Move(f Field, dir int) bool {
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return false
	}
	next := p.Pos.Add(dir, 0)
	if !IsValidMove(f, p.CellsAt(next, p.Rotation)) {
		return false
	}
	p.Pos = next
	return true
}

// Rotate turns the piece clockwise to its next rotation state.
// Shapes with a single state never rotate. There are no wall kicks: a blocked
// rotation leaves the piece unchanged. Returns whether the piece rotated.
func (p *Piece) Rotate(f Field) bool {
	n := p.Shape.RotationCount()
	if n <= 1 {
		return false
	}
	next := (p.Rotation + 1) % n
	if !IsValidMove(f, p.CellsAt(p.Pos, next)) {
		return false
	}
	p.Rotation = next
	return true
}

// Drop moves the piece down one row. When the row below is blocked the piece
// stays put and Drop reports that it has come to rest.
func (p *Piece) Drop(f Field) (rested bool) {
	next := p.Pos.Add(0, -1)
	if !IsValidMove(f, p.CellsAt(next, p.Rotation)) {
		return true
	}
	p.Pos = next
	return false
}

// HardDrop drops the piece until it rests and returns the number of rows fallen.
// The floor bounds the loop: every iteration lowers the piece by one row.
func (p *Piece) HardDrop(f Field) int {
	rows := 0
	for !p.Drop(f) {
		rows++
	}
	return rows
}
