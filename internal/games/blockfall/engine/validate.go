package engine

// Field is the read access the move validator needs.
type Field interface {
	IsInsideField(c Cell) bool
	IsOccupied(c Cell) bool
}

// IsValidMove reports whether every candidate cell is inside the field and free.
// Moves, drops and rotations all go through this predicate before committing.
func IsValidMove(f Field, cells []Cell) bool {
	for _, c := range cells {
		if !f.IsInsideField(c) || f.IsOccupied(c) {
			return false
		}
	}
	return true
}
