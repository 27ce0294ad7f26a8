package engine

import "errors"

var (
	// ErrSpawnBlocked means a piece came to rest before fully entering the field.
	// It ends the current run.
	ErrSpawnBlocked = errors.New("engine: spawn blocked")

	// ErrIllegalPlacement means a commit was attempted on cells outside the
	// field or already owned by another block.
	ErrIllegalPlacement = errors.New("engine: illegal placement")
)
