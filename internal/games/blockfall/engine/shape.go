// Package engine implements the Blockfall playfield simulation: the shape catalog,
// the occupancy grid, piece movement rules, drop timing, scoring and the session
// state machine that ties them together.
// This package is UI-agnostic and deterministic for a given seed and input sequence.
package engine

import (
	"fmt"
	"math"
)

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "-"
	}
}

// Offset is a block position relative to a piece's origin cell.
type Offset struct {
	X, Y int
}

// Pivot is the rotation point relative to the origin cell.
// Half-integer pivots let even-width shapes rotate in place.
type Pivot struct {
	X, Y float64
}

// Shape is an immutable catalog entry.
type Shape struct {
	Kind      Kind
	Pivot     Pivot
	rotations [][]Offset
}

// RotationCount returns the number of distinct rotation states.
func (s Shape) RotationCount() int {
	return len(s.rotations)
}

// Offsets returns a copy of the block offsets for the given rotation state.
// The rotation index wraps around the state count.
func (s Shape) Offsets(rotation int) []Offset {
	if len(s.rotations) == 0 {
		return nil
	}
	state := s.rotations[wrap(rotation, len(s.rotations))]
	out := make([]Offset, len(state))
	copy(out, state)
	return out
}

// offsets returns the stored slice without copying. Callers must not modify it.
func (s Shape) offsets(rotation int) []Offset {
	return s.rotations[wrap(rotation, len(s.rotations))]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// shapeDef is the spawn orientation of a shape.
// Row 0 is the origin row; row 1 sits one row above it.
type shapeDef struct {
	kind      Kind
	pivot     Pivot
	base      []Offset
	rotatable bool
}

var shapeDefs = []shapeDef{
	{KindI, Pivot{0.5, -0.5}, []Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, true},
	{KindO, Pivot{0.5, 0.5}, []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, false},
	{KindT, Pivot{0, 0}, []Offset{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}, true},
	{KindS, Pivot{0, 0}, []Offset{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}, true},
	{KindZ, Pivot{0, 0}, []Offset{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, true},
	{KindJ, Pivot{0, 0}, []Offset{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, true},
	{KindL, Pivot{0, 0}, []Offset{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, true},
}

var (
	catalog = map[Kind]Shape{}
	kinds   []Kind
)

func init() {
	for _, def := range shapeDefs {
		catalog[def.kind] = buildShape(def)
		kinds = append(kinds, def.kind)
	}
}

// buildShape derives every rotation state from the spawn orientation.
// Rotation is clockwise about the pivot; rounding to whole cells happens here
// and only here, so repeated rotations never drift.
func buildShape(def shapeDef) Shape {
	states := [][]Offset{def.base}
	if def.rotatable {
		cur := def.base
		for range 3 {
			cur = rotateCW(cur, def.pivot)
			if sameBlocks(cur, def.base) {
				break
			}
			states = append(states, cur)
		}
	}
	return Shape{Kind: def.kind, Pivot: def.pivot, rotations: states}
}

func rotateCW(in []Offset, p Pivot) []Offset {
	out := make([]Offset, len(in))
	for i, o := range in {
		dx := float64(o.X) - p.X
		dy := float64(o.Y) - p.Y
		out[i] = Offset{
			X: int(math.Round(p.X + dy)),
			Y: int(math.Round(p.Y - dx)),
		}
	}
	return out
}

func sameBlocks(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Offset]int, len(a))
	for _, o := range a {
		seen[o]++
	}
	for _, o := range b {
		if seen[o] == 0 {
			return false
		}
		seen[o]--
	}
	return true
}

// Lookup returns the catalog entry for a kind.
func Lookup(k Kind) (Shape, bool) {
	s, ok := catalog[k]
	return s, ok
}

// MustShape returns the catalog entry for a kind and panics for unknown kinds.
func MustShape(k Kind) Shape {
	s, ok := catalog[k]
	if !ok {
		panic(fmt.Sprintf("engine: unknown piece kind %d", k))
	}
	return s
}

// Kinds returns all catalog kinds in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}
