package engine

import (
	"fmt"
	"strings"
)

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is a playfield coordinate.
// Row 0 is the floor and rows increase upward.
type Cell struct {
	Col int
	Row int
}

// C is a convenience constructor for Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Occupant records which piece instance owns a resting block.
// The zero value is an empty cell.
type Occupant struct {
	Piece PieceID
	Kind  Kind
}

// Empty reports whether no block owns the cell.
func (o Occupant) Empty() bool {
	return o.Piece == 0
}

// View is read-only access to the playfield.
type View interface {
	Field
	Width() int
	Height() int
	At(c Cell) Occupant
}

// Grid is the occupancy matrix of resting blocks.
// Cells are stored in row-major order: index = row*W + col.
type Grid struct {
	width    int
	height   int
	cells    []Occupant
	blocks   map[PieceID]int // resting blocks per piece
	consumed []PieceID
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Occupant, width*height),
		blocks: make(map[PieceID]int),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

func (g *Grid) inBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// IsInsideField reports whether a cell is a legal piece position.
// There is no upper bound so pieces can spawn above the visible rows.
func (g *Grid) IsInsideField(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0
}

// IsOccupied reports whether a resting block owns the cell.
// Cells above the visible rows are never occupied.
func (g *Grid) IsOccupied(c Cell) bool {
	if !g.inBounds(c) {
		return false
	}
	return !g.cells[g.index(c)].Empty()
}

// At returns the occupant of a cell, or an empty occupant out of bounds.
func (g *Grid) At(c Cell) Occupant {
	if !g.inBounds(c) {
		return Occupant{}
	}
	return g.cells[g.index(c)]
}

// Commit writes every block of the piece into the grid.
// It either places all blocks or none: a block above the visible rows yields
// ErrSpawnBlocked, a block outside the field or on an occupied cell yields
// ErrIllegalPlacement.
func (g *Grid) Commit(p *Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if c.Row >= g.height {
			return fmt.Errorf("%w: block at %v", ErrSpawnBlocked, c)
		}
	}
	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if !g.IsInsideField(c) || g.IsOccupied(c) {
			return fmt.Errorf("%w: block at %v", ErrIllegalPlacement, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate block at %v", ErrIllegalPlacement, c)
		}
		seen[c] = true
	}

	for _, c := range cells {
		g.cells[g.index(c)] = Occupant{Piece: p.ID, Kind: p.Shape.Kind}
	}
	g.blocks[p.ID] += len(cells)
	return nil
}

// ClearCompletedLines removes every complete row and collapses the rows above it.
// Returns the number of rows cleared.
func (g *Grid) ClearCompletedLines() int {
	lines := 0
	for row := 0; row < g.height; row++ {
		if !g.isLine(row) {
			continue
		}
		g.clearRow(row)
		g.dropRowsAbove(row)
		lines++
		// The row above has moved into this index; check it again.
		row--
	}
	return lines
}

func (g *Grid) isLine(row int) bool {
	for col := 0; col < g.width; col++ {
		if g.cells[row*g.width+col].Empty() {
			return false
		}
	}
	return true
}

func (g *Grid) clearRow(row int) {
	for col := 0; col < g.width; col++ {
		i := row*g.width + col
		id := g.cells[i].Piece
		g.cells[i] = Occupant{}
		g.blocks[id]--
		if g.blocks[id] <= 0 {
			delete(g.blocks, id)
			g.consumed = append(g.consumed, id)
		}
	}
}

// dropRowsAbove moves every row above the given one down by exactly one.
func (g *Grid) dropRowsAbove(row int) {
	for r := row + 1; r < g.height; r++ {
		src := r * g.width
		dst := (r - 1) * g.width
		copy(g.cells[dst:dst+g.width], g.cells[src:src+g.width])
	}
	top := (g.height - 1) * g.width
	clear(g.cells[top : top+g.width])
}

// TakeConsumed returns the pieces whose blocks were all cleared since the last call.
func (g *Grid) TakeConsumed() []PieceID {
	out := g.consumed
	g.consumed = nil
	return out
}

// LivePieces returns the number of pieces that still own at least one block.
func (g *Grid) LivePieces() int {
	return len(g.blocks)
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, o := range g.cells {
		if !o.Empty() {
			n++
		}
	}
	return n
}

// Reset clears all occupancy.
func (g *Grid) Reset() {
	clear(g.cells)
	clear(g.blocks)
	g.consumed = nil
}

// String renders the grid top row first, '#' for blocks and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for row := g.height - 1; row >= 0; row-- {
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col].Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
