package board

import (
	"sort"

	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Board is a grid of cells addressed by (column, row). A dimension of 0 is
// unbounded. Cells are created on first access, so memory grows with the
// cells ever touched rather than with the board area.
type Board struct {
	cols, rows int
	unusable   map[coord.Coord]struct{}
	cells      map[coord.Coord]*Cell
	attached   map[*Piece]struct{}
}

// New creates a blank board. Coordinates listed in unusable are
// inaccessible even when inside the bounds.
func New(cols, rows int, unusable ...coord.Coord) *Board {
	b := &Board{
		cols:     cols,
		rows:     rows,
		unusable: make(map[coord.Coord]struct{}, len(unusable)),
		cells:    make(map[coord.Coord]*Cell),
		attached: make(map[*Piece]struct{}),
	}
	for _, c := range unusable {
		b.unusable[c] = struct{}{}
	}
	return b
}

// Cols returns the column bound (0 when unbounded).
func (b *Board) Cols() int { return b.cols }

// Rows returns the row bound (0 when unbounded).
func (b *Board) Rows() int { return b.rows }

// Bounded reports whether both dimensions are bounded.
func (b *Board) Bounded() bool { return b.cols > 0 && b.rows > 0 }

// IsUsable reports whether c addresses a cell of this board.
func (b *Board) IsUsable(c coord.Coord) bool {
	if !c.Valid() {
		return false
	}
	if b.cols > 0 && c.Col >= b.cols {
		return false
	}
	if b.rows > 0 && c.Row >= b.rows {
		return false
	}
	_, off := b.unusable[c]
	return !off
}

// Cell returns the cell at c, creating it on first access.
// The second result is false when c is inaccessible.
func (b *Board) Cell(c coord.Coord) (*Cell, bool) {
	if cell, ok := b.cells[c]; ok {
		return cell, true
	}
	if !b.IsUsable(c) {
		return nil, false
	}
	cell := &Cell{at: c}
	b.cells[c] = cell
	return cell, true
}

// PieceAt returns the occupant of c, or nil.
func (b *Board) PieceAt(c coord.Coord) *Piece {
	if cell, ok := b.cells[c]; ok {
		return cell.piece
	}
	return nil
}

// IsEmpty reports whether c is usable and unoccupied.
func (b *Board) IsEmpty(c coord.Coord) bool {
	return b.IsUsable(c) && b.PieceAt(c) == nil
}

// NewPiece creates a detached piece bound to this board.
func (b *Board) NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour, board: b}
}

// AddPiece places p on the cell at c.
func (b *Board) AddPiece(p *Piece, c coord.Coord) error {
	if p.board != nil && p.board != b {
		return &errors.CellError{Err: errors.ErrForeignPiece, Cell: c.String(), Piece: p.String(), Op: "add"}
	}
	if p.cell != nil {
		return &errors.CellError{Err: errors.ErrAttached, Cell: c.String(), Piece: p.String(), Op: "add"}
	}
	cell, ok := b.Cell(c)
	if !ok || cell.piece != nil {
		return &errors.CellError{Err: errors.ErrPositioning, Cell: c.String(), Piece: p.String(), Op: "add"}
	}

	p.board = b
	p.cell = cell
	cell.piece = p
	b.attached[p] = struct{}{}
	return nil
}

// RemovePiece detaches p from this board.
func (b *Board) RemovePiece(p *Piece) error {
	if _, ok := b.attached[p]; !ok {
		return &errors.CellError{Err: errors.ErrNotAttached, Piece: p.String(), Op: "remove"}
	}
	p.cell.piece = nil
	p.cell = nil
	delete(b.attached, p)
	return nil
}

// RemoveAt detaches whatever occupies c and returns it (nil if empty).
func (b *Board) RemoveAt(c coord.Coord) *Piece {
	p := b.PieceAt(c)
	if p != nil {
		// p is known to be attached here.
		_ = b.RemovePiece(p)
	}
	return p
}

// Contains reports whether p is attached to this board.
func (b *Board) Contains(p *Piece) bool {
	_, ok := b.attached[p]
	return ok
}

// Position returns the coordinate of p on this board.
func (b *Board) Position(p *Piece) (coord.Coord, bool) {
	if !b.Contains(p) {
		return coord.Coord{}, false
	}
	return p.Position()
}

// Pieces returns a snapshot of the attached pieces of the given colour in
// row-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for p := range b.attached {
		if p.colour == colour {
			pieces = append(pieces, p)
		}
	}
	sort.Slice(pieces, func(i, j int) bool {
		return coord.Less(pieces[i].cell.at, pieces[j].cell.at)
	})
	return pieces
}

// Count returns the number of attached pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for p := range b.attached {
		if p.colour == colour {
			n++
		}
	}
	return n
}

// Placements returns every occupied cell in row-major order.
func (b *Board) Placements() []Placement {
	placements := make([]Placement, 0, len(b.attached))
	for p := range b.attached {
		placements = append(placements, Placement{At: p.cell.at, Kind: p.kind, Colour: p.colour})
	}
	sort.Slice(placements, func(i, j int) bool {
		return coord.Less(placements[i].At, placements[j].At)
	})
	return placements
}

// Extent returns the number of columns and rows worth scanning. Bounded
// dimensions return their bound; unbounded ones extend one past the
// furthest occupied cell.
func (b *Board) Extent() (cols, rows int) {
	cols, rows = b.cols, b.rows
	if cols > 0 && rows > 0 {
		return cols, rows
	}
	maxCol, maxRow := 0, 0
	for p := range b.attached {
		if p.cell.at.Col+2 > maxCol {
			maxCol = p.cell.at.Col + 2
		}
		if p.cell.at.Row+2 > maxRow {
			maxRow = p.cell.at.Row + 2
		}
	}
	if cols <= 0 {
		cols = maxCol
	}
	if rows <= 0 {
		rows = maxRow
	}
	return cols, rows
}

// Clone returns a deep copy. Cells and pieces are new objects; only cells
// that were materialised here are materialised in the copy.
func (b *Board) Clone() *Board {
	nb := &Board{
		cols:     b.cols,
		rows:     b.rows,
		unusable: make(map[coord.Coord]struct{}, len(b.unusable)),
		cells:    make(map[coord.Coord]*Cell, len(b.cells)),
		attached: make(map[*Piece]struct{}, len(b.attached)),
	}
	for c := range b.unusable {
		nb.unusable[c] = struct{}{}
	}
	for at, cell := range b.cells {
		nc := &Cell{at: at}
		if cell.piece != nil {
			np := &Piece{kind: cell.piece.kind, colour: cell.piece.colour, board: nb, cell: nc}
			nc.piece = np
			nb.attached[np] = struct{}{}
		}
		nb.cells[at] = nc
	}
	return nb
}
