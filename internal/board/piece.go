package board

import "github.com/lgbarn/boardgame-rules/internal/coord"

// Piece is a single game piece. It refers back to the board that created
// it but is owned by nobody; its cell is maintained only by Board.AddPiece
// and Board.RemovePiece.
type Piece struct {
	kind   Kind
	colour Colour
	board  *Board
	cell   *Cell
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind { return p.kind }

// Colour returns the side the piece belongs to.
func (p *Piece) Colour() Colour { return p.colour }

// IsWhite reports whether the piece belongs to White.
func (p *Piece) IsWhite() bool { return p.colour == White }

// Board returns the board this piece belongs to.
func (p *Piece) Board() *Board { return p.board }

// Attached reports whether the piece currently occupies a cell.
func (p *Piece) Attached() bool { return p.cell != nil }

// Position returns the coordinate of the piece's cell.
func (p *Piece) Position() (coord.Coord, bool) {
	if p.cell == nil {
		return coord.Coord{}, false
	}
	return p.cell.at, true
}

// String returns e.g. "white pawn".
func (p *Piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}

// Cell is one usable square of a board.
type Cell struct {
	at    coord.Coord
	piece *Piece
}

// Coord returns the cell's coordinate.
func (c *Cell) Coord() coord.Coord { return c.at }

// Piece returns the occupant, or nil.
func (c *Cell) Piece() *Piece { return c.piece }

// IsEmpty reports whether the cell has no occupant.
func (c *Cell) IsEmpty() bool { return c.piece == nil }

// Placement is a value snapshot of one occupied cell.
type Placement struct {
	At     coord.Coord
	Kind   Kind
	Colour Colour
}
