// Package ply provides the move model: a closed set of ply kinds, each
// expanding to an ordered sequence of primitive board actions and each
// rendering to a canonical string used for equality and exchange.
package ply

import (
	"sort"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Kind categorizes plies by the actions they expand to.
type Kind int

const (
	Move Kind = iota
	Add
	Coronation
	Castle
	EnPassant
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Add:
		return "add"
	case Coronation:
		return "coronation"
	case Castle:
		return "castle"
	case EnPassant:
		return "en passant"
	}
	return "unknown"
}

// Ply is one side's move. It is immutable and does nothing until a board
// executes it. Add and Coronation embed the piece they place, so a ply is
// bound to the board it was generated against.
type Ply struct {
	kind  Kind
	from  coord.Coord
	to    coord.Coord
	piece *board.Piece
}

// NewMove moves the piece on from to to, capturing whatever was there.
func NewMove(from, to coord.Coord) Ply {
	return Ply{kind: Move, from: from, to: to}
}

// NewAdd drops p on at.
func NewAdd(p *board.Piece, at coord.Coord) Ply {
	return Ply{kind: Add, from: at, to: at, piece: p}
}

// NewCoronation moves the piece on from to to and replaces it with p.
func NewCoronation(from, to coord.Coord, p *board.Piece) Ply {
	return Ply{kind: Coronation, from: from, to: to, piece: p}
}

// NewCastle moves the king from from to to along with its linked rook.
func NewCastle(from, to coord.Coord) Ply {
	return Ply{kind: Castle, from: from, to: to}
}

// NewEnPassant moves the pawn on from diagonally to the empty cell to and
// captures the pawn beside it.
func NewEnPassant(from, to coord.Coord) Ply {
	return Ply{kind: EnPassant, from: from, to: to}
}

// Kind returns the ply kind.
func (p Ply) Kind() Kind { return p.kind }

// From returns the start cell (the drop cell for Add).
func (p Ply) From() coord.Coord { return p.from }

// To returns the destination cell.
func (p Ply) To() coord.Coord { return p.to }

// Piece returns the embedded piece for Add and Coronation, or nil.
func (p Ply) Piece() *board.Piece { return p.piece }

// Equal compares canonical forms.
func (p Ply) Equal(o Ply) bool { return p.String() == o.String() }

// RookTransition returns the linked rook's start and end cells for a
// castle on b. A king moving left takes the rook from column 0 to the
// cell right of its destination; moving right takes it from the last
// column to the cell left of its destination.
func (p Ply) RookTransition(b *board.Board) (from, to coord.Coord) {
	row := p.from.Row
	if p.to.Col < p.from.Col {
		return coord.New(0, row), coord.New(p.to.Col+1, row)
	}
	cols, _ := b.Extent()
	return coord.New(cols-1, row), coord.New(p.to.Col-1, row)
}

// CapturedCell returns the cell of the piece taken en passant.
func (p Ply) CapturedCell() coord.Coord {
	return coord.New(p.to.Col, p.from.Row)
}

// Mover returns the piece that makes the ply on b: the dropped piece for
// Add, otherwise the occupant of the start cell.
func (p Ply) Mover(b *board.Board) *board.Piece {
	if p.kind == Add {
		return p.piece
	}
	return b.PieceAt(p.from)
}

// Actions expands the ply against the current state of b. Removals of
// affected cells always come before additions.
func (p Ply) Actions(b *board.Board) ([]board.Action, error) {
	switch p.kind {
	case Move:
		mover := b.PieceAt(p.from)
		if mover == nil {
			return nil, p.emptyStart()
		}
		return []board.Action{
			board.RemoveAction(p.to),
			board.RemoveAction(p.from),
			board.AddAction(mover, p.to),
		}, nil

	case Add:
		if p.piece == nil {
			return nil, errors.NewParseError(errors.ErrInvalidPly, p.String(), "a piece to add")
		}
		return []board.Action{
			board.RemoveAction(p.to),
			board.AddAction(p.piece, p.to),
		}, nil

	case Coronation:
		if b.PieceAt(p.from) == nil {
			return nil, p.emptyStart()
		}
		return []board.Action{
			board.RemoveAction(p.to),
			board.RemoveAction(p.from),
			board.AddAction(p.piece, p.to),
		}, nil

	case Castle:
		king := b.PieceAt(p.from)
		if king == nil {
			return nil, p.emptyStart()
		}
		rookFrom, rookTo := p.RookTransition(b)
		rook := b.PieceAt(rookFrom)
		return []board.Action{
			board.RemoveAction(p.to),
			board.RemoveAction(rookTo),
			board.RemoveAction(p.from),
			board.RemoveAction(rookFrom),
			board.AddAction(king, p.to),
			board.AddAction(rook, rookTo),
		}, nil

	case EnPassant:
		pawn := b.PieceAt(p.from)
		if pawn == nil {
			return nil, p.emptyStart()
		}
		return []board.Action{
			board.RemoveAction(p.CapturedCell()),
			board.RemoveAction(p.to),
			board.RemoveAction(p.from),
			board.AddAction(pawn, p.to),
		}, nil
	}
	return nil, errors.NewParseError(errors.ErrInvalidPly, p.String(), "a known ply kind")
}

func (p Ply) emptyStart() error {
	return &errors.CellError{Err: errors.ErrInvalidPly, Cell: p.from.String(), Op: p.String()}
}

// Sort orders plies by canonical string.
func Sort(plies []Ply) {
	sort.Slice(plies, func(i, j int) bool { return plies[i].String() < plies[j].String() })
}

// Strings returns the sorted canonical strings of plies.
func Strings(plies []Ply) []string {
	out := make([]string, len(plies))
	for i, p := range plies {
		out[i] = p.String()
	}
	sort.Strings(out)
	return out
}

// Set is a collection of plies keyed by canonical string.
type Set map[string]Ply

// NewSet builds a set from plies.
func NewSet(plies []Ply) Set {
	s := make(Set, len(plies))
	for _, p := range plies {
		s[p.String()] = p
	}
	return s
}

// Contains reports whether a ply with the canonical form s is present.
func (s Set) Contains(canonical string) bool {
	_, ok := s[canonical]
	return ok
}
