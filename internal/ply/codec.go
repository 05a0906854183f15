package ply

import (
	"regexp"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Canonical forms:
//
//	e2-e4          Move
//	e7-e8=queen    Coronation
//	e5-d6ep        EnPassant
//	e1-g1castle    Castle (king transition)
//	+white:chip@d1 Add
const (
	enPassantSuffix = "ep"
	castleSuffix    = "castle"
)

var (
	transitionPattern = regexp.MustCompile(`^([a-z]+[1-9][0-9]*)-([a-z]+[1-9][0-9]*)(?:=([a-z]+)|(ep)|(castle))?$`)
	addPattern        = regexp.MustCompile(`^\+(white|black):([a-z]+)@([a-z]+[1-9][0-9]*)$`)
)

// String returns the canonical form.
func (p Ply) String() string {
	switch p.kind {
	case Add:
		if p.piece == nil {
			return "+?@" + p.to.String()
		}
		return "+" + p.piece.Colour().String() + ":" + p.piece.Kind().String() + "@" + p.to.String()
	case Coronation:
		name := "?"
		if p.piece != nil {
			name = p.piece.Kind().String()
		}
		return p.transition() + "=" + name
	case Castle:
		return p.transition() + castleSuffix
	case EnPassant:
		return p.transition() + enPassantSuffix
	}
	return p.transition()
}

func (p Ply) transition() string {
	return p.from.String() + "-" + p.to.String()
}

// PieceMaker creates a detached piece of the named type on b. Rule sets
// pass their piece factory so that only supported types parse.
type PieceMaker func(name string, b *board.Board, colour board.Colour) (*board.Piece, error)

// Parse reconstitutes the ply with canonical form s against b. Pieces
// embedded by Add and Coronation are created on b through newPiece.
// Legality is not checked.
func Parse(s string, b *board.Board, newPiece PieceMaker) (Ply, error) {
	if m := addPattern.FindStringSubmatch(s); m != nil {
		colour, _ := board.ParseColour(m[1])
		at, err := coord.Decode(m[3])
		if err != nil {
			return Ply{}, errors.NewParseError(err, s, "a drop cell")
		}
		p, err := newPiece(m[2], b, colour)
		if err != nil {
			return Ply{}, errors.NewParseError(err, s, "a supported piece type")
		}
		return NewAdd(p, at), nil
	}

	m := transitionPattern.FindStringSubmatch(s)
	if m == nil {
		return Ply{}, errors.NewParseError(errors.ErrInvalidPly, s, "a canonical ply")
	}
	from, err := coord.Decode(m[1])
	if err != nil {
		return Ply{}, errors.NewParseError(err, s, "a start cell")
	}
	to, err := coord.Decode(m[2])
	if err != nil {
		return Ply{}, errors.NewParseError(err, s, "a destination cell")
	}

	switch {
	case m[3] != "":
		mover := b.PieceAt(from)
		if mover == nil {
			return Ply{}, errors.NewParseError(errors.ErrInvalidPly, s, "a piece on the start cell")
		}
		p, err := newPiece(m[3], b, mover.Colour())
		if err != nil {
			return Ply{}, errors.NewParseError(err, s, "a supported coronation type")
		}
		return NewCoronation(from, to, p), nil
	case m[4] != "":
		return NewEnPassant(from, to), nil
	case m[5] != "":
		return NewCastle(from, to), nil
	}
	return NewMove(from, to), nil
}

// Transition extracts the start and destination cells of a canonical
// transition ply without a board. Add plies report ok=false.
func Transition(s string) (from, to coord.Coord, kind Kind, ok bool) {
	m := transitionPattern.FindStringSubmatch(s)
	if m == nil {
		return coord.Coord{}, coord.Coord{}, Move, false
	}
	var err error
	if from, err = coord.Decode(m[1]); err != nil {
		return coord.Coord{}, coord.Coord{}, Move, false
	}
	if to, err = coord.Decode(m[2]); err != nil {
		return coord.Coord{}, coord.Coord{}, Move, false
	}
	switch {
	case m[3] != "":
		kind = Coronation
	case m[4] != "":
		kind = EnPassant
	case m[5] != "":
		kind = Castle
	default:
		kind = Move
	}
	return from, to, kind, true
}

// IsAdd reports whether s is the canonical form of a drop.
func IsAdd(s string) bool {
	return addPattern.MatchString(s)
}
