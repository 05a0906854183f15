package rules

import (
	"fmt"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/engine"
	"github.com/lgbarn/boardgame-rules/internal/errors"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

const (
	StandardACName = "StandardAC"
	CastlingACName = "CastlingAC"
)

// Antichess is played on an 8x8 board with the chess army. A side that
// can capture must capture, no ply may leave the mover's king attacked,
// and a side that loses all its pieces wins.
type Antichess struct {
	base
	castling bool
}

// NewStandardAC returns the antichess rule set without castling.
func NewStandardAC(opts ...Option) (*Antichess, error) {
	return newAntichess(StandardACName, false, opts)
}

// NewCastlingAC returns the antichess rule set with castling.
func NewCastlingAC(opts ...Option) (*Antichess, error) {
	return newAntichess(CastlingACName, true, opts)
}

func newAntichess(name string, castling bool, opts []Option) (*Antichess, error) {
	b, err := newBase(name, chessPieces(), 8, 8, opts)
	if err != nil {
		return nil, err
	}
	return &Antichess{base: b, castling: castling}, nil
}

// chessPieces returns the factory for the standard 8x8 army.
func chessPieces() *pieceFactory {
	homes := homeTable{board.White: {}, board.Black: {}}
	back := []board.Kind{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
	for _, colour := range colours {
		backRow, pawnRow := 0, 1
		if colour == board.Black {
			backRow, pawnRow = 7, 6
		}
		for col, k := range back {
			homes[colour][k] = append(homes[colour][k], coord.New(col, backRow))
			homes[colour][board.Pawn] = append(homes[colour][board.Pawn], coord.New(col, pawnRow))
		}
	}
	return &pieceFactory{
		kinds: []board.Kind{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King},
		homes: homes,
	}
}

// ContinueGame applies, in order: checkmate, stalemate (a draw) and piece
// depletion (the depleted side wins; both depleted is a draw). The first
// two only apply while the mover still has pieces. Offered plies are in
// canonical order.
func (a *Antichess) ContinueGame(b *board.Board, history []*Turn, _ []Message) (*GameInfo, *Termination, error) {
	mover := NextMover(history)
	moved, err := transitions(history)
	if err != nil {
		return nil, nil, err
	}

	if b.Count(mover) > 0 {
		legal, err := a.legalPlies(b, mover, moved)
		if err != nil {
			return nil, nil, err
		}
		if len(legal) == 0 {
			if engine.IsInCheck(b, mover) {
				return nil, a.terminate(&Termination{Kind: Checkmate, Result: Wins(mover.Opposite())}, mover), nil
			}
			return nil, a.terminate(&Termination{Kind: Stalemate, Result: NoWinner}, mover), nil
		}
		if t := depletion(b); t != nil {
			return nil, a.terminate(t, mover), nil
		}
		ply.Sort(legal)
		return &GameInfo{Plies: legal, Next: mover}, nil, nil
	}
	return nil, a.terminate(depletion(b), mover), nil
}

func depletion(b *board.Board) *Termination {
	white, black := b.Count(board.White), b.Count(board.Black)
	switch {
	case white == 0 && black == 0:
		return &Termination{Kind: PieceDepletion, Result: NoWinner}
	case white == 0:
		return &Termination{Kind: PieceDepletion, Result: WhiteWins}
	case black == 0:
		return &Termination{Kind: PieceDepletion, Result: BlackWins}
	}
	return nil
}

// LegalPlies returns the king-safe plies of the next mover, restricted
// to captures when any capture is available.
func (a *Antichess) LegalPlies(b *board.Board, history []*Turn) ([]ply.Ply, error) {
	moved, err := transitions(history)
	if err != nil {
		return nil, err
	}
	return a.legalPlies(b, NextMover(history), moved)
}

func (a *Antichess) legalPlies(b *board.Board, mover board.Colour, moved []move) ([]ply.Ply, error) {
	var candidates []ply.Ply
	for _, p := range b.Pieces(mover) {
		candidates = append(candidates, engine.Plies(p)...)
	}
	candidates = append(candidates, enPassantPlies(b, mover, moved)...)
	if a.castling {
		candidates = append(candidates, a.castlePlies(b, mover, moved)...)
	}

	var safe, captures []ply.Ply
	for _, c := range candidates {
		after, err := a.ExecuteFakePly(b, c)
		if err != nil {
			return nil, err
		}
		if engine.IsInCheck(after, mover) {
			continue
		}
		safe = append(safe, c)
		if IsCapture(b, c) {
			captures = append(captures, c)
		}
	}

	if len(captures) > 0 {
		return captures, nil
	}
	return safe, nil
}

// IsCapture reports whether p lands on a cell held by an opposing piece.
func IsCapture(b *board.Board, p ply.Ply) bool {
	target := b.PieceAt(p.To())
	if target == nil {
		return false
	}
	mover := p.Mover(b)
	return mover != nil && mover.Colour() != target.Colour()
}

// move is a history entry reduced to its cells.
type move struct {
	side     board.Colour
	from, to coord.Coord
	kind     ply.Kind
}

// transitions extracts the cell transitions of history. Drops and absent
// entries are skipped; strings of no known form are rejected.
func transitions(history []*Turn) ([]move, error) {
	var moved []move
	for i, t := range history {
		if t == nil {
			continue
		}
		from, to, kind, ok := ply.Transition(t.Ply)
		if !ok {
			if ply.IsAdd(t.Ply) {
				continue
			}
			return nil, fmt.Errorf("%w: entry %d: %q", errors.ErrInvalidHistory, i, t.Ply)
		}
		moved = append(moved, move{side: t.Side, from: from, to: to, kind: kind})
	}
	return moved, nil
}

// enPassantPlies returns the captures of a pawn that double-stepped on
// the previous turn by the mover's pawns beside it.
func enPassantPlies(b *board.Board, mover board.Colour, moved []move) []ply.Ply {
	if len(moved) == 0 {
		return nil
	}
	last := moved[len(moved)-1]
	opponent := mover.Opposite()
	if last.kind != ply.Move || last.side != opponent || last.from.Col != last.to.Col {
		return nil
	}
	if abs(last.to.Row-last.from.Row) != 2 || last.from.Row != engine.PawnHomeRow(b, opponent) {
		return nil
	}
	pushed := b.PieceAt(last.to)
	if pushed == nil || pushed.Kind() != board.Pawn || pushed.Colour() != opponent {
		return nil
	}

	passed := coord.New(last.to.Col, (last.from.Row+last.to.Row)/2)
	if !b.IsEmpty(passed) {
		return nil
	}
	var plies []ply.Ply
	for dc := -1; dc <= 1; dc += 2 {
		from := last.to.Add(dc, 0)
		if !from.Valid() {
			continue
		}
		p := b.PieceAt(from)
		if p != nil && p.Kind() == board.Pawn && p.Colour() == mover {
			plies = append(plies, ply.NewEnPassant(from, passed))
		}
	}
	return plies
}

// castlePlies returns the castles available to mover: king and rook on
// their initial cells and never moved, every cell between them empty, and
// the king neither in check nor crossing an attacked cell. Safety of the
// destination is left to the king-safety filter.
func (a *Antichess) castlePlies(b *board.Board, mover board.Colour, moved []move) []ply.Ply {
	homes := a.pieces.homes[mover]
	if len(homes[board.King]) == 0 {
		return nil
	}
	kingHome := homes[board.King][0]
	king := b.PieceAt(kingHome)
	if king == nil || king.Kind() != board.King || king.Colour() != mover {
		return nil
	}
	if touched(moved, kingHome) || engine.IsInCheck(b, mover) {
		return nil
	}

	var plies []ply.Ply
	for _, rookHome := range homes[board.Rook] {
		if rookHome.Row != kingHome.Row || touched(moved, rookHome) {
			continue
		}
		rook := b.PieceAt(rookHome)
		if rook == nil || rook.Kind() != board.Rook || rook.Colour() != mover {
			continue
		}
		dir := sign(rookHome.Col - kingHome.Col)
		if !pathEmpty(b, kingHome, rookHome, dir) {
			continue
		}
		crossing := kingHome.Add(dir, 0)
		to := kingHome.Add(2*dir, 0)
		if !to.Valid() || !b.IsEmpty(to) || engine.IsAttacked(b, crossing, mover.Opposite()) {
			continue
		}
		plies = append(plies, ply.NewCastle(kingHome, to))
	}
	return plies
}

func touched(moved []move, at coord.Coord) bool {
	for _, m := range moved {
		if m.from == at || m.to == at {
			return true
		}
	}
	return false
}

func pathEmpty(b *board.Board, from, to coord.Coord, dir int) bool {
	for c := from.Add(dir, 0); c != to; c = c.Add(dir, 0) {
		if !b.IsEmpty(c) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
