package engine

import (
	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
)

// IsInCheck returns true if any king of the given colour is attacked.
// A side without a king is never in check.
func IsInCheck(b *board.Board, colour board.Colour) bool {
	for _, king := range Kings(b, colour) {
		at, _ := king.Position()
		if IsAttacked(b, at, colour.Opposite()) {
			return true
		}
	}
	return false
}

// Kings returns the kings of the given colour on b.
func Kings(b *board.Board, colour board.Colour) []*board.Piece {
	var kings []*board.Piece
	for _, p := range b.Pieces(colour) {
		if p.Kind() == board.King {
			kings = append(kings, p)
		}
	}
	return kings
}

// IsAttacked returns true if a piece of colour byColour attacks the cell.
func IsAttacked(b *board.Board, target coord.Coord, byColour board.Colour) bool {
	g := newGrid(b)
	for _, p := range b.Pieces(byColour) {
		if attacks(g, p, target) {
			return true
		}
	}
	return false
}

// attacks reports whether p threatens target, whatever occupies it.
func attacks(g grid, p *board.Piece, target coord.Coord) bool {
	from, _ := p.Position()
	dc, dr := target.Col-from.Col, target.Row-from.Row
	if dc == 0 && dr == 0 {
		return false
	}

	switch p.Kind() {
	case board.Pawn:
		return dr == board.ColourOffset(p.Colour()) && abs(dc) == 1
	case board.Knight:
		return (abs(dc) == 1 && abs(dr) == 2) || (abs(dc) == 2 && abs(dr) == 1)
	case board.King:
		return abs(dc) <= 1 && abs(dr) <= 1
	case board.Bishop:
		return abs(dc) == abs(dr) && isPathClear(g, from, target)
	case board.Rook:
		return (dc == 0 || dr == 0) && isPathClear(g, from, target)
	case board.Queen:
		return (abs(dc) == abs(dr) || dc == 0 || dr == 0) && isPathClear(g, from, target)
	}
	return false
}

// isPathClear checks that every cell strictly between from and to is
// usable and empty. from and to must share a line or diagonal.
func isPathClear(g grid, from, to coord.Coord) bool {
	colDir := sign(to.Col - from.Col)
	rowDir := sign(to.Row - from.Row)

	c := from.Add(colDir, rowDir)
	for c != to {
		if !g.b.IsUsable(c) || g.b.PieceAt(c) != nil {
			return false
		}
		c = c.Add(colDir, rowDir)
	}
	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
