package engine

import (
	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
)

// AlignedThrough returns the length of the longest run of same-colour
// pieces passing through at, horizontally, vertically or diagonally.
// An empty cell has no run.
func AlignedThrough(b *board.Board, at coord.Coord) int {
	p := b.PieceAt(at)
	if p == nil {
		return 0
	}
	best := 0
	for _, dir := range alignmentDirs {
		run := 1 + countRun(b, at, dir[0], dir[1], p.Colour()) + countRun(b, at, -dir[0], -dir[1], p.Colour())
		if run > best {
			best = run
		}
	}
	return best
}

func countRun(b *board.Board, from coord.Coord, dc, dr int, colour board.Colour) int {
	n := 0
	for c := from.Add(dc, dr); ; c = c.Add(dc, dr) {
		p := b.PieceAt(c)
		if p == nil || p.Colour() != colour {
			return n
		}
		n++
	}
}

// FindAlignment scans every occupied cell for a run of at least n and
// returns the first such piece in row-major order.
func FindAlignment(b *board.Board, n int) (*board.Piece, bool) {
	for _, pl := range b.Placements() {
		if AlignedThrough(b, pl.At) >= n {
			return b.PieceAt(pl.At), true
		}
	}
	return nil, false
}
