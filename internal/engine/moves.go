// Package engine provides piece movement shapes and position queries
// (attacks, check, alignment) shared by the rule sets.
package engine

import (
	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	royalDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	alignmentDirs  = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	coronationKind = []board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight}
)

// CoronationKinds returns the kinds a pawn may become on the far row.
func CoronationKinds() []board.Kind {
	return append([]board.Kind(nil), coronationKind...)
}

// Plies enumerates every pseudo-legal ply of p: the moves matching its
// movement shape, bounded by the board and blocked by its own side, with
// no regard for the safety of its king.
//
// A detached chip yields one drop per column; other detached pieces have
// no plies.
func Plies(p *board.Piece) []ply.Ply {
	b := p.Board()
	if b == nil {
		return nil
	}
	if p.Kind() == board.Chip {
		if p.Attached() {
			return nil
		}
		return dropPlies(b, p.Colour())
	}

	from, ok := p.Position()
	if !ok {
		return nil
	}
	g := newGrid(b)

	switch p.Kind() {
	case board.Pawn:
		return pawnPlies(g, p, from)
	case board.Knight:
		return stepPlies(g, p, from, knightOffsets)
	case board.King:
		return stepPlies(g, p, from, kingOffsets)
	case board.Bishop:
		return slidePlies(g, p, from, diagonalDirs)
	case board.Rook:
		return slidePlies(g, p, from, straightDirs)
	case board.Queen:
		return slidePlies(g, p, from, royalDirs)
	}
	return nil
}

// grid caches the scan extent so unbounded boards terminate.
type grid struct {
	b          *board.Board
	cols, rows int
}

func newGrid(b *board.Board) grid {
	cols, rows := b.Extent()
	return grid{b: b, cols: cols, rows: rows}
}

func (g grid) inReach(c coord.Coord) bool {
	return c.Col < g.cols && c.Row < g.rows && g.b.IsUsable(c)
}

// enterable reports whether a piece of colour may land on c.
func (g grid) enterable(c coord.Coord, colour board.Colour) bool {
	if !g.inReach(c) {
		return false
	}
	occupant := g.b.PieceAt(c)
	return occupant == nil || occupant.Colour() != colour
}

func stepPlies(g grid, p *board.Piece, from coord.Coord, offsets [][2]int) []ply.Ply {
	var plies []ply.Ply
	for _, off := range offsets {
		to := from.Add(off[0], off[1])
		if g.enterable(to, p.Colour()) {
			plies = append(plies, ply.NewMove(from, to))
		}
	}
	return plies
}

func slidePlies(g grid, p *board.Piece, from coord.Coord, dirs [][2]int) []ply.Ply {
	var plies []ply.Ply
	for _, dir := range dirs {
		to := from.Add(dir[0], dir[1])
		for g.inReach(to) {
			occupant := g.b.PieceAt(to)
			if occupant != nil {
				if occupant.Colour() != p.Colour() {
					plies = append(plies, ply.NewMove(from, to))
				}
				break // Blocked
			}
			plies = append(plies, ply.NewMove(from, to))
			to = to.Add(dir[0], dir[1])
		}
	}
	return plies
}

// PawnHomeRow returns the row from which a pawn of colour may double-step.
func PawnHomeRow(b *board.Board, colour board.Colour) int {
	if colour == board.White {
		return 1
	}
	_, rows := b.Extent()
	return rows - 2
}

// PawnFarRow returns the row on which a pawn of colour is crowned.
func PawnFarRow(b *board.Board, colour board.Colour) int {
	if colour == board.White {
		_, rows := b.Extent()
		return rows - 1
	}
	return 0
}

func pawnPlies(g grid, p *board.Piece, from coord.Coord) []ply.Ply {
	var plies []ply.Ply
	colour := p.Colour()
	dir := board.ColourOffset(colour)
	farRow := PawnFarRow(g.b, colour)

	advance := func(to coord.Coord) {
		if to.Row != farRow {
			plies = append(plies, ply.NewMove(from, to))
			return
		}
		for _, kind := range coronationKind {
			plies = append(plies, ply.NewCoronation(from, to, g.b.NewPiece(kind, colour)))
		}
	}

	// Forward move
	one := from.Add(0, dir)
	if g.inReach(one) && g.b.PieceAt(one) == nil {
		advance(one)
		// Double push from the home row
		two := from.Add(0, 2*dir)
		if from.Row == PawnHomeRow(g.b, colour) && g.inReach(two) && g.b.PieceAt(two) == nil {
			advance(two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Add(dc, dir)
		if !g.inReach(to) {
			continue
		}
		target := g.b.PieceAt(to)
		if target != nil && target.Colour() != colour {
			advance(to)
		}
	}
	return plies
}

// DropCell returns the lowest usable empty cell of column col.
func DropCell(b *board.Board, col int) (coord.Coord, bool) {
	_, rows := b.Extent()
	if b.Rows() <= 0 {
		rows++ // an unbounded column always has room on top
	}
	for row := 0; row < rows; row++ {
		c := coord.New(col, row)
		if b.IsEmpty(c) {
			return c, true
		}
	}
	return coord.Coord{}, false
}

func dropPlies(b *board.Board, colour board.Colour) []ply.Ply {
	cols, _ := b.Extent()
	var plies []ply.Ply
	for col := 0; col < cols; col++ {
		if at, ok := DropCell(b, col); ok {
			plies = append(plies, ply.NewAdd(b.NewPiece(board.Chip, colour), at))
		}
	}
	return plies
}
