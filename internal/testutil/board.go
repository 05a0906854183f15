package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
)

// MustBoard builds a cols x rows board from "cell:side:piece" entries such
// as "e1:white:king". It calls t.Fatal on any malformed entry.
func MustBoard(t *testing.T, cols, rows int, entries ...string) *board.Board {
	t.Helper()
	b := board.New(cols, rows)
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			t.Fatalf("malformed piece %q", entry)
		}
		at, err := coord.Decode(parts[0])
		if err != nil {
			t.Fatalf("piece %q: %v", entry, err)
		}
		colour, ok := board.ParseColour(parts[1])
		if !ok {
			t.Fatalf("piece %q: unknown side", entry)
		}
		kind, ok := board.ParseKind(parts[2])
		if !ok {
			t.Fatalf("piece %q: unknown piece", entry)
		}
		if err := b.AddPiece(b.NewPiece(kind, colour), at); err != nil {
			t.Fatalf("piece %q: %v", entry, err)
		}
	}
	return b
}

// Cell decodes a literal coordinate.
func Cell(s string) coord.Coord {
	return coord.MustDecode(s)
}

// Describe renders the placements of b as sorted "cell:side:piece" entries,
// the inverse of MustBoard.
func Describe(b *board.Board) []string {
	var out []string
	for _, pl := range b.Placements() {
		out = append(out, pl.At.String()+":"+pl.Colour.String()+":"+pl.Kind.String())
	}
	return out
}
