package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/boardgame-rules/internal/coord"
	rerrors "github.com/lgbarn/boardgame-rules/internal/errors"
)

func at(s string) coord.Coord { return coord.MustDecode(s) }

func TestNewBoard(t *testing.T) {
	b := New(8, 8, at("d4"))

	t.Run("bounds", func(t *testing.T) {
		if !b.Bounded() {
			t.Error("Bounded() = false; want true")
		}
		if b.IsUsable(at("i1")) {
			t.Error("IsUsable(i1) = true; want false")
		}
		if b.IsUsable(at("a9")) {
			t.Error("IsUsable(a9) = true; want false")
		}
		if b.IsUsable(coord.New(-1, 0)) {
			t.Error("IsUsable(-1,0) = true; want false")
		}
	})

	t.Run("unusable cells are inaccessible", func(t *testing.T) {
		if _, ok := b.Cell(at("d4")); ok {
			t.Error("Cell(d4) ok = true; want false")
		}
		if b.IsEmpty(at("d4")) {
			t.Error("IsEmpty(d4) = true; want false")
		}
	})

	t.Run("cells are empty until touched", func(t *testing.T) {
		if len(b.cells) != 0 {
			t.Fatalf("materialised cells = %d; want 0", len(b.cells))
		}
		cell, ok := b.Cell(at("e4"))
		if !ok || !cell.IsEmpty() {
			t.Errorf("Cell(e4) = %v, %v; want empty cell", cell, ok)
		}
		if cell.Coord() != at("e4") {
			t.Errorf("Cell(e4).Coord() = %v; want e4", cell.Coord())
		}
		if len(b.cells) != 1 {
			t.Errorf("materialised cells = %d; want 1", len(b.cells))
		}
	})
}

func TestUnboundedBoard(t *testing.T) {
	b := New(0, 0)
	if b.Bounded() {
		t.Error("Bounded() = true; want false")
	}
	if !b.IsUsable(coord.New(1000, 5000)) {
		t.Error("IsUsable(far cell) = false; want true")
	}
	p := b.NewPiece(Rook, White)
	if err := b.AddPiece(p, coord.New(10, 3)); err != nil {
		t.Fatalf("AddPiece() error: %v", err)
	}
	cols, rows := b.Extent()
	if cols != 12 || rows != 5 {
		t.Errorf("Extent() = (%d, %d); want (12, 5)", cols, rows)
	}
}

func TestAddPiece(t *testing.T) {
	b := New(8, 8, at("d4"))
	king := b.NewPiece(King, White)

	if err := b.AddPiece(king, at("e1")); err != nil {
		t.Fatalf("AddPiece(e1) error: %v", err)
	}
	if got := b.PieceAt(at("e1")); got != king {
		t.Errorf("PieceAt(e1) = %v; want the white king", got)
	}
	if pos, ok := b.Position(king); !ok || pos != at("e1") {
		t.Errorf("Position(king) = %v, %v; want e1, true", pos, ok)
	}

	tests := []struct {
		name  string
		piece *Piece
		at    coord.Coord
		want  error
	}{
		{"occupied cell", b.NewPiece(Queen, White), at("e1"), rerrors.ErrPositioning},
		{"unusable cell", b.NewPiece(Queen, White), at("d4"), rerrors.ErrPositioning},
		{"out of bounds", b.NewPiece(Queen, White), at("z9"), rerrors.ErrPositioning},
		{"already attached", king, at("e2"), rerrors.ErrAttached},
		{"foreign piece", New(8, 8).NewPiece(Pawn, Black), at("a7"), rerrors.ErrForeignPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.AddPiece(tt.piece, tt.at)
			if !errors.Is(err, tt.want) {
				t.Errorf("AddPiece(%v, %v) error = %v; want %v", tt.piece, tt.at, err, tt.want)
			}
		})
	}
}

func TestRemovePiece(t *testing.T) {
	b := New(8, 8)
	rook := b.NewPiece(Rook, Black)
	if err := b.AddPiece(rook, at("a8")); err != nil {
		t.Fatalf("AddPiece() error: %v", err)
	}

	if err := b.RemovePiece(rook); err != nil {
		t.Fatalf("RemovePiece() error: %v", err)
	}
	if rook.Attached() || b.Contains(rook) {
		t.Error("rook still attached after RemovePiece")
	}
	if !b.IsEmpty(at("a8")) {
		t.Error("IsEmpty(a8) = false after RemovePiece; want true")
	}
	if err := b.RemovePiece(rook); !errors.Is(err, rerrors.ErrNotAttached) {
		t.Errorf("second RemovePiece() error = %v; want ErrNotAttached", err)
	}

	// A detached piece may be placed again.
	if err := b.AddPiece(rook, at("a1")); err != nil {
		t.Errorf("AddPiece after remove error: %v", err)
	}
}

func TestPieces(t *testing.T) {
	b := New(8, 8)
	for _, s := range []string{"h2", "a1", "c1", "b2"} {
		if err := b.AddPiece(b.NewPiece(Pawn, White), at(s)); err != nil {
			t.Fatalf("AddPiece(%s) error: %v", s, err)
		}
	}
	if err := b.AddPiece(b.NewPiece(Pawn, Black), at("d7")); err != nil {
		t.Fatalf("AddPiece(d7) error: %v", err)
	}

	var got []string
	for _, p := range b.Pieces(White) {
		pos, _ := p.Position()
		got = append(got, pos.String())
	}
	want := []string{"a1", "c1", "b2", "h2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pieces(White) order mismatch (-want +got):\n%s", diff)
	}
	if n := b.Count(Black); n != 1 {
		t.Errorf("Count(Black) = %d; want 1", n)
	}

	// The snapshot is not affected by later mutation.
	snapshot := b.Pieces(White)
	b.RemoveAt(at("a1"))
	if len(snapshot) != 4 {
		t.Errorf("snapshot length = %d after mutation; want 4", len(snapshot))
	}
}

func TestBoardClone(t *testing.T) {
	original := New(8, 8, at("d5"))
	king := original.NewPiece(King, White)
	if err := original.AddPiece(king, at("e1")); err != nil {
		t.Fatalf("AddPiece() error: %v", err)
	}
	if err := original.AddPiece(original.NewPiece(Knight, Black), at("g8")); err != nil {
		t.Fatalf("AddPiece() error: %v", err)
	}
	original.Cell(at("a3"))

	clone := original.Clone()

	t.Run("distinct objects", func(t *testing.T) {
		if clone == original {
			t.Fatal("Clone() returned the same board")
		}
		cloneKing := clone.PieceAt(at("e1"))
		if cloneKing == nil || cloneKing == king {
			t.Fatalf("clone PieceAt(e1) = %p; want a new piece", cloneKing)
		}
		if cloneKing.Kind() != King || !cloneKing.IsWhite() || cloneKing.Board() != clone {
			t.Errorf("clone king = %v on %p; want white king on clone", cloneKing, cloneKing.Board())
		}
		if clone.Contains(king) {
			t.Error("clone.Contains(original king) = true; want false")
		}
	})

	t.Run("same observable state", func(t *testing.T) {
		if diff := cmp.Diff(original.Placements(), clone.Placements()); diff != "" {
			t.Errorf("Placements mismatch (-original +clone):\n%s", diff)
		}
		if clone.IsUsable(at("d5")) {
			t.Error("clone IsUsable(d5) = true; want false")
		}
		if len(clone.cells) != len(original.cells) {
			t.Errorf("clone materialised %d cells; want %d", len(clone.cells), len(original.cells))
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		clone.RemoveAt(at("e1"))
		if original.PieceAt(at("e1")) != king {
			t.Error("original lost its king after clone modification")
		}
		if err := original.RemovePiece(king); err != nil {
			t.Fatalf("RemovePiece() error: %v", err)
		}
		if clone.PieceAt(at("g8")) == nil {
			t.Error("clone lost g8 after original modification")
		}
		if err := original.AddPiece(original.NewPiece(Queen, White), at("h4")); err != nil {
			t.Fatalf("AddPiece() error: %v", err)
		}
		if !clone.IsEmpty(at("h4")) {
			t.Error("clone h4 occupied after original modification")
		}
	})
}

func TestApply(t *testing.T) {
	b := New(8, 8)
	pawn := b.NewPiece(Pawn, White)
	victim := b.NewPiece(Knight, Black)
	if err := b.AddPiece(pawn, at("e4")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddPiece(victim, at("d5")); err != nil {
		t.Fatal(err)
	}

	actions := []Action{
		RemoveAction(at("d5")),
		RemoveAction(at("e4")),
		AddAction(pawn, at("d5")),
		AddAction(nil, at("h8")),
	}
	if err := b.Apply(actions); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	want := []Placement{{At: at("d5"), Kind: Pawn, Colour: White}}
	if diff := cmp.Diff(want, b.Placements()); diff != "" {
		t.Errorf("Placements after Apply mismatch (-want +got):\n%s", diff)
	}
	if victim.Attached() {
		t.Error("captured knight still attached")
	}

	err := b.Apply([]Action{RemoveAction(at("z1"))})
	if !errors.Is(err, rerrors.ErrPositioning) {
		t.Errorf("Apply(remove z1) error = %v; want ErrPositioning", err)
	}
}

func TestParseKindAndColour(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("dragon"); ok {
		t.Error("ParseKind(dragon) ok = true; want false")
	}
	if c, ok := ParseColour("white"); !ok || c != White {
		t.Errorf("ParseColour(white) = %v, %v", c, ok)
	}
	if _, ok := ParseColour("purple"); ok {
		t.Error("ParseColour(purple) ok = true; want false")
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
}
