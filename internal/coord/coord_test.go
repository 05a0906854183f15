package coord

import (
	"errors"
	"math"
	"testing"

	rerrors "github.com/lgbarn/boardgame-rules/internal/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		c    Coord
		want string
	}{
		{New(0, 0), "a1"},
		{New(4, 3), "e4"},
		{New(7, 7), "h8"},
		{New(25, 0), "z1"},
		{New(26, 0), "aa1"},
		{New(27, 9), "ab10"},
		{New(51, 1), "az2"},
		{New(52, 1), "ba2"},
		{New(701, 0), "zz1"},
		{New(702, 0), "aaa1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Encode(tt.c)
			if err != nil {
				t.Fatalf("Encode(%v) error: %v", tt.c, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestEncode_Negative(t *testing.T) {
	for _, c := range []Coord{New(-1, 0), New(0, -1)} {
		if _, err := Encode(c); !errors.Is(err, rerrors.ErrInvalidCoord) {
			t.Errorf("Encode(%+v) error = %v, want ErrInvalidCoord", c, err)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	inputs := []string{"", "a", "1", "a0", "a01", "A1", "1a", "e4x", "e-4", "aaaaaaaaaaaaa1"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := Decode(in); !errors.Is(err, rerrors.ErrInvalidCoord) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidCoord", in, err)
			}
		})
	}
}

func TestRoundTrip_Coords(t *testing.T) {
	for col := 0; col < 800; col += 7 {
		for row := 0; row < 120; row += 13 {
			c := New(col, row)
			s, err := Encode(c)
			if err != nil {
				t.Fatalf("Encode(%v) error: %v", c, err)
			}
			got, err := Decode(s)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", s, err)
			}
			if got != c {
				t.Errorf("Decode(Encode(%v)) = %v", c, got)
			}
		}
	}
}

func TestRoundTrip_Bounds(t *testing.T) {
	for _, c := range []Coord{
		New(MaxCol, 0),
		New(0, MaxRow),
		New(MaxCol, MaxRow),
		New(26*26+25, 0),
	} {
		s, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode(%#v) error: %v", c, err)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", s, err)
		}
		if got != c {
			t.Errorf("Decode(Encode(%#v)) = %#v", c, got)
		}
	}

	if s, _ := Encode(New(MaxCol, 0)); s != "zzzzzzzzzzzz1" {
		t.Errorf("Encode(MaxCol) = %q, want twelve z letters", s)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	for _, c := range []Coord{
		New(MaxCol+1, 0),
		New(math.MaxInt, 0),
		New(2e17, 0),
		New(0, math.MaxInt),
		New(-1, 0),
	} {
		if _, err := Encode(c); !errors.Is(err, rerrors.ErrInvalidCoord) {
			t.Errorf("Encode(%#v) error = %v, want ErrInvalidCoord", c, err)
		}
	}
}

func TestRoundTrip_Strings(t *testing.T) {
	for _, s := range []string{"a1", "h8", "z26", "aa1", "zz99", "abc123"} {
		c, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", s, err)
		}
		got, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode(%v) error: %v", c, err)
		}
		if got != s {
			t.Errorf("Encode(Decode(%q)) = %q", s, got)
		}
	}
}

func TestLess(t *testing.T) {
	if !Less(New(7, 0), New(0, 1)) {
		t.Error("Less(h1, a2) = false, want true")
	}
	if !Less(New(0, 3), New(1, 3)) {
		t.Error("Less(a4, b4) = false, want true")
	}
	if Less(New(2, 2), New(2, 2)) {
		t.Error("Less(c3, c3) = true, want false")
	}
}
