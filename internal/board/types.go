// Package board provides the board, cell and piece model shared by every
// rule set, together with the primitive actions that mutate a board.
package board

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the lowercase name used in canonical forms.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return Black, false
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Kind is the closed set of piece types known to the engine.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Chip
	NumKinds
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king", "chip"}

// String returns the type name dispatched to by piece factories.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind converts a type name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k := Pawn; k < NumKinds; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return NoKind, false
}
