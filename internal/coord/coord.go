// Package coord provides board coordinates and their spreadsheet-style
// textual form: letters name the column (a..z, aa, ab, ...) and digits
// name the 1-based row, so (0,0) is "a1" and (27,9) is "ab10".
package coord

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Coord is a (column, row) pair. Valid coordinates have both parts >= 0.
type Coord struct {
	Col int
	Row int
}

// maxLetters bounds column names so decoding cannot overflow an int.
const maxLetters = 12

const (
	// MaxCol is the largest column with a name of at most maxLetters letters.
	MaxCol = 99246114928149460 // "zzzzzzzzzzzz"
	// MaxRow is the largest row whose 1-based number fits in an int.
	MaxRow = math.MaxInt - 1
)

// New returns the coordinate for column col and row row.
func New(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Valid reports whether both parts are non-negative.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Row >= 0
}

// Add returns c shifted by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns the encoded form, or a debugging form for invalid coordinates.
func (c Coord) String() string {
	s, err := Encode(c)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return s
}

// Encode converts a coordinate to its canonical string. Coordinates
// beyond MaxCol or MaxRow have no canonical form.
func Encode(c Coord) (string, error) {
	if !c.Valid() || c.Col > MaxCol || c.Row > MaxRow {
		return "", errors.Wrapf(errors.ErrInvalidCoord, "(%d,%d)", c.Col, c.Row)
	}
	return ColumnName(c.Col) + strconv.Itoa(c.Row+1), nil
}

// ColumnName returns the bijective base-26 letters for a column index
// in 0..MaxCol.
func ColumnName(col int) string {
	var name []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		name = append(name, byte('a'+(n-1)%26))
	}
	for i, j := 0, len(name)-1; i < j; i, j = i+1, j-1 {
		name[i], name[j] = name[j], name[i]
	}
	return string(name)
}

// Decode parses a canonical coordinate string.
// Letters must be lowercase and the row must not carry leading zeros, so
// that Encode(Decode(s)) == s for every accepted s.
func Decode(s string) (Coord, error) {
	split := strings.IndexFunc(s, func(r rune) bool { return r < 'a' || r > 'z' })
	if split <= 0 {
		return Coord{}, errors.NewParseError(errors.ErrInvalidCoord, s, "column letters")
	}
	letters, digits := s[:split], s[split:]
	if len(letters) > maxLetters {
		return Coord{}, errors.NewParseError(errors.ErrInvalidCoord, s, "a shorter column name")
	}
	if digits == "" || digits[0] < '1' || digits[0] > '9' {
		return Coord{}, errors.NewParseError(errors.ErrInvalidCoord, s, "row number starting 1-9")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coord{}, errors.NewParseError(errors.ErrInvalidCoord, s, "only digits after the column")
		}
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		return Coord{}, errors.NewParseError(errors.ErrInvalidCoord, s, "row number")
	}

	col := 0
	for i := 0; i < len(letters); i++ {
		col = col*26 + int(letters[i]-'a') + 1
	}
	return Coord{Col: col - 1, Row: row - 1}, nil
}

// MustDecode is like Decode but panics on malformed input.
// It is intended for literal coordinates in tables and tests.
func MustDecode(s string) Coord {
	c, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Less orders coordinates row-major: by row, then by column.
func Less(a, b Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
