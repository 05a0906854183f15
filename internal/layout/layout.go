// Package layout reads and writes declarative board configurations: a
// list of {cell, side, piece} records describing which piece stands where.
// Cells not listed are empty. Unusable cells cannot be expressed.
package layout

import (
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Record places one piece.
type Record struct {
	Cell  string `yaml:"cell"`
	Side  string `yaml:"side"`
	Piece string `yaml:"piece"`
}

// Document is the YAML file shape:
//
//	pieces:
//	  - {cell: e1, side: white, piece: king}
type Document struct {
	Pieces []Record `yaml:"pieces"`
}

// Decode reads a YAML document and validates its records.
func Decode(r io.Reader) ([]Record, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, &errors.ParseError{Err: errors.ErrInvalidLayout, Index: -1, Got: err.Error()}
	}
	if err := Validate(doc.Pieces); err != nil {
		return nil, err
	}
	return doc.Pieces, nil
}

// Load reads and validates the layout file at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path) //nolint:gosec // G304: layout path comes from the user
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open layout %s", path)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read layout %s", path)
	}
	return records, nil
}

// Validate checks the syntax of every record: a canonical cell and a side
// of "white" or "black". Piece names are checked by the rule set that
// binds them. All failures are reported together.
func Validate(records []Record) error {
	var result *multierror.Error
	seen := make(map[coord.Coord]int, len(records))

	for i, r := range records {
		at, err := coord.Decode(r.Cell)
		if err != nil {
			result = multierror.Append(result, &errors.ParseError{
				Err: errors.ErrInvalidLayout, Input: r.Cell, Index: i, Expected: "a cell such as e4",
			})
		} else if first, dup := seen[at]; dup {
			result = multierror.Append(result, &errors.ParseError{
				Err: errors.ErrInvalidLayout, Input: r.Cell, Index: i, Got: "cell already used by record " + strconv.Itoa(first),
			})
		} else {
			seen[at] = i
		}

		if _, ok := board.ParseColour(r.Side); !ok {
			result = multierror.Append(result, &errors.ParseError{
				Err: errors.ErrInvalidLayout, Input: r.Side, Index: i, Expected: "white or black",
			})
		}
		if r.Piece == "" {
			result = multierror.Append(result, &errors.ParseError{
				Err: errors.ErrInvalidLayout, Index: i, Expected: "a piece name",
			})
		}
	}
	return result.ErrorOrNil()
}

// FromBoard describes every occupied cell of b in row-major order.
func FromBoard(b *board.Board) []Record {
	placements := b.Placements()
	records := make([]Record, 0, len(placements))
	for _, pl := range placements {
		records = append(records, Record{
			Cell:  pl.At.String(),
			Side:  pl.Colour.String(),
			Piece: pl.Kind.String(),
		})
	}
	return records
}

// Encode writes records as a YAML document.
func Encode(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Pieces: records}); err != nil {
		return pkgerrors.Wrap(err, "encode layout")
	}
	return enc.Close()
}
