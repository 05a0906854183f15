package rules

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
	"github.com/lgbarn/boardgame-rules/internal/layout"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

var colours = [...]board.Colour{board.White, board.Black}

// homeTable lists the initial cells of each piece type per colour, in the
// order SetUp tries them.
type homeTable map[board.Colour]map[board.Kind][]coord.Coord

type pieceFactory struct {
	kinds []board.Kind
	homes homeTable
}

func (f *pieceFactory) supports(k board.Kind) bool {
	for _, s := range f.kinds {
		if s == k {
			return true
		}
	}
	return false
}

func (f *pieceFactory) GetPiece(name string, b *board.Board, colour board.Colour) (*board.Piece, error) {
	k, ok := board.ParseKind(name)
	if !ok || !f.supports(k) {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownPiece, name)
	}
	return b.NewPiece(k, colour), nil
}

func (f *pieceFactory) SupportedPieces(b *board.Board, colour board.Colour) []*board.Piece {
	pieces := make([]*board.Piece, len(f.kinds))
	for i, k := range f.kinds {
		pieces[i] = b.NewPiece(k, colour)
	}
	return pieces
}

func (f *pieceFactory) OrderedPieces() []string {
	names := make([]string, len(f.kinds))
	for i, k := range f.kinds {
		names[i] = k.String()
	}
	return names
}

func (f *pieceFactory) SetUp(p *board.Piece) error {
	b := p.Board()
	for _, at := range f.homes[p.Colour()][p.Kind()] {
		err := b.AddPiece(p, at)
		if err == nil {
			return nil
		}
		if !pkgerrors.Is(err, errors.ErrPositioning) {
			return err
		}
	}
	return &errors.CellError{Err: errors.ErrPositioning, Piece: p.String(), Op: "set up"}
}

// populate sets up pieces of every type and colour until their initial
// cells are used up.
func (f *pieceFactory) populate(b *board.Board) error {
	for _, k := range f.kinds {
		for _, colour := range colours {
			for {
				err := f.SetUp(b.NewPiece(k, colour))
				if pkgerrors.Is(err, errors.ErrPositioning) {
					break
				}
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type plyFactory struct {
	pieces *pieceFactory
}

func (f *plyFactory) GetPly(s string, b *board.Board) (ply.Ply, error) {
	return ply.Parse(s, b, f.pieces.GetPiece)
}

type boardFactory struct {
	pieces     *pieceFactory
	cols, rows int
	initial    *board.Board
}

func newBoardFactory(pieces *pieceFactory, cols, rows int) (*boardFactory, error) {
	f := &boardFactory{pieces: pieces, cols: cols, rows: rows}
	initial := f.BlankBoard()
	if err := pieces.populate(initial); err != nil {
		return nil, pkgerrors.Wrap(err, "build initial board")
	}
	f.initial = initial
	return f, nil
}

func (f *boardFactory) BlankBoard() *board.Board {
	return board.New(f.cols, f.rows)
}

func (f *boardFactory) InitialBoard() *board.Board {
	return f.initial.Clone()
}

// GetBoard populates a blank board from records. Every failing record is
// reported.
func (f *boardFactory) GetBoard(records []layout.Record) (*board.Board, error) {
	if err := layout.Validate(records); err != nil {
		return nil, err
	}

	b := f.BlankBoard()
	var result *multierror.Error
	for i, r := range records {
		at := coord.MustDecode(r.Cell)
		colour, _ := board.ParseColour(r.Side)
		p, err := f.pieces.GetPiece(r.Piece, b, colour)
		if err != nil {
			result = multierror.Append(result, &errors.ParseError{Err: err, Input: r.Piece, Index: i})
			continue
		}
		if err := b.AddPiece(p, at); err != nil {
			result = multierror.Append(result, &errors.ParseError{Err: err, Input: r.Cell, Index: i})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b, nil
}
