package rules

import (
	"fmt"
	"strings"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/engine"
	"github.com/lgbarn/boardgame-rules/internal/errors"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

const (
	ConnectNName = "ConnectN"

	// OfferedKey is the message listing the cells offered to the mover.
	OfferedKey = "connectn.offered"

	DefaultCols    = 7
	DefaultRows    = 6
	DefaultConnect = 4
)

// ConnectN drops chips into columns; a chip falls to the lowest empty cell.
// The first side with n chips in a line wins. A full board is a draw.
type ConnectN struct {
	base
	n int
}

// NewConnectN returns a connect rule set on a cols x rows board. Zero
// arguments take the defaults of 7 columns, 6 rows and 4 in a line.
func NewConnectN(cols, rows, n int, opts ...Option) (*ConnectN, error) {
	if cols == 0 {
		cols = DefaultCols
	}
	if rows == 0 {
		rows = DefaultRows
	}
	if n == 0 {
		n = DefaultConnect
	}
	if cols < 0 || rows < 0 || n < 2 {
		return nil, fmt.Errorf("%w: connect %d on %dx%d", errors.ErrInvalidConfig, n, cols, rows)
	}

	pieces := &pieceFactory{
		kinds: []board.Kind{board.Chip},
		homes: homeTable{},
	}
	b, err := newBase(ConnectNName, pieces, cols, rows, opts)
	if err != nil {
		return nil, err
	}
	return &ConnectN{base: b, n: n}, nil
}

// N returns the number of chips in a line that wins.
func (c *ConnectN) N() int { return c.n }

// ContinueGame checks for a line through the cells that changed since the
// previous call, then offers one drop per column that still has room.
func (c *ConnectN) ContinueGame(b *board.Board, history []*Turn, messages []Message) (*GameInfo, *Termination, error) {
	mover := NextMover(history)

	winner, err := c.alignment(b, history, messages)
	if err != nil {
		return nil, nil, err
	}
	if winner != nil {
		return nil, c.terminate(&Termination{Kind: Connected, Result: Wins(winner.Colour())}, mover), nil
	}

	chip := c.pieces.SupportedPieces(b, mover)[0]
	plies := engine.Plies(chip)
	if len(plies) == 0 {
		return nil, c.terminate(&Termination{Kind: Draw, Result: NoWinner}, mover), nil
	}

	offered := make([]string, len(plies))
	for i, p := range plies {
		offered[i] = p.To().String()
	}
	return &GameInfo{
		Plies:    plies,
		Next:     mover,
		Messages: []Message{{Key: OfferedKey, Value: strings.Join(offered, ",")}},
	}, nil, nil
}

// alignment finds a piece on a winning line. It rechecks the offered
// cells that are now occupied, or the last drop when there is no
// message, and scans the whole board only when there is neither.
func (c *ConnectN) alignment(b *board.Board, history []*Turn, messages []Message) (*board.Piece, error) {
	if value, ok := lastMessage(messages, OfferedKey); ok {
		cells, err := decodeCells(value)
		if err != nil {
			return nil, err
		}
		for _, at := range cells {
			if !b.IsEmpty(at) && engine.AlignedThrough(b, at) >= c.n {
				return b.PieceAt(at), nil
			}
		}
		return nil, nil
	}

	if len(history) > 0 && history[len(history)-1] != nil {
		last := history[len(history)-1]
		p, err := c.plies.GetPly(last.Ply, b)
		if err != nil {
			return nil, fmt.Errorf("%w: last turn: %v", errors.ErrInvalidHistory, err)
		}
		if p.Kind() != ply.Add {
			return nil, fmt.Errorf("%w: %q is not a drop", errors.ErrInvalidHistory, last.Ply)
		}
		if engine.AlignedThrough(b, p.To()) >= c.n {
			return b.PieceAt(p.To()), nil
		}
		return nil, nil
	}

	p, _ := engine.FindAlignment(b, c.n)
	return p, nil
}

func decodeCells(value string) ([]coord.Coord, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	cells := make([]coord.Coord, 0, len(parts))
	for _, s := range parts {
		at, err := coord.Decode(s)
		if err != nil {
			return nil, errors.Wrapf(err, "message %s", OfferedKey)
		}
		cells = append(cells, at)
	}
	return cells, nil
}
