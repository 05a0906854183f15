// Package rules provides the rule sets: each bundles a piece factory, a ply
// factory and a board factory with the turn-continuation logic that turns
// a position and its history into the legal plies for the next mover, or
// into a termination.
//
// Rule sets hold no game state. Callers keep the board, the turn history
// and the messages returned by the previous call, and feed them back
// unchanged on the next call.
package rules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/layout"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

// RuleSet is a game's policy.
type RuleSet interface {
	Name() string
	PieceFactory() PieceFactory
	PlyFactory() PlyFactory
	BoardFactory() BoardFactory

	// ContinueGame returns the legal plies for the side to move next, or a
	// termination when the game is over. Exactly one of the first two
	// results is non-nil when err is nil.
	ContinueGame(b *board.Board, history []*Turn, messages []Message) (*GameInfo, *Termination, error)

	// ExecuteFakePly returns a clone of b with p executed on it. Neither b
	// nor p is modified.
	ExecuteFakePly(b *board.Board, p ply.Ply) (*board.Board, error)
}

// PieceFactory creates the pieces a rule set supports.
type PieceFactory interface {
	// GetPiece creates a detached piece of the named type on b.
	GetPiece(name string, b *board.Board, colour board.Colour) (*board.Piece, error)

	// SupportedPieces returns one detached piece per supported type.
	SupportedPieces(b *board.Board, colour board.Colour) []*board.Piece

	// OrderedPieces returns the supported type names in set-up order.
	OrderedPieces() []string

	// SetUp places p on the first free cell of its initial positions.
	// It fails with ErrPositioning when none is free.
	SetUp(p *board.Piece) error
}

// PlyFactory rebuilds plies from canonical strings.
type PlyFactory interface {
	// GetPly binds the ply written as s to the pieces and cells of b.
	// Legality is not checked.
	GetPly(s string, b *board.Board) (ply.Ply, error)
}

// BoardFactory creates boards for a rule set.
type BoardFactory interface {
	BlankBoard() *board.Board
	InitialBoard() *board.Board
	GetBoard(records []layout.Record) (*board.Board, error)
}

// Turn is one history entry: the side that moved and its ply's canonical
// string. A nil *Turn stands for an absent entry.
type Turn struct {
	Side board.Colour
	Ply  string
}

// Message carries rule-set private state from one continuation to the
// next. Callers pass messages back without interpreting them.
type Message struct {
	Key   string
	Value string
}

// GameInfo is the result of a continuation that does not end the game.
type GameInfo struct {
	Plies    []ply.Ply
	Next     board.Colour
	Messages []Message
}

// TerminationKind identifies why a game ended.
type TerminationKind int

const (
	Checkmate TerminationKind = iota + 1
	Stalemate
	PieceDepletion
	Connected
	Draw
)

// String returns the upper-case kind tag.
func (k TerminationKind) String() string {
	switch k {
	case Checkmate:
		return "CHECKMATE"
	case Stalemate:
		return "STALEMATE"
	case PieceDepletion:
		return "PIECE_DEPLETION"
	case Connected:
		return "CONNECTED"
	case Draw:
		return "DRAW"
	}
	return "UNKNOWN"
}

// Result is the outcome of a finished game.
type Result int

const (
	NoWinner Result = iota
	WhiteWins
	BlackWins
)

// String returns the outcome in words.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	}
	return "draw"
}

// Wins returns the result in which colour wins.
func Wins(colour board.Colour) Result {
	if colour == board.White {
		return WhiteWins
	}
	return BlackWins
}

// Termination ends a game. It is a value, not an error.
type Termination struct {
	Kind   TerminationKind
	Result Result
}

// WinnerIsWhite reports whether white won.
func (t *Termination) WinnerIsWhite() bool { return t.Result == WhiteWins }

// IsDraw reports whether neither side won.
func (t *Termination) IsDraw() bool { return t.Result == NoWinner }

// Winner returns the winning colour, or false for a draw.
func (t *Termination) Winner() (board.Colour, bool) {
	switch t.Result {
	case WhiteWins:
		return board.White, true
	case BlackWins:
		return board.Black, true
	}
	return board.Black, false
}

func (t *Termination) String() string {
	return fmt.Sprintf("%s: %s", t.Kind, t.Result)
}

// Option configures a rule set.
type Option func(*base)

// WithLogger sets the logger used to report terminations.
func WithLogger(logger *zap.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// base carries the parts every rule set shares.
type base struct {
	name   string
	pieces *pieceFactory
	plies  *plyFactory
	boards *boardFactory
	logger *zap.Logger
}

func newBase(name string, pieces *pieceFactory, cols, rows int, opts []Option) (base, error) {
	b := base{
		name:   name,
		pieces: pieces,
		plies:  &plyFactory{pieces: pieces},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	boards, err := newBoardFactory(pieces, cols, rows)
	if err != nil {
		return base{}, err
	}
	b.boards = boards
	return b, nil
}

func (b *base) Name() string               { return b.name }
func (b *base) PieceFactory() PieceFactory { return b.pieces }
func (b *base) PlyFactory() PlyFactory     { return b.plies }
func (b *base) BoardFactory() BoardFactory { return b.boards }

// ExecuteFakePly executes p on a clone of bd. The ply is rebuilt from its
// canonical string so that embedded pieces belong to the clone.
func (b *base) ExecuteFakePly(bd *board.Board, p ply.Ply) (*board.Board, error) {
	clone := bd.Clone()
	rebound, err := b.plies.GetPly(p.String(), clone)
	if err != nil {
		return nil, err
	}
	if err := clone.Execute(rebound); err != nil {
		return nil, err
	}
	return clone, nil
}

func (b *base) terminate(t *Termination, mover board.Colour) *Termination {
	b.logger.Debug("game terminated",
		zap.String("ruleset", b.name),
		zap.Stringer("kind", t.Kind),
		zap.Stringer("result", t.Result),
		zap.Stringer("mover", mover))
	return t
}

// NextMover returns the side to move after history: white when history
// is empty or its last entry is absent, otherwise the other side.
func NextMover(history []*Turn) board.Colour {
	if len(history) == 0 || history[len(history)-1] == nil {
		return board.White
	}
	return history[len(history)-1].Side.Opposite()
}

// lastMessage returns the value of the most recent message with key.
func lastMessage(messages []Message, key string) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Key == key {
			return messages[i].Value, true
		}
	}
	return "", false
}
