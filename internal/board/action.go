package board

import (
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Op is a primitive board edit.
type Op int

const (
	// Remove detaches whatever occupies the cell, if anything.
	Remove Op = iota
	// Add places Piece on the cell; a nil Piece adds nothing.
	Add
)

// Action is one step of a ply's replay sequence.
type Action struct {
	Op    Op
	At    coord.Coord
	Piece *Piece
}

// RemoveAction returns a remove-at-cell action.
func RemoveAction(at coord.Coord) Action {
	return Action{Op: Remove, At: at}
}

// AddAction returns an add-piece-at-cell action.
func AddAction(p *Piece, at coord.Coord) Action {
	return Action{Op: Add, At: at, Piece: p}
}

// Replayable is anything that expands to an action sequence against a board.
type Replayable interface {
	Actions(b *Board) ([]Action, error)
}

// Apply executes actions in order. It stops at the first failure; the
// board is left with the actions before it applied.
func (b *Board) Apply(actions []Action) error {
	for _, a := range actions {
		switch a.Op {
		case Remove:
			if !b.IsUsable(a.At) {
				return &errors.CellError{Err: errors.ErrPositioning, Cell: a.At.String(), Op: "remove"}
			}
			b.RemoveAt(a.At)
		case Add:
			if a.Piece == nil {
				continue
			}
			if err := b.AddPiece(a.Piece, a.At); err != nil {
				return err
			}
		}
	}
	return nil
}

// Execute expands r against the current position and applies it.
func (b *Board) Execute(r Replayable) error {
	actions, err := r.Actions(b)
	if err != nil {
		return err
	}
	return b.Apply(actions)
}
