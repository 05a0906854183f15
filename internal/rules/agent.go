package rules

import (
	"context"
	"fmt"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/errors"
	"github.com/lgbarn/boardgame-rules/internal/ply"
)

// Agent chooses a ply from the legal set offered to it. The returned
// string is parsed by the rule set's ply factory; it is not checked
// against the offered set.
type Agent interface {
	Choose(info *GameInfo) (string, error)
}

// FirstAgent picks the smallest canonical ply.
type FirstAgent struct{}

// Choose implements Agent.
func (FirstAgent) Choose(info *GameInfo) (string, error) {
	if len(info.Plies) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", errors.ErrInvalidPly)
	}
	return ply.Strings(info.Plies)[0], nil
}

// Game is a record of a played-out game.
type Game struct {
	History     []*Turn
	Termination *Termination
	// Messages are the ones to feed with History to the next ContinueGame.
	Messages []Message
}

// Play runs the continuation loop on b until the game terminates, maxPlies
// plies have been made (0 means no limit) or ctx is done. b is modified.
func Play(ctx context.Context, rs RuleSet, b *board.Board, white, black Agent, maxPlies int) (*Game, error) {
	return Resume(ctx, rs, b, nil, nil, white, black, maxPlies)
}

// Resume is Play for a game whose earlier turns are already on b, with
// the messages of its last continuation. The returned history starts
// with a copy of history; maxPlies counts only the plies made here.
func Resume(ctx context.Context, rs RuleSet, b *board.Board, history []*Turn, messages []Message, white, black Agent, maxPlies int) (*Game, error) {
	g := &Game{History: append([]*Turn(nil), history...), Messages: messages}
	start := len(history)
	for maxPlies <= 0 || len(g.History)-start < maxPlies {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		info, term, err := rs.ContinueGame(b, g.History, g.Messages)
		if err != nil {
			return g, err
		}
		if term != nil {
			g.Termination = term
			return g, nil
		}

		agent := white
		if info.Next == board.Black {
			agent = black
		}
		choice, err := agent.Choose(info)
		if err != nil {
			return g, err
		}
		p, err := rs.PlyFactory().GetPly(choice, b)
		if err != nil {
			return g, err
		}
		if err := b.Execute(p); err != nil {
			return g, err
		}
		g.History = append(g.History, &Turn{Side: info.Next, Ply: choice})
		g.Messages = info.Messages
	}
	return g, nil
}
