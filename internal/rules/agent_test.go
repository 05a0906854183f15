package rules

import (
	"context"
	"testing"

	"github.com/lgbarn/boardgame-rules/internal/board"
	rerrors "github.com/lgbarn/boardgame-rules/internal/errors"
	"github.com/lgbarn/boardgame-rules/internal/testutil"
)

func TestFirstAgent(t *testing.T) {
	rs := mustStandardAC(t)
	info := continueGame(t, rs, rs.BoardFactory().InitialBoard(), nil)

	choice, err := FirstAgent{}.Choose(info)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, choice, "a2-a3")

	_, err = FirstAgent{}.Choose(&GameInfo{})
	testutil.AssertErrorIs(t, err, rerrors.ErrInvalidPly)
}

func TestPlay_ConnectN(t *testing.T) {
	rs := mustConnectN(t)
	b := rs.BoardFactory().InitialBoard()

	// Both sides fill columns left to right, so white completes row 1 first.
	g, err := Play(context.Background(), rs, b, FirstAgent{}, FirstAgent{}, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, g.Termination != nil)
	testutil.AssertEqual(t, *g.Termination, Termination{Kind: Connected, Result: WhiteWins})
	testutil.AssertEqual(t, len(g.History), 19)
	testutil.AssertEqual(t, *g.History[18], Turn{Side: board.White, Ply: "+white:chip@d1"})
}

func TestPlay_PlyLimit(t *testing.T) {
	rs := mustStandardAC(t)
	b := rs.BoardFactory().InitialBoard()

	g, err := Play(context.Background(), rs, b, FirstAgent{}, FirstAgent{}, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, g.Termination == nil)
	testutil.AssertEqual(t, len(g.History), 4)
	testutil.AssertEqual(t, g.History[0].Ply, "a2-a3")
	testutil.AssertEqual(t, g.History[1].Side, board.Black)
}

func TestPlay_Cancelled(t *testing.T) {
	rs := mustStandardAC(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := Play(ctx, rs, rs.BoardFactory().InitialBoard(), FirstAgent{}, FirstAgent{}, 0)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, len(g.History), 0)
}

func TestResume_ContinuesHistory(t *testing.T) {
	rs := mustStandardAC(t)
	b := rs.BoardFactory().InitialBoard()
	p, err := rs.PlyFactory().GetPly("e2-e4", b)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, b.Execute(p))
	history := []*Turn{{Side: board.White, Ply: "e2-e4"}}

	g, err := Resume(context.Background(), rs, b, history, nil, FirstAgent{}, FirstAgent{}, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(history), 1)
	testutil.AssertEqual(t, len(g.History), 2)
	testutil.AssertEqual(t, *g.History[1], Turn{Side: board.Black, Ply: "a7-a5"})
}

func TestResume_ReturnsLastMessages(t *testing.T) {
	rs := mustConnectN(t)
	b := rs.BoardFactory().InitialBoard()

	g, err := Play(context.Background(), rs, b, FirstAgent{}, FirstAgent{}, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Messages, []Message{{Key: OfferedKey, Value: "a2,b1,c1,d1,e1,f1,g1"}})

	g, err = Resume(context.Background(), rs, b, g.History, g.Messages, FirstAgent{}, FirstAgent{}, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(g.History), 3)
	testutil.AssertEqual(t, *g.History[2], Turn{Side: board.White, Ply: "+white:chip@a3"})
	testutil.AssertEqual(t, g.Messages, []Message{{Key: OfferedKey, Value: "a3,b1,c1,d1,e1,f1,g1"}})
}
