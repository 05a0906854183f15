package rules

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/layout"
	"github.com/lgbarn/boardgame-rules/internal/testutil"
)

var oracleKinds = map[chess.PieceType]string{
	chess.King:   "king",
	chess.Queen:  "queen",
	chess.Rook:   "rook",
	chess.Bishop: "bishop",
	chess.Knight: "knight",
	chess.Pawn:   "pawn",
}

// oraclePosition converts a FEN position into layout records and the
// legal moves of the side to move, in canonical ply form.
func oraclePosition(t *testing.T, fen string) ([]layout.Record, chess.Color, []string) {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("FEN(%q) error: %v", fen, err)
	}
	game := chess.NewGame(opt)

	var records []layout.Record
	for sq, piece := range game.Position().Board().SquareMap() {
		side := "white"
		if piece.Color() == chess.Black {
			side = "black"
		}
		records = append(records, layout.Record{Cell: sq.String(), Side: side, Piece: oracleKinds[piece.Type()]})
	}

	var moves []string
	for _, m := range game.ValidMoves() {
		s := m.S1().String() + "-" + m.S2().String()
		if m.Promo() != chess.NoPieceType {
			s += "=" + oracleKinds[m.Promo()]
		}
		moves = append(moves, s)
	}
	return records, game.Position().Turn(), moves
}

// Positions without captures, castling or en passant, where the antichess
// legal set must equal the chess legal set.
func TestStandardAC_MatchesChessOracle(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"king and pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"},
		{"pinned bishop", "k3r3/8/8/8/8/8/4B3/4K3 w - - 0 1"},
		{"rook gives check", "4k3/8/8/8/8/8/8/r3K1N1 w - - 0 1"},
		{"black to move", "r3k3/8/8/8/8/8/8/4K2R b - - 0 1"},
		{"promotion", "8/6P1/8/8/8/8/8/k3K3 w - - 0 1"},
	}

	rs := mustStandardAC(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, turn, want := oraclePosition(t, tt.fen)
			b, err := rs.BoardFactory().GetBoard(records)
			testutil.AssertNoError(t, err)

			var history []*Turn
			if turn == chess.Black {
				history = []*Turn{{Side: board.White, Ply: "d1-e1"}}
			}
			info := continueGame(t, rs, b, history)
			testutil.AssertPlies(t, info.Plies, want)
		})
	}
}
