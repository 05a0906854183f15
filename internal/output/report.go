package output

import (
	"strings"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/coord"
	"github.com/lgbarn/boardgame-rules/internal/perft"
	"github.com/lgbarn/boardgame-rules/internal/ply"
	"github.com/lgbarn/boardgame-rules/internal/rules"
)

// Report describes one position: the legal plies or the termination,
// and optionally a perft count.
type Report struct {
	RuleSet     string             `json:"ruleset"`
	Board       []string           `json:"board,omitempty"`
	History     []string           `json:"history,omitempty"`
	Next        string             `json:"next,omitempty"`
	Plies       []string           `json:"plies,omitempty"`
	Termination *TerminationReport `json:"termination,omitempty"`
	Perft       *PerftReport       `json:"perft,omitempty"`
}

// TerminationReport is the JSON form of a termination.
type TerminationReport struct {
	Kind   string `json:"kind"`
	Result string `json:"result"`
}

// PerftReport is the JSON form of a perft count.
type PerftReport struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []PerftCount `json:"divide,omitempty"`
}

// PerftCount is the path count below one root ply.
type PerftCount struct {
	Ply   string `json:"ply"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// NewReport builds the report of one continuation. Exactly one of info
// and term is expected to be non-nil.
func NewReport(rs rules.RuleSet, b *board.Board, history []*rules.Turn, info *rules.GameInfo, term *rules.Termination) *Report {
	r := &Report{RuleSet: rs.Name(), Board: RenderBoard(b)}
	for _, t := range history {
		if t != nil {
			r.History = append(r.History, t.Ply)
		}
	}
	if term != nil {
		r.Termination = &TerminationReport{Kind: term.Kind.String(), Result: term.Result.String()}
		return r
	}
	if info != nil {
		r.Next = info.Next.String()
		r.Plies = ply.Strings(info.Plies)
	}
	return r
}

// AddPerft attaches a perft result, with root plies in canonical order.
func (r *Report) AddPerft(res *perft.Result) {
	pr := &PerftReport{Depth: res.Depth, Nodes: res.Nodes}
	for _, root := range res.Roots() {
		pr.Divide = append(pr.Divide, PerftCount{Ply: root, Nodes: res.Divide[root]})
	}
	r.Perft = pr
}

var pieceLetters = map[board.Kind]byte{
	board.Pawn:   'p',
	board.Knight: 'n',
	board.Bishop: 'b',
	board.Rook:   'r',
	board.Queen:  'q',
	board.King:   'k',
	board.Chip:   'o',
}

// RenderBoard draws b from the top row down. White pieces are upper
// case, empty cells are '.', unusable cells are '#'.
func RenderBoard(b *board.Board) []string {
	cols, rows := b.Extent()
	lines := make([]string, 0, rows)
	for row := rows - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			sb.WriteByte(cellLetter(b, col, row))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func cellLetter(b *board.Board, col, row int) byte {
	at := coord.New(col, row)
	if !b.IsUsable(at) {
		return '#'
	}
	p := b.PieceAt(at)
	if p == nil {
		return '.'
	}
	letter := pieceLetters[p.Kind()]
	if p.IsWhite() {
		letter -= 'a' - 'A'
	}
	return letter
}
