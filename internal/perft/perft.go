// Package perft counts the ply paths of a given depth from a position.
// The counts are a fingerprint of a rule set's move generation: two
// correct implementations agree on them.
package perft

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/rules"
	"github.com/lgbarn/boardgame-rules/internal/worker"
)

// Result holds the total path count and the count below each root ply.
type Result struct {
	Depth  int
	Nodes  uint64
	Divide map[string]uint64
}

// Roots returns the root plies in canonical order.
func (r *Result) Roots() []string {
	roots := make([]string, 0, len(r.Divide))
	for p := range r.Divide {
		roots = append(roots, p)
	}
	sort.Strings(roots)
	return roots
}

// Option configures a count.
type Option func(*counter)

// WithWorkers sets the number of goroutines exploring root plies.
func WithWorkers(n int) Option {
	return func(c *counter) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger for per-root progress.
func WithLogger(logger *zap.Logger) Option {
	return func(c *counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type counter struct {
	rs      rules.RuleSet
	workers int
	logger  *zap.Logger
}

// Count enumerates every path of depth plies from b. A terminated game
// contributes no paths below it. Root plies are explored in parallel on
// independent clones; b is not modified.
func Count(ctx context.Context, rs rules.RuleSet, b *board.Board, history []*rules.Turn, messages []rules.Message, depth int, opts ...Option) (*Result, error) {
	c := &counter{rs: rs, workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	result := &Result{Depth: depth, Divide: make(map[string]uint64)}
	if depth <= 0 {
		result.Nodes = 1
		return result, nil
	}

	info, term, err := rs.ContinueGame(b, history, messages)
	if err != nil {
		return nil, err
	}
	if term != nil {
		c.logger.Debug("perft root terminated", zap.Stringer("termination", term))
		return result, nil
	}

	pool := worker.NewPoolWithOptions(c.explore(ctx),
		worker.WithWorkers(c.workers),
		worker.WithBufferSize(len(info.Plies)))
	pool.Start()

	submitErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for i, p := range info.Plies {
			after, err := rs.ExecuteFakePly(b, p)
			if err != nil {
				pool.Stop()
				submitErr <- err
				return
			}
			item := worker.WorkItem{
				Board:    after,
				History:  extend(history, info.Next, p.String()),
				Messages: info.Messages,
				Ply:      p.String(),
				Depth:    depth - 1,
				Index:    i,
			}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				submitErr <- err
				return
			}
		}
		submitErr <- nil
	}()

	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			pool.Stop()
			continue
		}
		result.Divide[r.Ply] = r.Nodes
		result.Nodes += r.Nodes
		c.logger.Debug("perft root", zap.String("ply", r.Ply), zap.Uint64("nodes", r.Nodes))
	}
	if err := <-submitErr; err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	c.logger.Info("perft complete",
		zap.String("ruleset", rs.Name()),
		zap.Int("depth", depth),
		zap.Uint64("nodes", result.Nodes))
	return result, nil
}

// explore returns the worker function counting the paths below one root.
func (c *counter) explore(ctx context.Context) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		nodes, err := c.walk(ctx, item.Board, item.History, item.Messages, item.Depth)
		return worker.ProcessResult{Index: item.Index, Ply: item.Ply, Nodes: nodes, Err: err}
	}
}

func (c *counter) walk(ctx context.Context, b *board.Board, history []*rules.Turn, messages []rules.Message, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	info, term, err := c.rs.ContinueGame(b, history, messages)
	if err != nil || term != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(info.Plies)), nil
	}

	var nodes uint64
	for _, p := range info.Plies {
		after, err := c.rs.ExecuteFakePly(b, p)
		if err != nil {
			return 0, err
		}
		n, err := c.walk(ctx, after, extend(history, info.Next, p.String()), info.Messages, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// extend returns a new history with one more turn; history is not shared.
func extend(history []*rules.Turn, side board.Colour, p string) []*rules.Turn {
	next := make([]*rules.Turn, len(history), len(history)+1)
	copy(next, history)
	return append(next, &rules.Turn{Side: side, Ply: p})
}
