package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/boardgame-rules/internal/board"
	"github.com/lgbarn/boardgame-rules/internal/config"
	"github.com/lgbarn/boardgame-rules/internal/layout"
	"github.com/lgbarn/boardgame-rules/internal/output"
	"github.com/lgbarn/boardgame-rules/internal/perft"
	"github.com/lgbarn/boardgame-rules/internal/rules"
)

// runOptions are the position arguments that have no config file form.
type runOptions struct {
	plies []string // played in order from the start position
	play  int      // further plies chosen by FirstAgent

	// dumpLayout receives the final position as a layout document.
	dumpLayout io.Writer
}

// newLogger builds a development logger at debug verbosity and a
// production logger otherwise. An empty path logs to stderr.
func newLogger(verbosity int, path string) (*zap.Logger, error) {
	var zcfg zap.Config
	switch verbosity {
	case 2:
		zcfg = zap.NewDevelopmentConfig()
	case 0:
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		zcfg = zap.NewProductionConfig()
	}
	if path != "" {
		zcfg.OutputPaths = []string{path}
	}
	return zcfg.Build()
}

// run builds the position described by cfg and opts and writes its report.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts runOptions) error {
	rs, err := rules.FromConfig(cfg, rules.WithLogger(logger))
	if err != nil {
		return err
	}

	b, err := startBoard(rs, cfg.LayoutFile)
	if err != nil {
		return err
	}
	logger.Info("position loaded",
		zap.String("ruleset", rs.Name()),
		zap.Int("white", b.Count(board.White)),
		zap.Int("black", b.Count(board.Black)))

	history, messages, err := replay(rs, b, opts.plies)
	if err != nil {
		return err
	}

	if opts.play > 0 {
		g, err := rules.Resume(ctx, rs, b, history, messages, rules.FirstAgent{}, rules.FirstAgent{}, opts.play)
		if err != nil {
			return err
		}
		history, messages = g.History, g.Messages
	}

	if opts.dumpLayout != nil {
		if err := layout.Encode(opts.dumpLayout, layout.FromBoard(b)); err != nil {
			return err
		}
	}

	info, term, err := rs.ContinueGame(b, history, messages)
	if err != nil {
		return err
	}
	report := output.NewReport(rs, b, history, info, term)

	if cfg.Perft.Depth > 0 {
		res, err := perft.Count(ctx, rs, b, history, messages, cfg.Perft.Depth,
			perft.WithWorkers(cfg.Perft.Workers), perft.WithLogger(logger))
		if err != nil {
			return err
		}
		report.AddPerft(res)
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output.Format)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

func startBoard(rs rules.RuleSet, path string) (*board.Board, error) {
	if path == "" {
		return rs.BoardFactory().InitialBoard(), nil
	}
	records, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	return rs.BoardFactory().GetBoard(records)
}

// replay executes plies in turn order, checking each against the legal
// set of its position. It returns the history and the messages of the
// last continuation.
func replay(rs rules.RuleSet, b *board.Board, plies []string) ([]*rules.Turn, []rules.Message, error) {
	var history []*rules.Turn
	var messages []rules.Message
	for i, s := range plies {
		info, term, err := rs.ContinueGame(b, history, messages)
		if err != nil {
			return nil, nil, err
		}
		if term != nil {
			return nil, nil, fmt.Errorf("ply %d %q: game already over (%s)", i+1, s, term)
		}
		p, err := rs.PlyFactory().GetPly(s, b)
		if err != nil {
			return nil, nil, fmt.Errorf("ply %d %q: %w", i+1, s, err)
		}
		legal := false
		for _, l := range info.Plies {
			if l.Equal(p) {
				legal = true
				break
			}
		}
		if !legal {
			return nil, nil, fmt.Errorf("ply %d %q is not legal for %s", i+1, s, info.Next)
		}
		if err := b.Execute(p); err != nil {
			return nil, nil, err
		}
		history = append(history, &rules.Turn{Side: info.Next, Ply: s})
		messages = info.Messages
	}
	return history, messages, nil
}
