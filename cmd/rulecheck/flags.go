// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/boardgame-rules/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")
	ruleSet    = flag.String("r", "", "Rule set: StandardAC, CastlingAC, ConnectN")
	cols       = flag.Int("cols", 0, "Board columns (ConnectN)")
	rows       = flag.Int("rows", 0, "Board rows (ConnectN)")
	connect    = flag.Int("connect", 0, "Chips in a line to win (ConnectN)")
	layoutFile = flag.String("layout", "", "YAML board layout (default: the initial board)")

	// Position
	history = flag.String("history", "", "Comma-separated plies to play from the start position")
	play    = flag.Int("play", 0, "Let both sides play N plies choosing the first legal ply")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count ply paths of this depth")
	workers    = flag.Int("workers", 0, "Goroutines for perft (default from config)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	logFile    = flag.String("l", "", "Write log to file (default: stderr)")
	dumpLayout = flag.String("dump-layout", "", "Write the final position as a YAML layout to this file")
	verbosity  = flag.Int("v", -1, "Verbosity: 0 errors only, 1 info, 2 debug")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with every flag that was set.
func applyFlags(cfg *config.Config) {
	b := config.From(cfg)
	if *ruleSet != "" {
		b.WithRuleSet(*ruleSet)
	}
	if *cols != 0 || *rows != 0 {
		c, r := cfg.Board.Cols, cfg.Board.Rows
		if *cols != 0 {
			c = *cols
		}
		if *rows != 0 {
			r = *rows
		}
		b.WithBoard(c, r)
	}
	if *connect != 0 {
		b.WithConnect(*connect)
	}
	if *layoutFile != "" {
		b.WithLayout(*layoutFile)
	}
	if *perftDepth != 0 || *workers != 0 {
		depth, n := cfg.Perft.Depth, cfg.Perft.Workers
		if *perftDepth != 0 {
			depth = *perftDepth
		}
		if *workers != 0 {
			n = *workers
		}
		b.WithPerft(depth, n)
	}
	if *jsonOutput {
		b.WithOutputFormat(config.JSON)
	}
	if *verbosity >= 0 {
		b.WithVerbosity(*verbosity)
	}
	*cfg = *b.Build()
	if *outputFile != "" {
		cfg.Output.Filename = *outputFile
	}
}
