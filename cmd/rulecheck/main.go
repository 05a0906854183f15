// rulecheck lists the legal plies of a board position, or reports how the
// game ended, under one of the registered rule sets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/boardgame-rules/internal/config"
	"github.com/lgbarn/boardgame-rules/internal/rules"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("rulecheck version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	logger, err := newLogger(cfg.Verbosity, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some platforms

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runOptions{plies: splitPlies(*history), play: *play}
	if *dumpLayout != "" {
		file, err := os.Create(*dumpLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating layout file %s: %v\n", *dumpLayout, err)
			os.Exit(1)
		}
		defer file.Close()
		opts.dumpLayout = file
	}
	if err := run(ctx, cfg, logger, opts); err != nil {
		logger.Error("rulecheck failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupOutputFile points cfg.OutputFile at the configured file.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.Output.Filename == "" {
		return func() {}
	}
	file, err := os.Create(cfg.Output.Filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.Output.Filename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() { file.Close() }
}

func splitPlies(s string) []string {
	var plies []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			plies = append(plies, p)
		}
	}
	return plies
}

func usage() {
	fmt.Fprintf(os.Stderr, "rulecheck version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: rulecheck [options]\n\n")
	fmt.Fprintf(os.Stderr, "Rule sets: %s\n\n", strings.Join(rules.Names(), ", "))
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
