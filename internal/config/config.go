// Package config provides configuration for the rule engine tools.
package config

import (
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// OutputFormat selects how reports are rendered.
type OutputFormat string

const (
	Text OutputFormat = "text"
	JSON OutputFormat = "json"
)

// BoardConfig sizes boards for rule sets that accept dimensions.
// Zero values keep the rule set's defaults.
type BoardConfig struct {
	Cols    int `yaml:"cols"`
	Rows    int `yaml:"rows"`
	Connect int `yaml:"connect"`
}

// PerftConfig controls path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate (0 disables perft)
	Depth int `yaml:"depth"`

	// Workers is the number of goroutines exploring root plies
	Workers int `yaml:"workers"`
}

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	Format   OutputFormat `yaml:"format"`
	Filename string       `yaml:"file"`
}

// Config holds all program configuration.
type Config struct {
	RuleSet    string       `yaml:"ruleset"`
	Board      BoardConfig  `yaml:"board"`
	LayoutFile string       `yaml:"layout"`
	Perft      PerftConfig  `yaml:"perft"`
	Output     OutputConfig `yaml:"output"`
	Verbosity  int          `yaml:"verbosity"` // 0=errors only, 1=info, 2=debug

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		RuleSet:    "StandardAC",
		Perft:      PerftConfig{Workers: 4},
		Output:     OutputConfig{Format: Text},
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Load reads the YAML file at path over the defaults and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // G304: config path comes from the user
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read config %s", path)
	}
	return cfg, nil
}

// Decode reads a YAML document over the defaults and validates it.
func Decode(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Rule set names are resolved by the
// registry, not here.
func (c *Config) Validate() error {
	switch {
	case c.RuleSet == "":
		return fmt.Errorf("%w: ruleset must be set", errors.ErrInvalidConfig)
	case c.Board.Cols < 0 || c.Board.Rows < 0:
		return fmt.Errorf("%w: board dimensions must not be negative", errors.ErrInvalidConfig)
	case c.Board.Connect < 0 || c.Board.Connect == 1:
		return fmt.Errorf("%w: connect must be at least 2", errors.ErrInvalidConfig)
	case c.Perft.Depth < 0:
		return fmt.Errorf("%w: perft depth must not be negative", errors.ErrInvalidConfig)
	case c.Perft.Workers < 1:
		return fmt.Errorf("%w: perft needs at least one worker", errors.ErrInvalidConfig)
	case c.Output.Format != Text && c.Output.Format != JSON:
		return fmt.Errorf("%w: unknown output format %q", errors.ErrInvalidConfig, c.Output.Format)
	case c.Verbosity < 0 || c.Verbosity > 2:
		return fmt.Errorf("%w: verbosity must be 0, 1 or 2", errors.ErrInvalidConfig)
	}
	return nil
}
