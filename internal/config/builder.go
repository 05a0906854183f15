package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing configuration.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRuleSet sets the rule set name.
func (b *ConfigBuilder) WithRuleSet(name string) *ConfigBuilder {
	b.cfg.RuleSet = name
	return b
}

// WithBoard sets the board dimensions; zero keeps the rule set default.
func (b *ConfigBuilder) WithBoard(cols, rows int) *ConfigBuilder {
	b.cfg.Board.Cols = cols
	b.cfg.Board.Rows = rows
	return b
}

// WithConnect sets the alignment length for connect rule sets.
func (b *ConfigBuilder) WithConnect(n int) *ConfigBuilder {
	b.cfg.Board.Connect = n
	return b
}

// WithLayout sets the layout file.
func (b *ConfigBuilder) WithLayout(path string) *ConfigBuilder {
	b.cfg.LayoutFile = path
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
