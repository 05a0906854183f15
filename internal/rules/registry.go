package rules

import (
	"fmt"
	"sort"

	"github.com/lgbarn/boardgame-rules/internal/config"
	"github.com/lgbarn/boardgame-rules/internal/errors"
)

// Names returns the registered rule set names in sorted order.
func Names() []string {
	names := []string{StandardACName, CastlingACName, ConnectNName}
	sort.Strings(names)
	return names
}

// Lookup builds the named rule set with its default dimensions.
func Lookup(name string, opts ...Option) (RuleSet, error) {
	switch name {
	case StandardACName:
		return NewStandardAC(opts...)
	case CastlingACName:
		return NewCastlingAC(opts...)
	case ConnectNName:
		return NewConnectN(0, 0, 0, opts...)
	}
	return nil, fmt.Errorf("%w: %q (known: %v)", errors.ErrUnknownRuleSet, name, Names())
}

// FromConfig builds the rule set cfg names. Board settings apply to
// ConnectN; the antichess sets only accept their fixed 8x8 board.
func FromConfig(cfg *config.Config, opts ...Option) (RuleSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dims := cfg.Board
	switch cfg.RuleSet {
	case ConnectNName:
		return NewConnectN(dims.Cols, dims.Rows, dims.Connect, opts...)
	case StandardACName, CastlingACName:
		if (dims.Cols != 0 && dims.Cols != 8) || (dims.Rows != 0 && dims.Rows != 8) || dims.Connect != 0 {
			return nil, fmt.Errorf("%w: %s is played on 8x8 without a connect length", errors.ErrInvalidConfig, cfg.RuleSet)
		}
	}
	return Lookup(cfg.RuleSet, opts...)
}
