package models

import "fmt"

// Signal is the directional decision a strategy emits for one bar.
type Signal int

const (
	Hold Signal = iota
	Buy
	Sell
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "hold"
	}
}

// StrategyMode selects which signal logic drives the simulation.
type StrategyMode string

const (
	ModeRsi       StrategyMode = "rsi"
	ModeBollinger StrategyMode = "bollinger"
	ModeCombined  StrategyMode = "combined"
)

func ParseStrategyMode(s string) (StrategyMode, error) {
	switch StrategyMode(s) {
	case ModeRsi, ModeBollinger, ModeCombined:
		return StrategyMode(s), nil
	}
	return "", fmt.Errorf("unknown strategy mode %q", s)
}
