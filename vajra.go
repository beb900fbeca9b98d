// Package vajra evaluates technical-analysis trading strategies against a
// historical price series and reduces the simulated trades to standardized
// risk/return statistics. The engine accepts an already-materialized series
// and hands results back as plain data; fetching, persistence and formatting
// live with the surrounding packages.
package vajra

import (
	"fmt"

	"github.com/solquant/vajra/models"
	"github.com/solquant/vajra/settings"
)

// Backtest runs one strategy over one price series. Each value owns its
// state, so independent Backtests may run concurrently over the same bars.
type Backtest struct {
	config settings.Config
	mode   models.StrategyMode
}

// NewBacktest validates the configuration and freezes it into an engine.
// Invalid parameter combinations fail here, before any simulation runs.
func NewBacktest(config settings.Config) (*Backtest, error) {
	mode, err := models.ParseStrategyMode(config.StrategyMode)
	if err != nil {
		return nil, &ConfigError{Field: "strategy_mode", Reason: err.Error()}
	}
	if config.RsiPeriod <= 0 {
		return nil, &ConfigError{Field: "rsi_period", Reason: "must be > 0"}
	}
	if config.RsiOversold < 0 || config.RsiOversold > 100 {
		return nil, &ConfigError{Field: "rsi_oversold", Reason: "must be in [0,100]"}
	}
	if config.RsiOverbought < 0 || config.RsiOverbought > 100 {
		return nil, &ConfigError{Field: "rsi_overbought", Reason: "must be in [0,100]"}
	}
	if config.RsiOversold >= config.RsiOverbought {
		return nil, &ConfigError{Field: "rsi_oversold", Reason: "must be below rsi_overbought"}
	}
	if config.BollingerPeriod <= 0 {
		return nil, &ConfigError{Field: "bollinger_period", Reason: "must be > 0"}
	}
	if config.BollingerStdDev <= 0 {
		return nil, &ConfigError{Field: "bollinger_std_dev", Reason: "must be > 0"}
	}
	if config.SizingPolicy != settings.SizingNotional && config.SizingPolicy != settings.SizingUnits {
		return nil, &ConfigError{Field: "position_size_policy", Reason: fmt.Sprintf("unknown policy %q", config.SizingPolicy)}
	}
	if config.PositionSize <= 0 {
		return nil, &ConfigError{Field: "position_size", Reason: "must be > 0"}
	}
	if config.CommissionRate < 0 {
		return nil, &ConfigError{Field: "commission_rate", Reason: "must be >= 0"}
	}
	if config.InitialCapital <= 0 {
		return nil, &ConfigError{Field: "initial_capital", Reason: "must be > 0"}
	}
	return &Backtest{config: config, mode: mode}, nil
}

// Mode reports the strategy mode this engine was built with.
func (bt *Backtest) Mode() models.StrategyMode {
	return bt.mode
}
