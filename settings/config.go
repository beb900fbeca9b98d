// Package settings loads run configuration and sensitive credentials.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Sizing policies accepted by Config.SizingPolicy.
const (
	SizingNotional = "notional" // PositionSize is quote currency, units = notional / price
	SizingUnits    = "units"    // PositionSize is units of the traded asset
)

// Config describes one backtest run. It is built once, validated by the
// engine, and immutable afterwards.
type Config struct {
	Symbol string `yaml:"symbol" json:"symbol"`

	StrategyMode string `yaml:"strategy_mode" json:"strategy_mode"`

	RsiPeriod     int     `yaml:"rsi_period" json:"rsi_period"`
	RsiOversold   float64 `yaml:"rsi_oversold" json:"rsi_oversold"`
	RsiOverbought float64 `yaml:"rsi_overbought" json:"rsi_overbought"`

	BollingerPeriod int     `yaml:"bollinger_period" json:"bollinger_period"`
	BollingerStdDev float64 `yaml:"bollinger_std_dev" json:"bollinger_std_dev"`

	SizingPolicy   string  `yaml:"position_size_policy" json:"position_size_policy"`
	PositionSize   float64 `yaml:"position_size" json:"position_size"`
	CommissionRate float64 `yaml:"commission_rate" json:"commission_rate"`
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital"`
}

// Default returns a baseline daily SOL configuration.
func Default() Config {
	return Config{
		Symbol:          "SOL",
		StrategyMode:    "combined",
		RsiPeriod:       14,
		RsiOversold:     30,
		RsiOverbought:   70,
		BollingerPeriod: 20,
		BollingerStdDev: 2.0,
		SizingPolicy:    SizingNotional,
		PositionSize:    500,
		CommissionRate:  0.001,
		InitialCapital:  10000,
	}
}

// Load reads a yaml config file, starting from defaults so partial files
// stay usable.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	return config, nil
}
