package models

// Metrics are the headline statistics of one backtest. Every field is
// recomputed from the trade list and equity curve after the run; nothing is
// accumulated incrementally.
type Metrics struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	TotalPnl      float64
	SharpeRatio   float64
	MaxDrawdown   float64
	AverageWin    float64
	AverageLoss   float64
	LargestWin    float64
	LargestLoss   float64
}

// Result contains everything a backtest hands to the report layer: the
// metrics plus the raw trades and equity curve as plain data.
type Result struct {
	Mode    StrategyMode
	Symbol  string
	Metrics Metrics
	Trades  []Trade
	Equity  []EquityPoint
}
