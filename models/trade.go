package models

// Position is the single open long the simulator may hold. Size is in units
// of the traded asset.
type Position struct {
	EntryPrice float64
	EntryTime  int64
	Size       float64
}

// Trade is a completed round trip. Immutable once the position closes.
type Trade struct {
	EntryTime       int64   `csv:"entry_time"`
	ExitTime        int64   `csv:"exit_time"`
	EntryPrice      float64 `csv:"entry_price"`
	ExitPrice       float64 `csv:"exit_price"`
	Size            float64 `csv:"size"`
	GrossPnl        float64 `csv:"gross_pnl"`
	CommissionEntry float64 `csv:"commission_entry"`
	CommissionExit  float64 `csv:"commission_exit"`
	NetPnl          float64 `csv:"net_pnl"`
	Forced          bool    `csv:"forced"`
}

// EquityPoint records cumulative net PnL at a trade's exit. The drawdown
// calculation walks these points against the configured initial capital.
type EquityPoint struct {
	Timestamp int64   `csv:"timestamp"`
	NetPnl    float64 `csv:"cumulative_net_pnl"`
}
