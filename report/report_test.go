package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solquant/vajra/models"
)

func sampleResult(mode models.StrategyMode) *models.Result {
	return &models.Result{
		Mode:   mode,
		Symbol: "SOL",
		Metrics: models.Metrics{
			TotalTrades:   2,
			WinningTrades: 1,
			LosingTrades:  1,
			WinRate:       0.5,
			TotalPnl:      7.5,
			SharpeRatio:   1.2,
			MaxDrawdown:   0.03,
			AverageWin:    10,
			AverageLoss:   -2.5,
			LargestWin:    10,
			LargestLoss:   -2.5,
		},
		Trades: []models.Trade{
			{EntryTime: 1, ExitTime: 2, EntryPrice: 100, ExitPrice: 110, Size: 1, GrossPnl: 10, NetPnl: 10},
			{EntryTime: 3, ExitTime: 4, EntryPrice: 110, ExitPrice: 107.5, Size: 1, GrossPnl: -2.5, NetPnl: -2.5, Forced: true},
		},
		Equity: []models.EquityPoint{
			{Timestamp: 2, NetPnl: 10},
			{Timestamp: 4, NetPnl: 7.5},
		},
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleResult(models.ModeRsi))

	out := buf.String()
	assert.Contains(t, out, "RSI Strategy Results (SOL)")
	assert.Contains(t, out, "Total Trades:")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "$7.50")
	assert.Contains(t, out, "3.00%")
}

func TestCompare(t *testing.T) {
	var buf bytes.Buffer
	Compare(&buf, sampleResult(models.ModeRsi), sampleResult(models.ModeBollinger))

	out := buf.String()
	assert.Contains(t, out, "Strategy Comparison")
	assert.Contains(t, out, "RSI Strategy")
	assert.Contains(t, out, "Bollinger Bands Strategy")
	assert.Contains(t, out, "vs")
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportCSV(dir, sampleResult(models.ModeCombined)))

	trades, err := os.ReadFile(filepath.Join(dir, "combined_trades.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(trades), "entry_price")
	assert.Contains(t, string(trades), "110")

	equity, err := os.ReadFile(filepath.Join(dir, "combined_equity.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(equity), "cumulative_net_pnl")
}

func TestLogBacktestNoTargetIsNoop(t *testing.T) {
	t.Setenv("VAJRA_BACKTEST_DB_URL", "")
	assert.NoError(t, LogBacktest(sampleResult(models.ModeRsi)))
}
