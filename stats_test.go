package vajra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solquant/vajra/models"
)

func TestComputeMetricsNoTrades(t *testing.T) {
	m := computeMetrics(nil, nil, 10000)
	assert.Equal(t, models.Metrics{}, m)
}

func TestComputeMetricsKnownTrades(t *testing.T) {
	trades := []models.Trade{
		{EntryPrice: 100, Size: 1, NetPnl: 10},
		{EntryPrice: 100, Size: 1, NetPnl: -5},
		{EntryPrice: 100, Size: 1, NetPnl: 20},
	}
	equity := []models.EquityPoint{
		{Timestamp: 1, NetPnl: 10},
		{Timestamp: 2, NetPnl: 5},
		{Timestamp: 3, NetPnl: 25},
	}
	m := computeMetrics(trades, equity, 10000)

	assert.Equal(t, 3, m.TotalTrades)
	assert.Equal(t, 2, m.WinningTrades)
	assert.Equal(t, 1, m.LosingTrades)
	assert.InDelta(t, 2.0/3.0, m.WinRate, 1e-9)
	assert.InDelta(t, 25, m.TotalPnl, 1e-9)
	assert.InDelta(t, 15, m.AverageWin, 1e-9)
	assert.InDelta(t, -5, m.AverageLoss, 1e-9)
	assert.InDelta(t, 20, m.LargestWin, 1e-9)
	assert.InDelta(t, -5, m.LargestLoss, 1e-9)
	assert.GreaterOrEqual(t, m.WinRate, 0.0)
	assert.LessOrEqual(t, m.WinRate, 1.0)
}

// A break-even trade counts as a loss, never as a win.
func TestComputeMetricsBreakEvenTrade(t *testing.T) {
	trades := []models.Trade{{EntryPrice: 100, Size: 1, NetPnl: 0}}
	m := computeMetrics(trades, nil, 10000)
	assert.Equal(t, 0, m.WinningTrades)
	assert.Equal(t, 1, m.LosingTrades)
	assert.Equal(t, 0.0, m.WinRate)
}

func TestSharpeRatioKnownValue(t *testing.T) {
	// Per-trade returns of 1% and 3%: mean 0.02, population std 0.01.
	trades := []models.Trade{
		{EntryPrice: 100, Size: 1, NetPnl: 1},
		{EntryPrice: 100, Size: 1, NetPnl: 3},
	}
	want := 2 * math.Sqrt(365)
	assert.InDelta(t, want, sharpeRatio(trades), 1e-9)
}

func TestSharpeRatioDegenerateCases(t *testing.T) {
	assert.Equal(t, 0.0, sharpeRatio(nil))
	assert.Equal(t, 0.0, sharpeRatio([]models.Trade{{EntryPrice: 100, Size: 1, NetPnl: 5}}))

	identical := []models.Trade{
		{EntryPrice: 100, Size: 1, NetPnl: 5},
		{EntryPrice: 100, Size: 1, NetPnl: 5},
		{EntryPrice: 100, Size: 1, NetPnl: 5},
	}
	assert.Equal(t, 0.0, sharpeRatio(identical))
}

func TestMaxDrawdownMonotonicEquityIsZero(t *testing.T) {
	equity := []models.EquityPoint{
		{Timestamp: 1, NetPnl: 10},
		{Timestamp: 2, NetPnl: 25},
		{Timestamp: 3, NetPnl: 40},
	}
	assert.Equal(t, 0.0, maxDrawdown(equity, 10000))
}

func TestMaxDrawdownKnownValue(t *testing.T) {
	equity := []models.EquityPoint{
		{Timestamp: 1, NetPnl: 100},
		{Timestamp: 2, NetPnl: -100},
		{Timestamp: 3, NetPnl: 50},
	}
	// Peak 10100, trough 9900.
	assert.InDelta(t, 200.0/10100.0, maxDrawdown(equity, 10000), 1e-9)
}

func TestMaxDrawdownEmptyEquity(t *testing.T) {
	assert.Equal(t, 0.0, maxDrawdown(nil, 10000))
}
