package vajra

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/solquant/vajra/models"
)

// sharpeAnnualization converts per-trade statistics on daily bars to an
// annual figure. Held constant for every strategy so cross-strategy
// comparison stays valid.
const sharpeAnnualization = 365

// computeMetrics reduces the closed trade list and equity curve to the
// headline statistics. Pure function of its inputs; every degenerate case
// (no trades, zero variance, flat curve) maps to a defined zero, never to
// NaN or an error.
func computeMetrics(trades []models.Trade, equity []models.EquityPoint, initialCapital float64) models.Metrics {
	var m models.Metrics
	m.TotalTrades = len(trades)

	var winSum, lossSum float64
	for _, trade := range trades {
		m.TotalPnl += trade.NetPnl
		if trade.NetPnl > 0 {
			m.WinningTrades++
			winSum += trade.NetPnl
			if trade.NetPnl > m.LargestWin {
				m.LargestWin = trade.NetPnl
			}
		} else {
			m.LosingTrades++
			lossSum += trade.NetPnl
			if trade.NetPnl < m.LargestLoss {
				m.LargestLoss = trade.NetPnl
			}
		}
	}
	if m.TotalTrades > 0 {
		m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades)
	}
	if m.WinningTrades > 0 {
		m.AverageWin = winSum / float64(m.WinningTrades)
	}
	if m.LosingTrades > 0 {
		m.AverageLoss = lossSum / float64(m.LosingTrades)
	}
	m.SharpeRatio = sharpeRatio(trades)
	m.MaxDrawdown = maxDrawdown(equity, initialCapital)
	return m
}

// sharpeRatio is the mean per-trade net return over its population standard
// deviation, annualized by √365. Defined as 0 below two trades or at zero
// variance.
func sharpeRatio(trades []models.Trade) float64 {
	if len(trades) < 2 {
		return 0
	}
	returns := make([]float64, len(trades))
	for i, trade := range trades {
		returns[i] = trade.NetPnl / (trade.EntryPrice * trade.Size)
	}
	mean := stat.Mean(returns, nil)
	std := stat.PopStdDev(returns, nil)
	if std == 0 {
		return 0
	}
	return mean / std * math.Sqrt(sharpeAnnualization)
}

// maxDrawdown is the worst decline from a running equity peak, as a fraction
// of that peak. Equity is initial capital plus cumulative net PnL.
func maxDrawdown(equity []models.EquityPoint, initialCapital float64) float64 {
	peak := initialCapital
	drawdown := 0.0
	for _, point := range equity {
		value := initialCapital + point.NetPnl
		if value > peak {
			peak = value
		}
		if peak > 0 {
			if dd := (peak - value) / peak; dd > drawdown {
				drawdown = dd
			}
		}
	}
	return drawdown
}
