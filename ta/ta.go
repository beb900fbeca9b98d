// Package ta provides the technical analysis indicators used by the backtest
// engine, usable on any close series without additional logic, using
// github.com/markcheno/go-talib.
package ta

import (
	talib "github.com/markcheno/go-talib"

	"github.com/solquant/vajra/models"
)

// Rsi calculates the RSI for a given time period. Scales from 0-100 where 70
// usually signals an overbought market and 30 an oversold market. A window
// with zero average loss yields 100, not a division error. The first
// inTimePeriod values are warm-up and carry no meaning.
func Rsi(close []float64, inTimePeriod int) []float64 {
	return talib.Rsi(close, inTimePeriod)
}

// BBands calculates the upper, middle and lower Bollinger bands for a given
// time period and band width in standard deviations, with an SMA midline.
// The first inTimePeriod-1 values are warm-up.
func BBands(close []float64, inTimePeriod int, numStdDev float64) ([]float64, []float64, []float64) {
	return talib.BBands(close, inTimePeriod, numStdDev, numStdDev, talib.SMA)
}

// Sma calculates a simple moving average over the given time period.
func Sma(close []float64, inTimePeriod int) []float64 {
	return talib.Sma(close, inTimePeriod)
}

// Readings aligns one Reading to every bar. Indices inside an indicator's
// warm-up window have the matching Valid flag unset: RSI is defined from
// index rsiPeriod, the bands from index bbPeriod-1.
func Readings(bars []*models.Bar, rsiPeriod, bbPeriod int, bbStdDev float64) []models.Reading {
	close := models.CloseSeries(bars)
	rsi := Rsi(close, rsiPeriod)
	upper, mid, lower := BBands(close, bbPeriod, bbStdDev)

	readings := make([]models.Reading, len(bars))
	for i := range bars {
		r := models.Reading{Timestamp: bars[i].Timestamp}
		if i >= rsiPeriod {
			r.Rsi = rsi[i]
			r.RsiValid = true
		}
		if i >= bbPeriod-1 {
			r.BBUpper = upper[i]
			r.BBMid = mid[i]
			r.BBLower = lower[i]
			r.BandsValid = true
		}
		readings[i] = r
	}
	return readings
}
