package vajra

import "github.com/solquant/vajra/models"

// Signal generation is edge-triggered: a strategy fires on the bar where a
// threshold is crossed, not on every bar spent beyond it. All rules look at
// the current and previous readings only, so the signal at bar i is
// unchanged by anything after bar i.

// rsiSignal buys when RSI crosses up through the oversold threshold and
// sells when it crosses down through the overbought threshold.
func rsiSignal(prev, cur models.Reading, oversold, overbought float64) models.Signal {
	if !prev.RsiValid || !cur.RsiValid {
		return models.Hold
	}
	if prev.Rsi < oversold && cur.Rsi >= oversold {
		return models.Buy
	}
	if prev.Rsi > overbought && cur.Rsi <= overbought {
		return models.Sell
	}
	return models.Hold
}

// bollingerSignal buys on a close crossing below the lower band. The exit
// rule is mid-band reversion or upper-band breakout: sell when the close
// crosses up through the mid band or up through the upper band. The same
// rule applies to every run so results stay comparable across strategies.
func bollingerSignal(prevClose, curClose float64, prev, cur models.Reading) models.Signal {
	if !prev.BandsValid || !cur.BandsValid {
		return models.Hold
	}
	if prevClose >= prev.BBLower && curClose < cur.BBLower {
		return models.Buy
	}
	if prevClose <= prev.BBMid && curClose > cur.BBMid {
		return models.Sell
	}
	if prevClose <= prev.BBUpper && curClose > cur.BBUpper {
		return models.Sell
	}
	return models.Hold
}

// combinedSignal trades only when both strategies independently agree on the
// same non-hold direction.
func combinedSignal(rsi, bollinger models.Signal) models.Signal {
	if rsi == bollinger {
		return rsi
	}
	return models.Hold
}

// signalAt computes the signal for bar i. i must be >= 1 so a previous
// reading exists for crossover detection.
func (bt *Backtest) signalAt(i int, bars []*models.Bar, readings []models.Reading) models.Signal {
	prev, cur := readings[i-1], readings[i]
	switch bt.mode {
	case models.ModeRsi:
		return rsiSignal(prev, cur, bt.config.RsiOversold, bt.config.RsiOverbought)
	case models.ModeBollinger:
		return bollingerSignal(bars[i-1].Close, bars[i].Close, prev, cur)
	default:
		rsi := rsiSignal(prev, cur, bt.config.RsiOversold, bt.config.RsiOverbought)
		bb := bollingerSignal(bars[i-1].Close, bars[i].Close, prev, cur)
		return combinedSignal(rsi, bb)
	}
}
