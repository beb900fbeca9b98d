package vajra

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solquant/vajra/models"
	"github.com/solquant/vajra/settings"
	"github.com/solquant/vajra/ta"
)

// positionState is the simulator's explicit two-state machine. The Position
// value is meaningful only while inPosition.
type positionState int

const (
	flat positionState = iota
	inPosition
)

// Run walks the price series in time order, consumes signals and materializes
// trades. The engine performs no I/O and reads no clock inside the loop, so
// two runs over the same series and config produce bit-identical results.
func (bt *Backtest) Run(bars []*models.Bar) (*models.Result, error) {
	if err := bt.validateSeries(bars); err != nil {
		return nil, err
	}
	start := time.Now()
	log.Debug().Str("mode", string(bt.mode)).Int("bars", len(bars)).Msg("running backtest")

	readings := bt.readingsFor(bars)

	state := flat
	var position models.Position
	var trades []models.Trade
	var equity []models.EquityPoint
	cumulative := 0.0

	for i := 1; i < len(bars); i++ {
		signal := bt.signalAt(i, bars, readings)
		switch state {
		case flat:
			// Sell signals while flat are ignored: the engine models long
			// entries only, no short-selling.
			if signal == models.Buy {
				position = bt.openPosition(bars[i])
				state = inPosition
			}
		case inPosition:
			// Buy signals while in a position are ignored: no pyramiding,
			// no averaging-in.
			if signal == models.Sell {
				trade := bt.closePosition(position, bars[i], false)
				cumulative += trade.NetPnl
				trades = append(trades, trade)
				equity = append(equity, models.EquityPoint{Timestamp: trade.ExitTime, NetPnl: cumulative})
				state = flat
			}
		}
	}

	// A series that ends while in a position force-closes at the last
	// available price. The forced exit counts as a trade like any other.
	if state == inPosition {
		last := bars[len(bars)-1]
		trade := bt.closePosition(position, last, true)
		cumulative += trade.NetPnl
		trades = append(trades, trade)
		equity = append(equity, models.EquityPoint{Timestamp: trade.ExitTime, NetPnl: cumulative})
		log.Debug().Int64("timestamp", last.Timestamp).Float64("price", last.Close).Msg("force closed open position at end of series")
	}

	result := &models.Result{
		Mode:    bt.mode,
		Symbol:  bt.config.Symbol,
		Metrics: computeMetrics(trades, equity, bt.config.InitialCapital),
		Trades:  trades,
		Equity:  equity,
	}
	log.Debug().Int("trades", len(trades)).Dur("elapsed", time.Since(start)).Msg("backtest finished")
	return result, nil
}

func (bt *Backtest) openPosition(bar *models.Bar) models.Position {
	size := bt.config.PositionSize
	if bt.config.SizingPolicy == settings.SizingNotional {
		size = bt.config.PositionSize / bar.Close
	}
	return models.Position{
		EntryPrice: bar.Close,
		EntryTime:  bar.Timestamp,
		Size:       size,
	}
}

func (bt *Backtest) closePosition(position models.Position, bar *models.Bar, forced bool) models.Trade {
	gross := (bar.Close - position.EntryPrice) * position.Size
	entryFee := bt.config.CommissionRate * position.EntryPrice * position.Size
	exitFee := bt.config.CommissionRate * bar.Close * position.Size
	return models.Trade{
		EntryTime:       position.EntryTime,
		ExitTime:        bar.Timestamp,
		EntryPrice:      position.EntryPrice,
		ExitPrice:       bar.Close,
		Size:            position.Size,
		GrossPnl:        gross,
		CommissionEntry: entryFee,
		CommissionExit:  exitFee,
		NetPnl:          gross - entryFee - exitFee,
		Forced:          forced,
	}
}

func (bt *Backtest) readingsFor(bars []*models.Bar) []models.Reading {
	return ta.Readings(bars, bt.config.RsiPeriod, bt.config.BollingerPeriod, bt.config.BollingerStdDev)
}

// warmupIndex is the first bar index with a defined reading for the active
// mode.
func (bt *Backtest) warmupIndex() int {
	rsi := bt.config.RsiPeriod
	bands := bt.config.BollingerPeriod - 1
	switch bt.mode {
	case models.ModeRsi:
		return rsi
	case models.ModeBollinger:
		return bands
	default:
		if bands > rsi {
			return bands
		}
		return rsi
	}
}

// validateSeries rejects series the engine cannot produce honest metrics
// for. Two consecutive defined readings are needed before any crossover can
// fire.
func (bt *Backtest) validateSeries(bars []*models.Bar) error {
	if len(bars) == 0 {
		return &DataError{Kind: EmptySeries}
	}
	required := bt.warmupIndex() + 2
	if len(bars) < required {
		return &DataError{Kind: InsufficientData, Len: len(bars), Required: required}
	}
	for i := 1; i < len(bars); i++ {
		if bars[i].Timestamp <= bars[i-1].Timestamp {
			return &DataError{Kind: UnorderedSeries}
		}
	}
	return nil
}
