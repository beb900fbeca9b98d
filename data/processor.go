package data

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/solquant/vajra/models"
	"github.com/solquant/vajra/ta"
)

const (
	volatilityWindow = 20
	outlierZScore    = 4.0
)

// Snapshot is one bar annotated with the monitoring indicators. Warm-up
// values are absent, flagged by the Valid fields.
type Snapshot struct {
	Bar *models.Bar

	MA5        float64
	MA5Valid   bool
	MA20       float64
	MA20Valid  bool
	Rsi14      float64
	Rsi14Valid bool
	Volatility float64
	VolValid   bool
	Outlier    bool
}

// Processor keeps a rolling close history and annotates incoming bars with
// moving averages, RSI, volatility and an outlier flag. Used by the market
// monitor, not by the backtest engine.
type Processor struct {
	history    []float64
	maxHistory int
}

func NewProcessor(maxHistory int) *Processor {
	return &Processor{maxHistory: maxHistory}
}

// Process appends the bar to the rolling history and computes the snapshot.
func (p *Processor) Process(bar *models.Bar) Snapshot {
	outlier := p.isOutlier(bar.Close)
	p.history = append(p.history, bar.Close)
	if len(p.history) > p.maxHistory {
		p.history = p.history[len(p.history)-p.maxHistory:]
	}

	snapshot := Snapshot{Bar: bar, Outlier: outlier}
	snapshot.MA5, snapshot.MA5Valid = p.sma(5)
	snapshot.MA20, snapshot.MA20Valid = p.sma(20)
	snapshot.Rsi14, snapshot.Rsi14Valid = p.rsi(14)
	snapshot.Volatility, snapshot.VolValid = p.volatility()
	return snapshot
}

// ProcessAll runs Process over a whole series in order.
func (p *Processor) ProcessAll(bars []*models.Bar) []Snapshot {
	snapshots := make([]Snapshot, len(bars))
	for i, bar := range bars {
		snapshots[i] = p.Process(bar)
	}
	return snapshots
}

func (p *Processor) sma(period int) (float64, bool) {
	if len(p.history) < period {
		return 0, false
	}
	window := p.history[len(p.history)-period:]
	return stat.Mean(window, nil), true
}

func (p *Processor) rsi(period int) (float64, bool) {
	if len(p.history) < period+1 {
		return 0, false
	}
	values := ta.Rsi(p.history, period)
	return values[len(values)-1], true
}

// volatility is the sample standard deviation of the trailing window of
// closes.
func (p *Processor) volatility() (float64, bool) {
	if len(p.history) < volatilityWindow {
		return 0, false
	}
	window := p.history[len(p.history)-volatilityWindow:]
	return stat.StdDev(window, nil), true
}

// isOutlier flags a close whose z-score against the trailing window exceeds
// the threshold. Evaluated before the close joins the history.
func (p *Processor) isOutlier(close float64) bool {
	vol, ok := p.volatility()
	if !ok || vol == 0 {
		return false
	}
	window := p.history
	if len(window) > volatilityWindow {
		window = window[len(window)-volatilityWindow:]
	}
	mean := stat.Mean(window, nil)
	return math.Abs(close-mean)/vol > outlierZScore
}
