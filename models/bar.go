package models

import "time"

// Bar is a single point of the price series. Timestamp is unix milliseconds.
type Bar struct {
	Timestamp int64   `csv:"timestamp" db:"timestamp"`
	Open      float64 `csv:"open" db:"open"`
	High      float64 `csv:"high" db:"high"`
	Low       float64 `csv:"low" db:"low"`
	Close     float64 `csv:"close" db:"close"`
	Volume    float64 `csv:"volume" db:"volume"`
}

func (b Bar) Time() time.Time {
	return time.Unix(b.Timestamp/1000, 0).UTC()
}

// CloseSeries breaks bars down into the close array the indicators consume.
func CloseSeries(bars []*Bar) []float64 {
	close := make([]float64, len(bars))
	for i := range bars {
		close[i] = bars[i].Close
	}
	return close
}
