package models

// Reading holds the indicator values aligned to a single bar. Values inside
// an indicator's warm-up window are absent, flagged by the Valid fields,
// never reported as zero.
type Reading struct {
	Timestamp int64

	Rsi      float64
	RsiValid bool

	BBUpper    float64
	BBMid      float64
	BBLower    float64
	BandsValid bool
}
