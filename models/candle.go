package models

import "time"

// Interval identifies the bar granularity requested from a CandleProvider.
type Interval string

const (
	Interval60Minute Interval = "60minute"
	IntervalDay      Interval = "day"
)

// Candle is a single immutable price bar. Series are ordered by Timestamp,
// strictly ascending.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// IsGreen returns true if the candle closed above its open
func (c Candle) IsGreen() bool {
	return c.Close > c.Open
}

// IsRed returns true if the candle closed below its open
func (c Candle) IsRed() bool {
	return c.Close < c.Open
}

// Body returns the absolute open-close distance
func (c Candle) Body() float64 {
	if c.Open > c.Close {
		return c.Open - c.Close
	}
	return c.Close - c.Open
}
