package models

import "time"

// OptionTick is one recorded option print, keyed by trading symbol. The
// synthetic index builder consumes these when no index data exists.
type OptionTick struct {
	TradingSymbol string
	Timestamp     time.Time
	LastPrice     float64
	Volume        int64
}
