package models

import "time"

// SignalMode selects which of the parallel backtest flavours drives the run
type SignalMode string

const (
	// SignalModePure1H folds one continuous 1H index stream; zones come from
	// the prior week's hourly bars.
	SignalModePure1H SignalMode = "pure-1h"
	// SignalModeHourly walks Monday week starts; zones come from the prior
	// week's daily bars.
	SignalModeHourly SignalMode = "hourly"
	// SignalModeSynthetic runs pure-1h over index candles reconstructed from
	// ATM option prices.
	SignalModeSynthetic SignalMode = "synthetic"
)

// BacktestRequest are the parameters of one backtest run
type BacktestRequest struct {
	FromDate       time.Time
	ToDate         time.Time
	Underlying     string
	Mode           SignalMode
	LotSize        int
	HedgePoints    int
	InitialCapital float64
}

// NewBacktestRequest fills the defaults the dashboards assume
func NewBacktestRequest(from, to time.Time) BacktestRequest {
	return BacktestRequest{
		FromDate:       from,
		ToDate:         to,
		Underlying:     "NIFTY",
		Mode:           SignalModePure1H,
		LotSize:        50,
		HedgePoints:    300,
		InitialCapital: 100000,
	}
}
