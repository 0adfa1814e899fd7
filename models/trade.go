package models

import "time"

// ExitReason tells how a simulated position was closed
type ExitReason string

const (
	ExitReasonStopLoss  ExitReason = "STOP_LOSS"
	ExitReasonExpiryWin ExitReason = "EXPIRY_WIN"
)

// SimulatedTrade is one round trip produced by the trade simulator: a sold
// main leg plus a bought hedge leg, created at signal time and completed
// exactly once at exit.
type SimulatedTrade struct {
	WeekStart       time.Time
	SignalID        SignalID
	SignalName      string
	TriggerTime     time.Time
	ExitTime        time.Time
	MainSymbol      string
	HedgeSymbol     string
	MainStrike      int
	HedgeStrike     int
	OptionType      OptionType
	MainEntryPrice  float64
	HedgeEntryPrice float64
	MainExitPrice   float64
	HedgeExitPrice  float64
	StopLossLevel   float64
	Quantity        int
	NetPnL          float64
	MainPnL         float64
	HedgePnL        float64
	ExitReason      ExitReason
	Success         bool
}
