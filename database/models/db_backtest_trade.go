package database

import (
	"time"

	"gorm.io/gorm"
)

// BacktestTrade is one persisted simulated round trip
type BacktestTrade struct {
	gorm.Model
	BacktestRunID   uint
	WeekStart       time.Time
	SignalID        string
	SignalName      string
	OptionType      string
	MainSymbol      string
	HedgeSymbol     string
	MainStrike      int
	HedgeStrike     int
	TriggerTime     time.Time
	ExitTime        time.Time
	MainEntryPrice  float64
	HedgeEntryPrice float64
	MainExitPrice   float64
	HedgeExitPrice  float64
	StopLossLevel   float64
	Quantity        int
	MainPnL         float64 `gorm:"column:main_pnl"`
	HedgePnL        float64 `gorm:"column:hedge_pnl"`
	NetPnL          float64 `gorm:"column:net_pnl"`
	ExitReason      string
	Success         bool
}
