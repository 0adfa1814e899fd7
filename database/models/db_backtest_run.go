package database

import (
	"time"

	"gorm.io/gorm"
)

// BacktestRun is one persisted backtest execution with its aggregates
type BacktestRun struct {
	gorm.Model
	Strategy       string
	Underlying     string
	Mode           string
	FromDate       time.Time
	ToDate         time.Time
	TotalTrades    int
	WinningTrades  int
	LosingTrades   int
	WinRate        float64
	TotalPnL       float64 `gorm:"column:total_pnl"`
	AveragePnL     float64 `gorm:"column:average_pnl"`
	MaxDrawdown    float64
	InitialCapital float64
	FinalCapital   float64
	Trades         []BacktestTrade
}
