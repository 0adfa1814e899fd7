package analytics

import (
	"time"

	"github.com/naveenvino/OptionSellerBot/models"
)

// SignalStats are the per-rule aggregates of a backtest run
type SignalStats struct {
	TotalTrades   int
	WinningTrades int
	WinRate       float64
	TotalPnL      float64
	AveragePnL    float64
}

// BacktestResult is the full rollup over a date range. Derived from the trade
// list in one pass, never mutated incrementally.
type BacktestResult struct {
	FromDate        time.Time
	ToDate          time.Time
	Strategy        string
	TotalTrades     int
	WinningTrades   int
	LosingTrades    int
	WinRate         float64
	TotalPnL        float64
	AveragePnL      float64
	MaxProfit       float64
	MaxLoss         float64
	MaxDrawdown     float64
	InitialCapital  float64
	FinalCapital    float64
	Trades          []models.SimulatedTrade
	SignalBreakdown map[models.SignalID]SignalStats
}

func NewBacktestResult() BacktestResult {
	return BacktestResult{
		SignalBreakdown: make(map[models.SignalID]SignalStats),
	}
}
