package services

import (
	"sort"

	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
)

// PerformanceAggregator rolls a trade list up into the run-level metrics.
// Stateless: every call recomputes from scratch.
type PerformanceAggregator struct{}

func NewPerformanceAggregator() PerformanceAggregator {
	return PerformanceAggregator{}
}

// Aggregate fills the metric fields of a result whose Trades list is already
// populated. Drawdown is tracked against the running P&L peak in
// exit-time order.
func (pa PerformanceAggregator) Aggregate(result *analytics.BacktestResult, initialCapital float64) {
	result.InitialCapital = initialCapital
	result.FinalCapital = initialCapital
	result.SignalBreakdown = make(map[models.SignalID]analytics.SignalStats)

	if len(result.Trades) == 0 {
		return
	}

	byExit := make([]models.SimulatedTrade, len(result.Trades))
	copy(byExit, result.Trades)
	sort.Slice(byExit, func(i, j int) bool {
		return byExit[i].ExitTime.Before(byExit[j].ExitTime)
	})

	result.TotalTrades = len(byExit)
	result.MaxProfit = byExit[0].NetPnL
	result.MaxLoss = byExit[0].NetPnL

	runningPnL := 0.0
	peak := 0.0
	for _, trade := range byExit {
		if trade.Success {
			result.WinningTrades++
		} else {
			result.LosingTrades++
		}
		result.TotalPnL += trade.NetPnL
		if trade.NetPnL > result.MaxProfit {
			result.MaxProfit = trade.NetPnL
		}
		if trade.NetPnL < result.MaxLoss {
			result.MaxLoss = trade.NetPnL
		}

		runningPnL += trade.NetPnL
		if runningPnL > peak {
			peak = runningPnL
		}
		if drawdown := peak - runningPnL; drawdown > result.MaxDrawdown {
			result.MaxDrawdown = drawdown
		}

		stats := result.SignalBreakdown[trade.SignalID]
		stats.TotalTrades++
		if trade.Success {
			stats.WinningTrades++
		}
		stats.TotalPnL += trade.NetPnL
		result.SignalBreakdown[trade.SignalID] = stats
	}

	result.WinRate = float64(result.WinningTrades) / float64(result.TotalTrades) * 100
	result.AveragePnL = result.TotalPnL / float64(result.TotalTrades)
	result.FinalCapital = initialCapital + result.TotalPnL

	for id, stats := range result.SignalBreakdown {
		stats.WinRate = float64(stats.WinningTrades) / float64(stats.TotalTrades) * 100
		stats.AveragePnL = stats.TotalPnL / float64(stats.TotalTrades)
		result.SignalBreakdown[id] = stats
	}
}
