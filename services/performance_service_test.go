package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
)

func TestAggregate(t *testing.T) {
	base := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)
	result := analytics.NewBacktestResult()
	result.Trades = []models.SimulatedTrade{
		{SignalID: models.SignalS1, ExitTime: base, NetPnL: 1000, Success: true},
		{SignalID: models.SignalS3, ExitTime: base.AddDate(0, 0, 7), NetPnL: -500, Success: false},
		{SignalID: models.SignalS1, ExitTime: base.AddDate(0, 0, 14), NetPnL: 200, Success: true},
	}

	pa := NewPerformanceAggregator()
	pa.Aggregate(&result, 100000)

	assert.Equal(t, 3, result.TotalTrades)
	assert.Equal(t, 2, result.WinningTrades)
	assert.Equal(t, 1, result.LosingTrades)
	assert.InDelta(t, 66.667, result.WinRate, 0.001)
	assert.Equal(t, 700.0, result.TotalPnL)
	assert.InDelta(t, 233.333, result.AveragePnL, 0.001)
	assert.Equal(t, 1000.0, result.MaxProfit)
	assert.Equal(t, -500.0, result.MaxLoss)
	// peak 1000 after the first trade, trough 500 after the second
	assert.Equal(t, 500.0, result.MaxDrawdown)
	assert.Equal(t, 100000.0, result.InitialCapital)
	assert.Equal(t, 100700.0, result.FinalCapital)

	s1 := result.SignalBreakdown[models.SignalS1]
	assert.Equal(t, 2, s1.TotalTrades)
	assert.Equal(t, 2, s1.WinningTrades)
	assert.Equal(t, 100.0, s1.WinRate)
	assert.Equal(t, 1200.0, s1.TotalPnL)

	s3 := result.SignalBreakdown[models.SignalS3]
	assert.Equal(t, 1, s3.TotalTrades)
	assert.Equal(t, 0.0, s3.WinRate)
	assert.Equal(t, -500.0, s3.TotalPnL)
}

func TestAggregateEmptyRun(t *testing.T) {
	result := analytics.NewBacktestResult()

	pa := NewPerformanceAggregator()
	pa.Aggregate(&result, 100000)

	assert.Equal(t, 0, result.TotalTrades)
	assert.Equal(t, 0.0, result.TotalPnL)
	assert.Equal(t, 100000.0, result.FinalCapital)
	assert.Empty(t, result.SignalBreakdown)
}
