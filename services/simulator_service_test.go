package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/providers/paper"
)

func TestExecuteSignalTradeExpiryWin(t *testing.T) {
	weekStart := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	entryTime := weekStart.Add(10*time.Hour + 15*time.Minute)
	expiry := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)

	provider := paper.NewPaperService()
	provider.SetQuote("NIFTY2571722400PE", entryTime, 100)
	provider.SetQuote("NIFTY2571722100PE", entryTime, 20)
	provider.SetQuote("NIFTY2571722400PE", expiry, 80)
	provider.SetQuote("NIFTY2571722100PE", expiry, 15)

	signal := models.Signal{
		SignalID:      models.SignalS2,
		SignalName:    "Support Hold (Bullish)",
		Timestamp:     entryTime,
		Direction:     1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   22400,
		StopLossPrice: 200,
		Confidence:    0.85,
	}

	weekBars := []models.Candle{
		hourlyBar(weekStart.Add(9*time.Hour+15*time.Minute), 0, 22400, 22420, 22380, 22410),
		hourlyBar(weekStart.Add(9*time.Hour+15*time.Minute), 1, 22410, 22430, 22400, 22420),
		hourlyBar(weekStart.Add(9*time.Hour+15*time.Minute), 2, 22420, 22440, 22410, 22430),
	}

	ts := NewTradeSimulator(provider, NewFixedPointsHedge(300))
	trade := ts.ExecuteSignalTrade(signal, weekStart, weekBars, "NIFTY", 50)

	assert.NotNil(t, trade)
	assert.Equal(t, "NIFTY2571722400PE", trade.MainSymbol)
	assert.Equal(t, "NIFTY2571722100PE", trade.HedgeSymbol)
	assert.Equal(t, 22400, trade.MainStrike)
	assert.Equal(t, 22100, trade.HedgeStrike)
	assert.Equal(t, models.ExitReasonExpiryWin, trade.ExitReason)
	assert.Equal(t, expiry, trade.ExitTime)
	assert.Equal(t, 1000.0, trade.MainPnL)
	assert.Equal(t, -250.0, trade.HedgePnL)
	assert.Equal(t, 750.0, trade.NetPnL)
	assert.True(t, trade.Success)
}

func TestExecuteSignalTradeStopLossBeatsRecovery(t *testing.T) {
	weekStart := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	open := weekStart.Add(9*time.Hour + 15*time.Minute)
	entryTime := open.Add(time.Hour)

	provider := paper.NewPaperService()
	main := "NIFTY2571722400PE"
	hedge := "NIFTY2571722100PE"
	provider.SetQuote(main, entryTime, 100)
	provider.SetQuote(hedge, entryTime, 20)
	provider.SetQuote(main, open.Add(2*time.Hour), 120)
	provider.SetQuote(hedge, open.Add(2*time.Hour), 25)
	// breaches the stop here
	provider.SetQuote(main, open.Add(3*time.Hour), 155)
	provider.SetQuote(hedge, open.Add(3*time.Hour), 30)
	// recovery after the breach must not matter
	provider.SetQuote(main, open.Add(4*time.Hour), 60)
	provider.SetQuote(hedge, open.Add(4*time.Hour), 18)

	signal := models.Signal{
		SignalID:      models.SignalS3,
		Timestamp:     entryTime,
		Direction:     -1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   22400,
		StopLossPrice: 150,
	}

	var weekBars []models.Candle
	for i := 0; i < 6; i++ {
		weekBars = append(weekBars, hourlyBar(open, i, 22400, 22420, 22380, 22410))
	}

	ts := NewTradeSimulator(provider, NewFixedPointsHedge(300))
	trade := ts.ExecuteSignalTrade(signal, weekStart, weekBars, "NIFTY", 50)

	assert.NotNil(t, trade)
	assert.Equal(t, models.ExitReasonStopLoss, trade.ExitReason)
	assert.Equal(t, open.Add(3*time.Hour), trade.ExitTime)
	assert.Equal(t, 155.0, trade.MainExitPrice)
	assert.Equal(t, 30.0, trade.HedgeExitPrice)
	assert.Equal(t, -2750.0, trade.MainPnL)
	assert.Equal(t, 500.0, trade.HedgePnL)
	assert.Equal(t, -2250.0, trade.NetPnL)
	assert.False(t, trade.Success)
}

func TestExecuteSignalTradeRollsExpiryForLateSignal(t *testing.T) {
	weekStart := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	// Friday, after Thursday square-off
	entryTime := weekStart.AddDate(0, 0, 4).Add(10*time.Hour + 15*time.Minute)

	provider := paper.NewPaperService()
	provider.SetQuote("NIFTY2572422400PE", entryTime, 100)
	provider.SetQuote("NIFTY2572422100PE", entryTime, 20)

	signal := models.Signal{
		SignalID:      models.SignalS7,
		Timestamp:     entryTime,
		OptionType:    models.OptionTypePE,
		StrikePrice:   22400,
		StopLossPrice: 500,
	}

	ts := NewTradeSimulator(provider, NewFixedPointsHedge(300))
	trade := ts.ExecuteSignalTrade(signal, weekStart, nil, "NIFTY", 50)

	assert.NotNil(t, trade)
	assert.Equal(t, "NIFTY2572422400PE", trade.MainSymbol)
	assert.Equal(t, time.Date(2025, 7, 24, 15, 30, 0, 0, time.UTC), trade.ExitTime)
	// nothing quoted at the rolled expiry, both legs square off at the
	// nominal expired premium
	assert.Equal(t, 0.1, trade.MainExitPrice)
	assert.Equal(t, 0.1, trade.HedgeExitPrice)
}

func TestExecuteSignalTradeSkipsWithoutEntryPrice(t *testing.T) {
	weekStart := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	signal := models.Signal{
		SignalID:    models.SignalS1,
		Timestamp:   weekStart.Add(10 * time.Hour),
		OptionType:  models.OptionTypePE,
		StrikePrice: 22400,
	}

	ts := NewTradeSimulator(paper.NewPaperService(), NewFixedPointsHedge(300))
	assert.Nil(t, ts.ExecuteSignalTrade(signal, weekStart, nil, "NIFTY", 50))
}
