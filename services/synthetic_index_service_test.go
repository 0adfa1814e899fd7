package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/providers/paper"
)

func TestBuildHourlyCandles(t *testing.T) {
	t0 := time.Date(2025, 7, 14, 9, 20, 0, 0, time.UTC)
	t1 := time.Date(2025, 7, 14, 9, 40, 0, 0, time.UTC)

	provider := paper.NewPaperService()
	seed := []models.OptionTick{
		{TradingSymbol: "NIFTY2571722400CE", Timestamp: t0, LastPrice: 150},
		{TradingSymbol: "NIFTY2571722400PE", Timestamp: t0, LastPrice: 120},
		{TradingSymbol: "NIFTY2571722600CE", Timestamp: t0, LastPrice: 60},
		{TradingSymbol: "NIFTY2571722200PE", Timestamp: t0, LastPrice: 70},
		{TradingSymbol: "NIFTY2571722400CE", Timestamp: t1, LastPrice: 170},
		{TradingSymbol: "NIFTY2571722400PE", Timestamp: t1, LastPrice: 120},
	}
	for _, tick := range seed {
		provider.AddOptionTick(tick)
	}

	ss := NewSyntheticIndexService(provider)
	candles, err := ss.BuildHourlyCandles("NIFTY", t0.AddDate(0, 0, -1), t1.AddDate(0, 0, 1))

	assert.NoError(t, err)
	assert.Len(t, candles, 1)
	// both estimates land in the 9:00 hour: 22400+(150-120) then 22400+(170-120)
	assert.Equal(t, time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC), candles[0].Timestamp)
	assert.Equal(t, 22430.0, candles[0].Open)
	assert.Equal(t, 22450.0, candles[0].Close)
	assert.Equal(t, 22450.0, candles[0].High)
	assert.Equal(t, 22430.0, candles[0].Low)
}

func TestBuildHourlyCandlesWithoutData(t *testing.T) {
	ss := NewSyntheticIndexService(paper.NewPaperService())
	candles, err := ss.BuildHourlyCandles("NIFTY", time.Now().AddDate(0, 0, -7), time.Now())

	assert.NoError(t, err)
	assert.Empty(t, candles)
}
