package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/providers/paper"
)

func TestFixedPointsHedge(t *testing.T) {
	h := NewFixedPointsHedge(300)
	now := time.Now()

	assert.Equal(t, 22800, h.SelectHedgeStrike(nil, "NIFTY", 22500, 100, models.OptionTypeCE, now, now))
	assert.Equal(t, 22200, h.SelectHedgeStrike(nil, "NIFTY", 22500, 100, models.OptionTypePE, now, now))
}

func TestPremiumTargetHedgePicksNearestPremium(t *testing.T) {
	expiry := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)
	at := time.Date(2025, 7, 14, 10, 15, 0, 0, time.UTC)

	provider := paper.NewPaperService()
	premiums := map[int]float64{
		22550: 80,
		22600: 60,
		22700: 45,
		22800: 28,
		23000: 12,
		23200: 6,
		23500: 2,
	}
	for strike, premium := range premiums {
		provider.SetQuote(models.TradingSymbol("NIFTY", expiry, strike, models.OptionTypeCE), at, premium)
	}

	// 30% of a 100 point main premium: 28 at 22800 is the closest
	h := NewPremiumTargetHedge(30)
	strike := h.SelectHedgeStrike(provider, "NIFTY", 22500, 100, models.OptionTypeCE, expiry, at)

	assert.Equal(t, 22800, strike)
}

func TestPremiumTargetHedgeFallsBackWithoutQuotes(t *testing.T) {
	expiry := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)
	at := time.Date(2025, 7, 14, 10, 15, 0, 0, time.UTC)

	h := NewPremiumTargetHedge(30)

	strike := h.SelectHedgeStrike(paper.NewPaperService(), "NIFTY", 22500, 100, models.OptionTypePE, expiry, at)
	assert.Equal(t, 22200, strike)
}
