package paper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetQuoteAtPicksNearestSeededPrice(t *testing.T) {
	ps := NewPaperService()
	at := time.Date(2025, 7, 14, 10, 15, 0, 0, time.UTC)
	ps.SetQuote("NIFTY2571722400PE", at.Add(-20*time.Minute), 95)
	ps.SetQuote("NIFTY2571722400PE", at.Add(5*time.Minute), 101)
	ps.SetQuote("NIFTY2571722400PE", at.Add(25*time.Minute), 110)

	quote, found, err := ps.GetQuoteAt("NIFTY2571722400PE", at)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 101.0, quote.Price)
}

func TestGetQuoteAtWindowBoundary(t *testing.T) {
	ps := NewPaperService()
	at := time.Date(2025, 7, 14, 10, 15, 0, 0, time.UTC)
	ps.SetQuote("NIFTY2571722400PE", at.Add(30*time.Minute), 120)

	quote, found, err := ps.GetQuoteAt("NIFTY2571722400PE", at)

	// exactly 30 minutes away is still usable
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 120.0, quote.Price)
}

func TestGetQuoteAtRejectsStaleQuotes(t *testing.T) {
	ps := NewPaperService()
	at := time.Date(2025, 7, 14, 10, 15, 0, 0, time.UTC)
	ps.SetQuote("NIFTY2571722400PE", at.Add(30*time.Minute+30*time.Second), 120)
	ps.SetQuote("NIFTY2571722400PE", at.Add(-45*time.Minute), 90)

	_, found, err := ps.GetQuoteAt("NIFTY2571722400PE", at)

	assert.NoError(t, err)
	assert.False(t, found)
}
