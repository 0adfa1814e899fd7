package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTradingSymbol(t *testing.T) {
	julyExpiry := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "NIFTY2571723700CE", TradingSymbol("NIFTY", julyExpiry, 23700, OptionTypeCE))

	decemberExpiry := time.Date(2025, 12, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "NIFTY25120421000PE", TradingSymbol("NIFTY", decemberExpiry, 21000, OptionTypePE))
}

func TestParseStrike(t *testing.T) {
	strike, ok := ParseStrike("NIFTY2571723700CE", "NIFTY")
	assert.True(t, ok)
	assert.Equal(t, 23700, strike)

	strike, ok = ParseStrike("NIFTY25120421000PE", "NIFTY")
	assert.True(t, ok)
	assert.Equal(t, 21000, strike)

	_, ok = ParseStrike("NIFTY", "NIFTY")
	assert.False(t, ok)

	_, ok = ParseStrike("GARBAGE", "NIFTY")
	assert.False(t, ok)
}
