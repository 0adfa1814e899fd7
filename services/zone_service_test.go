package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naveenvino/OptionSellerBot/models"
)

func hourlyBar(base time.Time, hour int, open, high, low, close float64) models.Candle {
	return models.Candle{
		Timestamp: base.Add(time.Duration(hour) * time.Hour),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    1000,
	}
}

func TestCalculateZone(t *testing.T) {
	base := time.Date(2025, 7, 14, 9, 15, 0, 0, time.UTC)

	// two full 4H groups plus two trailing bars that must not form a body
	bars := []models.Candle{
		hourlyBar(base, 0, 100, 103, 99, 102),
		hourlyBar(base, 1, 102, 105, 101, 103),
		hourlyBar(base, 2, 103, 106, 102, 104),
		hourlyBar(base, 3, 104, 110, 103, 104),
		hourlyBar(base, 4, 104, 105, 95, 100),
		hourlyBar(base, 5, 100, 101, 97, 99),
		hourlyBar(base, 6, 99, 100, 96, 98),
		hourlyBar(base, 7, 98, 99, 96, 98),
		hourlyBar(base, 8, 98, 100, 97, 99),
		hourlyBar(base, 9, 99, 100, 98, 99),
	}

	zs := NewWeeklyZoneService()
	zone, ok := zs.CalculateZone(bars)

	assert.True(t, ok)
	assert.Equal(t, 110.0, zone.High)
	assert.Equal(t, 95.0, zone.Low)
	assert.Equal(t, 99.0, zone.Close)
	assert.Equal(t, 104.0, zone.Max4HBody)
	assert.Equal(t, 98.0, zone.Min4HBody)
	assert.Equal(t, models.Zone{Top: 110, Bottom: 104}, zone.UpperZone)
	assert.Equal(t, models.Zone{Top: 98, Bottom: 95}, zone.LowerZone)
	assert.Equal(t, 18.0, zone.MarginHigh)
	assert.Equal(t, 9.0, zone.MarginLow)
	// close sits nearer the lower body extreme
	assert.Equal(t, models.BiasBullish, zone.Bias)
}

func TestCalculateZoneDeterministic(t *testing.T) {
	base := time.Date(2025, 7, 14, 9, 15, 0, 0, time.UTC)
	var bars []models.Candle
	for i := 0; i < 33; i++ {
		price := 22000 + float64(i%7)*13
		bars = append(bars, hourlyBar(base, i, price, price+25, price-30, price+5))
	}

	zs := NewWeeklyZoneService()
	first, ok1 := zs.CalculateZone(bars)
	second, ok2 := zs.CalculateZone(bars)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestCalculateZoneFallsBackToWeeklyRange(t *testing.T) {
	base := time.Date(2025, 7, 14, 9, 15, 0, 0, time.UTC)
	bars := []models.Candle{
		hourlyBar(base, 0, 100, 108, 94, 105),
		hourlyBar(base, 1, 105, 109, 99, 101),
		hourlyBar(base, 2, 101, 104, 98, 103),
	}

	zs := NewWeeklyZoneService()
	zone, ok := zs.CalculateZone(bars)

	assert.True(t, ok)
	assert.Equal(t, 109.0, zone.Max4HBody)
	assert.Equal(t, 94.0, zone.Min4HBody)
	assert.Equal(t, models.Zone{Top: 109, Bottom: 109}, zone.UpperZone)
	assert.Equal(t, models.Zone{Top: 94, Bottom: 94}, zone.LowerZone)
	assert.Equal(t, minZoneMargin, zone.MarginHigh)
	assert.Equal(t, minZoneMargin, zone.MarginLow)
}

func TestCalculateZoneEmptyWeek(t *testing.T) {
	zs := NewWeeklyZoneService()
	_, ok := zs.CalculateZone(nil)
	assert.False(t, ok)
}
