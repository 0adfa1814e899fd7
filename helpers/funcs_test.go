package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo100(t *testing.T) {
	assert.Equal(t, 22500.0, RoundTo100(22463))
	assert.Equal(t, 22400.0, RoundTo100(22449))
	assert.Equal(t, 22500.0, RoundTo100(22450))
	assert.Equal(t, 22000.0, RoundTo100(22000))
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	wednesday := time.Date(2025, 7, 16, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(wednesday))

	assert.Equal(t, monday, WeekStart(monday.Add(5*time.Minute)))

	sunday := time.Date(2025, 7, 20, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(sunday))
}

func TestThursdayExpiry(t *testing.T) {
	monday := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	expiry := ThursdayExpiry(monday)

	assert.Equal(t, time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC), expiry)
	assert.Equal(t, time.Thursday, expiry.Weekday())
}

func TestIsTradingHour(t *testing.T) {
	assert.True(t, IsTradingHour(time.Date(2025, 7, 16, 9, 15, 0, 0, time.UTC)))
	assert.True(t, IsTradingHour(time.Date(2025, 7, 16, 15, 30, 0, 0, time.UTC)))
	assert.False(t, IsTradingHour(time.Date(2025, 7, 16, 9, 14, 0, 0, time.UTC)))
	assert.False(t, IsTradingHour(time.Date(2025, 7, 16, 15, 31, 0, 0, time.UTC)))
	assert.False(t, IsTradingHour(time.Date(2025, 7, 19, 10, 0, 0, 0, time.UTC)))
}

func TestStdDev(t *testing.T) {
	numbers := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Sum(numbers) / float64(len(numbers))

	assert.Equal(t, 5.0, mean)
	assert.InDelta(t, 2.138, StdDev(numbers, mean), 0.001)
}
