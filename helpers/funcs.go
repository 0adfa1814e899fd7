package helpers

import (
	"math"
	"time"
)

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func StdDev(numbers []float64, mean float64) float64 {
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

func AllValuesPositive(list []float64) bool {
	for _, item := range list {
		if item < 0.0 {
			return false
		}
	}
	return true
}

// RoundTo100 rounds a price to the nearest strike multiple of 100,
// half away from zero
func RoundTo100(price float64) float64 {
	return math.Round(price/100) * 100
}

// WeekStart returns the Monday midnight of the week containing t
func WeekStart(t time.Time) time.Time {
	daysFromMonday := int(t.Weekday()) - int(time.Monday)
	if daysFromMonday < 0 {
		daysFromMonday += 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -daysFromMonday)
}

// ThursdayExpiry returns the weekly expiry square-off moment for the week
// starting at weekStart: Thursday 15:30
func ThursdayExpiry(weekStart time.Time) time.Time {
	thursday := weekStart.AddDate(0, 0, 3)
	return time.Date(thursday.Year(), thursday.Month(), thursday.Day(), 15, 30, 0, 0, thursday.Location())
}

// IsTradingHour reports whether t falls inside NSE cash hours
// (Mon-Fri, 9:15-15:30)
func IsTradingHour(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= 9*60+15 && minutes <= 15*60+30
}
