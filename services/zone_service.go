package services

import (
	"math"

	"github.com/naveenvino/OptionSellerBot/models"
)

// minZoneMargin is the floor applied to both zone margins
const minZoneMargin = 0.05

// WeeklyZoneService derives the support/resistance zones and the weekly bias
// from one completed trading week of bars.
type WeeklyZoneService struct{}

func NewWeeklyZoneService() WeeklyZoneService {
	return WeeklyZoneService{}
}

// CalculateZone is a deterministic pure function of the bar list. ok is false
// for an empty week, in which case the caller must skip signal detection for
// the week rather than treat it as an error.
//
// Bias tie-break: when the close sits exactly halfway between the 4H body
// extremes the bias is bullish, matching the strict less-than comparison on
// the distance to the upper excursion.
func (zs WeeklyZoneService) CalculateZone(bars []models.Candle) (models.WeeklyZone, bool) {
	if len(bars) == 0 {
		return models.WeeklyZone{}, false
	}

	weeklyHigh := bars[0].High
	weeklyLow := bars[0].Low
	for _, bar := range bars[1:] {
		weeklyHigh = math.Max(weeklyHigh, bar.High)
		weeklyLow = math.Min(weeklyLow, bar.Low)
	}
	weeklyClose := bars[len(bars)-1].Close

	bodies := fourHourBodies(bars)
	max4HBody := weeklyHigh
	min4HBody := weeklyLow
	if len(bodies) > 0 {
		max4HBody = bodies[0].Top
		min4HBody = bodies[0].Bottom
		for _, body := range bodies[1:] {
			max4HBody = math.Max(max4HBody, body.Top)
			min4HBody = math.Min(min4HBody, body.Bottom)
		}
	}

	upperZone := models.Zone{
		Top:    math.Max(weeklyHigh, max4HBody),
		Bottom: math.Min(weeklyHigh, max4HBody),
	}
	lowerZone := models.Zone{
		Top:    math.Max(weeklyLow, min4HBody),
		Bottom: math.Min(weeklyLow, min4HBody),
	}

	bias := models.BiasBullish
	if math.Abs(weeklyClose-max4HBody) < math.Abs(weeklyClose-min4HBody) {
		bias = models.BiasBearish
	}

	return models.WeeklyZone{
		WeekStart:  bars[0].Timestamp,
		High:       weeklyHigh,
		Low:        weeklyLow,
		Close:      weeklyClose,
		Max4HBody:  max4HBody,
		Min4HBody:  min4HBody,
		UpperZone:  upperZone,
		LowerZone:  lowerZone,
		MarginHigh: math.Max((upperZone.Top-upperZone.Bottom)*3, minZoneMargin),
		MarginLow:  math.Max((lowerZone.Top-lowerZone.Bottom)*3, minZoneMargin),
		Bias:       bias,
	}, true
}

// fourHourBodies aggregates consecutive groups of four bars into 4H candle
// bodies. A trailing group of fewer than four bars is discarded.
func fourHourBodies(bars []models.Candle) []models.Zone {
	var bodies []models.Zone
	for i := 0; i+4 <= len(bars); i += 4 {
		open4H := bars[i].Open
		close4H := bars[i+3].Close
		bodies = append(bodies, models.Zone{
			Top:    math.Max(open4H, close4H),
			Bottom: math.Min(open4H, close4H),
		})
	}
	return bodies
}
