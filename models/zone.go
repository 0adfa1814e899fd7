package models

import "time"

// Bias is the directional expectation for the week ahead
type Bias int

const (
	BiasBearish Bias = -1
	BiasNeutral Bias = 0
	BiasBullish Bias = 1
)

// Zone is a support/resistance price band
type Zone struct {
	Top    float64
	Bottom float64
}

// WeeklyZone holds the levels derived from one completed trading week.
// Recomputed once per week from the prior week's bars and cached while the
// new week is in progress.
type WeeklyZone struct {
	WeekStart  time.Time
	High       float64
	Low        float64
	Close      float64
	Max4HBody  float64
	Min4HBody  float64
	UpperZone  Zone
	LowerZone  Zone
	MarginHigh float64
	MarginLow  float64
	Bias       Bias
}
