package models

import "time"

// WeekState tracks one trading week of the signal detector. Values are
// threaded through SignalDetector.Step as an immutable copy per bar, so a
// given (state, candle) pair always produces the same next state.
type WeekState struct {
	WeekStart          time.Time
	PreviousZone       *WeeklyZone
	FirstBar           *Candle
	RunningHigh        float64
	RunningLow         float64
	TouchedUpperBottom bool
	BarsSinceWeekStart int
	SignalFired        bool
}

// NewWeekState returns the state for a fresh week carrying the zone derived
// from the prior completed week (nil when no prior data exists).
func NewWeekState(weekStart time.Time, previousZone *WeeklyZone) WeekState {
	return WeekState{
		WeekStart:    weekStart,
		PreviousZone: previousZone,
	}
}
