package services

import (
	"math"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/models"
)

// day1Bars is how many bars into the week the simple breakout form applies
// before the stricter momentum form takes over
const day1Bars = 24

// SignalDetector evaluates the eight weekly pattern rules over one trading
// week. It holds no state of its own: the whole week lives in
// models.WeekState and is advanced one bar at a time through Step, so any
// (state, candle) transition can be replayed deterministically.
//
// Rule priority is fixed: S1 and S2 are checked on the second bar of the
// week only, S3 through S8 on every later bar, lowest number first. The
// first match wins the week.
type SignalDetector struct{}

func NewSignalDetector() SignalDetector {
	return SignalDetector{}
}

// Step consumes the next bar of the week and returns the advanced state plus
// the fired signal, if any. The input state is not mutated.
func (sd SignalDetector) Step(ws models.WeekState, candle models.Candle) (models.WeekState, *models.Signal) {
	next := ws
	next.BarsSinceWeekStart++

	if next.BarsSinceWeekStart == 1 {
		first := candle
		next.FirstBar = &first
		next.RunningHigh = candle.High
		next.RunningLow = candle.Low
	} else {
		next.RunningHigh = math.Max(next.RunningHigh, candle.High)
		next.RunningLow = math.Min(next.RunningLow, candle.Low)
	}

	if next.PreviousZone != nil && candle.High >= next.PreviousZone.UpperZone.Bottom {
		next.TouchedUpperBottom = true
	}

	// No zone means no signal for the entire week. Not an error
	if next.SignalFired || next.PreviousZone == nil || next.BarsSinceWeekStart < 2 {
		return next, nil
	}

	var signal *models.Signal
	if next.BarsSinceWeekStart == 2 {
		signal = sd.checkS1BearTrap(next, candle)
		if signal == nil {
			signal = sd.checkS2SupportHold(next, candle)
		}
	} else {
		checks := []func(models.WeekState, models.Candle) *models.Signal{
			sd.checkS3ResistanceHold,
			sd.checkS4BiasFailureBullish,
			sd.checkS5BiasFailureBearish,
			sd.checkS6WeaknessConfirmed,
			sd.checkS7BreakoutConfirmed,
			sd.checkS8BreakdownConfirmed,
		}
		for _, check := range checks {
			if signal = check(next, candle); signal != nil {
				break
			}
		}
	}

	if signal != nil {
		next.SignalFired = true
	}
	return next, signal
}

// DetectSignalsForWeek folds Step over one week of bars and returns the
// first (and only) signal of the week, or nil.
func (sd SignalDetector) DetectSignalsForWeek(weekBars []models.Candle, previousZone *models.WeeklyZone) *models.Signal {
	if len(weekBars) == 0 {
		return nil
	}
	ws := models.NewWeekState(helpers.WeekStart(weekBars[0].Timestamp), previousZone)
	for _, bar := range weekBars {
		var signal *models.Signal
		ws, signal = sd.Step(ws, bar)
		if signal != nil {
			return signal
		}
	}
	return nil
}

func (sd SignalDetector) checkS1BearTrap(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	lowerBottom := ws.PreviousZone.LowerZone.Bottom

	falseBreakdown := first.Open >= lowerBottom && first.Close < lowerBottom
	recovered := candle.Close > first.Low

	if !falseBreakdown || !recovered {
		return nil
	}

	stopLoss := first.Low - first.Body()
	return &models.Signal{
		SignalID:      models.SignalS1,
		SignalName:    "Bear Trap",
		Timestamp:     candle.Timestamp,
		Direction:     1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   helpers.RoundTo100(stopLoss),
		StopLossPrice: stopLoss,
		Confidence:    0.80,
	}
}

func (sd SignalDetector) checkS2SupportHold(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone
	lowerBottom := prev.LowerZone.Bottom

	conditions := prev.Bias == models.BiasBullish &&
		first.Open > prev.Low &&
		math.Abs(prev.Close-lowerBottom) <= prev.MarginLow &&
		math.Abs(first.Open-lowerBottom) <= prev.MarginLow &&
		first.Close >= lowerBottom &&
		first.Close >= prev.Close &&
		candle.Close >= first.Low &&
		candle.Close > prev.Close &&
		candle.Close > lowerBottom

	if !conditions {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS2,
		SignalName:    "Support Hold (Bullish)",
		Timestamp:     candle.Timestamp,
		Direction:     1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   helpers.RoundTo100(lowerBottom),
		StopLossPrice: lowerBottom,
		Confidence:    0.85,
	}
}

func (sd SignalDetector) checkS3ResistanceHold(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone
	upperBottom := prev.UpperZone.Bottom

	base := prev.Bias == models.BiasBearish &&
		math.Abs(prev.Close-upperBottom) <= prev.MarginHigh &&
		math.Abs(first.Open-upperBottom) <= prev.MarginHigh &&
		first.Close <= prev.High

	if !base {
		return nil
	}

	isSecondBar := ws.BarsSinceWeekStart == 2

	// Scenario A: inside bar rejected at the zone on the week's second bar
	scenarioA := isSecondBar &&
		candle.Close < first.High &&
		candle.Close < upperBottom &&
		(first.High >= upperBottom || candle.High >= upperBottom)

	// Scenario B: breakdown below the first bar's low
	scenarioB := candle.Close < first.Low && candle.Close < upperBottom

	if !scenarioA && !scenarioB {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS3,
		SignalName:    "Resistance Hold (Bearish)",
		Timestamp:     candle.Timestamp,
		Direction:     -1,
		OptionType:    models.OptionTypeCE,
		StrikePrice:   helpers.RoundTo100(prev.High),
		StopLossPrice: prev.High,
		Confidence:    0.82,
	}
}

func (sd SignalDetector) checkS4BiasFailureBullish(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone

	gappedAboveZone := prev.Bias == models.BiasBearish && first.Open > prev.UpperZone.Top
	if !gappedAboveZone || !sd.breakoutTriggered(ws, candle) {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS4,
		SignalName:    "Bias Failure (Bullish)",
		Timestamp:     candle.Timestamp,
		Direction:     1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   helpers.RoundTo100(first.Low),
		StopLossPrice: first.Low,
		Confidence:    0.78,
	}
}

func (sd SignalDetector) checkS5BiasFailureBearish(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone
	lowerBottom := prev.LowerZone.Bottom

	conditions := prev.Bias == models.BiasBullish &&
		first.Open < lowerBottom &&
		first.Close < lowerBottom &&
		first.Close < prev.Low &&
		candle.Close < first.Low

	if !conditions {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS5,
		SignalName:    "Bias Failure (Bearish)",
		Timestamp:     candle.Timestamp,
		Direction:     -1,
		OptionType:    models.OptionTypeCE,
		StrikePrice:   helpers.RoundTo100(first.High),
		StopLossPrice: first.High,
		Confidence:    0.78,
	}
}

func (sd SignalDetector) checkS6WeaknessConfirmed(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone
	upperBottom := prev.UpperZone.Bottom

	base := prev.Bias == models.BiasBearish &&
		first.High >= upperBottom &&
		first.Close <= prev.UpperZone.Top &&
		first.Close <= prev.High

	if !base {
		return nil
	}

	isSecondBar := ws.BarsSinceWeekStart == 2

	scenarioA := isSecondBar &&
		candle.Close < first.High &&
		candle.Close < upperBottom

	scenarioB := candle.Close < first.Low && candle.Close < upperBottom

	if !scenarioA && !scenarioB {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS6,
		SignalName:    "Weakness Confirmed",
		Timestamp:     candle.Timestamp,
		Direction:     -1,
		OptionType:    models.OptionTypeCE,
		StrikePrice:   helpers.RoundTo100(prev.High),
		StopLossPrice: prev.High,
		Confidence:    0.75,
	}
}

func (sd SignalDetector) checkS7BreakoutConfirmed(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	prev := ws.PreviousZone

	if !sd.breakoutTriggered(ws, candle) {
		return nil
	}

	// Reject breakouts stalling within 0.40% below the prior week high:
	// too close to resistance to be clean
	tooCloseBelowResistance := candle.Close < prev.High &&
		(prev.High-candle.Close)/candle.Close*100 < 0.40
	if tooCloseBelowResistance {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS7,
		SignalName:    "1H Breakout Confirmed",
		Timestamp:     candle.Timestamp,
		Direction:     1,
		OptionType:    models.OptionTypePE,
		StrikePrice:   helpers.RoundTo100(first.Low),
		StopLossPrice: first.Low,
		Confidence:    0.72,
	}
}

func (sd SignalDetector) checkS8BreakdownConfirmed(ws models.WeekState, candle models.Candle) *models.Signal {
	first := ws.FirstBar
	upperBottom := ws.PreviousZone.UpperZone.Bottom

	breakdown := sd.breakdownTriggered(ws, candle)
	closedBelowResistance := candle.Close < upperBottom

	if !breakdown || !ws.TouchedUpperBottom || !closedBelowResistance {
		return nil
	}

	return &models.Signal{
		SignalID:      models.SignalS8,
		SignalName:    "1H Breakdown Confirmed",
		Timestamp:     candle.Timestamp,
		Direction:     -1,
		OptionType:    models.OptionTypeCE,
		StrikePrice:   helpers.RoundTo100(first.High),
		StopLossPrice: first.High,
		Confidence:    0.72,
	}
}

// breakoutTriggered is shared by S4 and S7. Early in the week a close above
// the first bar's high is enough; later the bar must also be green and print
// a new weekly high.
func (sd SignalDetector) breakoutTriggered(ws models.WeekState, candle models.Candle) bool {
	first := ws.FirstBar
	if ws.BarsSinceWeekStart <= day1Bars {
		return candle.Close > first.High
	}
	return candle.IsGreen() &&
		candle.Close > first.High &&
		candle.High >= ws.RunningHigh
}

// breakdownTriggered is the exact mirror of breakoutTriggered, used by S8
func (sd SignalDetector) breakdownTriggered(ws models.WeekState, candle models.Candle) bool {
	first := ws.FirstBar
	if ws.BarsSinceWeekStart <= day1Bars {
		return candle.Close < first.Low
	}
	return candle.IsRed() &&
		candle.Close < first.Low &&
		candle.Low <= ws.RunningLow
}
