package services

import (
	"context"
	"fmt"
	"time"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/interfaces"
	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
)

// BacktestService replays the weekly option-selling strategy over a date
// range. The same detector/simulator core runs in every mode; the mode only
// decides where the index bars and the previous week's zone bars come from.
type BacktestService struct {
	provider   interfaces.CandleProvider
	zones      WeeklyZoneService
	detector   SignalDetector
	simulator  TradeSimulator
	aggregator PerformanceAggregator
	synthetic  *SyntheticIndexService
	confidence *ConfidenceService

	// Progress, when set, is called once per processed week
	Progress func(weekStart time.Time, tradesSoFar int)
}

func NewBacktestService(provider interfaces.CandleProvider, hedgeSelector interfaces.HedgeSelector) *BacktestService {
	bs := &BacktestService{
		provider:   provider,
		zones:      NewWeeklyZoneService(),
		detector:   NewSignalDetector(),
		simulator:  NewTradeSimulator(provider, hedgeSelector),
		aggregator: NewPerformanceAggregator(),
	}
	if source, ok := provider.(interfaces.OptionQuoteSource); ok {
		bs.synthetic = NewSyntheticIndexService(source)
	}
	return bs
}

// SetConfidenceService plugs in the optional confidence scorer. Detection
// and simulation do not depend on it.
func (bs *BacktestService) SetConfidenceService(cs *ConfidenceService) {
	bs.confidence = cs
}

// RunBacktest processes the range week by week, at most one trade per
// calendar week. Data gaps cost a week or a trade, never the run. On
// cancellation the partial result is aggregated and returned together with
// the context error.
func (bs *BacktestService) RunBacktest(ctx context.Context, request models.BacktestRequest) (analytics.BacktestResult, error) {
	result := analytics.NewBacktestResult()

	if !request.FromDate.Before(request.ToDate) {
		return result, fmt.Errorf("invalid date range: from %v is not before to %v", request.FromDate, request.ToDate)
	}
	if request.LotSize <= 0 {
		return result, fmt.Errorf("invalid lot size %d", request.LotSize)
	}
	if request.Underlying == "" {
		request.Underlying = "NIFTY"
	}

	result.FromDate = request.FromDate
	result.ToDate = request.ToDate

	helpers.Logger.Infoln(fmt.Sprintf("Starting %s backtest %s from %v to %v",
		request.Mode, request.Underlying, request.FromDate.Format("2006-01-02"), request.ToDate.Format("2006-01-02")))

	var runErr error
	switch request.Mode {
	case models.SignalModeHourly:
		result.Strategy = "1-Hour Option Selling with Hedge"
		runErr = bs.runWeekLoop(ctx, request, &result)
	case models.SignalModeSynthetic:
		result.Strategy = "Synthetic Index Option Selling"
		runErr = bs.runCandleFold(ctx, request, &result, true)
	case models.SignalModePure1H, "":
		result.Strategy = "Pure 1H Candle-Based Option Selling"
		runErr = bs.runCandleFold(ctx, request, &result, false)
	default:
		return result, fmt.Errorf("unknown signal mode %q", request.Mode)
	}

	bs.aggregator.Aggregate(&result, request.InitialCapital)

	helpers.Logger.Infoln(fmt.Sprintf("Backtest finished: %d trades, win rate %.1f%%, net P&L %.2f",
		result.TotalTrades, result.WinRate, result.TotalPnL))

	return result, runErr
}

// runCandleFold drives detection from one continuous 1H stream, deriving
// each week's zone from the previous week's hourly bars.
func (bs *BacktestService) runCandleFold(ctx context.Context, request models.BacktestRequest,
	result *analytics.BacktestResult, syntheticIndex bool) error {

	var candles []models.Candle
	var err error
	if syntheticIndex {
		if bs.synthetic == nil {
			return fmt.Errorf("provider does not expose option quotes, synthetic mode unavailable")
		}
		candles, err = bs.synthetic.BuildHourlyCandles(request.Underlying, request.FromDate, request.ToDate)
	} else {
		candles, err = bs.provider.GetBars(request.Underlying, request.FromDate, request.ToDate, models.Interval60Minute)
	}
	if err != nil {
		return fmt.Errorf("loading index candles: %w", err)
	}
	if len(candles) == 0 {
		helpers.Logger.Warnln("No index candle data found for the requested period")
		return nil
	}

	for _, week := range groupByWeek(candles) {
		if err := ctx.Err(); err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("Backtest cancelled at week %v, returning partial result", week.start))
			return err
		}
		bs.processWeek(week.start, week.bars, week.previousBars, request, result)
	}
	return nil
}

// runWeekLoop walks Monday week starts and fetches each week's hourly bars
// separately, deriving zones from the previous week's daily bars.
func (bs *BacktestService) runWeekLoop(ctx context.Context, request models.BacktestRequest,
	result *analytics.BacktestResult) error {

	weekStart := helpers.WeekStart(request.FromDate)
	for !weekStart.After(request.ToDate) {
		if err := ctx.Err(); err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("Backtest cancelled at week %v, returning partial result", weekStart))
			return err
		}

		previousBars, err := bs.provider.GetBars(request.Underlying,
			weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1), models.IntervalDay)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("Week %v: previous week daily bars unavailable: %v", weekStart, err))
			weekStart = weekStart.AddDate(0, 0, 7)
			continue
		}

		mondayOpen := weekStart.Add(9*time.Hour + 15*time.Minute)
		fridayClose := weekStart.AddDate(0, 0, 4).Add(15*time.Hour + 30*time.Minute)
		weekBars, err := bs.provider.GetBars(request.Underlying, mondayOpen, fridayClose, models.Interval60Minute)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("Week %v: hourly bars unavailable: %v", weekStart, err))
			weekStart = weekStart.AddDate(0, 0, 7)
			continue
		}

		bs.processWeek(weekStart, weekBars, previousBars, request, result)
		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return nil
}

// processWeek runs detection and, on a signal, the trade simulation for one
// week. A week without a zone or without usable prices produces no trade.
func (bs *BacktestService) processWeek(weekStart time.Time, weekBars []models.Candle,
	previousBars []models.Candle, request models.BacktestRequest, result *analytics.BacktestResult) {

	defer func() {
		if bs.Progress != nil {
			bs.Progress(weekStart, len(result.Trades))
		}
	}()

	if len(weekBars) == 0 {
		return
	}

	var previousZone *models.WeeklyZone
	if zone, ok := bs.zones.CalculateZone(previousBars); ok {
		previousZone = &zone
	}

	signal := bs.detector.DetectSignalsForWeek(weekBars, previousZone)
	if signal == nil {
		return
	}

	if bs.confidence != nil && previousZone != nil {
		var barsSoFar []models.Candle
		for _, bar := range weekBars {
			if bar.Timestamp.After(signal.Timestamp) {
				break
			}
			barsSoFar = append(barsSoFar, bar)
		}
		adjusted := *signal
		adjusted.Confidence = bs.confidence.Score(*signal, *previousZone, barsSoFar)
		signal = &adjusted
	}

	trade := bs.simulator.ExecuteSignalTrade(*signal, weekStart, weekBars, request.Underlying, request.LotSize)
	if trade == nil {
		return
	}

	result.Trades = append(result.Trades, *trade)
	helpers.Logger.Infoln(fmt.Sprintf("Week %s: %s %s -> %s net %.2f",
		weekStart.Format("2006-01-02"), trade.SignalID, trade.MainSymbol, trade.ExitReason, trade.NetPnL))
}

type weekBucket struct {
	start        time.Time
	bars         []models.Candle
	previousBars []models.Candle
}

// groupByWeek splits an ordered candle stream at Monday boundaries and links
// every bucket to its predecessor's bars for zone calculation.
func groupByWeek(candles []models.Candle) []weekBucket {
	var weeks []weekBucket
	for _, candle := range candles {
		start := helpers.WeekStart(candle.Timestamp)
		if len(weeks) == 0 || !weeks[len(weeks)-1].start.Equal(start) {
			bucket := weekBucket{start: start}
			if len(weeks) > 0 {
				bucket.previousBars = weeks[len(weeks)-1].bars
			}
			weeks = append(weeks, bucket)
		}
		weeks[len(weeks)-1].bars = append(weeks[len(weeks)-1].bars, candle)
	}
	return weeks
}
