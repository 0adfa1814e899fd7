package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/interfaces"
	"github.com/naveenvino/OptionSellerBot/models"
)

// SyntheticIndexService rebuilds index candles from recorded option prints
// when no index series exists for the period. For every timestamp it pairs
// the CE and PE closest to the middle of the available strike range and
// estimates the underlying by put-call parity: strike + (CE - PE).
type SyntheticIndexService struct {
	source interfaces.OptionQuoteSource
}

func NewSyntheticIndexService(source interfaces.OptionQuoteSource) *SyntheticIndexService {
	return &SyntheticIndexService{source: source}
}

// BuildHourlyCandles estimates one price per recorded timestamp and
// aggregates the estimates into hourly OHLC candles.
func (ss *SyntheticIndexService) BuildHourlyCandles(underlying string, from, to time.Time) ([]models.Candle, error) {
	ticks, err := ss.source.GetOptionQuotes(underlying, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading option quotes for synthetic index: %w", err)
	}
	if len(ticks) == 0 {
		return nil, nil
	}

	byTime := make(map[time.Time][]models.OptionTick)
	for _, tick := range ticks {
		byTime[tick.Timestamp] = append(byTime[tick.Timestamp], tick)
	}

	timestamps := make([]time.Time, 0, len(byTime))
	for ts := range byTime {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	estimates := make([]models.Candle, 0, len(timestamps))
	for _, ts := range timestamps {
		price, ok := estimateUnderlying(byTime[ts], underlying)
		if !ok {
			continue
		}
		estimates = append(estimates, models.Candle{
			Timestamp: ts,
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
		})
	}

	candles := aggregateHourly(estimates)
	helpers.Logger.Infoln(fmt.Sprintf("Built %d synthetic hourly candles from %d option prints", len(candles), len(ticks)))
	return candles, nil
}

// estimateUnderlying picks the ATM pair for one timestamp. The middle of the
// strike range stands in for the unknown spot.
func estimateUnderlying(ticks []models.OptionTick, underlying string) (float64, bool) {
	minStrike, maxStrike := math.MaxInt32, 0
	for _, tick := range ticks {
		strike, ok := models.ParseStrike(tick.TradingSymbol, underlying)
		if !ok {
			continue
		}
		if strike < minStrike {
			minStrike = strike
		}
		if strike > maxStrike {
			maxStrike = strike
		}
	}
	if maxStrike == 0 {
		return 0, false
	}
	midStrike := (minStrike + maxStrike) / 2

	atmCE, ceOK := closestToStrike(ticks, underlying, string(models.OptionTypeCE), midStrike)
	atmPE, peOK := closestToStrike(ticks, underlying, string(models.OptionTypePE), midStrike)
	if !ceOK || !peOK {
		return 0, false
	}

	ceStrike, _ := models.ParseStrike(atmCE.TradingSymbol, underlying)
	return float64(ceStrike) + (atmCE.LastPrice - atmPE.LastPrice), true
}

func closestToStrike(ticks []models.OptionTick, underlying, suffix string, midStrike int) (models.OptionTick, bool) {
	var best models.OptionTick
	bestDistance := math.MaxInt32
	found := false
	for _, tick := range ticks {
		if !strings.HasSuffix(tick.TradingSymbol, suffix) {
			continue
		}
		strike, ok := models.ParseStrike(tick.TradingSymbol, underlying)
		if !ok {
			continue
		}
		distance := strike - midStrike
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			bestDistance = distance
			best = tick
			found = true
		}
	}
	return best, found
}

// aggregateHourly buckets point estimates into hour candles: first as open,
// last as close, extremes as high/low. Input must be time ordered.
func aggregateHourly(estimates []models.Candle) []models.Candle {
	var hourly []models.Candle
	for _, estimate := range estimates {
		hour := estimate.Timestamp.Truncate(time.Hour)
		if len(hourly) == 0 || !hourly[len(hourly)-1].Timestamp.Equal(hour) {
			bucket := estimate
			bucket.Timestamp = hour
			hourly = append(hourly, bucket)
			continue
		}
		last := &hourly[len(hourly)-1]
		if estimate.High > last.High {
			last.High = estimate.High
		}
		if estimate.Low < last.Low {
			last.Low = estimate.Low
		}
		last.Close = estimate.Close
		last.Volume += estimate.Volume
	}
	return hourly
}
