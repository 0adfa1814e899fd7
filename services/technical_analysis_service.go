package services

import (
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"github.com/naveenvino/OptionSellerBot/models"
)

const rsiWindow = 14

// TechnicalSnapshot summarizes the state of an index series at its last bar
type TechnicalSnapshot struct {
	RSI     float64
	FastEMA float64
	SlowEMA float64
	// Trend is fast EMA over slow EMA minus one, positive when rising
	Trend float64
}

type TechnicalAnalysisService struct{}

func NewTechnicalAnalysisService() TechnicalAnalysisService {
	return TechnicalAnalysisService{}
}

// Snapshot computes RSI and the 9/21 EMA pair on the given bars. Series
// shorter than the RSI window return a neutral snapshot.
func (tas TechnicalAnalysisService) Snapshot(bars []models.Candle) TechnicalSnapshot {
	if len(bars) < rsiWindow {
		return TechnicalSnapshot{RSI: 50}
	}

	series := techan.NewTimeSeries()
	for _, bar := range bars {
		candle := techan.NewCandle(techan.NewTimePeriod(bar.Timestamp, time.Hour))
		candle.OpenPrice = big.NewDecimal(bar.Open)
		candle.MaxPrice = big.NewDecimal(bar.High)
		candle.MinPrice = big.NewDecimal(bar.Low)
		candle.ClosePrice = big.NewDecimal(bar.Close)
		candle.Volume = big.NewDecimal(float64(bar.Volume))
		series.AddCandle(candle)
	}

	lastIndex := len(series.Candles) - 1
	closePrices := techan.NewClosePriceIndicator(series)
	rsi := techan.NewRelativeStrengthIndexIndicator(closePrices, rsiWindow)
	fastEMA := techan.NewEMAIndicator(closePrices, 9)
	slowEMA := techan.NewEMAIndicator(closePrices, 21)

	snapshot := TechnicalSnapshot{
		RSI:     rsi.Calculate(lastIndex).Float(),
		FastEMA: fastEMA.Calculate(lastIndex).Float(),
		SlowEMA: slowEMA.Calculate(lastIndex).Float(),
	}
	if snapshot.SlowEMA != 0 {
		snapshot.Trend = snapshot.FastEMA/snapshot.SlowEMA - 1
	}
	return snapshot
}
