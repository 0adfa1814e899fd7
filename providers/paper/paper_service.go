package paper

import (
	"fmt"
	"time"

	"github.com/naveenvino/OptionSellerBot/models"
)

// quote lookups fall back to the nearest seeded price inside this window
const quoteWindow = 30 * time.Minute

type seriesKey struct {
	symbol   string
	interval models.Interval
}

// PaperService is an in-memory price source. Backtests against canned data
// and the service tests seed it with SetBars and SetQuote; nothing leaves
// the process.
type PaperService struct {
	series map[seriesKey][]models.Candle
	quotes map[string][]models.Quote
	ticks  []models.OptionTick
}

func NewPaperService() *PaperService {
	return &PaperService{
		series: make(map[seriesKey][]models.Candle),
		quotes: make(map[string][]models.Quote),
	}
}

// SetBars replaces the candle series for a symbol and interval
func (ps *PaperService) SetBars(symbol string, interval models.Interval, bars []models.Candle) {
	ps.series[seriesKey{symbol, interval}] = bars
}

// SetQuote seeds one option price point
func (ps *PaperService) SetQuote(symbol string, timestamp time.Time, price float64) {
	ps.quotes[symbol] = append(ps.quotes[symbol], models.Quote{Price: price, Timestamp: timestamp})
}

// AddOptionTick seeds one print for the synthetic index builder
func (ps *PaperService) AddOptionTick(tick models.OptionTick) {
	ps.ticks = append(ps.ticks, tick)
}

func (ps *PaperService) GetBars(symbol string, from, to time.Time, interval models.Interval) ([]models.Candle, error) {
	all, ok := ps.series[seriesKey{symbol, interval}]
	if !ok {
		return nil, fmt.Errorf("no %s data seeded for %s", interval, symbol)
	}
	var bars []models.Candle
	for _, bar := range all {
		if bar.Timestamp.Before(from) || bar.Timestamp.After(to) {
			continue
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func (ps *PaperService) GetQuoteAt(symbol string, timestamp time.Time) (models.Quote, bool, error) {
	var best models.Quote
	bestDistance := quoteWindow
	found := false
	for _, quote := range ps.quotes[symbol] {
		distance := quote.Timestamp.Sub(timestamp)
		if distance < 0 {
			distance = -distance
		}
		if distance > quoteWindow {
			continue
		}
		if !found || distance < bestDistance {
			bestDistance = distance
			best = quote
			found = true
		}
	}
	return best, found, nil
}

func (ps *PaperService) GetOptionQuotes(underlying string, from, to time.Time) ([]models.OptionTick, error) {
	var ticks []models.OptionTick
	for _, tick := range ps.ticks {
		if tick.Timestamp.Before(from) || tick.Timestamp.After(to) {
			continue
		}
		ticks = append(ticks, tick)
	}
	return ticks, nil
}
