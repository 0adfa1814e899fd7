package kite

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/models"
)

// quoteWindow bounds how far from the requested timestamp a minute bar may
// sit and still count as a usable price
const quoteWindow = 30 * time.Minute

// KiteService serves historical index and option prices from the Zerodha
// Kite Connect API. Instrument tokens are resolved once per exchange and
// cached for the life of the service.
type KiteService struct {
	client *kiteconnect.Client

	tokens      map[string]int
	instruments kiteconnect.Instruments
}

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		helpers.Logger.Errorln("Error loading go.env file", err)
	}
}

func NewKiteService() *KiteService {
	apiKey := os.Getenv("kiteAPIKey")
	accessToken := os.Getenv("kiteAccessToken")
	client := kiteconnect.New(apiKey)
	client.SetAccessToken(accessToken)
	return &KiteService{
		client: client,
		tokens: make(map[string]int),
	}
}

// GetBars fetches the candle series for one trading symbol. Index symbols
// resolve on NSE, option symbols on NFO.
func (ks *KiteService) GetBars(symbol string, from, to time.Time, interval models.Interval) ([]models.Candle, error) {
	token, err := ks.instrumentToken(symbol)
	if err != nil {
		return nil, err
	}

	data, err := ks.client.GetHistoricalData(token, string(interval), from, to, false, false)
	if err != nil {
		return nil, fmt.Errorf("historical data for %s: %w", symbol, err)
	}

	candles := make([]models.Candle, 0, len(data))
	for _, bar := range data {
		candles = append(candles, models.Candle{
			Timestamp: bar.Date.Time,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Close:     bar.Close,
			Volume:    int64(bar.Volume),
		})
	}
	return candles, nil
}

// GetQuoteAt returns the minute close nearest to the timestamp, or found
// false when no bar lands within the window.
func (ks *KiteService) GetQuoteAt(symbol string, timestamp time.Time) (models.Quote, bool, error) {
	token, err := ks.instrumentToken(symbol)
	if err != nil {
		return models.Quote{}, false, err
	}

	data, err := ks.client.GetHistoricalData(token, "minute",
		timestamp.Add(-quoteWindow), timestamp.Add(quoteWindow), false, true)
	if err != nil {
		return models.Quote{}, false, fmt.Errorf("minute data for %s: %w", symbol, err)
	}

	var best models.Quote
	bestDistance := quoteWindow
	found := false
	for _, bar := range data {
		distance := bar.Date.Time.Sub(timestamp)
		if distance < 0 {
			distance = -distance
		}
		if distance > quoteWindow {
			continue
		}
		if !found || distance < bestDistance {
			bestDistance = distance
			best = models.Quote{
				Price:        bar.Close,
				Volume:       int64(bar.Volume),
				OpenInterest: int64(bar.OI),
				Timestamp:    bar.Date.Time,
			}
			found = true
		}
	}
	return best, found, nil
}

// GetOptionQuotes flattens the hourly series of every listed option on the
// underlying into prints. One instrument download failure skips that strike
// only.
func (ks *KiteService) GetOptionQuotes(underlying string, from, to time.Time) ([]models.OptionTick, error) {
	if err := ks.loadInstruments(); err != nil {
		return nil, err
	}

	var ticks []models.OptionTick
	for _, instrument := range ks.instruments {
		if instrument.Exchange != "NFO" || !strings.HasPrefix(instrument.Tradingsymbol, underlying) {
			continue
		}
		if instrument.Expiry.Time.Before(from) || instrument.Expiry.Time.After(to.AddDate(0, 0, 7)) {
			continue
		}

		data, err := ks.client.GetHistoricalData(int(instrument.InstrumentToken), string(models.Interval60Minute), from, to, false, false)
		if err != nil {
			helpers.Logger.Debugln(fmt.Sprintf("skipping %s: %v", instrument.Tradingsymbol, err))
			continue
		}
		for _, bar := range data {
			ticks = append(ticks, models.OptionTick{
				TradingSymbol: instrument.Tradingsymbol,
				Timestamp:     bar.Date.Time,
				LastPrice:     bar.Close,
				Volume:        int64(bar.Volume),
			})
		}
	}
	return ticks, nil
}

func (ks *KiteService) instrumentToken(symbol string) (int, error) {
	if token, ok := ks.tokens[symbol]; ok {
		return token, nil
	}
	if err := ks.loadInstruments(); err != nil {
		return 0, err
	}
	if token, ok := ks.tokens[symbol]; ok {
		return token, nil
	}
	return 0, fmt.Errorf("unknown trading symbol %s", symbol)
}

func (ks *KiteService) loadInstruments() error {
	if len(ks.instruments) > 0 {
		return nil
	}
	instruments, err := ks.client.GetInstruments()
	if err != nil {
		return fmt.Errorf("downloading instrument dump: %w", err)
	}
	ks.instruments = instruments
	for _, instrument := range instruments {
		ks.tokens[instrument.Tradingsymbol] = int(instrument.InstrumentToken)
	}
	// index symbols carry an exchange prefix in the dump
	if token, ok := ks.tokens["NIFTY 50"]; ok {
		ks.tokens["NIFTY"] = token
	}
	if token, ok := ks.tokens["NIFTY BANK"]; ok {
		ks.tokens["BANKNIFTY"] = token
	}
	return nil
}
