package services

import (
	"fmt"
	"time"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/interfaces"
	"github.com/naveenvino/OptionSellerBot/models"
)

// expiredPremium is the nominal price assumed when an option has no quote
// left at expiry
const expiredPremium = 0.1

// TradeSimulator turns a detected signal into a simulated round trip: sell
// the main strike, buy the hedge, then replay the remaining bars until the
// stop-loss is breached or the position expires on Thursday.
type TradeSimulator struct {
	provider      interfaces.CandleProvider
	hedgeSelector interfaces.HedgeSelector
}

func NewTradeSimulator(provider interfaces.CandleProvider, hedgeSelector interfaces.HedgeSelector) TradeSimulator {
	return TradeSimulator{
		provider:      provider,
		hedgeSelector: hedgeSelector,
	}
}

// ExecuteSignalTrade opens both legs at the signal timestamp and monitors
// the rest of the week. A missing entry price aborts the trade with a
// warning and returns nil; the backtest moves on to the next week.
func (ts TradeSimulator) ExecuteSignalTrade(signal models.Signal, weekStart time.Time,
	weekBars []models.Candle, underlying string, lotSize int) *models.SimulatedTrade {

	expiry := helpers.ThursdayExpiry(weekStart)
	if signal.Timestamp.After(expiry) {
		// Fired after Thursday square-off: the trade rides the next expiry
		expiry = expiry.AddDate(0, 0, 7)
	}

	mainStrike := int(signal.StrikePrice)
	mainSymbol := models.TradingSymbol(underlying, expiry, mainStrike, signal.OptionType)

	mainEntry, ok, err := ts.provider.GetQuoteAt(mainSymbol, signal.Timestamp)
	if err != nil || !ok {
		helpers.Logger.Warnln(fmt.Sprintf("%s: no entry price for %s at %v, skipping trade",
			signal.SignalID, mainSymbol, signal.Timestamp))
		return nil
	}

	hedgeStrike := ts.hedgeSelector.SelectHedgeStrike(ts.provider, underlying, mainStrike,
		mainEntry.Price, signal.OptionType, expiry, signal.Timestamp)
	hedgeSymbol := models.TradingSymbol(underlying, expiry, hedgeStrike, signal.OptionType)

	hedgeEntry, ok, err := ts.provider.GetQuoteAt(hedgeSymbol, signal.Timestamp)
	if err != nil || !ok {
		helpers.Logger.Warnln(fmt.Sprintf("%s: no entry price for hedge %s at %v, skipping trade",
			signal.SignalID, hedgeSymbol, signal.Timestamp))
		return nil
	}

	trade := models.SimulatedTrade{
		WeekStart:       weekStart,
		SignalID:        signal.SignalID,
		SignalName:      signal.SignalName,
		TriggerTime:     signal.Timestamp,
		MainSymbol:      mainSymbol,
		HedgeSymbol:     hedgeSymbol,
		MainStrike:      mainStrike,
		HedgeStrike:     hedgeStrike,
		OptionType:      signal.OptionType,
		MainEntryPrice:  mainEntry.Price,
		HedgeEntryPrice: hedgeEntry.Price,
		StopLossLevel:   signal.StopLossPrice,
		Quantity:        lotSize,
	}

	exitTime, mainExit, hedgeExit, exitReason := ts.monitorExit(trade, weekBars, signal.Timestamp, expiry)

	trade.ExitTime = exitTime
	trade.MainExitPrice = mainExit
	trade.HedgeExitPrice = hedgeExit
	trade.ExitReason = exitReason

	// Both legs are priced from the seller's side: main sold, hedge bought
	trade.MainPnL = (trade.MainEntryPrice - trade.MainExitPrice) * float64(trade.Quantity)
	trade.HedgePnL = (trade.HedgeExitPrice - trade.HedgeEntryPrice) * float64(trade.Quantity)
	trade.NetPnL = trade.MainPnL + trade.HedgePnL
	trade.Success = trade.NetPnL > 0

	return &trade
}

// monitorExit walks the bars after entry. The stop is on the sold leg only:
// it breaches when the option price rises to the stop level. A bar with
// either leg unquoted is skipped, never treated as a breach.
func (ts TradeSimulator) monitorExit(trade models.SimulatedTrade, weekBars []models.Candle,
	entryTime time.Time, expiry time.Time) (time.Time, float64, float64, models.ExitReason) {

	for _, bar := range weekBars {
		if !bar.Timestamp.After(entryTime) {
			continue
		}
		if bar.Timestamp.After(expiry) {
			break
		}

		mainQuote, okMain, errMain := ts.provider.GetQuoteAt(trade.MainSymbol, bar.Timestamp)
		hedgeQuote, okHedge, errHedge := ts.provider.GetQuoteAt(trade.HedgeSymbol, bar.Timestamp)
		if errMain != nil || errHedge != nil || !okMain || !okHedge {
			continue
		}

		if mainQuote.Price >= trade.StopLossLevel {
			return bar.Timestamp, mainQuote.Price, hedgeQuote.Price, models.ExitReasonStopLoss
		}
	}

	// Survived to expiry: square off at the last known prices
	mainExit := expiredPremium
	if quote, ok, err := ts.provider.GetQuoteAt(trade.MainSymbol, expiry); err == nil && ok {
		mainExit = quote.Price
	}
	hedgeExit := expiredPremium
	if quote, ok, err := ts.provider.GetQuoteAt(trade.HedgeSymbol, expiry); err == nil && ok {
		hedgeExit = quote.Price
	}

	return expiry, mainExit, hedgeExit, models.ExitReasonExpiryWin
}
