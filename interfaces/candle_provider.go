package interfaces

import (
	"time"

	"github.com/naveenvino/OptionSellerBot/models"
)

type (
	// CandleProvider supplies historical bars and option quotes. Both the
	// index series driving signal detection and the per-contract option
	// series used by the simulator come through here.
	CandleProvider interface {
		// GetBars returns the ordered bar series for a symbol between from
		// and to at the requested granularity.
		GetBars(symbol string, from time.Time, to time.Time, interval models.Interval) ([]models.Candle, error)

		// GetQuoteAt returns the quote nearest to the timestamp within a
		// ±30 minute window. ok is false when nothing trades in the window;
		// that is a data gap, not an error.
		GetQuoteAt(symbol string, timestamp time.Time) (models.Quote, bool, error)
	}
)
