package interfaces

import (
	"time"

	"github.com/naveenvino/OptionSellerBot/models"
)

// OptionQuoteSource lists every recorded option print for an underlying in a
// time range, any strike and expiry mixed. Providers that can only serve
// per-symbol series do not implement it.
type OptionQuoteSource interface {
	GetOptionQuotes(underlying string, from time.Time, to time.Time) ([]models.OptionTick, error)
}
