package interfaces

import (
	"time"

	"github.com/naveenvino/OptionSellerBot/models"
)

type (
	// HedgeSelector picks the protective strike for a sold option. Fixed
	// point-offset and premium-percentage search are both implemented; which
	// one runs is configuration, not core logic.
	HedgeSelector interface {
		SelectHedgeStrike(provider CandleProvider, underlying string, mainStrike int,
			mainPremium float64, optionType models.OptionType, expiry time.Time, at time.Time) int
	}
)
