package services

import (
	"fmt"
	"math"
	"time"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/interfaces"
	"github.com/naveenvino/OptionSellerBot/models"
)

// FixedPointsHedge buys protection a fixed number of points further out of
// the money than the sold strike.
type FixedPointsHedge struct {
	HedgePoints int
}

func NewFixedPointsHedge(hedgePoints int) FixedPointsHedge {
	return FixedPointsHedge{HedgePoints: hedgePoints}
}

func (h FixedPointsHedge) SelectHedgeStrike(_ interfaces.CandleProvider, _ string, mainStrike int,
	_ float64, optionType models.OptionType, _ time.Time, _ time.Time) int {
	if optionType == models.OptionTypeCE {
		return mainStrike + h.HedgePoints
	}
	return mainStrike - h.HedgePoints
}

// PremiumTargetHedge scans out-of-the-money strikes for the one whose premium
// is nearest to a percentage of the main leg's premium.
type PremiumTargetHedge struct {
	Percentage float64
}

func NewPremiumTargetHedge(percentage float64) PremiumTargetHedge {
	return PremiumTargetHedge{Percentage: percentage}
}

var hedgeScanOffsets = []int{50, 100, 200, 300, 500, 700, 1000}

func (h PremiumTargetHedge) SelectHedgeStrike(provider interfaces.CandleProvider, underlying string,
	mainStrike int, mainPremium float64, optionType models.OptionType, expiry time.Time, at time.Time) int {

	targetPremium := mainPremium * h.Percentage / 100

	sign := 1
	if optionType == models.OptionTypePE {
		sign = -1
	}

	bestStrike := mainStrike + sign*300
	bestDiff := math.MaxFloat64

	for _, offset := range hedgeScanOffsets {
		testStrike := mainStrike + sign*offset
		testSymbol := models.TradingSymbol(underlying, expiry, testStrike, optionType)

		quote, ok, err := provider.GetQuoteAt(testSymbol, at)
		if err != nil {
			helpers.Logger.Debugln(fmt.Sprintf("hedge scan: no price for %s: %v", testSymbol, err))
			continue
		}
		if !ok || quote.Price <= 0 {
			continue
		}

		diff := math.Abs(quote.Price - targetPremium)
		if diff < bestDiff {
			bestDiff = diff
			bestStrike = testStrike
		}
	}

	helpers.Logger.Debugln(fmt.Sprintf("hedge scan: selected strike %d (premium diff %.2f from target %.2f)",
		bestStrike, bestDiff, targetPremium))
	return bestStrike
}
