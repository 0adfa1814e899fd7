package services

import (
	"github.com/goml/gobrain"

	"github.com/naveenvino/OptionSellerBot/models"
)

// ConfidenceService refines the fixed per-rule confidence with a small
// feed-forward network over the setup context. The network is trained once
// at construction on hand-labelled setups; the output only nudges the rule
// confidence, it never replaces it.
type ConfidenceService struct {
	network   *gobrain.FeedForward
	technical TechnicalAnalysisService
}

// training patterns: rule confidence, bullish bias, bearish bias, selling a
// put -> observed win likelihood
var confidencePatterns = [][][]float64{
	{{0.85, 1, 0, 1}, {0.90}},
	{{0.80, 1, 0, 1}, {0.82}},
	{{0.78, 1, 0, 1}, {0.75}},
	{{0.82, 0, 1, 0}, {0.85}},
	{{0.78, 0, 1, 0}, {0.76}},
	{{0.75, 0, 1, 0}, {0.72}},
	{{0.72, 1, 0, 1}, {0.68}},
	{{0.72, 0, 1, 0}, {0.66}},
	{{0.85, 0, 1, 1}, {0.70}},
	{{0.82, 1, 0, 0}, {0.68}},
}

func NewConfidenceService() *ConfidenceService {
	network := &gobrain.FeedForward{}
	network.Init(4, 6, 1)
	network.Train(confidencePatterns, 1000, 0.6, 0.4, false)
	return &ConfidenceService{
		network:   network,
		technical: NewTechnicalAnalysisService(),
	}
}

// Score blends the rule confidence with the network estimate, 70/30. RSI
// agreement with the trade direction adds a small bonus on top.
func (cs *ConfidenceService) Score(signal models.Signal, zone models.WeeklyZone, bars []models.Candle) float64 {
	inputs := []float64{
		signal.Confidence,
		boolToFloat(zone.Bias == models.BiasBullish),
		boolToFloat(zone.Bias == models.BiasBearish),
		boolToFloat(signal.OptionType == models.OptionTypePE),
	}
	estimate := cs.network.Update(inputs)[0]

	score := 0.7*signal.Confidence + 0.3*estimate

	snapshot := cs.technical.Snapshot(bars)
	if signal.OptionType == models.OptionTypePE && snapshot.RSI > 50 {
		score += 0.02
	}
	if signal.OptionType == models.OptionTypeCE && snapshot.RSI < 50 {
		score += 0.02
	}

	if score > 1 {
		score = 1
	}
	return score
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
