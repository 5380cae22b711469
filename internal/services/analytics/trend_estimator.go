package analytics

import (
	"math"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/internal/services/stats"
)

// Slope thresholds for trend classification. Fixed constants, not derived
// from the data.
const (
	slopeIncreasing = 0.1
	slopeDecreasing = -0.1
)

// DefaultHorizonDays is the forecast horizon used when the caller does not
// supply one.
const DefaultHorizonDays = 7

// LeastSquaresTrendEstimator fits an OLS line over index positions and
// evaluates it at the last day of the forecast horizon.
type LeastSquaresTrendEstimator struct {
	defaultHorizonDays int
}

func NewLeastSquaresTrendEstimator(defaultHorizonDays int) *LeastSquaresTrendEstimator {
	if defaultHorizonDays < 1 {
		defaultHorizonDays = DefaultHorizonDays
	}
	return &LeastSquaresTrendEstimator{defaultHorizonDays: defaultHorizonDays}
}

// PredictDemand fits series and projects demand horizonDays ahead.
// horizonDays < 1 falls back to the configured default. An empty or
// single-point series yields the degenerate zero forecast.
func (e *LeastSquaresTrendEstimator) PredictDemand(series []float64, horizonDays int) models.DemandForecast {
	if horizonDays < 1 {
		horizonDays = e.defaultHorizonDays
	}
	degenerate := models.DemandForecast{Prediction: 0, Confidence: 0, Trend: models.TrendStable}

	if len(series) == 0 {
		return degenerate
	}
	slope, intercept, ok := stats.LinearFit(series)
	if !ok {
		return degenerate
	}

	// Evaluate the regression line at the last day of the horizon, not its
	// start: x = n + horizonDays - 1.
	futureX := float64(len(series) + horizonDays - 1)
	prediction := int(math.Round(math.Max(0, slope*futureX+intercept)))

	ssRes, ssTot := stats.ResidualSums(series, slope, intercept)
	var confidence float64
	if ssTot == 0 {
		// Constant series: R^2 is undefined. A perfect flat fit is full
		// confidence, anything else none.
		if ssRes == 0 {
			confidence = 100
		}
	} else {
		confidence = stats.Clamp((1-ssRes/ssTot)*100, 0, 100)
	}

	trend := models.TrendStable
	switch {
	case slope > slopeIncreasing:
		trend = models.TrendIncreasing
	case slope < slopeDecreasing:
		trend = models.TrendDecreasing
	}

	return models.DemandForecast{Prediction: prediction, Confidence: confidence, Trend: trend}
}

var _ domsvc.TrendEstimator = (*LeastSquaresTrendEstimator)(nil)
