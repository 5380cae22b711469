package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockPulse/internal/domain/models"
)

func TestPredictDemandEmptySeries(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand(nil, 7)
	assert.Equal(t, models.DemandForecast{Prediction: 0, Confidence: 0, Trend: models.TrendStable}, got)
}

func TestPredictDemandSinglePoint(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand([]float64{42}, 7)
	assert.Equal(t, models.DemandForecast{Prediction: 0, Confidence: 0, Trend: models.TrendStable}, got)
}

func TestPredictDemandPerfectLinearGrowth(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand([]float64{10, 20, 30, 40, 50}, 7)

	// slope 10, intercept 10, evaluated at x = 5+7-1 = 11
	assert.Equal(t, 120, got.Prediction)
	assert.InDelta(t, 100, got.Confidence, 1e-9)
	assert.Equal(t, models.TrendIncreasing, got.Trend)
}

func TestPredictDemandConstantSeries(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand([]float64{5, 5, 5, 5, 5}, 7)

	// a flat line fits a constant series perfectly
	assert.Equal(t, 5, got.Prediction)
	assert.InDelta(t, 100, got.Confidence, 1e-9)
	assert.Equal(t, models.TrendStable, got.Trend)
}

func TestPredictDemandDecliningFloorsAtZero(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand([]float64{50, 40, 30, 20, 10}, 7)

	// slope -10 projects far below zero; prediction floors at 0
	assert.Equal(t, 0, got.Prediction)
	assert.Equal(t, models.TrendDecreasing, got.Trend)
}

func TestPredictDemandNoisySeriesConfidenceClamped(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	got := e.PredictDemand([]float64{10, 50, 5, 60, 8, 55}, 7)

	assert.GreaterOrEqual(t, got.Confidence, 0.0)
	assert.LessOrEqual(t, got.Confidence, 100.0)
	assert.GreaterOrEqual(t, got.Prediction, 0)
}

func TestPredictDemandDefaultHorizon(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	series := []float64{10, 20, 30, 40, 50}

	// horizonDays < 1 falls back to the configured default of 7
	assert.Equal(t, e.PredictDemand(series, 7), e.PredictDemand(series, 0))
}

func TestPredictDemandIdempotent(t *testing.T) {
	e := NewLeastSquaresTrendEstimator(7)
	series := []float64{3, 9, 4, 12, 8, 15, 11}
	assert.Equal(t, e.PredictDemand(series, 14), e.PredictDemand(series, 14))
}
