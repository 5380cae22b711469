package service

import (
	"StockPulse/internal/domain/models"
)

// TrendEstimator fits a linear trend to a demand series and projects it
// horizonDays forward.
type TrendEstimator interface {
	PredictDemand(series []float64, horizonDays int) models.DemandForecast
}

// PriceOptimizer derives a suggested price from the current price, observed
// demand and stock level.
type PriceOptimizer interface {
	OptimizePrice(currentPrice float64, currentDemand, stockLevel int) models.PriceRecommendation
}

// AnomalyDetector scans a demand series and flags statistically unusual points.
type AnomalyDetector interface {
	DetectAnomalies(series []float64) []models.StockAnomaly
}

// RecommendationSynthesizer turns inventory snapshots into a ranked action list.
type RecommendationSynthesizer interface {
	GenerateInventoryRecommendations(snapshots []models.InventorySnapshot) []models.Recommendation
}
