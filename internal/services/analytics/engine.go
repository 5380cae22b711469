package analytics

import (
	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
)

// Engine groups the four analytics components behind one stateless value.
// It holds no mutable state and never wires the components into each other;
// composing their outputs is the caller's job.
type Engine struct {
	Trend   *LeastSquaresTrendEstimator
	Price   *HeuristicPriceOptimizer
	Anomaly *RollingWindowDetector
	Recs    *ThresholdRecommender
}

// NewEngine builds an engine with the given default forecast horizon.
// priceOpts tune the optimizer's random source (seeded for reproducible runs).
func NewEngine(defaultHorizonDays int, priceOpts ...PriceOption) *Engine {
	return &Engine{
		Trend:   NewLeastSquaresTrendEstimator(defaultHorizonDays),
		Price:   NewHeuristicPriceOptimizer(priceOpts...),
		Anomaly: NewRollingWindowDetector(),
		Recs:    NewThresholdRecommender(),
	}
}

func (e *Engine) PredictDemand(series []float64, horizonDays int) models.DemandForecast {
	return e.Trend.PredictDemand(series, horizonDays)
}

func (e *Engine) OptimizePrice(currentPrice float64, currentDemand, stockLevel int) models.PriceRecommendation {
	return e.Price.OptimizePrice(currentPrice, currentDemand, stockLevel)
}

func (e *Engine) DetectAnomalies(series []float64) []models.StockAnomaly {
	return e.Anomaly.DetectAnomalies(series)
}

func (e *Engine) GenerateInventoryRecommendations(snapshots []models.InventorySnapshot) []models.Recommendation {
	return e.Recs.GenerateInventoryRecommendations(snapshots)
}

var (
	_ domsvc.TrendEstimator            = (*Engine)(nil)
	_ domsvc.PriceOptimizer            = (*Engine)(nil)
	_ domsvc.AnomalyDetector           = (*Engine)(nil)
	_ domsvc.RecommendationSynthesizer = (*Engine)(nil)
)
