package analytics

import (
	"fmt"
	"sort"

	"github.com/creasty/defaults"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
)

// Threshold rules for inventory actions. Restock thresholds are relative to
// the per-product minimum level, overstock to the maximum.
const (
	criticalRestockRatio = 0.5
	overstockRatio       = 0.8
	optimizePriceCeiling = 50.0
)

// ThresholdRecommender evaluates each snapshot independently and returns the
// resulting actions sorted by priority. Restock rules are exclusive (critical
// wins over high); overstock and price-optimization rules fire on their own.
type ThresholdRecommender struct{}

func NewThresholdRecommender() *ThresholdRecommender {
	return &ThresholdRecommender{}
}

// GenerateInventoryRecommendations produces a rank-ordered action list.
// Equal-priority items keep their input order: the stable sort is part of the
// contract, not an accident.
func (r *ThresholdRecommender) GenerateInventoryRecommendations(snapshots []models.InventorySnapshot) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(snapshots))

	for _, snap := range snapshots {
		// Fill unset min/max levels (10 and 1000) from the model tags.
		_ = defaults.Set(&snap)

		switch {
		case float64(snap.StockLevel) <= criticalRestockRatio*float64(snap.MinStockLevel):
			recs = append(recs, models.Recommendation{
				ProductID: snap.ID,
				Kind:      models.ActionRestock,
				Priority:  models.PriorityCritical,
				Message:   fmt.Sprintf("stock critically low: %d on hand, minimum %d", snap.StockLevel, snap.MinStockLevel),
				Action:    fmt.Sprintf("order %d units immediately", 3*snap.MinStockLevel),
				Impact:    "prevent imminent stockout",
			})
		case snap.StockLevel <= snap.MinStockLevel:
			recs = append(recs, models.Recommendation{
				ProductID: snap.ID,
				Kind:      models.ActionRestock,
				Priority:  models.PriorityHigh,
				Message:   fmt.Sprintf("stock below minimum: %d on hand, minimum %d", snap.StockLevel, snap.MinStockLevel),
				Action:    fmt.Sprintf("order %d units", 2*snap.MinStockLevel),
				Impact:    "avoid stockout risk",
			})
		}

		if float64(snap.StockLevel) > overstockRatio*float64(snap.MaxStockLevel) {
			recs = append(recs, models.Recommendation{
				ProductID: snap.ID,
				Kind:      models.ActionReduce,
				Priority:  models.PriorityMedium,
				Message:   fmt.Sprintf("stock near capacity: %d on hand, maximum %d", snap.StockLevel, snap.MaxStockLevel),
				Action:    "promotional pricing or bundling",
				Impact:    "free up tied capital and shelf space",
			})
		}

		if snap.Price < optimizePriceCeiling && snap.StockLevel > 2*snap.MinStockLevel {
			recs = append(recs, models.Recommendation{
				ProductID: snap.ID,
				Kind:      models.ActionOptimize,
				Priority:  models.PriorityLow,
				Message:   fmt.Sprintf("healthy stock at a low price point (%.2f)", snap.Price),
				Action:    "consider 5-10% price increase",
				Impact:    "improve margin without stockout risk",
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() > recs[j].Priority.Rank()
	})
	return recs
}

var _ domsvc.RecommendationSynthesizer = (*ThresholdRecommender)(nil)
