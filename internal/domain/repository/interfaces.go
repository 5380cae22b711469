package repository

import (
	"context"

	"StockPulse/internal/domain/models"
)

// SalesHistorySource supplies chronological demand series and current
// inventory snapshots. The analytics engine never reads data itself; it is
// handed series and snapshots by whoever implements this.
type SalesHistorySource interface {
	// Products returns product IDs in catalog order.
	Products(ctx context.Context) ([]string, error)
	// DemandSeries returns the chronological demand series for a product,
	// one value per period. May be empty for products with no history.
	DemandSeries(ctx context.Context, productID string) ([]float64, error)
	// Snapshots returns the current inventory state for every product.
	Snapshots(ctx context.Context) ([]models.InventorySnapshot, error)
}

// Metrics records counters and latencies for analytics runs.
type Metrics interface {
	RecordEvaluation(component string)
	RecordAnomalies(n int)
	RecordRecommendation(priority string)
	RecordLatency(op string, seconds float64)
}
