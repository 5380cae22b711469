package models

import "time"

// ProductInsight bundles the per-product analytics outputs.
type ProductInsight struct {
	ProductID string               `json:"product_id"`
	Forecast  DemandForecast       `json:"forecast"`
	Price     *PriceRecommendation `json:"price,omitempty"`
	Anomalies []StockAnomaly       `json:"anomalies,omitempty"`
}

// InsightReport is the consolidated output of one analysis run.
// Products keeps the source catalog order; Recommendations are rank-sorted.
type InsightReport struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	HorizonDays     int              `json:"horizon_days"`
	Products        []ProductInsight `json:"products"`
	Recommendations []Recommendation `json:"recommendations"`
}
