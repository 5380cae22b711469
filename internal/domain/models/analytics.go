package models

// Trend is the qualitative direction of a fitted demand line.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Severity grades how far an observation sits from its trailing window.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// AnomalyKind distinguishes unusually high from unusually low observations.
type AnomalyKind string

const (
	AnomalySpike AnomalyKind = "spike"
	AnomalyDrop  AnomalyKind = "drop"
)

// ActionKind classifies an inventory recommendation.
type ActionKind string

const (
	ActionRestock  ActionKind = "restock"
	ActionReduce   ActionKind = "reduce"
	ActionOptimize ActionKind = "optimize"
)

// Priority orders recommendations, critical highest.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank maps a priority to its sort ordinal. Unknown priorities rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// DemandForecast is the result of fitting and projecting a demand series.
type DemandForecast struct {
	Prediction int     `json:"prediction"` // projected units, never negative
	Confidence float64 `json:"confidence"` // R^2-derived percentage in [0,100]
	Trend      Trend   `json:"trend"`
}

// PriceRecommendation suggests a bounded price adjustment with its expected
// demand under a fixed elasticity model.
type PriceRecommendation struct {
	OptimizedPrice float64 `json:"optimized_price"`
	Confidence     float64 `json:"confidence"`
	ExpectedDemand int     `json:"expected_demand"`
	Reasoning      string  `json:"reasoning"`
}

// StockAnomaly flags one statistically unusual point in a demand series.
// Expected carries the trailing-window mean the point was scored against.
type StockAnomaly struct {
	Index    int         `json:"index"`
	Value    float64     `json:"value"`
	Expected float64     `json:"expected"`
	Severity Severity    `json:"severity"`
	Kind     AnomalyKind `json:"kind"`
}

// InventorySnapshot is the per-product stock state supplied by the catalog
// collaborator. Zero min/max levels are filled with defaults before rules run.
type InventorySnapshot struct {
	ID            string  `json:"id"`
	StockLevel    int     `json:"stock_level"`
	MinStockLevel int     `json:"min_stock_level" default:"10"`
	MaxStockLevel int     `json:"max_stock_level" default:"1000"`
	Price         float64 `json:"price"`
}

// Recommendation is one ranked inventory action.
type Recommendation struct {
	ProductID string     `json:"product_id"`
	Kind      ActionKind `json:"kind"`
	Priority  Priority   `json:"priority"`
	Message   string     `json:"message"`
	Action    string     `json:"action"`
	Impact    string     `json:"impact"`
}
