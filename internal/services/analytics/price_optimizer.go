package analytics

import (
	"math"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
)

// Stock-level buckets for the price heuristic.
const (
	scarceStockLevel = 10
	excessStockLevel = 100
)

// elasticity is the fixed constant relating relative price change to
// relative demand change.
const elasticity = -1.2

const (
	reasonScarce   = "low stock, raise price"
	reasonExcess   = "high stock, lower price to increase turnover"
	reasonBalanced = "balanced stock, minor adjustment"
)

// HeuristicPriceOptimizer picks a bounded price factor per stock bucket.
// The factor's position inside its bucket range comes from the injected
// uniform source, so the output is a bounded interval, not a fixed value.
type HeuristicPriceOptimizer struct {
	draw func() float64
}

// PriceOption configures a HeuristicPriceOptimizer.
type PriceOption func(*HeuristicPriceOptimizer)

// WithSeed makes factor draws deterministic. The seeded source is guarded by
// a mutex so the optimizer stays safe for concurrent use.
func WithSeed(seed int64) PriceOption {
	return func(p *HeuristicPriceOptimizer) {
		src := rand.New(rand.NewSource(seed))
		var mu sync.Mutex
		p.draw = func() float64 {
			mu.Lock()
			defer mu.Unlock()
			return src.Float64()
		}
	}
}

// WithDraw substitutes the uniform source entirely. Intended for tests.
func WithDraw(draw func() float64) PriceOption {
	return func(p *HeuristicPriceOptimizer) { p.draw = draw }
}

func NewHeuristicPriceOptimizer(opts ...PriceOption) *HeuristicPriceOptimizer {
	p := &HeuristicPriceOptimizer{draw: rand.Float64}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OptimizePrice suggests a price for the current stock situation and projects
// demand at that price under the fixed elasticity model. currentPrice must be
// positive and currentDemand/stockLevel non-negative; callers validate.
func (p *HeuristicPriceOptimizer) OptimizePrice(currentPrice float64, currentDemand, stockLevel int) models.PriceRecommendation {
	var factor, confidence float64
	var reasoning string
	switch {
	case stockLevel < scarceStockLevel:
		factor = 1.05 + p.draw()*0.05 // [1.05, 1.10)
		confidence = 75
		reasoning = reasonScarce
	case stockLevel > excessStockLevel:
		factor = 0.90 + p.draw()*0.05 // [0.90, 0.95)
		confidence = 70
		reasoning = reasonExcess
	default:
		factor = 0.98 + p.draw()*0.04 // [0.98, 1.02)
		confidence = 65
		reasoning = reasonBalanced
	}

	optimized, _ := decimal.NewFromFloat(currentPrice * factor).Round(2).Float64()

	// Elasticity works off the rounded price the caller would actually set.
	priceChangeRatio := (optimized - currentPrice) / currentPrice
	demandChangeRatio := elasticity * priceChangeRatio
	expected := int(math.Round(math.Max(0, float64(currentDemand)*(1+demandChangeRatio))))

	return models.PriceRecommendation{
		OptimizedPrice: optimized,
		Confidence:     confidence,
		ExpectedDemand: expected,
		Reasoning:      reasoning,
	}
}

var _ domsvc.PriceOptimizer = (*HeuristicPriceOptimizer)(nil)
