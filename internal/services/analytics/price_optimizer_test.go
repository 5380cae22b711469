package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizePriceScarceStock(t *testing.T) {
	p := NewHeuristicPriceOptimizer(WithSeed(42))
	got := p.OptimizePrice(100, 50, 5)

	assert.GreaterOrEqual(t, got.OptimizedPrice, 105.0)
	assert.Less(t, got.OptimizedPrice, 110.0)
	assert.Equal(t, 75.0, got.Confidence)
	assert.Equal(t, reasonScarce, got.Reasoning)
}

func TestOptimizePriceExcessStock(t *testing.T) {
	p := NewHeuristicPriceOptimizer(WithSeed(42))
	got := p.OptimizePrice(100, 50, 150)

	assert.GreaterOrEqual(t, got.OptimizedPrice, 90.0)
	assert.Less(t, got.OptimizedPrice, 95.0)
	assert.Equal(t, 70.0, got.Confidence)
	assert.Equal(t, reasonExcess, got.Reasoning)
}

func TestOptimizePriceBalancedStock(t *testing.T) {
	p := NewHeuristicPriceOptimizer(WithSeed(42))
	got := p.OptimizePrice(100, 50, 50)

	assert.GreaterOrEqual(t, got.OptimizedPrice, 98.0)
	assert.Less(t, got.OptimizedPrice, 102.0)
	assert.Equal(t, 65.0, got.Confidence)
	assert.Equal(t, reasonBalanced, got.Reasoning)
}

func TestOptimizePriceElasticityFromRoundedPrice(t *testing.T) {
	// Pin the draw to the bucket's lower bound so the arithmetic is exact.
	p := NewHeuristicPriceOptimizer(WithDraw(func() float64 { return 0 }))

	// scarce: factor 1.05, price 105.00, ratio 0.05, demand 50*(1-0.06) = 47
	got := p.OptimizePrice(100, 50, 5)
	assert.Equal(t, 105.0, got.OptimizedPrice)
	assert.Equal(t, 47, got.ExpectedDemand)

	// excess: factor 0.90, price 90.00, ratio -0.10, demand 50*1.12 = 56
	got = p.OptimizePrice(100, 50, 150)
	assert.Equal(t, 90.0, got.OptimizedPrice)
	assert.Equal(t, 56, got.ExpectedDemand)

	// balanced: factor 0.98, price 98.00, ratio -0.02, demand 50*1.024 = 51
	got = p.OptimizePrice(100, 50, 50)
	assert.Equal(t, 98.0, got.OptimizedPrice)
	assert.Equal(t, 51, got.ExpectedDemand)
}

func TestOptimizePriceZeroDemand(t *testing.T) {
	p := NewHeuristicPriceOptimizer(WithSeed(1))
	got := p.OptimizePrice(100, 0, 5)
	assert.Equal(t, 0, got.ExpectedDemand)
}

func TestOptimizePriceSeededDeterminism(t *testing.T) {
	a := NewHeuristicPriceOptimizer(WithSeed(7))
	b := NewHeuristicPriceOptimizer(WithSeed(7))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.OptimizePrice(19.99, 30, 5), b.OptimizePrice(19.99, 30, 5))
	}
}

func TestOptimizePriceRoundsToTwoDecimals(t *testing.T) {
	p := NewHeuristicPriceOptimizer(WithSeed(3))
	for i := 0; i < 50; i++ {
		got := p.OptimizePrice(19.99, 30, 50)
		cents := got.OptimizedPrice * 100
		assert.InDelta(t, cents, float64(int64(cents+0.5)), 1e-6)
	}
}
