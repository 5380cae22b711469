package stats

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation (divide by n, not n-1),
// or 0 for an empty slice.
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - mean
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(xs)))
}

// LinearFit runs ordinary least squares of ys against index positions
// x = 0..n-1. ok is false when the denominator n*Σx² − (Σx)² is zero,
// i.e. fewer than two points.
func LinearFit(ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// ResidualSums returns the residual and total sums of squares of ys against
// the fitted line slope*x + intercept, with x = 0..n-1.
func ResidualSums(ys []float64, slope, intercept float64) (ssRes, ssTot float64) {
	mean := Mean(ys)
	for i, y := range ys {
		fit := slope*float64(i) + intercept
		r := y - fit
		ssRes += r * r
		d := y - mean
		ssTot += d * d
	}
	return ssRes, ssTot
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
