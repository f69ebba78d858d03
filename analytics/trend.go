package analytics

import "math"

// Trend is an ordinary least-squares line fitted against the sequential
// integer index of a series, usable to draw a trend line over the same
// index domain.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the fitted line at index i.
func (t Trend) At(i int) float64 {
	return t.Slope*float64(i) + t.Intercept
}

// Line materializes the fitted values for indexes 0..n-1.
func (t Trend) Line(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// LinearTrend fits values against their indexes 0..n-1. With one point or
// fewer there is no trend line and ok is false.
func LinearTrend(values []float64) (Trend, bool) {
	n := len(values)
	if n < 2 {
		return Trend{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return Trend{}, false
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn
	return Trend{Slope: slope, Intercept: intercept}, true
}

// Pearson computes the correlation coefficient between two aligned series.
// Mismatched lengths, empty input, or a constant series yield 0.
func Pearson(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}

	var meanA, meanB float64
	for i := 0; i < n; i++ {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}

	r := cov / math.Sqrt(varA*varB)
	// Guard against floating drift past the mathematical bounds.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r
}

// Correlation narratives for the classification bands.
const (
	CorrPositive = "positive correlation"
	CorrNegative = "negative correlation"
	CorrNone     = "no strong correlation"
)

// CorrelationNarrative classifies a coefficient: above 0.3 is positive,
// below -0.3 is negative, anything between is not strong.
func CorrelationNarrative(r float64) string {
	switch {
	case r > 0.3:
		return CorrPositive
	case r < -0.3:
		return CorrNegative
	default:
		return CorrNone
	}
}
