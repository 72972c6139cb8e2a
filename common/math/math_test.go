package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticAverage(t *testing.T) {
	t.Parallel()
	assert.Zero(t, ArithmeticAverage(nil))
	assert.Equal(t, 2.0, ArithmeticAverage([]float64{1, 2, 3}))
	assert.Equal(t, -1.0, ArithmeticAverage([]float64{-2, 0}))
}

func TestSampleStandardDeviation(t *testing.T) {
	t.Parallel()
	assert.Zero(t, SampleStandardDeviation(nil))
	assert.Zero(t, SampleStandardDeviation([]float64{42}))
	// variance of {2,4,4,4,5,5,7,9} about mean 5 is 32/7
	assert.InDelta(t, math.Sqrt(32.0/7.0), SampleStandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
	assert.Zero(t, SampleStandardDeviation([]float64{3, 3, 3, 3}))
}

func TestPopulationStandardDeviation(t *testing.T) {
	t.Parallel()
	assert.Zero(t, PopulationStandardDeviation(nil))
	assert.InDelta(t, 2.0, PopulationStandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestCalculatePercentageGainOrLoss(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculatePercentageGainOrLoss(100, 0))
	assert.InDelta(t, 0.1, CalculatePercentageGainOrLoss(110, 100), 1e-12)
	assert.InDelta(t, -0.5, CalculatePercentageGainOrLoss(50, 100), 1e-12)
}

func TestCalculateAnnualisedReturn(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateAnnualisedReturn(0.5, 0))
	assert.InDelta(t, 0.1, CalculateAnnualisedReturn(0.1, 365.25), 1e-12)
	// 10% over half a year compounds past 20%
	assert.Greater(t, CalculateAnnualisedReturn(0.1, 365.25/2), 0.2)
}

func TestCalculateAnnualisedVolatility(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateAnnualisedVolatility([]float64{0.01, 0.01, 0.01}))
	returns := []float64{0.01, -0.02, 0.005, 0.015}
	expected := SampleStandardDeviation(returns) * math.Sqrt(TradingDaysPerYear)
	assert.InDelta(t, expected, CalculateAnnualisedVolatility(returns), 1e-12)
}

func TestCalculateSharpeRatio(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateSharpeRatio(0.1, 0.02, 0))
	assert.InDelta(t, 0.5, CalculateSharpeRatio(0.12, 0.02, 0.2), 1e-12)
	assert.InDelta(t, -0.5, CalculateSharpeRatio(-0.08, 0.02, 0.2), 1e-12)
}

func TestCalculateSortinoRatio(t *testing.T) {
	t.Parallel()
	// every return above the daily target leaves no downside sample
	assert.True(t, math.IsInf(CalculateSortinoRatio([]float64{0.01, 0.02}, 0.1, 0.02, 0), 1))
	// a single downside observation has zero sample deviation
	assert.Zero(t, CalculateSortinoRatio([]float64{0.01, -0.02}, 0.1, 0.02, 0))
	ratio := CalculateSortinoRatio([]float64{0.01, -0.02, -0.01, 0.03}, 0.1, 0.02, 0)
	assert.Positive(t, ratio)
}

func TestCalculateCalmarRatio(t *testing.T) {
	t.Parallel()
	assert.True(t, math.IsInf(CalculateCalmarRatio(0.1, 0), 1))
	assert.Zero(t, CalculateCalmarRatio(-0.1, 0))
	assert.Zero(t, CalculateCalmarRatio(0, 0))
	assert.InDelta(t, 0.5, CalculateCalmarRatio(0.1, 0.2), 1e-12)
}

func TestCalculateMaxDrawdown(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateMaxDrawdown(nil))
	assert.Zero(t, CalculateMaxDrawdown([]float64{100}))
	assert.Zero(t, CalculateMaxDrawdown([]float64{100, 110, 120}))
	// peak 120, trough 90
	assert.InDelta(t, 0.25, CalculateMaxDrawdown([]float64{100, 120, 90, 110}), 1e-12)
	dd := CalculateMaxDrawdown([]float64{100, 80, 130, 65, 140})
	assert.InDelta(t, 0.5, dd, 1e-12)
	assert.GreaterOrEqual(t, dd, 0.0)
	assert.LessOrEqual(t, dd, 1.0)
}

func TestQuantile(t *testing.T) {
	t.Parallel()
	assert.Zero(t, Quantile(nil, 0.5))
	values := []float64{3, 1, 4, 2}
	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 4.0, Quantile(values, 1))
	assert.InDelta(t, 2.5, Quantile(values, 0.5), 1e-12)
	assert.InDelta(t, 1.15, Quantile(values, 0.05), 1e-12)
	// input order must not matter
	assert.Equal(t, []float64{3, 1, 4, 2}, values)
}

func TestCalculateValueAtRisk(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateValueAtRisk(nil, 0.05))
	returns := []float64{-0.05, -0.02, 0.01, 0.03, 0.04}
	assert.InDelta(t, Quantile(returns, 0.05), CalculateValueAtRisk(returns, 0.05), 1e-12)
}

func TestCalculateConditionalValueAtRisk(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateConditionalValueAtRisk(nil, 0.05))
	returns := []float64{-0.05, -0.02, 0.01, 0.03, 0.04}
	cvar := CalculateConditionalValueAtRisk(returns, 0.05)
	assert.LessOrEqual(t, cvar, CalculateValueAtRisk(returns, 0.05))
	// identical returns collapse the tail onto the single value
	assert.InDelta(t, 0.01, CalculateConditionalValueAtRisk([]float64{0.01, 0.01, 0.01}, 0.05), 1e-12)
}

func TestCalculateBeta(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateBeta(nil, nil))
	assert.Zero(t, CalculateBeta([]float64{0.01}, []float64{0.01}))
	assert.Zero(t, CalculateBeta([]float64{0.01, 0.02}, []float64{0.01, 0.02, 0.03}))
	// flat benchmark has no variance
	assert.Zero(t, CalculateBeta([]float64{0.01, 0.02, 0.03}, []float64{0.01, 0.01, 0.01}))
	benchmark := []float64{0.01, -0.02, 0.005, 0.03}
	assert.InDelta(t, 1.0, CalculateBeta(benchmark, benchmark), 1e-12)
	doubled := make([]float64, len(benchmark))
	for i := range benchmark {
		doubled[i] = benchmark[i] * 2
	}
	assert.InDelta(t, 2.0, CalculateBeta(doubled, benchmark), 1e-12)
}

func TestCalculateAlpha(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.02, CalculateAlpha(0.12, 0.10, 0.02, 1), 1e-12)
	assert.Zero(t, CalculateAlpha(0.10, 0.10, 0.02, 1))
}

func TestCalculateInformationRatio(t *testing.T) {
	t.Parallel()
	assert.Zero(t, CalculateInformationRatio(nil, nil))
	assert.Zero(t, CalculateInformationRatio([]float64{0.01, 0.02}, []float64{0.01}))
	// constant excess has zero tracking error
	assert.Zero(t, CalculateInformationRatio([]float64{0.02, 0.03}, []float64{0.01, 0.02}))
	ir := CalculateInformationRatio([]float64{0.02, 0.04, 0.01}, []float64{0.01, 0.01, 0.01})
	assert.Positive(t, ir)
}

func TestFinancialGeometricAverage(t *testing.T) {
	t.Parallel()
	assert.Zero(t, FinancialGeometricAverage(nil))
	assert.Zero(t, FinancialGeometricAverage([]float64{0.05, -1}))
	assert.InDelta(t, 0.1, FinancialGeometricAverage([]float64{0.1, 0.1, 0.1}), 1e-12)
	mixed := FinancialGeometricAverage([]float64{0.1, -0.05})
	assert.InDelta(t, math.Sqrt(1.1*0.95)-1, mixed, 1e-12)
}
