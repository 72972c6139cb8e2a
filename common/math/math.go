package math

import (
	"math"
	"sort"
)

// TradingDaysPerYear is the conventional annualisation factor for
// daily equity returns
const TradingDaysPerYear = 252

// ArithmeticAverage is the basic form of calculating an average.
// Divide the sum of all values by the length of values
func ArithmeticAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for x := range values {
		sum += values[x]
	}
	return sum / float64(len(values))
}

// SampleStandardDeviation is a statistic that measures the dispersion
// of a dataset relative to its mean, calculated as the square root of
// the sample variance
func SampleStandardDeviation(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	mean := ArithmeticAverage(values)
	var combined float64
	for i := range values {
		combined += math.Pow(values[i]-mean, 2)
	}
	return math.Sqrt(combined / float64(len(values)-1))
}

// PopulationStandardDeviation calculates standard deviation using
// population based calculation
func PopulationStandardDeviation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := ArithmeticAverage(values)
	diffs := make([]float64, len(values))
	for x := range values {
		diffs[x] = math.Pow(values[x]-avg, 2)
	}
	return math.Sqrt(ArithmeticAverage(diffs))
}

// CalculatePercentageGainOrLoss returns the fractional rise or fall
// between two values
func CalculatePercentageGainOrLoss(valueNow, valueThen float64) float64 {
	if valueThen == 0 {
		return 0
	}
	return (valueNow - valueThen) / valueThen
}

// CalculateAnnualisedReturn compounds a total return over the elapsed
// calendar days into a yearly rate. Fewer than one elapsed day returns 0
func CalculateAnnualisedReturn(totalReturn, daysElapsed float64) float64 {
	if daysElapsed <= 0 {
		return 0
	}
	return math.Pow(1+totalReturn, 365.25/daysElapsed) - 1
}

// CalculateAnnualisedVolatility scales the standard deviation of daily
// returns by the square root of the trading year
func CalculateAnnualisedVolatility(dailyReturns []float64) float64 {
	return SampleStandardDeviation(dailyReturns) * math.Sqrt(TradingDaysPerYear)
}

// CalculateSharpeRatio returns the excess annualised return per unit of
// annualised volatility. Zero volatility returns 0 rather than dividing
func CalculateSharpeRatio(annualisedReturn, riskFreeRate, annualisedVolatility float64) float64 {
	if annualisedVolatility == 0 {
		return 0
	}
	return (annualisedReturn - riskFreeRate) / annualisedVolatility
}

// CalculateSortinoRatio returns the excess annualised return per unit of
// downside deviation, considering only returns below the daily target.
// No downside observations returns +Inf, zero deviation returns 0
func CalculateSortinoRatio(dailyReturns []float64, annualisedReturn, riskFreeRate, targetReturn float64) float64 {
	dailyTarget := targetReturn / TradingDaysPerYear
	var downside []float64
	for i := range dailyReturns {
		if dailyReturns[i] < dailyTarget {
			downside = append(downside, dailyReturns[i])
		}
	}
	if len(downside) == 0 {
		return math.Inf(1)
	}
	downsideDeviation := SampleStandardDeviation(downside) * math.Sqrt(TradingDaysPerYear)
	if downsideDeviation == 0 {
		return 0
	}
	return (annualisedReturn - riskFreeRate) / downsideDeviation
}

// CalculateCalmarRatio is a function of the annualised rate of return
// versus maximum drawdown. A zero drawdown returns +Inf for a positive
// return and 0 otherwise
func CalculateCalmarRatio(annualisedReturn, maxDrawdown float64) float64 {
	if maxDrawdown == 0 {
		if annualisedReturn > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return annualisedReturn / maxDrawdown
}

// CalculateMaxDrawdown returns the largest peak to trough decline of the
// value series as a positive fraction. Fewer than two points returns 0
func CalculateMaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	runningMax := values[0]
	var worst float64
	for i := range values {
		if values[i] > runningMax {
			runningMax = values[i]
		}
		if runningMax <= 0 {
			continue
		}
		dd := (values[i] - runningMax) / runningMax
		if dd < worst {
			worst = dd
		}
	}
	return math.Abs(worst)
}

// Quantile returns the linearly interpolated p-quantile of values,
// p within [0, 1]
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// CalculateValueAtRisk returns the p-quantile of the daily return
// distribution
func CalculateValueAtRisk(dailyReturns []float64, p float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return Quantile(dailyReturns, p)
}

// CalculateConditionalValueAtRisk returns the mean of returns at or
// below the p-quantile, 0 when the tail is empty
func CalculateConditionalValueAtRisk(dailyReturns []float64, p float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	valueAtRisk := CalculateValueAtRisk(dailyReturns, p)
	var tail []float64
	for i := range dailyReturns {
		if dailyReturns[i] <= valueAtRisk {
			tail = append(tail, dailyReturns[i])
		}
	}
	if len(tail) == 0 {
		return 0
	}
	return ArithmeticAverage(tail)
}

// CalculateBeta returns the covariance of the portfolio returns against
// benchmark returns over the benchmark variance. Series must already be
// aligned; fewer than two points or zero benchmark variance returns 0
func CalculateBeta(returns, benchmark []float64) float64 {
	n := len(returns)
	if n < 2 || n != len(benchmark) {
		return 0
	}
	meanReturns := ArithmeticAverage(returns)
	meanBenchmark := ArithmeticAverage(benchmark)
	var covariance, variance float64
	for i := 0; i < n; i++ {
		covariance += (returns[i] - meanReturns) * (benchmark[i] - meanBenchmark)
		variance += math.Pow(benchmark[i]-meanBenchmark, 2)
	}
	covariance /= float64(n - 1)
	variance /= float64(n - 1)
	if variance == 0 {
		return 0
	}
	return covariance / variance
}

// CalculateAlpha returns the portfolio return in excess of the CAPM
// expectation against the benchmark
func CalculateAlpha(annualisedReturn, annualisedBenchmarkReturn, riskFreeRate, beta float64) float64 {
	return annualisedReturn - (riskFreeRate + beta*(annualisedBenchmarkReturn-riskFreeRate))
}

// CalculateInformationRatio is a measurement of portfolio returns beyond
// the returns of a benchmark compared to the volatility of those excess
// returns. Series must be aligned; zero tracking error returns 0
func CalculateInformationRatio(returns, benchmark []float64) float64 {
	n := len(returns)
	if n < 2 || n != len(benchmark) {
		return 0
	}
	excess := make([]float64, n)
	for i := 0; i < n; i++ {
		excess[i] = returns[i] - benchmark[i]
	}
	trackingError := SampleStandardDeviation(excess) * math.Sqrt(TradingDaysPerYear)
	if trackingError == 0 {
		return 0
	}
	return ArithmeticAverage(excess) * TradingDaysPerYear / trackingError
}

// FinancialGeometricAverage is a modified geometric average to assess
// the compound growth of return series containing negative values.
// Values at or below -1 invalidate the calculation and return 0
func FinancialGeometricAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	product := 1.0
	for i := range values {
		if values[i] <= -1 {
			return 0
		}
		product *= values[i] + 1
	}
	return math.Pow(product, 1/float64(len(values))) - 1
}
