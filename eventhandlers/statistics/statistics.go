// Package statistics derives performance measures from a finished
// run's equity curve. Every ratio treats division by zero as an
// explicit branch with a defined value; no metric can raise an
// arithmetic error
package statistics

import (
	"fmt"
	"io"
	"math"
	"time"

	gctmath "github.com/Joseph-Carlucci/quant-platform/common/math"
	"github.com/Joseph-Carlucci/quant-platform/data"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/holdings"
)

const defaultVaRConfidence = 0.05

// Analyse computes the full metric set over the equity history. The
// benchmark series is optional; when supplied, beta, alpha and the
// information ratio are computed over date-aligned daily returns and
// reported as 0 below two aligned points
func (a *Analyzer) Analyse(history []holdings.Snapshot, benchmark []data.Point) (*Report, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	confidence := a.VaRConfidence
	if confidence <= 0 || confidence >= 1 {
		confidence = defaultVaRConfidence
	}

	values := make([]float64, len(history))
	for i := range history {
		values[i] = history[i].TotalValue.InexactFloat64()
	}
	dailyReturns := calculateReturns(values)

	report := &Report{
		StartDate:         history[0].Timestamp,
		EndDate:           history[len(history)-1].Timestamp,
		InitialValue:      history[0].TotalValue,
		FinalValue:        history[len(history)-1].TotalValue,
		DailyReturns:      dailyReturns,
		CumulativeReturns: cumulativeReturns(dailyReturns),
		Metrics:           make(map[string]float64),
	}

	var totalReturn float64
	if len(values) >= 2 && values[0] != 0 {
		totalReturn = gctmath.CalculatePercentageGainOrLoss(values[len(values)-1], values[0])
	}
	daysElapsed := report.EndDate.Sub(report.StartDate).Hours() / 24
	var annualised float64
	if len(values) >= 2 {
		annualised = gctmath.CalculateAnnualisedReturn(totalReturn, daysElapsed)
	}
	volatility := gctmath.CalculateAnnualisedVolatility(dailyReturns)
	maxDrawdown := gctmath.CalculateMaxDrawdown(values)

	report.Metrics[TotalReturn] = totalReturn
	report.Metrics[AnnualizedReturn] = annualised
	report.Metrics[Volatility] = volatility
	report.Metrics[SharpeRatio] = gctmath.CalculateSharpeRatio(annualised, a.RiskFreeRate, volatility)
	report.Metrics[SortinoRatio] = sortinoOrZero(dailyReturns, annualised, a.RiskFreeRate)
	report.Metrics[MaxDrawdown] = maxDrawdown
	report.Metrics[CalmarRatio] = gctmath.CalculateCalmarRatio(annualised, maxDrawdown)
	report.Metrics[ValueAtRisk] = gctmath.CalculateValueAtRisk(dailyReturns, confidence)
	report.Metrics[ConditionalVaR] = gctmath.CalculateConditionalValueAtRisk(dailyReturns, confidence)
	a.winLossMetrics(report, dailyReturns)

	if len(benchmark) > 0 {
		a.benchmarkMetrics(report, history, benchmark, annualised)
	}
	return report, nil
}

// calculateReturns derives day-over-day fractional returns from the
// value series
func calculateReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (values[i]-values[i-1])/values[i-1])
	}
	return returns
}

// cumulativeReturns compounds the daily returns into total growth
// since the first day: the last element matches the total return
func cumulativeReturns(dailyReturns []float64) []float64 {
	if len(dailyReturns) == 0 {
		return nil
	}
	out := make([]float64, len(dailyReturns))
	growth := 1.0
	for i := range dailyReturns {
		growth *= 1 + dailyReturns[i]
		out[i] = growth - 1
	}
	return out
}

func sortinoOrZero(dailyReturns []float64, annualised, riskFreeRate float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return gctmath.CalculateSortinoRatio(dailyReturns, annualised, riskFreeRate, 0)
}

func (a *Analyzer) winLossMetrics(report *Report, dailyReturns []float64) {
	var wins, losses []float64
	for i := range dailyReturns {
		switch {
		case dailyReturns[i] > 0:
			wins = append(wins, dailyReturns[i])
		case dailyReturns[i] < 0:
			losses = append(losses, dailyReturns[i])
		}
	}
	var winPct float64
	if len(dailyReturns) > 0 {
		winPct = float64(len(wins)) / float64(len(dailyReturns)) * 100
	}
	averageWin := gctmath.ArithmeticAverage(wins)
	averageLoss := gctmath.ArithmeticAverage(losses)

	report.Metrics[WinningPercentage] = winPct
	report.Metrics[AverageWin] = averageWin
	report.Metrics[AverageLoss] = averageLoss
	report.Metrics[ProfitFactor] = profitFactor(winPct/100, averageWin, math.Abs(averageLoss))
}

func profitFactor(winFraction, averageWin, averageLoss float64) float64 {
	if averageLoss == 0 {
		if averageWin > 0 {
			return math.Inf(1)
		}
		return 0
	}
	lossFraction := 1 - winFraction
	if lossFraction == 0 {
		return math.Inf(1)
	}
	return (averageWin * winFraction) / (averageLoss * lossFraction)
}

// benchmarkMetrics aligns the benchmark by snapshot date and fills in
// beta, alpha and the information ratio
func (a *Analyzer) benchmarkMetrics(report *Report, history []holdings.Snapshot, benchmark []data.Point, annualised float64) {
	byDate := make(map[time.Time]float64, len(benchmark))
	for i := range benchmark {
		byDate[benchmark[i].Date.UTC().Truncate(24*time.Hour)] = benchmark[i].Value.InexactFloat64()
	}
	var portfolioReturns, benchmarkReturns []float64
	for i := 1; i < len(history); i++ {
		prev, okPrev := byDate[history[i-1].Timestamp.UTC().Truncate(24*time.Hour)]
		curr, okCurr := byDate[history[i].Timestamp.UTC().Truncate(24*time.Hour)]
		if !okPrev || !okCurr || prev == 0 {
			continue
		}
		prevValue := history[i-1].TotalValue.InexactFloat64()
		if prevValue == 0 {
			continue
		}
		portfolioReturns = append(portfolioReturns, (history[i].TotalValue.InexactFloat64()-prevValue)/prevValue)
		benchmarkReturns = append(benchmarkReturns, (curr-prev)/prev)
	}

	report.Metrics[Beta] = 0
	report.Metrics[Alpha] = 0
	report.Metrics[InformationRatio] = 0
	if len(portfolioReturns) < 2 {
		return
	}
	beta := gctmath.CalculateBeta(portfolioReturns, benchmarkReturns)
	annualisedBenchmark := gctmath.FinancialGeometricAverage(benchmarkReturns)
	annualisedBenchmark = math.Pow(1+annualisedBenchmark, gctmath.TradingDaysPerYear) - 1
	report.Metrics[Beta] = beta
	report.Metrics[Alpha] = gctmath.CalculateAlpha(annualised, annualisedBenchmark, a.RiskFreeRate, beta)
	report.Metrics[InformationRatio] = gctmath.CalculateInformationRatio(portfolioReturns, benchmarkReturns)
}

// PrintSummary writes a human readable rundown of the report
func (r *Report) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "%s\n", "--------------------------------------------------")
	fmt.Fprintf(w, "Performance summary %v to %v\n",
		r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Initial value:      %v\n", r.InitialValue.StringFixed(2))
	fmt.Fprintf(w, "Final value:        %v\n", r.FinalValue.StringFixed(2))
	fmt.Fprintf(w, "Total return:       %.2f%%\n", r.Metrics[TotalReturn]*100)
	fmt.Fprintf(w, "Annualized return:  %.2f%%\n", r.Metrics[AnnualizedReturn]*100)
	fmt.Fprintf(w, "Volatility:         %.2f%%\n", r.Metrics[Volatility]*100)
	fmt.Fprintf(w, "Sharpe ratio:       %.3f\n", r.Metrics[SharpeRatio])
	fmt.Fprintf(w, "Sortino ratio:      %.3f\n", r.Metrics[SortinoRatio])
	fmt.Fprintf(w, "Max drawdown:       %.2f%%\n", r.Metrics[MaxDrawdown]*100)
	fmt.Fprintf(w, "Calmar ratio:       %.3f\n", r.Metrics[CalmarRatio])
	fmt.Fprintf(w, "VaR (5%%):           %.2f%%\n", r.Metrics[ValueAtRisk]*100)
	fmt.Fprintf(w, "CVaR (5%%):          %.2f%%\n", r.Metrics[ConditionalVaR]*100)
	fmt.Fprintf(w, "Winning days:       %.1f%%\n", r.Metrics[WinningPercentage])
	fmt.Fprintf(w, "Profit factor:      %.2f\n", r.Metrics[ProfitFactor])
	fmt.Fprintf(w, "%s\n", "--------------------------------------------------")
}
