package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoHistory occurs when a report is requested without any equity
	// snapshots
	ErrNoHistory = errors.New("no equity history to analyse")
)

// Metric names produced by the analyser. VaR and CVaR are reported at
// the analyser's configured confidence level
const (
	TotalReturn       = "total_return"
	AnnualizedReturn  = "annualized_return"
	Volatility        = "volatility"
	SharpeRatio       = "sharpe_ratio"
	SortinoRatio      = "sortino_ratio"
	MaxDrawdown       = "max_drawdown"
	CalmarRatio       = "calmar_ratio"
	ValueAtRisk       = "value_at_risk_5pct"
	ConditionalVaR    = "conditional_var_5pct"
	WinningPercentage = "winning_percentage"
	AverageWin        = "average_win"
	AverageLoss       = "average_loss"
	ProfitFactor      = "profit_factor"
	Beta              = "beta"
	Alpha             = "alpha"
	InformationRatio  = "information_ratio"
)

// Report is the analyser's output over one run's equity history
type Report struct {
	StartDate    time.Time       `json:"start-date"`
	EndDate      time.Time       `json:"end-date"`
	InitialValue decimal.Decimal `json:"initial-value"`
	FinalValue   decimal.Decimal `json:"final-value"`
	DailyReturns []float64       `json:"daily-returns"`
	// CumulativeReturns compounds the daily series into growth since
	// the first day, aligned index for index with DailyReturns
	CumulativeReturns []float64          `json:"cumulative-returns"`
	Metrics           map[string]float64 `json:"metrics"`
}

// Analyzer derives risk-adjusted performance statistics from an equity
// history. It is stateless between calls
type Analyzer struct {
	// RiskFreeRate is the annual risk-free rate used by the Sharpe and
	// Sortino ratios
	RiskFreeRate float64
	// VaRConfidence is the tail quantile for VaR and CVaR, 0.05 by
	// convention
	VaRConfidence float64
}
