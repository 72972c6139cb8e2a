package engine

import (
	"errors"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/data"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/exchange"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/holdings"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/statistics"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrNilSettings occurs when no settings are supplied
	ErrNilSettings = errors.New("nil settings received")
	// ErrMissingComponent occurs when a required collaborator is absent
	ErrMissingComponent = errors.New("missing required component")
	// ErrNoSymbols occurs when a run is configured without symbols
	ErrNoSymbols = errors.New("no symbols to run against")
	// ErrAlreadyRan occurs when Run is invoked on a used engine
	ErrAlreadyRan = errors.New("engine has already run")
)

// Status is the lifecycle state of one run
type Status int32

// Lifecycle states. A run moves NotStarted -> Loading -> Running and
// terminates in Completed or Aborted
const (
	NotStarted Status = iota
	Loading
	Running
	Completed
	Aborted
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Loading:
		return "loading"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Settings are the collaborators and run parameters the engine is
// assembled from
type Settings struct {
	Strategy  strategies.Handler
	Source    data.Source
	Portfolio *portfolio.Portfolio
	Exchange  *exchange.Exchange
	Analyzer  *statistics.Analyzer
	Symbols   []string
	Start     time.Time
	End       time.Time
	Benchmark []data.Point
	RNGSeed   int64
	Logger    *zap.Logger
}

// BackTest is the driver of one run. It owns the event queue and the
// portfolio for the run's duration; no other component mutates either
type BackTest struct {
	runID     string
	status    Status
	settings  *Settings
	log       *zap.Logger
	queue     []common.Event
	current   *kline.Snapshot
	openLots  map[string]*lot
	fillCount int
}

// lot tracks the entry of the open position per symbol so the engine
// can hand realised profit to the strategy's close callback
type lot struct {
	quantity   decimal.Decimal
	entryPrice decimal.Decimal
	entryTime  time.Time
}

// Result is the immutable output of a completed run
type Result struct {
	RunID          string                     `json:"run-id"`
	StrategyName   string                     `json:"strategy"`
	StartDate      time.Time                  `json:"start-date"`
	EndDate        time.Time                  `json:"end-date"`
	InitialCapital decimal.Decimal            `json:"initial-capital"`
	FinalValue     decimal.Decimal            `json:"final-value"`
	EquityHistory  []holdings.Snapshot        `json:"equity-history"`
	Signals        []*signal.Signal           `json:"signals"`
	FinalPositions map[string]decimal.Decimal `json:"final-positions"`
	Metrics        map[string]float64         `json:"metrics"`
	Report         *statistics.Report         `json:"-"`
	TotalTrades    int                        `json:"total-trades"`
}
