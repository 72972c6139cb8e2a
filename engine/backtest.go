// Package engine drives a run: it replays trading days in ascending
// order through a strict FIFO event queue, routing market data to the
// strategy, signals to sizing, orders to execution and fills to the
// ledger. A day's derived events are fully drained before the next
// day's market event may enter the queue, so a strategy can never
// observe data ahead of the day it is being asked about
package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/data"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/base"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/fill"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/order"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// New assembles a run from settings, validating every required
// collaborator is present
func New(s *Settings) (*BackTest, error) {
	if s == nil {
		return nil, ErrNilSettings
	}
	if s.Strategy == nil || s.Source == nil || s.Portfolio == nil || s.Exchange == nil || s.Analyzer == nil {
		return nil, ErrMissingComponent
	}
	if len(s.Symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &BackTest{
		runID:    id.String(),
		status:   NotStarted,
		settings: s,
		log:      s.Logger,
		openLots: make(map[string]*lot),
	}, nil
}

// RunID returns the unique identifier of this run
func (bt *BackTest) RunID() string {
	return bt.runID
}

// Status returns the run's lifecycle state
func (bt *BackTest) Status() Status {
	return bt.status
}

// Run executes the backtest to completion and returns its result. A
// failure to load data or an invalid strategy aborts before any equity
// is recorded, leaving no partial result
func (bt *BackTest) Run(ctx context.Context) (*Result, error) {
	if bt.status != NotStarted {
		return nil, fmt.Errorf("%w: status %v", ErrAlreadyRan, bt.status)
	}

	bt.status = Loading
	stream, err := bt.load(ctx)
	if err != nil {
		bt.status = Aborted
		return nil, err
	}

	bt.settings.Strategy.SetLogger(bt.log)
	bt.settings.Strategy.SetRand(rand.New(rand.NewSource(bt.settings.RNGSeed)))
	if err = bt.settings.Strategy.Initialize(); err != nil {
		bt.status = Aborted
		return nil, fmt.Errorf("could not initialize strategy %v: %w", bt.settings.Strategy.Name(), err)
	}

	bt.log.Info("starting run",
		zap.String("id", bt.runID),
		zap.String("strategy", bt.settings.Strategy.Name()),
		zap.Strings("symbols", bt.settings.Symbols),
		zap.Int("trading-days", stream.Days()))

	bt.status = Running
	for {
		ev, ok := bt.nextEvent()
		if !ok {
			snapshot, more := stream.Next()
			if !more {
				break
			}
			bt.current = snapshot
			bt.queue = append(bt.queue, snapshot)
			continue
		}
		if err = bt.handleEvent(ev); err != nil {
			bt.status = Aborted
			return nil, err
		}
		if len(bt.queue) == 0 {
			bt.closeDay()
		}
	}

	bt.status = Completed
	return bt.assembleResult()
}

// load materialises the bar set through the data source and groups it
// into trading days. An empty result is fatal
func (bt *BackTest) load(ctx context.Context) (*data.DayStream, error) {
	bars, err := bt.settings.Source.Load(ctx, bt.settings.Symbols, bt.settings.Start, bt.settings.End)
	if err != nil {
		return nil, fmt.Errorf("could not load market data: %w", err)
	}
	stream, err := data.NewDayStream(bars)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (bt *BackTest) nextEvent() (common.Event, bool) {
	if len(bt.queue) == 0 {
		return nil, false
	}
	ev := bt.queue[0]
	bt.queue = bt.queue[1:]
	return ev, true
}

func (bt *BackTest) handleEvent(ev common.Event) error {
	switch e := ev.(type) {
	case *kline.Snapshot:
		bt.handleMarket(e)
	case *signal.Signal:
		bt.handleSignal(e)
	case *order.Order:
		bt.handleOrder(e)
	case *fill.Fill:
		bt.handleFill(e)
	default:
		return fmt.Errorf("%w: %T", common.ErrInvalidDataType, ev)
	}
	return nil
}

// handleMarket asks the strategy about each symbol's bar in
// lexicographic order. A strategy error for one symbol skips that
// symbol for the day and the run continues
func (bt *BackTest) handleMarket(snapshot *kline.Snapshot) {
	for _, symbol := range snapshot.Symbols() {
		sigs, err := bt.settings.Strategy.OnBar(snapshot.Bar(symbol))
		if err != nil {
			bt.log.Warn("strategy failed for symbol, skipping",
				zap.String("symbol", symbol),
				zap.Time("date", snapshot.GetTime()),
				zap.Error(err))
			continue
		}
		for i := range sigs {
			if sigs[i] == nil {
				continue
			}
			bt.queue = append(bt.queue, sigs[i])
		}
	}
}

// handleSignal sizes the signal into at most one order. Sizing
// failures are recoverable: the signal is dropped and logged
func (bt *BackTest) handleSignal(s *signal.Signal) {
	o, err := bt.settings.Portfolio.OnSignal(s)
	if err != nil {
		bt.log.Warn("could not size signal, dropping",
			zap.String("symbol", s.GetSymbol()),
			zap.String("direction", string(s.GetDirection())),
			zap.Error(err))
		return
	}
	if o == nil {
		// mark the recorded signal so the run result shows it
		// resolved to no action
		s.SetDirection(common.DoNothing)
		return
	}
	bt.queue = append(bt.queue, o)
}

// handleOrder verifies affordability against the day's close and hands
// the order to execution. Unaffordable orders and orders without price
// data are dropped, logged and the run continues
func (bt *BackTest) handleOrder(o *order.Order) {
	price, ok := bt.current.ClosePrice(o.GetSymbol())
	if !ok {
		bt.log.Warn("no price data for order, dropping",
			zap.String("symbol", o.GetSymbol()),
			zap.Time("date", bt.current.GetTime()))
		return
	}
	if !bt.settings.Portfolio.CanAfford(o, price) {
		side := o.GetDirection()
		if side == common.Buy {
			o.SetDirection(common.CouldNotBuy)
		} else {
			o.SetDirection(common.CouldNotSell)
		}
		o.AppendReason("insufficient funds or position")
		bt.log.Warn("cannot afford order, dropping",
			zap.String("symbol", o.GetSymbol()),
			zap.String("direction", string(side)),
			zap.String("amount", o.GetAmount().String()),
			zap.String("price", price.String()))
		return
	}
	f, err := bt.settings.Exchange.ExecuteOrder(o, bt.current)
	if err != nil {
		bt.log.Warn("could not execute order, dropping",
			zap.String("symbol", o.GetSymbol()),
			zap.Error(err))
		return
	}
	if f == nil {
		return
	}
	bt.queue = append(bt.queue, f)
}

// handleFill settles the fill in the ledger and drives the strategy's
// position callbacks with realised profit on a full close
func (bt *BackTest) handleFill(f *fill.Fill) {
	bt.settings.Portfolio.ExecuteFill(f)
	bt.fillCount++

	symbol := f.GetSymbol()
	existing := bt.openLots[symbol]
	switch f.GetDirection() {
	case common.Buy:
		if existing != nil && existing.quantity.IsNegative() {
			// covering a short; entry minus exit is the gain per unit
			pnl := existing.entryPrice.Sub(f.GetPurchasePrice()).Mul(f.GetAmount()).Sub(f.GetCommission())
			bt.closeLot(symbol, existing, f, pnl)
			return
		}
		bt.openLot(symbol, f, f.GetAmount())
	case common.Sell:
		if existing != nil && existing.quantity.IsPositive() {
			pnl := f.GetPurchasePrice().Sub(existing.entryPrice).Mul(f.GetAmount()).Sub(f.GetCommission())
			bt.closeLot(symbol, existing, f, pnl)
			return
		}
		bt.openLot(symbol, f, f.GetAmount().Neg())
	}
}

func (bt *BackTest) openLot(symbol string, f *fill.Fill, quantity decimal.Decimal) {
	bt.openLots[symbol] = &lot{
		quantity:   quantity,
		entryPrice: f.GetPurchasePrice(),
		entryTime:  f.GetTime(),
	}
	bt.settings.Strategy.OnPositionOpened(base.Position{
		Symbol:       symbol,
		Quantity:     quantity,
		EntryPrice:   f.GetPurchasePrice(),
		EntryTime:    f.GetTime(),
		CurrentPrice: f.GetPurchasePrice(),
	})
}

func (bt *BackTest) closeLot(symbol string, existing *lot, f *fill.Fill, realizedPnL decimal.Decimal) {
	delete(bt.openLots, symbol)
	bt.settings.Strategy.OnPositionClosed(base.Position{
		Symbol:       symbol,
		Quantity:     existing.quantity,
		EntryPrice:   existing.entryPrice,
		EntryTime:    existing.entryTime,
		CurrentPrice: f.GetPurchasePrice(),
	}, realizedPnL)
}

// closeDay revalues the ledger at the day's closing prices once the
// day's causal chain has fully drained
func (bt *BackTest) closeDay() {
	prices := bt.current.ClosePrices()
	snapshot := bt.settings.Portfolio.UpdateMarketValue(prices, bt.current.GetTime())
	bt.settings.Strategy.UpdatePositions(prices)
	bt.log.Debug("day closed",
		zap.Time("date", bt.current.GetTime()),
		zap.String("total-value", snapshot.TotalValue.String()))
}

// assembleResult analyses the finished equity history and freezes the
// run output
func (bt *BackTest) assembleResult() (*Result, error) {
	history := bt.settings.Portfolio.EquityHistory()
	report, err := bt.settings.Analyzer.Analyse(history, bt.settings.Benchmark)
	if err != nil {
		return nil, err
	}
	result := &Result{
		RunID:          bt.runID,
		StrategyName:   bt.settings.Strategy.Name(),
		StartDate:      report.StartDate,
		EndDate:        report.EndDate,
		InitialCapital: bt.settings.Portfolio.InitialCapital(),
		FinalValue:     report.FinalValue,
		EquityHistory:  history,
		Signals:        bt.settings.Strategy.Signals(),
		FinalPositions: bt.settings.Portfolio.Positions(),
		Metrics:        report.Metrics,
		Report:         report,
		TotalTrades:    bt.fillCount,
	}
	bt.log.Info("run completed",
		zap.String("id", bt.runID),
		zap.String("final-value", result.FinalValue.String()),
		zap.Int("trades", result.TotalTrades))
	return result, nil
}
