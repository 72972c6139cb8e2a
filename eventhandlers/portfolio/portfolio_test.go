package portfolio

import (
	"testing"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/size"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/fill"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/order"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortfolio(t *testing.T, commissionRate float64) *Portfolio {
	t.Helper()
	p, err := New(
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(commissionRate),
		&size.Size{MaxPositionFraction: decimal.NewFromFloat(0.2)},
		nil)
	require.NoError(t, err)
	return p
}

func testFill(symbol string, direction common.Direction, amount, price, commission float64) *fill.Fill {
	return &fill.Fill{
		Base: &event.Base{
			Time:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Symbol: symbol,
		},
		Direction:     direction,
		Amount:        decimal.NewFromFloat(amount),
		ClosePrice:    decimal.NewFromFloat(price),
		PurchasePrice: decimal.NewFromFloat(price),
		Commission:    decimal.NewFromFloat(commission),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	sizer := &size.Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}

	_, err := New(decimal.Zero, decimal.Zero, sizer, nil)
	assert.ErrorIs(t, err, ErrNoCapital)

	_, err = New(decimal.NewFromInt(100000), decimal.NewFromInt(-1), sizer, nil)
	assert.ErrorIs(t, err, ErrNegativeCommission)

	_, err = New(decimal.NewFromInt(100000), decimal.Zero, nil, nil)
	assert.ErrorIs(t, err, ErrNilSizeManager)

	p, err := New(decimal.NewFromInt(100000), decimal.Zero, sizer, nil)
	require.NoError(t, err)
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(100000)))
	assert.True(t, p.TotalValue().Equal(decimal.NewFromInt(100000)))
}

func TestExecuteFillBuy(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0.01)
	// buy 10 @ 100 with 1% commission floored at nothing: cost 1000 + 10
	p.ExecuteFill(testFill("AAPL", common.Buy, 10, 100, 10))
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(98990)), "received %v", p.Cash())
	assert.True(t, p.GetPosition("AAPL").Equal(decimal.NewFromInt(10)))
}

func TestExecuteFillRoundTrip(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	p.ExecuteFill(testFill("AAPL", common.Buy, 10, 100, 1))
	p.ExecuteFill(testFill("AAPL", common.Sell, 10, 110, 1))
	// -1001 + 1099 = +98 on the round trip
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(100098)), "received %v", p.Cash())
	assert.True(t, p.GetPosition("AAPL").IsZero())
	// flat entries are removed entirely
	assert.Empty(t, p.Positions())
}

func TestExecuteFillShort(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	p.ExecuteFill(testFill("AAPL", common.Sell, 5, 100, 2))
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(100498)), "received %v", p.Cash())
	assert.True(t, p.GetPosition("AAPL").Equal(decimal.NewFromInt(-5)))

	p.ExecuteFill(testFill("AAPL", common.Buy, 5, 90, 2))
	assert.True(t, p.GetPosition("AAPL").IsZero())
	assert.Empty(t, p.Positions())
}

func TestExecuteFillNil(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	p.ExecuteFill(nil)
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(100000)))
}

func TestCanAfford(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0.01)

	buy := &order.Order{
		Base:      &event.Base{Symbol: "AAPL"},
		Direction: common.Buy,
		Amount:    decimal.NewFromInt(100),
	}
	assert.True(t, p.CanAfford(buy, decimal.NewFromInt(100)))
	// 100 * 1000 * 1.01 = 101000 exceeds the 100000 balance
	assert.False(t, p.CanAfford(buy, decimal.NewFromInt(1000)))

	sell := &order.Order{
		Base:      &event.Base{Symbol: "AAPL"},
		Direction: common.Sell,
		Amount:    decimal.NewFromInt(10),
	}
	assert.False(t, p.CanAfford(sell, decimal.NewFromInt(100)))
	p.ExecuteFill(testFill("AAPL", common.Buy, 10, 100, 0))
	assert.True(t, p.CanAfford(sell, decimal.NewFromInt(100)))
	sell.Amount = decimal.NewFromInt(11)
	assert.False(t, p.CanAfford(sell, decimal.NewFromInt(100)))

	assert.False(t, p.CanAfford(nil, decimal.NewFromInt(100)))
}

func TestOnSignal(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	_, err := p.OnSignal(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)

	o, err := p.OnSignal(&signal.Signal{
		Base:      &event.Base{Symbol: "AAPL", Time: time.Now()},
		Direction: common.Buy,
		Price:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.NotNil(t, o)
	// sized off the initial capital before any snapshot exists
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(200)), "received %v", o.GetAmount())
}

func TestUpdateMarketValue(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	p.ExecuteFill(testFill("AAPL", common.Buy, 10, 100, 0))

	day1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	snapshot := p.UpdateMarketValue(map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(100)}, day1)
	assert.True(t, snapshot.TotalValue.Equal(decimal.NewFromInt(100000)), "received %v", snapshot.TotalValue)
	assert.True(t, p.TotalValue().Equal(decimal.NewFromInt(100000)))

	// revalue at a higher close; the position carries the last known price
	day2 := day1.AddDate(0, 0, 1)
	snapshot = p.UpdateMarketValue(map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(110)}, day2)
	assert.True(t, snapshot.TotalValue.Equal(decimal.NewFromInt(100100)), "received %v", snapshot.TotalValue)
	assert.True(t, snapshot.TotalValue.Equal(snapshot.Cash.Add(snapshot.PositionValue)))

	// a day without a price for the symbol reuses the last close
	day3 := day2.AddDate(0, 0, 1)
	snapshot = p.UpdateMarketValue(nil, day3)
	assert.True(t, snapshot.TotalValue.Equal(decimal.NewFromInt(100100)), "received %v", snapshot.TotalValue)

	history := p.EquityHistory()
	require.Len(t, history, 3)
	assert.Equal(t, day1, history[0].Timestamp)
	assert.Equal(t, day3, history[2].Timestamp)
}

func TestReset(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t, 0)
	p.ExecuteFill(testFill("AAPL", common.Buy, 10, 100, 0))
	p.UpdateMarketValue(map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(100)}, time.Now())

	p.Reset()
	assert.True(t, p.Cash().Equal(decimal.NewFromInt(100000)))
	assert.Empty(t, p.Positions())
	assert.Empty(t, p.EquityHistory())
	assert.True(t, p.TotalValue().Equal(decimal.NewFromInt(100000)))
}
