package size

import (
	"testing"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignal(direction common.Direction, price float64) *signal.Signal {
	return &signal.Signal{
		Base: &event.Base{
			Offset: 1,
			Time:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Symbol: "AAPL",
		},
		Direction: direction,
		Strength:  decimal.NewFromInt(1),
		Price:     decimal.NewFromFloat(price),
	}
}

func TestSizeSignalValidation(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	_, err := s.SizeSignal(nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, common.ErrNilEvent)

	bad := &Size{MaxPositionFraction: decimal.Zero}
	_, err = bad.SizeSignal(testSignal(common.Buy, 100), decimal.NewFromInt(100000), decimal.Zero)
	assert.ErrorIs(t, err, ErrBadFraction)

	bad = &Size{MaxPositionFraction: decimal.NewFromFloat(1.5)}
	_, err = bad.SizeSignal(testSignal(common.Buy, 100), decimal.NewFromInt(100000), decimal.Zero)
	assert.ErrorIs(t, err, ErrBadFraction)
}

func TestSizeSignalNoPrice(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	_, err := s.SizeSignal(testSignal(common.Buy, 0), decimal.NewFromInt(100000), decimal.Zero)
	assert.ErrorIs(t, err, ErrNoPrice)

	// missing signal price falls back to the configured default
	s.DefaultPrice = decimal.NewFromInt(100)
	o, err := s.SizeSignal(testSignal(common.Buy, 0), decimal.NewFromInt(100000), decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(200)), "received %v", o.GetAmount())
}

func TestSizeSignalBuy(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	totalValue := decimal.NewFromInt(100000)

	// flat: open the full target quantity. 100000 * 0.2 / 100 = 200
	o, err := s.SizeSignal(testSignal(common.Buy, 100), totalValue, decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, common.Buy, o.GetDirection())
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(200)), "received %v", o.GetAmount())
	assert.Equal(t, "AAPL", o.GetSymbol())
	assert.NotEmpty(t, o.GetID())

	// already long: never pyramid
	o, err = s.SizeSignal(testSignal(common.Buy, 100), totalValue, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Nil(t, o)

	// short: cover exactly the open quantity, not the target
	o, err = s.SizeSignal(testSignal(common.Buy, 100), totalValue, decimal.NewFromInt(-75))
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(75)), "received %v", o.GetAmount())
}

func TestSizeSignalSell(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	totalValue := decimal.NewFromInt(100000)

	// long: close exactly the held quantity
	o, err := s.SizeSignal(testSignal(common.Sell, 100), totalValue, decimal.NewFromInt(120))
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, common.Sell, o.GetDirection())
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(120)), "received %v", o.GetAmount())

	// flat: open a short of the target quantity
	o, err = s.SizeSignal(testSignal(common.Sell, 100), totalValue, decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(200)), "received %v", o.GetAmount())

	// already short: no action
	o, err = s.SizeSignal(testSignal(common.Sell, 100), totalValue, decimal.NewFromInt(-10))
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestSizeSignalInactionable(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	for _, direction := range []common.Direction{common.Hold, common.DoNothing} {
		o, err := s.SizeSignal(testSignal(direction, 100), decimal.NewFromInt(100000), decimal.Zero)
		require.NoError(t, err)
		assert.Nil(t, o)
	}
}

func TestSizeSignalZeroValue(t *testing.T) {
	t.Parallel()
	s := &Size{MaxPositionFraction: decimal.NewFromFloat(0.2)}
	o, err := s.SizeSignal(testSignal(common.Buy, 100), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Nil(t, o)
}
