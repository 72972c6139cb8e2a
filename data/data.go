package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
)

// DayStream implements Handler over a materialised bar set, grouping
// bars into one snapshot per trading day
type DayStream struct {
	days   []*kline.Snapshot
	offset int64
}

// NewDayStream groups bars by date and returns a stream over them in
// ascending order. An empty bar set is a fatal precondition failure
func NewDayStream(bars []Bar) (*DayStream, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	grouped := make(map[time.Time]map[string]*kline.Kline)
	for i := range bars {
		if bars[i].Symbol == "" || bars[i].Date.IsZero() {
			return nil, fmt.Errorf("%w at index %v", ErrInvalidBar, i)
		}
		day := bars[i].Date.UTC().Truncate(24 * time.Hour)
		if grouped[day] == nil {
			grouped[day] = make(map[string]*kline.Kline)
		}
		grouped[day][bars[i].Symbol] = &kline.Kline{
			Base: &event.Base{
				Time:   day,
				Symbol: bars[i].Symbol,
			},
			Open:   bars[i].Open,
			High:   bars[i].High,
			Low:    bars[i].Low,
			Close:  bars[i].Close,
			Volume: bars[i].Volume,
		}
	}
	dates := make([]time.Time, 0, len(grouped))
	for day := range grouped {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	days := make([]*kline.Snapshot, len(dates))
	for i := range dates {
		days[i] = &kline.Snapshot{
			Base: &event.Base{
				Offset: int64(i + 1),
				Time:   dates[i],
			},
			Bars: grouped[dates[i]],
		}
		for _, k := range days[i].Bars {
			k.Offset = int64(i + 1)
		}
	}
	return &DayStream{days: days}, nil
}

// Next advances the stream and returns the next trading day's snapshot,
// false once the stream is exhausted
func (d *DayStream) Next() (*kline.Snapshot, bool) {
	if d.offset >= int64(len(d.days)) {
		return nil, false
	}
	d.offset++
	return d.days[d.offset-1], true
}

// Latest returns the snapshot most recently produced by Next, nil
// before the first call
func (d *DayStream) Latest() *kline.Snapshot {
	if d.offset == 0 {
		return nil
	}
	return d.days[d.offset-1]
}

// Offset returns how many trading days have been streamed
func (d *DayStream) Offset() int64 {
	return d.offset
}

// Reset rewinds the stream to before the first trading day
func (d *DayStream) Reset() {
	d.offset = 0
}

// Days returns the total number of trading days in the stream
func (d *DayStream) Days() int {
	return len(d.days)
}
