package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

const csvDateFormat = "2006-01-02"

// CSVSource loads bars from one file per symbol in a directory, named
// <SYMBOL>.csv with a date,open,high,low,close,volume header row
type CSVSource struct {
	Dir string
}

// Load reads and filters bars for the requested symbols and date range
func (c *CSVSource) Load(_ context.Context, symbols []string, start, end time.Time) ([]Bar, error) {
	var bars []Bar
	for _, symbol := range symbols {
		symbolBars, err := readSymbolCSV(filepath.Join(c.Dir, symbol+".csv"), symbol)
		if err != nil {
			return nil, err
		}
		for i := range symbolBars {
			d := symbolBars[i].Date
			if !start.IsZero() && d.Before(start) {
				continue
			}
			if !end.IsZero() && d.After(end) {
				continue
			}
			bars = append(bars, symbolBars[i])
		}
	}
	return bars, nil
}

func readSymbolCSV(path, symbol string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read bars for %v: %w", symbol, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", path, err)
	}
	var bars []Bar
	for i := range rows {
		if i == 0 && rows[i][0] == "date" {
			continue
		}
		if len(rows[i]) < 6 {
			return nil, fmt.Errorf("%w: %v row %v has %v fields", ErrInvalidBar, path, i+1, len(rows[i]))
		}
		b, err := parseBarRow(rows[i], symbol)
		if err != nil {
			return nil, fmt.Errorf("%v row %v: %w", path, i+1, err)
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func parseBarRow(row []string, symbol string) (Bar, error) {
	date, err := time.Parse(csvDateFormat, row[0])
	if err != nil {
		return Bar{}, fmt.Errorf("%w: %v", ErrInvalidBar, err)
	}
	fields := make([]decimal.Decimal, 5)
	for i := range fields {
		fields[i], err = decimal.NewFromString(row[i+1])
		if err != nil {
			return Bar{}, fmt.Errorf("%w: %v", ErrInvalidBar, err)
		}
	}
	return Bar{
		Symbol: symbol,
		Date:   date.UTC(),
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}

// ReadBenchmarkCSV loads a date,value series used for benchmark
// relative statistics
func ReadBenchmarkCSV(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read benchmark: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", path, err)
	}
	var points []Point
	for i := range rows {
		if i == 0 && rows[i][0] == "date" {
			continue
		}
		if len(rows[i]) < 2 {
			return nil, fmt.Errorf("%w: %v row %v has %v fields", ErrInvalidBar, path, i+1, len(rows[i]))
		}
		date, err := time.Parse(csvDateFormat, rows[i][0])
		if err != nil {
			return nil, fmt.Errorf("%v row %v: %w", path, i+1, err)
		}
		value, err := decimal.NewFromString(rows[i][1])
		if err != nil {
			return nil, fmt.Errorf("%v row %v: %w", path, i+1, err)
		}
		points = append(points, Point{Date: date.UTC(), Value: value})
	}
	return points, nil
}

// StaticSource serves a fixed bar set, satisfying Source for tests and
// canned demos
type StaticSource struct {
	Bars []Bar
}

// Load returns the bars within the requested symbols and range
func (s *StaticSource) Load(_ context.Context, symbols []string, start, end time.Time) ([]Bar, error) {
	requested := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		requested[symbol] = true
	}
	var bars []Bar
	for i := range s.Bars {
		if len(symbols) > 0 && !requested[s.Bars[i].Symbol] {
			continue
		}
		if !start.IsZero() && s.Bars[i].Date.Before(start) {
			continue
		}
		if !end.IsZero() && s.Bars[i].Date.After(end) {
			continue
		}
		bars = append(bars, s.Bars[i])
	}
	return bars, nil
}
