package model

import (
	"fmt"
	"time"
)

// Interval is the bar width of an intraday series.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
)

// Intervals lists the supported intervals in display order.
var Intervals = []Interval{Interval1m, Interval5m, Interval15m}

// ParseInterval validates an interval string.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case Interval1m, Interval5m, Interval15m:
		return Interval(s), nil
	}
	return "", fmt.Errorf("unsupported interval %q (want 1m, 5m or 15m)", s)
}

// Bar represents a single candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds one trading day of bars for a single symbol, ordered by
// ascending timestamp, plus the derived columns attached by the enricher.
// Derived columns are empty until Enrich has run.
type Series struct {
	Symbol   string
	Interval Interval
	Bars     []Bar

	PctChange Column
	MA20      Column
	MA50      Column

	FetchedAt time.Time
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.Bars) }

// Last returns the most recent bar, or nil for an empty series.
func (s *Series) Last() *Bar {
	if len(s.Bars) == 0 {
		return nil
	}
	return &s.Bars[len(s.Bars)-1]
}

// Closes extracts the close column as a plain slice.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Column is a derived per-bar value that is undefined at positions where
// insufficient history exists (e.g. a moving average before its window fills).
type Column struct {
	Values  []float64
	Defined []bool
}

// NewColumn allocates an all-undefined column of n positions.
func NewColumn(n int) Column {
	return Column{Values: make([]float64, n), Defined: make([]bool, n)}
}

// Set marks position i as defined with value v.
func (c *Column) Set(i int, v float64) {
	c.Values[i] = v
	c.Defined[i] = true
}

// At returns the value at position i and whether it is defined.
func (c Column) At(i int) (float64, bool) {
	if i < 0 || i >= len(c.Values) || !c.Defined[i] {
		return 0, false
	}
	return c.Values[i], true
}

// Valid reports whether position i holds a defined value.
func (c Column) Valid(i int) bool {
	return i >= 0 && i < len(c.Defined) && c.Defined[i]
}

// Len returns the number of positions.
func (c Column) Len() int { return len(c.Values) }
