// Package models provides domain models for the wave scanning application.
package models

import (
	"time"
)

// Candle represents OHLC data for a time period.
type Candle struct {
	Date  time.Time `csv:"Date"`
	Open  float64   `csv:"Open"`
	High  float64   `csv:"High"`
	Low   float64   `csv:"Low"`
	Close float64   `csv:"Close"`
}

// Series holds a time-ordered OHLC series as parallel arrays.
// The wave engine only ever reads by integer position, so the arrays are
// extracted once and shared read-only across all candidate evaluations.
type Series struct {
	Dates  []time.Time
	Opens  []float64
	Highs  []float64
	Lows   []float64
	Closes []float64
}

// NewSeries builds a Series from candles.
func NewSeries(candles []Candle) *Series {
	s := &Series{
		Dates:  make([]time.Time, len(candles)),
		Opens:  make([]float64, len(candles)),
		Highs:  make([]float64, len(candles)),
		Lows:   make([]float64, len(candles)),
		Closes: make([]float64, len(candles)),
	}
	for i, c := range candles {
		s.Dates[i] = c.Date
		s.Opens[i] = c.Open
		s.Highs[i] = c.High
		s.Lows[i] = c.Low
		s.Closes[i] = c.Close
	}
	return s
}

// Len returns the number of bars in the series.
func (s *Series) Len() int {
	return len(s.Lows)
}

// MinLowIndex returns the index of the lowest low in the series.
// Impulse scans conventionally start at the global minimum.
func (s *Series) MinLowIndex() int {
	if len(s.Lows) == 0 {
		return -1
	}
	minIdx := 0
	for i, low := range s.Lows {
		if low < s.Lows[minIdx] {
			minIdx = i
		}
	}
	return minIdx
}

// PivotPoint is one committed zigzag pivot: a bar index and the price
// (low or high, depending on direction) at which the trend reversed.
type PivotPoint struct {
	Index int
	Price float64
	Date  time.Time
	High  bool // true if this pivot is a high, false if a low
}
