// Package data loads OHLC series from CSV files. The scanner treats data
// retrieval as an external concern; files exported from any market-data
// source work as long as they carry Date, Open, High, Low, Close columns.
package data

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/models"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// Date wraps time.Time with flexible CSV parsing.
type Date struct {
	time.Time
}

// UnmarshalCSV parses the date column, trying the supported layouts in order.
func (d *Date) UnmarshalCSV(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported date format %q", s)
}

// MarshalCSV renders the date column.
func (d Date) MarshalCSV() (string, error) {
	return d.Format("2006-01-02"), nil
}

type csvCandle struct {
	Date  Date    `csv:"Date"`
	Open  float64 `csv:"Open"`
	High  float64 `csv:"High"`
	Low   float64 `csv:"Low"`
	Close float64 `csv:"Close"`
}

// LoadCandles reads an OHLC CSV file and returns its rows ordered by date.
func LoadCandles(path string) ([]models.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []*csvCandle
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrDataNotFound
	}

	candles := make([]models.Candle, len(rows))
	for i, r := range rows {
		candles[i] = models.Candle{
			Date:  r.Date.Time,
			Open:  r.Open,
			High:  r.High,
			Low:   r.Low,
			Close: r.Close,
		}
	}
	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Date.Before(candles[j].Date)
	})
	return candles, nil
}

// LoadSeries reads an OHLC CSV file directly into a Series.
func LoadSeries(path string) (*models.Series, error) {
	candles, err := LoadCandles(path)
	if err != nil {
		return nil, err
	}
	return models.NewSeries(candles), nil
}
