// Package waves implements the Elliott Wave segmentation search engine:
// monowave construction with extrema skipping, combinatorial skip-tuple
// generation, wave chaining into candidate patterns, and the declarative
// rule tables that accept or reject them.
package waves

import (
	"time"

	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/models"
)

// Direction tags a monowave as rising or falling.
type Direction int

const (
	Up Direction = iota + 1
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// MonoWave is a single directional price leg between two extrema. It is
// fully resolved at construction and never mutated afterwards.
type MonoWave struct {
	Direction Direction
	IdxStart  int
	IdxEnd    int
	Low       float64
	High      float64
	LowIdx    int
	HighIdx   int
	DateStart time.Time
	DateEnd   time.Time
	SkipN     int
	Degree    int // 1 = primitive leg, 2 once built from a completed pattern, etc.
	Label     string
}

// Length returns the absolute price span of the wave.
func (w *MonoWave) Length() float64 {
	return w.High - w.Low
}

// Duration returns the wave's extent in bars.
func (w *MonoWave) Duration() int {
	return w.IdxEnd - w.IdxStart
}

// Points returns the wave's start and end values in travel order.
func (w *MonoWave) Points() (float64, float64) {
	if w.Direction == Up {
		return w.Low, w.High
	}
	return w.High, w.Low
}

// BuildMonoWave constructs a single directional wave starting at idxStart,
// skipping past skip intermediate reversals. It returns (nil, nil) when no
// extremum satisfying the skip count exists; that is the normal "this
// configuration is infeasible here" outcome. Errors are reserved for
// malformed input.
//
// For an up wave the start bar's low anchors the wave. Each skip hop must
// find a strictly higher local high, and adopting it is only allowed if no
// bar on the way there undercuts the anchoring low. A skip count that
// cannot be satisfied fails the whole wave rather than settling for fewer
// hops.
func BuildMonoWave(s *models.Series, dir Direction, idxStart, skip int) (*MonoWave, error) {
	if s == nil || s.Len() == 0 {
		return nil, apperrors.ErrEmptySeries
	}
	if idxStart < 0 || idxStart >= s.Len() {
		return nil, apperrors.ErrIndexOutOfRange
	}
	if skip < 0 {
		return nil, apperrors.NewValidationError("skip", skip, "must be non-negative")
	}

	if dir == Up {
		return buildUpWave(s, idxStart, skip), nil
	}
	return buildDownWave(s, idxStart, skip), nil
}

func buildUpWave(s *models.Series, idxStart, skip int) *MonoWave {
	lowAtStart := s.Lows[idxStart]

	high, highIdx, ok := nextHigh(s.Lows, s.Highs, idxStart)
	if !ok {
		return nil
	}

	for n := 0; n < skip; n++ {
		candHigh, candIdx, ok := nextHigherHigh(s.Lows, s.Highs, highIdx, high)
		if !ok {
			return nil
		}
		if candHigh > high {
			// A skip cannot be redeemed by violating the wave's own low.
			if undercuts(s.Lows, idxStart, candIdx, lowAtStart) {
				return nil
			}
			high = candHigh
			highIdx = candIdx
		}
	}

	return &MonoWave{
		Direction: Up,
		IdxStart:  idxStart,
		IdxEnd:    highIdx,
		Low:       lowAtStart,
		High:      high,
		LowIdx:    idxStart,
		HighIdx:   highIdx,
		DateStart: s.Dates[idxStart],
		DateEnd:   s.Dates[highIdx],
		SkipN:     skip,
		Degree:    1,
	}
}

func buildDownWave(s *models.Series, idxStart, skip int) *MonoWave {
	highAtStart := s.Highs[idxStart]

	low, lowIdx, ok := nextLow(s.Lows, s.Highs, idxStart)
	if !ok {
		return nil
	}

	for n := 0; n < skip; n++ {
		candLow, candIdx, ok := nextLowerLow(s.Lows, s.Highs, lowIdx, low)
		if !ok {
			return nil
		}
		if candLow < low {
			if overshoots(s.Highs, idxStart, candIdx, highAtStart) {
				return nil
			}
			low = candLow
			lowIdx = candIdx
		}
	}

	return &MonoWave{
		Direction: Down,
		IdxStart:  idxStart,
		IdxEnd:    lowIdx,
		Low:       low,
		High:      highAtStart,
		LowIdx:    lowIdx,
		HighIdx:   idxStart,
		DateStart: s.Dates[idxStart],
		DateEnd:   s.Dates[lowIdx],
		SkipN:     skip,
		Degree:    1,
	}
}
