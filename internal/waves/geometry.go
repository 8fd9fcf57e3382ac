package waves

import (
	"fmt"
	"math"

	apperrors "wave-scanner/internal/errors"
)

// FibMode selects the direction of a fibonacci level calculation.
type FibMode string

const (
	FibLowToHigh FibMode = "low_to_high"
	FibHighToLow FibMode = "high_to_low"
)

// FibonacciLevel calculates the price level at the given ratio between low
// and high. FibLowToHigh projects upward from the low, FibHighToLow
// retraces downward from the high.
func FibonacciLevel(low, high, ratio float64, mode FibMode) (float64, error) {
	switch mode {
	case FibLowToHigh:
		return low + (high-low)*ratio, nil
	case FibHighToLow:
		return high - (high-low)*ratio, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidMode, string(mode))
	}
}

// DiagonalLengths scores two waves against each other on a shared scale.
// Durations are normalized by the pair's longer duration and scaled by
// xyRatio, price spans by the pair's larger span; each score is the
// euclidean length of the normalized (width, height) vector.
//
// The metric is deliberately relative: the same wave scores differently
// depending on which wave it is paired with. Rule predicates must only
// compare the two values returned by a single call.
func DiagonalLengths(a, b *MonoWave, xyRatio float64) (float64, float64) {
	widthA := float64(a.Duration())
	widthB := float64(b.Duration())
	heightA := a.Length()
	heightB := b.Length()

	maxWidth := math.Max(widthA, widthB)
	maxHeight := math.Max(heightA, heightB)

	// Degenerate waves (zero span or zero duration on both sides) score 0.
	if maxWidth > 0 {
		widthA = widthA / maxWidth * xyRatio
		widthB = widthB / maxWidth * xyRatio
	} else {
		widthA, widthB = 0, 0
	}
	if maxHeight > 0 {
		heightA /= maxHeight
		heightB /= maxHeight
	} else {
		heightA, heightB = 0, 0
	}

	lenA := math.Sqrt(widthA*widthA + heightA*heightA)
	lenB := math.Sqrt(widthB*widthB + heightB*heightB)
	return lenA, lenB
}

// DiagonalLonger reports whether wave a scores longer than wave b under the
// paired diagonal-length metric.
func DiagonalLonger(a, b *MonoWave, xyRatio float64) bool {
	lenA, lenB := DiagonalLengths(a, b, xyRatio)
	return lenA > lenB
}

// Slope returns the slope between two chart points, with bar indexes as x
// coordinates. A vertical segment has slope 0 rather than infinity so that
// trendline comparisons stay total.
func Slope(x1, x2 int, y1, y2 float64) float64 {
	deltaX := float64(x2 - x1)
	if deltaX == 0 {
		return 0
	}
	return (y2 - y1) / deltaX
}
