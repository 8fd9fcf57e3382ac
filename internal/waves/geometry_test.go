package waves

import (
	"errors"
	"math"
	"testing"

	apperrors "wave-scanner/internal/errors"
)

func TestFibonacciLevel_LowToHigh(t *testing.T) {
	level, err := FibonacciLevel(100, 200, 0.3, FibLowToHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 130 {
		t.Errorf("expected 130, got %f", level)
	}
}

func TestFibonacciLevel_HighToLow(t *testing.T) {
	level, err := FibonacciLevel(100, 200, 0.3, FibHighToLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 170 {
		t.Errorf("expected 170, got %f", level)
	}
}

func TestFibonacciLevel_InvalidMode(t *testing.T) {
	_, err := FibonacciLevel(100, 200, 0.5, FibMode("sideways"))
	if !errors.Is(err, apperrors.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestFibonacciLevel_RoundTrip(t *testing.T) {
	// low_to_high(r) + high_to_low(r) must equal low + high for any ratio.
	for _, ratio := range []float64{0, 0.236, 0.382, 0.5, 0.618, 1, 1.618} {
		up, _ := FibonacciLevel(42.5, 89.1, ratio, FibLowToHigh)
		down, _ := FibonacciLevel(42.5, 89.1, ratio, FibHighToLow)
		if math.Abs((up+down)-(42.5+89.1)) > 1e-9 {
			t.Errorf("ratio %f: round trip broken: %f + %f != %f", ratio, up, down, 42.5+89.1)
		}
	}
}

func TestDiagonalLengths_LongerWaveWins(t *testing.T) {
	short := &MonoWave{Direction: Up, IdxStart: 0, IdxEnd: 5, Low: 100, High: 110}
	long := &MonoWave{Direction: Up, IdxStart: 5, IdxEnd: 15, Low: 105, High: 145}

	lenShort, lenLong := DiagonalLengths(short, long, 1.7)
	if lenShort >= lenLong {
		t.Errorf("expected the longer wave to score higher, got %f vs %f", lenShort, lenLong)
	}
	if !DiagonalLonger(long, short, 1.7) {
		t.Error("DiagonalLonger disagrees with DiagonalLengths")
	}
}

func TestDiagonalLengths_IsRelative(t *testing.T) {
	// The same wave scores differently depending on its pairing. That is
	// the design: scores are only comparable within one call.
	w := &MonoWave{Direction: Up, IdxStart: 0, IdxEnd: 10, Low: 100, High: 120}
	small := &MonoWave{Direction: Up, IdxStart: 10, IdxEnd: 12, Low: 110, High: 115}
	big := &MonoWave{Direction: Up, IdxStart: 10, IdxEnd: 40, Low: 100, High: 200}

	againstSmall, _ := DiagonalLengths(w, small, 1.7)
	againstBig, _ := DiagonalLengths(w, big, 1.7)
	if againstSmall == againstBig {
		t.Error("expected pairing to change the normalized score")
	}
}

func TestDiagonalLengths_DegenerateWavesScoreZero(t *testing.T) {
	a := &MonoWave{Direction: Up, IdxStart: 3, IdxEnd: 3, Low: 100, High: 100}
	b := &MonoWave{Direction: Up, IdxStart: 3, IdxEnd: 3, Low: 100, High: 100}

	lenA, lenB := DiagonalLengths(a, b, 1.7)
	if lenA != 0 || lenB != 0 {
		t.Errorf("expected degenerate waves to score 0, got %f and %f", lenA, lenB)
	}
}

func TestSlope(t *testing.T) {
	if got := Slope(0, 10, 100, 150); got != 5 {
		t.Errorf("expected slope 5, got %f", got)
	}
	if got := Slope(4, 4, 100, 150); got != 0 {
		t.Errorf("expected vertical segment to report 0, got %f", got)
	}
	if got := Slope(0, 10, 150, 100); got != -5 {
		t.Errorf("expected slope -5, got %f", got)
	}
}
