package waves

import (
	"testing"

	"wave-scanner/internal/models"
)

// rallySeries is a 20-bar rally whose zigzag at a 2% threshold yields
// seven alternating pivots: low 99, high 120, low 110, high 150, low 130,
// high 160, low 140.
func rallySeries() *models.Series {
	lows := []float64{100, 99, 104, 110, 115, 118, 114, 110, 111, 121, 131, 141, 147, 138, 130, 133, 143, 153, 150, 140}
	highs := []float64{102, 101, 106, 112, 117, 120, 116, 113, 115, 125, 135, 145, 150, 148, 140, 140, 150, 160, 155, 147}
	return newTestSeries(lows, highs)
}

func TestAnalyzer_FindImpulsiveWave(t *testing.T) {
	lows, highs := impulseSeries()
	a, err := NewAnalyzer(newTestSeries(lows, highs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := a.FindImpulsiveWave(0, []int{0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain == nil {
		t.Fatal("expected a five-wave chain")
	}
	if len(chain) != 5 {
		t.Fatalf("expected 5 waves, got %d", len(chain))
	}

	wantEnds := []int{2, 4, 8, 10, 12}
	for i, w := range chain {
		if w.IdxEnd != wantEnds[i] {
			t.Errorf("wave %d: expected end index %d, got %d", i+1, wantEnds[i], w.IdxEnd)
		}
		if i > 0 && chain[i-1].IdxEnd != w.IdxStart {
			t.Errorf("wave %d does not continue wave %d", i+1, i)
		}
		wantDir := Up
		if i%2 == 1 {
			wantDir = Down
		}
		if w.Direction != wantDir {
			t.Errorf("wave %d: expected direction %s, got %s", i+1, wantDir, w.Direction)
		}
	}
	if chain[4].High != 155 {
		t.Errorf("expected the chain to top at 155, got %f", chain[4].High)
	}
}

func TestAnalyzer_FindImpulsiveWave_InfeasibleTuple(t *testing.T) {
	lows, highs := impulseSeries()
	a, _ := NewAnalyzer(newTestSeries(lows, highs))

	// Skipping on wave1 absorbs the rally to 150; the remaining bars
	// cannot complete five legs.
	chain, err := a.FindImpulsiveWave(0, []int{1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain != nil {
		t.Errorf("expected nil chain, got %d waves", len(chain))
	}
}

func TestAnalyzer_FindImpulsiveWave_BadConfig(t *testing.T) {
	lows, highs := impulseSeries()
	a, _ := NewAnalyzer(newTestSeries(lows, highs))

	if _, err := a.FindImpulsiveWave(0, []int{0, 0, 0}); err == nil {
		t.Error("expected error for a 3-slot config on a 5-wave search")
	}
}

func TestAnalyzer_FindCorrectiveWave(t *testing.T) {
	s := newTestSeries(
		[]float64{18, 16, 13, 14, 12, 10, 11, 13, 9, 10},
		[]float64{20, 19, 16, 17, 15, 13, 14, 16, 11, 12},
	)
	a, _ := NewAnalyzer(s)

	chain, err := a.FindCorrectiveWave(0, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain == nil {
		t.Fatal("expected a three-wave chain")
	}

	if chain[0].Direction != Down || chain[1].Direction != Up || chain[2].Direction != Down {
		t.Error("corrective chain must run down-up-down")
	}
	if chain[0].IdxEnd != 2 || chain[1].IdxEnd != 3 || chain[2].IdxEnd != 5 {
		t.Errorf("unexpected chain bounds: %d %d %d",
			chain[0].IdxEnd, chain[1].IdxEnd, chain[2].IdxEnd)
	}
	if chain[2].Low != 10 {
		t.Errorf("expected the correction to bottom at 10, got %f", chain[2].Low)
	}
}

func TestAnalyzer_FindImpulsiveWaveZigzag(t *testing.T) {
	a, err := NewAnalyzerWithZigzag(rallySeries(), 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Pivots()) != 7 {
		t.Fatalf("expected 7 pivots, got %d: %+v", len(a.Pivots()), a.Pivots())
	}

	chain, err := a.FindImpulsiveWaveZigzag([]int{0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain == nil {
		t.Fatal("expected a five-wave chain over the pivots")
	}

	if chain[0].IdxStart != 1 || chain[0].Low != 99 {
		t.Errorf("wave1 must anchor at the lowest low pivot, got start %d low %f",
			chain[0].IdxStart, chain[0].Low)
	}
	if chain[4].IdxEnd != 17 || chain[4].High != 160 {
		t.Errorf("expected the chain to top at 160 on bar 17, got %f on bar %d",
			chain[4].High, chain[4].IdxEnd)
	}
	for i := 1; i < len(chain); i++ {
		if chain[i-1].IdxEnd != chain[i].IdxStart {
			t.Errorf("wave %d does not continue wave %d", i+1, i)
		}
	}
}

func TestAnalyzer_FindImpulsiveWaveZigzag_SkipContainment(t *testing.T) {
	a, _ := NewAnalyzerWithZigzag(rallySeries(), 0.02)

	// Skipping on wave2 would swallow the swing up to 150, which exceeds
	// the wave's own start. The leg must fail.
	chain, err := a.FindImpulsiveWaveZigzag([]int{0, 1, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain != nil {
		t.Error("expected nil chain when a skipped swing breaches the leg")
	}

	// Skipping on wave1 is legal (the swallowed swings stay inside the
	// leg) but leaves too few pivots for the remaining four waves.
	chain, err = a.FindImpulsiveWaveZigzag([]int{1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain != nil {
		t.Error("expected nil chain when the pivots run out")
	}
}

func TestAnalyzer_FindImpulsiveWaveZigzag_RequiresPivots(t *testing.T) {
	lows, highs := impulseSeries()
	a, _ := NewAnalyzer(newTestSeries(lows, highs))

	if _, err := a.FindImpulsiveWaveZigzag([]int{0, 0, 0, 0, 0}); err == nil {
		t.Error("expected error on an analyzer built without pivots")
	}
}
