package rules

import (
	"strings"
	"testing"
	"time"

	"wave-scanner/internal/waves"
)

func mw(dir waves.Direction, idxStart, idxEnd int, low, high float64) *waves.MonoWave {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := &waves.MonoWave{
		Direction: dir,
		IdxStart:  idxStart,
		IdxEnd:    idxEnd,
		Low:       low,
		High:      high,
		DateStart: base.AddDate(0, 0, idxStart),
		DateEnd:   base.AddDate(0, 0, idxEnd),
		Degree:    1,
	}
	if dir == waves.Up {
		w.LowIdx, w.HighIdx = idxStart, idxEnd
	} else {
		w.HighIdx, w.LowIdx = idxStart, idxEnd
	}
	return w
}

func mustPattern(t *testing.T, ws []*waves.MonoWave) *waves.WavePattern {
	t.Helper()
	p, err := waves.NewWavePattern(ws)
	if err != nil {
		t.Fatalf("building pattern: %v", err)
	}
	return p
}

// textbookImpulse rallies 100-120, retraces to 112, extends to 150,
// corrects to 132 and tops at 155. Wave3 dominates.
func textbookImpulse() []*waves.MonoWave {
	return []*waves.MonoWave{
		mw(waves.Up, 0, 2, 100, 120),
		mw(waves.Down, 2, 4, 112, 120),
		mw(waves.Up, 4, 8, 112, 150),
		mw(waves.Down, 8, 10, 132, 150),
		mw(waves.Up, 10, 12, 132, 155),
	}
}

// contractingFixture has a steeper 2-4 trendline than 1-3 and motive
// waves shrinking 40, 32, 29.
func contractingFixture() []*waves.MonoWave {
	return []*waves.MonoWave{
		mw(waves.Up, 0, 4, 100, 140),
		mw(waves.Down, 4, 6, 120, 140),
		mw(waves.Up, 6, 9, 120, 152),
		mw(waves.Down, 9, 11, 135, 152),
		mw(waves.Up, 11, 13, 135, 164),
	}
}

// expandingFixture has diverging trendlines and motive waves growing
// 15, 30, 48.
func expandingFixture() []*waves.MonoWave {
	return []*waves.MonoWave{
		mw(waves.Up, 0, 2, 100, 115),
		mw(waves.Down, 2, 4, 105, 115),
		mw(waves.Up, 4, 7, 105, 135),
		mw(waves.Down, 7, 9, 112, 135),
		mw(waves.Up, 9, 13, 112, 160),
	}
}

func correctionFixture() []*waves.MonoWave {
	return []*waves.MonoWave{
		mw(waves.Down, 12, 15, 130, 150),
		mw(waves.Up, 15, 17, 130, 142),
		mw(waves.Down, 17, 20, 118, 142),
	}
}

func TestImpulse_AcceptsTextbookPattern(t *testing.T) {
	p := mustPattern(t, textbookImpulse())
	if !p.CheckRule(Impulse()) {
		t.Fatalf("textbook impulse rejected: %s", p.Violation)
	}
}

func TestImpulse_RejectsWave4Overlap(t *testing.T) {
	ws := textbookImpulse()
	ws[3].Low = 118 // below wave1's high of 120
	ws[4].Low = 118
	p := mustPattern(t, ws)

	if p.CheckRule(Impulse()) {
		t.Fatal("expected rejection for wave4 overlapping wave1")
	}
	if !strings.Contains(p.Violation, "wave4 overlaps") {
		t.Errorf("unexpected violation: %q", p.Violation)
	}
}

func TestImpulse_RejectsWave2BelowStart(t *testing.T) {
	ws := textbookImpulse()
	ws[1].Low = 98 // below wave1's anchor of 100
	ws[2].Low = 98
	p := mustPattern(t, ws)

	if p.CheckRule(Impulse()) {
		t.Fatal("expected rejection for wave2 breaking wave1's start")
	}
	if !strings.Contains(p.Violation, "wave2") {
		t.Errorf("unexpected violation: %q", p.Violation)
	}
}

func TestImpulse_RejectsShortestWave3(t *testing.T) {
	// Lengths 30, then wave3 only 12, wave5 25: wave3 is the shortest.
	ws := []*waves.MonoWave{
		mw(waves.Up, 0, 3, 100, 130),
		mw(waves.Down, 3, 5, 119, 130),
		mw(waves.Up, 5, 8, 119, 131),
		mw(waves.Down, 8, 10, 125, 131),
		mw(waves.Up, 10, 14, 125, 150),
	}
	p := mustPattern(t, ws)

	if p.CheckRule(Impulse()) {
		t.Fatal("expected rejection when wave3 is the shortest")
	}
	if p.Violation != "Wave3 is the shortest wave." {
		t.Errorf("unexpected violation: %q", p.Violation)
	}
}

func TestCorrection_AcceptsABC(t *testing.T) {
	p := mustPattern(t, correctionFixture())
	if !p.CheckRule(Correction()) {
		t.Fatalf("A-B-C correction rejected: %s", p.Violation)
	}
}

func TestCorrection_RejectsDeepWaveB(t *testing.T) {
	ws := correctionFixture()
	ws[1].High = 152 // above waveA's start of 150
	ws[2].High = 152
	p := mustPattern(t, ws)

	if p.CheckRule(Correction()) {
		t.Fatal("expected rejection when waveB exceeds waveA's start")
	}
}

func TestTDWave_RetracementBand(t *testing.T) {
	// Wave2 retraces 62% of wave1: inside the 59-64% band.
	inside := []*waves.MonoWave{
		mw(waves.Up, 0, 2, 100, 120),
		mw(waves.Down, 2, 4, 107.6, 120),
		mw(waves.Up, 4, 8, 107.6, 150),
		mw(waves.Down, 8, 10, 132, 150),
		mw(waves.Up, 10, 12, 132, 155),
	}
	p := mustPattern(t, inside)
	if !p.CheckRule(TDWave()) {
		t.Fatalf("62%% retracement rejected: %s", p.Violation)
	}

	// 40% retracement is too shallow.
	p = mustPattern(t, textbookImpulse())
	if p.CheckRule(TDWave()) {
		t.Fatal("expected rejection for a 40% retracement")
	}
	if !strings.Contains(p.Violation, "less than 59%") {
		t.Errorf("unexpected violation: %q", p.Violation)
	}
}

func TestImpulseCustom_AcceptsTextbookPattern(t *testing.T) {
	p := mustPattern(t, textbookImpulse())
	if !p.CheckRule(ImpulseCustom(waves.DefaultXYRatio)) {
		t.Fatalf("textbook impulse rejected by fibonacci variant: %s", p.Violation)
	}
}

func TestImpulse3WaveLongest(t *testing.T) {
	p := mustPattern(t, textbookImpulse())
	if !p.CheckRule(Impulse3WaveLongest(waves.DefaultXYRatio)) {
		t.Fatalf("wave3-dominant impulse rejected: %s", p.Violation)
	}

	// The same pattern cannot have wave1 or wave5 as the longest wave.
	p = mustPattern(t, textbookImpulse())
	if p.CheckRule(Impulse1WaveLongest(waves.DefaultXYRatio)) {
		t.Error("wave1 dominance should fail when wave3 is longest")
	}
	p = mustPattern(t, textbookImpulse())
	if p.CheckRule(Impulse5WaveLongest(waves.DefaultXYRatio)) {
		t.Error("wave5 dominance should fail when wave3 is longest")
	}
}

func TestContractingDiagonal(t *testing.T) {
	p := mustPattern(t, contractingFixture())
	if !p.CheckRule(ContractingDiagonal(waves.DefaultXYRatio)) {
		t.Fatalf("contracting diagonal rejected: %s", p.Violation)
	}

	// A clean impulse has a flatter 2-4 trendline and no wave4 overlap.
	p = mustPattern(t, textbookImpulse())
	if p.CheckRule(ContractingDiagonal(waves.DefaultXYRatio)) {
		t.Fatal("expected a clean impulse to fail the diagonal rule")
	}
}

func TestExpandingDiagonal(t *testing.T) {
	p := mustPattern(t, expandingFixture())
	if !p.CheckRule(ExpandingDiagonal(waves.DefaultXYRatio)) {
		t.Fatalf("expanding diagonal rejected: %s", p.Violation)
	}

	// The contracting fixture has converging trendlines.
	p = mustPattern(t, contractingFixture())
	if p.CheckRule(ExpandingDiagonal(waves.DefaultXYRatio)) {
		t.Fatal("expected rejection for converging trendlines")
	}
}

func TestLeadingDiagonal(t *testing.T) {
	p := mustPattern(t, contractingFixture())
	if !p.CheckRule(LeadingDiagonal()) {
		t.Fatalf("leading diagonal rejected: %s", p.Violation)
	}
}

func TestByName(t *testing.T) {
	rule, err := ByName(NameImpulse, waves.DefaultXYRatio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.Name != NameImpulse {
		t.Errorf("expected rule %q, got %q", NameImpulse, rule.Name)
	}

	if _, err := ByName("head_and_shoulders", waves.DefaultXYRatio); err == nil {
		t.Error("expected error for an unknown archetype")
	}
	if _, err := ByName(NameImpulse, 0); err == nil {
		t.Error("expected error for a non-positive xy ratio")
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 archetypes, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatalf("names are not sorted: %v", names)
		}
	}
	for _, name := range names {
		if _, err := ByName(name, waves.DefaultXYRatio); err != nil {
			t.Errorf("registered name %q does not resolve: %v", name, err)
		}
	}
}

func TestDefaultScanSet(t *testing.T) {
	set := DefaultScanSet(waves.DefaultXYRatio)
	if len(set) != 6 {
		t.Fatalf("expected 6 rules in the scan set, got %d", len(set))
	}
	for _, rule := range set {
		if len(rule.Conditions) == 0 {
			t.Errorf("rule %q has no conditions", rule.Name)
		}
	}
}

func TestForNames(t *testing.T) {
	set, err := ForNames([]string{NameImpulse, NameCorrection}, waves.DefaultXYRatio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 || set[0].Name != NameImpulse || set[1].Name != NameCorrection {
		t.Errorf("unexpected rule set: %+v", set)
	}

	if _, err := ForNames([]string{NameImpulse, "bogus"}, waves.DefaultXYRatio); err == nil {
		t.Error("expected error for an unknown name in the list")
	}
}
