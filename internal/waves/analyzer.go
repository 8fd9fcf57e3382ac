package waves

import (
	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/models"
)

// Analyzer chains monowaves into candidate 5-wave impulsive or 3-wave
// corrective sequences. Failure to chain is local and cheap: the search
// loop simply advances to the next skip-tuple.
type Analyzer struct {
	series *models.Series
	pivots []models.PivotPoint
}

// NewAnalyzer creates an analyzer working directly on raw bars.
func NewAnalyzer(s *models.Series) (*Analyzer, error) {
	if s == nil || s.Len() == 0 {
		return nil, apperrors.ErrEmptySeries
	}
	return &Analyzer{series: s}, nil
}

// NewAnalyzerWithZigzag creates an analyzer that additionally carries
// zigzag pivots extracted at the given threshold, enabling the pivot-based
// impulse search.
func NewAnalyzerWithZigzag(s *models.Series, threshold float64) (*Analyzer, error) {
	pivots, err := DetectZigzag(s, threshold)
	if err != nil {
		return nil, err
	}
	return &Analyzer{series: s, pivots: pivots}, nil
}

// Pivots returns the zigzag pivots the analyzer was built with.
func (a *Analyzer) Pivots() []models.PivotPoint {
	return a.pivots
}

// FindImpulsiveWave builds an up-down-up-down-up chain of five monowaves
// starting at idxStart, one skip count per wave. It returns (nil, nil)
// when any link fails; partial chains are never emitted.
func (a *Analyzer) FindImpulsiveWave(idxStart int, waveConfig []int) ([]*MonoWave, error) {
	return a.chain(idxStart, waveConfig, 5, Up)
}

// FindCorrectiveWave builds a down-up-down chain of three monowaves for an
// A-B-C correction following an impulse top.
func (a *Analyzer) FindCorrectiveWave(idxStart int, waveConfig []int) ([]*MonoWave, error) {
	return a.chain(idxStart, waveConfig, 3, Down)
}

func (a *Analyzer) chain(idxStart int, waveConfig []int, slots int, dir Direction) ([]*MonoWave, error) {
	if len(waveConfig) != slots {
		return nil, apperrors.NewValidationError("waveConfig", len(waveConfig), "wrong number of skip counts")
	}

	waves := make([]*MonoWave, 0, slots)
	idx := idxStart
	for i := 0; i < slots; i++ {
		w, err := BuildMonoWave(a.series, dir, idx, waveConfig[i])
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, nil
		}
		waves = append(waves, w)
		idx = w.IdxEnd
		dir = dir.Opposite()
	}
	return waves, nil
}

// FindImpulsiveWaveZigzag builds a five-wave impulsive chain over the
// pre-extracted zigzag pivots instead of raw bars. The chain starts at the
// lowest low pivot. A wave with skip n spans n+1 pivot swings in its
// direction; skipped swings must stay inside the wave's own extremes, the
// same contract the raw-bar builder enforces.
func (a *Analyzer) FindImpulsiveWaveZigzag(waveConfig []int) ([]*MonoWave, error) {
	if len(waveConfig) != 5 {
		return nil, apperrors.NewValidationError("waveConfig", len(waveConfig), "wrong number of skip counts")
	}
	if len(a.pivots) == 0 {
		return nil, apperrors.NewValidationError("pivots", 0, "analyzer built without zigzag pivots")
	}

	start := a.lowestLowPivot()
	if start < 0 {
		return nil, nil
	}

	waves := make([]*MonoWave, 0, 5)
	cur := start
	dir := Up
	for i := 0; i < 5; i++ {
		w, next := a.pivotLeg(cur, dir, waveConfig[i])
		if w == nil {
			return nil, nil
		}
		waves = append(waves, w)
		cur = next
		dir = dir.Opposite()
	}
	return waves, nil
}

func (a *Analyzer) lowestLowPivot() int {
	best := -1
	for i, p := range a.pivots {
		if p.High {
			continue
		}
		if best < 0 || p.Price < a.pivots[best].Price {
			best = i
		}
	}
	return best
}

// pivotLeg builds one monowave from pivot position cur to the pivot
// 1+2*skip swings ahead, returning the wave and the end position.
func (a *Analyzer) pivotLeg(cur int, dir Direction, skip int) (*MonoWave, int) {
	target := cur + 1 + 2*skip
	if target >= len(a.pivots) {
		return nil, 0
	}

	from := a.pivots[cur]
	to := a.pivots[target]
	wantHigh := dir == Up
	if from.High == wantHigh || to.High != wantHigh {
		return nil, 0
	}

	// Skipped swings may not exceed the wave's end nor breach its start.
	for i := cur + 1; i < target; i++ {
		p := a.pivots[i]
		if dir == Up {
			if p.High && p.Price >= to.Price {
				return nil, 0
			}
			if !p.High && p.Price < from.Price {
				return nil, 0
			}
		} else {
			if !p.High && p.Price <= to.Price {
				return nil, 0
			}
			if p.High && p.Price > from.Price {
				return nil, 0
			}
		}
	}

	w := &MonoWave{
		Direction: dir,
		IdxStart:  from.Index,
		IdxEnd:    to.Index,
		DateStart: from.Date,
		DateEnd:   to.Date,
		SkipN:     skip,
		Degree:    1,
	}
	if dir == Up {
		w.Low, w.LowIdx = from.Price, from.Index
		w.High, w.HighIdx = to.Price, to.Index
	} else {
		w.High, w.HighIdx = from.Price, from.Index
		w.Low, w.LowIdx = to.Price, to.Index
	}
	return w, target
}
