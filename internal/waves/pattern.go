package waves

import (
	"fmt"
	"time"

	apperrors "wave-scanner/internal/errors"
)

// WavePattern is an ordered aggregate of labeled monowaves: wave1..wave5
// for impulses and diagonals, wave1..wave3 (displayed A-B-C) for
// corrections. Waves are chained end index to start index. The pattern is
// immutable once built; only the violation diagnostic is set lazily by a
// failed rule check.
type WavePattern struct {
	waves     []*MonoWave
	labels    []string
	Violation string
}

// NewWavePattern builds a pattern from 3 or 5 chained monowaves, verifying
// the chain is contiguous.
func NewWavePattern(monowaves []*MonoWave) (*WavePattern, error) {
	if len(monowaves) != 3 && len(monowaves) != 5 {
		return nil, apperrors.NewValidationError("waves", len(monowaves), "pattern must have 3 or 5 waves")
	}
	for i, w := range monowaves {
		if w == nil {
			return nil, apperrors.NewValidationError("waves", i, "unresolved monowave in pattern")
		}
		if i > 0 && monowaves[i-1].IdxEnd != w.IdxStart {
			return nil, apperrors.NewValidationError("waves", i, "wave chain is not contiguous")
		}
	}

	labels := make([]string, len(monowaves))
	waves := make([]*MonoWave, len(monowaves))
	for i, w := range monowaves {
		labels[i] = fmt.Sprintf("wave%d", i+1)
		wc := *w
		wc.Label = labels[i]
		waves[i] = &wc
	}
	return &WavePattern{waves: waves, labels: labels}, nil
}

// Wave returns the monowave with the given internal label (wave1..wave5),
// or nil if the pattern has no such wave.
func (p *WavePattern) Wave(label string) *MonoWave {
	for i, l := range p.labels {
		if l == label {
			return p.waves[i]
		}
	}
	return nil
}

// Waves returns the monowaves in chain order.
func (p *WavePattern) Waves() []*MonoWave {
	return p.waves
}

// Len returns the number of waves in the pattern.
func (p *WavePattern) Len() int {
	return len(p.waves)
}

// IdxStart returns the bar index where the pattern begins.
func (p *WavePattern) IdxStart() int {
	return p.waves[0].IdxStart
}

// IdxEnd returns the bar index where the pattern ends.
func (p *WavePattern) IdxEnd() int {
	return p.waves[len(p.waves)-1].IdxEnd
}

// DateStart returns the date of the pattern's first bar.
func (p *WavePattern) DateStart() time.Time {
	return p.waves[0].DateStart
}

// DateEnd returns the date of the pattern's last bar.
func (p *WavePattern) DateEnd() time.Time {
	return p.waves[len(p.waves)-1].DateEnd
}

// Low returns the lowest price across the pattern's waves.
func (p *WavePattern) Low() float64 {
	low := p.waves[0].Low
	for _, w := range p.waves[1:] {
		if w.Low < low {
			low = w.Low
		}
	}
	return low
}

// High returns the highest price across the pattern's waves.
func (p *WavePattern) High() float64 {
	high := p.waves[0].High
	for _, w := range p.waves[1:] {
		if w.High > high {
			high = w.High
		}
	}
	return high
}

// Dates returns the pattern's turning-point dates: the first wave's start
// followed by each wave's end. Shared boundaries appear once.
func (p *WavePattern) Dates() []time.Time {
	dates := make([]time.Time, 0, len(p.waves)+1)
	dates = append(dates, p.waves[0].DateStart)
	for _, w := range p.waves {
		dates = append(dates, w.DateEnd)
	}
	return dates
}

// Values returns the price at each turning point, following each wave's
// direction of travel.
func (p *WavePattern) Values() []float64 {
	values := make([]float64, 0, len(p.waves)+1)
	start, end := p.waves[0].Points()
	values = append(values, start, end)
	for _, w := range p.waves[1:] {
		_, end = w.Points()
		values = append(values, end)
	}
	return values
}

// Labels returns per-point text for rendering: "0" at the origin, then
// "1".."5" for impulses or "A".."C" for corrections.
func (p *WavePattern) Labels() []string {
	corrective := len(p.waves) == 3
	labels := make([]string, 0, len(p.waves)+1)
	labels = append(labels, "0")
	for i := range p.waves {
		if corrective {
			labels = append(labels, string(rune('A'+i)))
		} else {
			labels = append(labels, fmt.Sprintf("%d", i+1))
		}
	}
	return labels
}

// Key returns the pattern's structural identity for dedup. Two patterns
// built from different skip-tuples that land on the same indexes and
// extrema are the same pattern.
func (p *WavePattern) Key() string {
	key := fmt.Sprintf("%d:%d", p.IdxStart(), p.IdxEnd())
	for _, w := range p.waves {
		key += fmt.Sprintf("|%d,%d,%g,%g", w.IdxStart, w.IdxEnd, w.Low, w.High)
	}
	return key
}

// CheckRule evaluates the rule's conditions in table order. It returns
// true only if every condition holds; on the first failure it records that
// condition's message as the pattern's violation and stops, leaving later
// conditions unevaluated.
func (p *WavePattern) CheckRule(rule *Rule) bool {
	for _, cond := range rule.Conditions {
		args := make([]*MonoWave, len(cond.Waves))
		for i, label := range cond.Waves {
			w := p.Wave(label)
			if w == nil {
				p.Violation = fmt.Sprintf("%s: pattern has no %s", cond.ID, label)
				return false
			}
			args[i] = w
		}
		if !cond.Check(args...) {
			p.Violation = cond.Message
			return false
		}
	}
	return true
}

// PromoteToMonoWave collapses a completed pattern into a single monowave
// of the next degree: a 5-wave impulse becomes an up wave from wave1's low
// to wave5's high, a 3-wave correction a down wave from wave1's high to
// wave3's low.
func PromoteToMonoWave(p *WavePattern) *MonoWave {
	first := p.waves[0]
	last := p.waves[len(p.waves)-1]

	if len(p.waves) == 5 {
		return &MonoWave{
			Direction: Up,
			IdxStart:  first.IdxStart,
			IdxEnd:    last.IdxEnd,
			Low:       first.Low,
			High:      last.High,
			LowIdx:    first.LowIdx,
			HighIdx:   last.HighIdx,
			DateStart: first.DateStart,
			DateEnd:   last.DateEnd,
			Degree:    first.Degree + 1,
		}
	}
	return &MonoWave{
		Direction: Down,
		IdxStart:  first.IdxStart,
		IdxEnd:    last.IdxEnd,
		Low:       last.Low,
		High:      first.High,
		LowIdx:    last.LowIdx,
		HighIdx:   first.HighIdx,
		DateStart: first.DateStart,
		DateEnd:   last.DateEnd,
		Degree:    first.Degree + 1,
	}
}
