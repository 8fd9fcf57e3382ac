// Package rules defines the pattern archetypes: named condition tables a
// candidate wave pattern must satisfy to be accepted. Conditions are pure
// predicates over already-computed wave attributes and are evaluated in
// declared order with short-circuit on the first failure.
package rules

import (
	"fmt"
	"sort"

	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/waves"
)

// Archetype names accepted by ByName and the scan configuration.
const (
	NameImpulse             = "impulse"
	NameCorrection          = "correction"
	NameTDWave              = "tdwave"
	NameLeadingDiagonal     = "leading_diagonal"
	NameImpulseCustom       = "impulse_custom"
	NameImpulse1Longest     = "impulse_1_longest"
	NameImpulse3Longest     = "impulse_3_longest"
	NameImpulse5Longest     = "impulse_5_longest"
	NameExpandingDiagonal   = "expanding_diagonal"
	NameContractingDiagonal = "contracting_diagonal"
)

var registry = map[string]func(xyRatio float64) *waves.Rule{
	NameImpulse:             func(_ float64) *waves.Rule { return Impulse() },
	NameCorrection:          func(_ float64) *waves.Rule { return Correction() },
	NameTDWave:              func(_ float64) *waves.Rule { return TDWave() },
	NameLeadingDiagonal:     func(_ float64) *waves.Rule { return LeadingDiagonal() },
	NameImpulseCustom:       ImpulseCustom,
	NameImpulse1Longest:     Impulse1WaveLongest,
	NameImpulse3Longest:     Impulse3WaveLongest,
	NameImpulse5Longest:     Impulse5WaveLongest,
	NameExpandingDiagonal:   ExpandingDiagonal,
	NameContractingDiagonal: ContractingDiagonal,
}

// ByName returns the archetype with the given name, parameterized by
// xyRatio where the archetype uses the diagonal-length metric.
func ByName(name string, xyRatio float64) (*waves.Rule, error) {
	build, ok := registry[name]
	if !ok {
		return nil, apperrors.NewValidationError("archetype", name, "unknown archetype")
	}
	if xyRatio <= 0 {
		return nil, apperrors.NewValidationError("xy_ratio", xyRatio, "must be positive")
	}
	return build(xyRatio), nil
}

// Names returns all registered archetype names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultScanSet returns the practical scan archetypes: the three
// longest-wave impulse variants, both diagonal variants and the
// correction.
func DefaultScanSet(xyRatio float64) []*waves.Rule {
	return []*waves.Rule{
		Impulse1WaveLongest(xyRatio),
		Impulse3WaveLongest(xyRatio),
		Impulse5WaveLongest(xyRatio),
		ExpandingDiagonal(xyRatio),
		ContractingDiagonal(xyRatio),
		Correction(),
	}
}

// ForNames resolves a list of archetype names into rules.
func ForNames(names []string, xyRatio float64) ([]*waves.Rule, error) {
	out := make([]*waves.Rule, 0, len(names))
	for _, name := range names {
		rule, err := ByName(name, xyRatio)
		if err != nil {
			return nil, fmt.Errorf("resolving archetype %q: %w", name, err)
		}
		out = append(out, rule)
	}
	return out, nil
}
