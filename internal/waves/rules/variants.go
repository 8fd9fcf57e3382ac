package rules

import (
	"fmt"

	"wave-scanner/internal/waves"
)

// The longest-wave impulse variants share one structural core and differ
// only in which motive wave must dominate under the paired diagonal-length
// metric.

// Impulse1WaveLongest accepts impulses where wave1 is the longest motive wave.
func Impulse1WaveLongest(xyRatio float64) *waves.Rule {
	return longestWaveVariant(NameImpulse1Longest, 1, xyRatio)
}

// Impulse3WaveLongest accepts impulses where wave3 is the longest motive wave.
func Impulse3WaveLongest(xyRatio float64) *waves.Rule {
	return longestWaveVariant(NameImpulse3Longest, 3, xyRatio)
}

// Impulse5WaveLongest accepts impulses where wave5 is the longest motive wave.
func Impulse5WaveLongest(xyRatio float64) *waves.Rule {
	return longestWaveVariant(NameImpulse5Longest, 5, xyRatio)
}

func longestWaveVariant(name string, longest int, xyRatio float64) *waves.Rule {
	dominance := func(ws ...*waves.MonoWave) bool {
		w1, w3, w5 := ws[0], ws[1], ws[2]
		switch longest {
		case 1:
			// Wave3 must still beat wave5: wave3 is never the shortest.
			return waves.DiagonalLonger(w1, w3, xyRatio) &&
				waves.DiagonalLonger(w1, w5, xyRatio) &&
				waves.DiagonalLonger(w3, w5, xyRatio)
		case 3:
			return waves.DiagonalLonger(w3, w1, xyRatio) &&
				waves.DiagonalLonger(w3, w5, xyRatio)
		default:
			return waves.DiagonalLonger(w5, w1, xyRatio) &&
				waves.DiagonalLonger(w5, w3, xyRatio) &&
				waves.DiagonalLonger(w3, w1, xyRatio)
		}
	}

	conditions := []waves.Condition{
		{
			ID:    "w2_1",
			Waves: []string{"wave1", "wave2"},
			Check: func(ws ...*waves.MonoWave) bool {
				level, err := waves.FibonacciLevel(ws[0].Low, ws[0].High, 0.3, waves.FibHighToLow)
				return err == nil && ws[1].Low < level && ws[1].Low > ws[0].Low
			},
			Message: "Wave2 did not retrace past the 0.3 fibonacci level of wave1 while holding its start.",
		},
		{
			ID:      "w3_1",
			Waves:   []string{"wave1", "wave3"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].High > ws[0].High },
			Message: "End of wave3 is below the end of wave1.",
		},
		{
			ID:    "w4_1",
			Waves: []string{"wave1", "wave2", "wave3", "wave4"},
			Check: func(ws ...*waves.MonoWave) bool {
				w1, w2, w3, w4 := ws[0], ws[1], ws[2], ws[3]
				return waves.DiagonalLonger(w1, w4, xyRatio) &&
					waves.DiagonalLonger(w3, w4, xyRatio) &&
					waves.DiagonalLonger(w1, w2, xyRatio) &&
					waves.DiagonalLonger(w3, w2, xyRatio)
			},
			Message: "Corrective waves 2 and 4 are not both shorter than waves 1 and 3.",
		},
		{
			ID:    "w4_2",
			Waves: []string{"wave1", "wave3", "wave4"},
			Check: func(ws ...*waves.MonoWave) bool {
				level, err := waves.FibonacciLevel(ws[1].Low, ws[1].High, 0.24, waves.FibHighToLow)
				return err == nil && ws[2].Low < level && ws[2].Low > ws[0].High
			},
			Message: "Wave4 did not retrace past the 0.24 fibonacci level of wave3 while staying above wave1's high.",
		},
		{
			ID:      "w5_1",
			Waves:   []string{"wave3", "wave5"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[0].High < ws[1].High },
			Message: "End of wave5 is below the end of wave3.",
		},
		{
			ID:      fmt.Sprintf("w%d_longest", longest),
			Waves:   []string{"wave1", "wave3", "wave5"},
			Check:   dominance,
			Message: fmt.Sprintf("Wave%d is not the longest motive wave.", longest),
		},
	}

	return &waves.Rule{
		Name:       name,
		XYRatio:    xyRatio,
		Conditions: conditions,
	}
}
