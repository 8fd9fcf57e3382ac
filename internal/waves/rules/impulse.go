package rules

import (
	"wave-scanner/internal/waves"
)

// Impulse holds the classic textbook rules for a five-wave impulse:
// wave2 retracement bounds, wave3 never the shortest, no wave4 overlap
// into wave1 territory, wave5 length bound.
func Impulse() *waves.Rule {
	return &waves.Rule{
		Name:    NameImpulse,
		XYRatio: waves.DefaultXYRatio,
		Conditions: []waves.Condition{
			// WAVE 2
			{
				ID:      "w2_1",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low > ws[0].Low },
				Message: "End of wave2 is below the start of wave1.",
			},
			{
				ID:      "w2_2",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() >= 0.2*ws[0].Length() },
				Message: "Wave2 is shorter than 20% of wave1.",
			},
			{
				ID:      "w2_3",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return 9*ws[1].Duration() > ws[0].Duration() },
				Message: "Wave2 lasts longer than 9x wave1.",
			},
			// WAVE 3
			{
				ID:    "w3_1",
				Waves: []string{"wave1", "wave3", "wave5"},
				Check: func(ws ...*waves.MonoWave) bool {
					return !(ws[1].Length() < ws[2].Length() && ws[1].Length() < ws[0].Length())
				},
				Message: "Wave3 is the shortest wave.",
			},
			{
				ID:      "w3_2",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].High > ws[0].High },
				Message: "End of wave3 is below the end of wave1.",
			},
			{
				ID:      "w3_3",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() >= ws[0].Length()/3.0 },
				Message: "Wave3 is shorter than 1/3 of wave1.",
			},
			{
				ID:      "w3_4",
				Waves:   []string{"wave2", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > ws[0].Length() },
				Message: "Wave3 is shorter than wave2.",
			},
			{
				ID:      "w3_5",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return 7*ws[1].Duration() > ws[0].Duration() },
				Message: "Wave3 lasts more than 7x longer than wave1.",
			},
			// WAVE 4
			{
				ID:      "w4_1",
				Waves:   []string{"wave1", "wave4"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low > ws[0].High },
				Message: "End of wave4 overlaps the end of wave1.",
			},
			{
				ID:      "w4_2",
				Waves:   []string{"wave2", "wave4"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > ws[0].Length()/3.0 },
				Message: "Wave4 is shorter than 1/3 of wave2.",
			},
			// WAVE 5
			{
				ID:      "w5_1",
				Waves:   []string{"wave3", "wave5"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[0].High < ws[1].High },
				Message: "End of wave5 is below the end of wave3.",
			},
			{
				ID:      "w5_2",
				Waves:   []string{"wave1", "wave5"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() < 2.0*ws[0].Length() },
				Message: "Wave5 is longer than 2.0x wave1.",
			},
		},
	}
}

// TDWave is the setup where wave2 corrects close to the 61.8% fibonacci
// retracement of wave1.
func TDWave() *waves.Rule {
	return &waves.Rule{
		Name:    NameTDWave,
		XYRatio: waves.DefaultXYRatio,
		Conditions: []waves.Condition{
			{
				ID:      "w2_1",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > ws[0].Length()*0.59 },
				Message: "Wave2 corrected less than 59% of wave1.",
			},
			{
				ID:      "w2_2",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() < ws[0].Length()*0.64 },
				Message: "Wave2 corrected more than 64% of wave1.",
			},
			{
				ID:      "w2_3",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return 9*ws[1].Duration() > ws[0].Duration() },
				Message: "Wave2 lasts longer than 9x wave1.",
			},
		},
	}
}

// ImpulseCustom replaces the raw length comparisons of the classic impulse
// with fibonacci retracement bounds and the paired diagonal-length metric.
func ImpulseCustom(xyRatio float64) *waves.Rule {
	return &waves.Rule{
		Name:    NameImpulseCustom,
		XYRatio: xyRatio,
		Conditions: []waves.Condition{
			{
				ID:    "w2_1",
				Waves: []string{"wave1", "wave2"},
				Check: func(ws ...*waves.MonoWave) bool {
					level, err := waves.FibonacciLevel(ws[0].Low, ws[0].High, 0.3, waves.FibHighToLow)
					return err == nil && ws[1].Low < level
				},
				Message: "Wave2 retraced less than the 0.3 fibonacci level of wave1.",
			},
			{
				ID:      "w3_1",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].High > ws[0].High },
				Message: "End of wave3 is below the end of wave1.",
			},
			{
				ID:    "w3_2",
				Waves: []string{"wave1", "wave3"},
				Check: func(ws ...*waves.MonoWave) bool {
					len1, len3 := waves.DiagonalLengths(ws[0], ws[1], xyRatio)
					return len3 > len1*1.62
				},
				Message: "Wave3 is shorter than 1.62x the diagonal length of wave1.",
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
				ID:    "w5_2",
				Waves: []string{"wave1", "wave5"},
				Check: func(ws ...*waves.MonoWave) bool {
					return waves.DiagonalLonger(ws[1], ws[0], xyRatio)
				},
				Message: "Wave5 is shorter than wave1.",
			},
			{
				ID:    "w5_3",
				Waves: []string{"wave1", "wave3", "wave5"},
				Check: func(ws ...*waves.MonoWave) bool {
					return waves.DiagonalLonger(ws[1], ws[0], xyRatio) &&
						waves.DiagonalLonger(ws[1], ws[2], xyRatio)
				},
				Message: "Wave3 is not longer than both wave1 and wave5.",
			},
			{
				ID:    "w5_4",
				Waves: []string{"wave3", "wave5"},
				Check: func(ws ...*waves.MonoWave) bool {
					len3, len5 := waves.DiagonalLengths(ws[0], ws[1], xyRatio)
					return len3*0.24 < len5 && len5 < len3
				},
				Message: "Wave5 is outside 0.24x to 1.0x of wave3's diagonal length.",
			},
		},
	}
}
