package rules

import (
	"wave-scanner/internal/waves"
)

// trendlineSlopes returns the slopes of the 1-3 trendline (through the
// highs of waves 1 and 3) and the 2-4 trendline (through the lows of
// waves 2 and 4).
func trendlineSlopes(w1, w2, w3, w4 *waves.MonoWave) (slope13, slope24 float64) {
	slope13 = waves.Slope(w1.IdxEnd, w3.IdxEnd, w1.High, w3.High)
	slope24 = waves.Slope(w2.IdxEnd, w4.IdxEnd, w2.Low, w4.Low)
	return slope13, slope24
}

// LeadingDiagonal is the impulse rule set with the diagonal exceptions:
// wave4 dips into wave1 territory and the 2-4 trendline rises faster than
// the 1-3 trendline so the two converge.
func LeadingDiagonal() *waves.Rule {
	conditions := []waves.Condition{
		{
			ID:    "w2_0",
			Waves: []string{"wave1", "wave2", "wave3", "wave4"},
			Check: func(ws ...*waves.MonoWave) bool {
				slope13, slope24 := trendlineSlopes(ws[0], ws[1], ws[2], ws[3])
				return slope24 > slope13 && slope13 > 0
			},
			Message: "Trendlines of wave1-3 and wave2-4 do not form a leading diagonal.",
		},
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
		// Diagonal exception: wave4 must overlap wave1 territory.
		{
			ID:      "w4_1",
			Waves:   []string{"wave1", "wave4"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low < ws[0].High },
			Message: "End of wave4 does not overlap the end of wave1.",
		},
		{
			ID:      "w4_2",
			Waves:   []string{"wave2", "wave4"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > ws[0].Length()/3.0 },
			Message: "Wave4 is shorter than 1/3 of wave2.",
		},
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
		{
			ID:      "w5_3",
			Waves:   []string{"wave1", "wave5"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > 0.70*ws[0].Length() },
			Message: "Wave5 is shorter than 0.70x wave1.",
		},
		{
			ID:      "w5_4",
			Waves:   []string{"wave3", "wave5"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() < ws[0].Length() },
			Message: "Wave5 is not shorter than wave3.",
		},
	}

	return &waves.Rule{
		Name:       NameLeadingDiagonal,
		XYRatio:    waves.DefaultXYRatio,
		Conditions: conditions,
	}
}

// ContractingDiagonal accepts five-wave patterns whose trendlines
// converge and whose motive waves shrink under the paired diagonal-length
// metric.
func ContractingDiagonal(xyRatio float64) *waves.Rule {
	return &waves.Rule{
		Name:       NameContractingDiagonal,
		XYRatio:    xyRatio,
		Conditions: diagonalVariantConditions(xyRatio, true),
	}
}

// ExpandingDiagonal accepts five-wave patterns whose trendlines diverge
// and whose motive waves grow under the paired diagonal-length metric.
func ExpandingDiagonal(xyRatio float64) *waves.Rule {
	return &waves.Rule{
		Name:       NameExpandingDiagonal,
		XYRatio:    xyRatio,
		Conditions: diagonalVariantConditions(xyRatio, false),
	}
}

func diagonalVariantConditions(xyRatio float64, contracting bool) []waves.Condition {
	slopeCheck := func(ws ...*waves.MonoWave) bool {
		slope13, slope24 := trendlineSlopes(ws[0], ws[1], ws[2], ws[3])
		if contracting {
			return slope24 > slope13 && slope13 > 0
		}
		return slope13 > slope24 && slope24 > 0
	}
	slopeMessage := "Trendlines of wave1-3 and wave2-4 do not converge."
	sizeCheck := func(ws ...*waves.MonoWave) bool {
		w1, w3, w5 := ws[0], ws[1], ws[2]
		if contracting {
			return waves.DiagonalLonger(w1, w3, xyRatio) && waves.DiagonalLonger(w3, w5, xyRatio)
		}
		return waves.DiagonalLonger(w3, w1, xyRatio) && waves.DiagonalLonger(w5, w3, xyRatio)
	}
	sizeMessage := "Waves 1, 3 and 5 are not successively shorter."
	if !contracting {
		slopeMessage = "Trendlines of wave1-3 and wave2-4 do not diverge."
		sizeMessage = "Waves 1, 3 and 5 are not successively longer."
	}

	return []waves.Condition{
		{
			ID:      "wd_1",
			Waves:   []string{"wave1", "wave2", "wave3", "wave4"},
			Check:   slopeCheck,
			Message: slopeMessage,
		},
		{
			ID:      "wd_2",
			Waves:   []string{"wave1", "wave2"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low > ws[0].Low },
			Message: "End of wave2 is below the start of wave1.",
		},
		{
			ID:      "wd_3",
			Waves:   []string{"wave1", "wave3"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].High > ws[0].High },
			Message: "End of wave3 is below the end of wave1.",
		},
		// Diagonal hallmark: wave4 closes inside wave1 territory.
		{
			ID:      "wd_4",
			Waves:   []string{"wave1", "wave4"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low < ws[0].High },
			Message: "End of wave4 does not overlap the end of wave1.",
		},
		{
			ID:      "wd_5",
			Waves:   []string{"wave2", "wave4"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Low > ws[0].Low },
			Message: "End of wave4 is below the end of wave2.",
		},
		{
			ID:      "wd_6",
			Waves:   []string{"wave3", "wave5"},
			Check:   func(ws ...*waves.MonoWave) bool { return ws[1].High > ws[0].High },
			Message: "End of wave5 is below the end of wave3.",
		},
		{
			ID:      "wd_7",
			Waves:   []string{"wave1", "wave3", "wave5"},
			Check:   sizeCheck,
			Message: sizeMessage,
		},
	}
}
