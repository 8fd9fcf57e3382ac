package rules

import (
	"wave-scanner/internal/waves"
)

// Correction holds the rules for a three-wave A-B-C correction. The
// pattern carries its waves under the internal labels wave1..wave3 so the
// same evaluation machinery serves impulses and corrections alike.
func Correction() *waves.Rule {
	return &waves.Rule{
		Name:    NameCorrection,
		XYRatio: waves.DefaultXYRatio,
		Conditions: []waves.Condition{
			// WAVE B
			{
				ID:      "wb_1",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[0].High > ws[1].High },
				Message: "End of waveB is above the start of waveA.",
			},
			{
				ID:      "wb_2",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[0].Length() > ws[1].Length() },
				Message: "WaveB is longer than waveA.",
			},
			{
				ID:      "wb_3",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Duration() < 10.0*ws[0].Duration() },
				Message: "WaveB lasts longer than 10x waveA.",
			},
			{
				ID:      "wb_4",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() < 0.618*ws[0].Length() },
				Message: "WaveB is longer than 0.618x waveA.",
			},
			{
				ID:      "wb_5",
				Waves:   []string{"wave1", "wave2"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > 0.35*ws[0].Length() },
				Message: "WaveB is shorter than 0.35x waveA.",
			},
			// WAVE C
			{
				ID:      "wc_1",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[0].Low > ws[1].Low },
				Message: "End of waveC is above the end of waveA.",
			},
			{
				ID:      "wc_2",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() > 0.6*ws[0].Length() },
				Message: "WaveC is shorter than 0.60x waveA.",
			},
			{
				ID:      "wc_3",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Length() < 2.61*ws[0].Length() },
				Message: "WaveC is longer than 2.61x waveA.",
			},
			{
				ID:      "wc_4",
				Waves:   []string{"wave1", "wave3"},
				Check:   func(ws ...*waves.MonoWave) bool { return ws[1].Duration() < 10.0*ws[0].Duration() },
				Message: "WaveC lasts longer than 10x waveA.",
			},
		},
	}
}
