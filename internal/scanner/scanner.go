// Package scanner runs the full segmentation search: it drives the
// skip-tuple generator through the wave analyzer, checks every candidate
// pattern against the configured archetypes, deduplicates structurally
// identical patterns and collects violation diagnostics for the rejected
// ones.
package scanner

import (
	"context"

	"github.com/rs/zerolog"

	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/models"
	"wave-scanner/internal/waves"
	"wave-scanner/internal/waves/rules"
)

// Config holds the parameters of one scan run.
type Config struct {
	SkipFrom        int
	SkipTo          int
	XYRatio         float64
	ZigzagThreshold float64
	Archetypes      []string
	UseZigzag       bool // pivot-based impulse search instead of raw bars
	StartIndex      int  // raw-bar start; -1 means the lowest low of the series
	WithRejections  bool // keep rejected candidates for diagnostics
}

// DefaultConfig returns the conventional scan parameters.
func DefaultConfig() Config {
	return Config{
		SkipFrom:        0,
		SkipTo:          8,
		XYRatio:         waves.DefaultXYRatio,
		ZigzagThreshold: 0.05,
		UseZigzag:       true,
		StartIndex:      -1,
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.SkipFrom < 0 {
		return apperrors.NewValidationError("skip_from", c.SkipFrom, "must be non-negative")
	}
	if c.SkipTo < c.SkipFrom {
		return apperrors.NewValidationError("skip_to", c.SkipTo, "must be >= skip_from")
	}
	if c.XYRatio <= 0 {
		return apperrors.NewValidationError("xy_ratio", c.XYRatio, "must be positive")
	}
	if c.ZigzagThreshold <= 0 || c.ZigzagThreshold >= 1 {
		return apperrors.NewValidationError("zigzag_threshold", c.ZigzagThreshold, "must be in (0, 1)")
	}
	return nil
}

// Accepted is a pattern that passed an archetype's rule table.
type Accepted struct {
	Pattern  *waves.WavePattern
	RuleName string
	Option   waves.WaveOption
}

// Rejection is a fully-formed candidate that failed an archetype, kept for
// diagnostic display.
type Rejection struct {
	Pattern   *waves.WavePattern
	RuleName  string
	Option    waves.WaveOption
	Violation string
}

// Result is the outcome of one scan run.
type Result struct {
	Accepted    []Accepted
	Corrections []Accepted
	Rejections  []Rejection
	Evaluated   int
	PivotCount  int
}

// Scanner searches one series for wave patterns.
type Scanner struct {
	series *models.Series
	cfg    Config
	log    zerolog.Logger
}

// New creates a scanner after validating the configuration.
func New(series *models.Series, cfg Config, log zerolog.Logger) (*Scanner, error) {
	if series == nil || series.Len() == 0 {
		return nil, apperrors.ErrEmptySeries
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{series: series, cfg: cfg, log: log}, nil
}

// Scan runs the impulse search and, for every accepted impulsive pattern,
// a corrective A-B-C follow-up search from its end. Tuples are explored in
// ascending skip-sum order so the most literal segmentation of a structure
// is the one that gets reported. The context is checked between tuples;
// cancellation aborts the run with the context's error.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	ruleSet, err := s.ruleSet()
	if err != nil {
		return nil, err
	}

	analyzer, err := waves.NewAnalyzerWithZigzag(s.series, s.cfg.ZigzagThreshold)
	if err != nil {
		return nil, apperrors.NewScanError("setup", err)
	}

	startIdx := s.cfg.StartIndex
	if startIdx < 0 {
		startIdx = s.series.MinLowIndex()
	}
	if startIdx >= s.series.Len() {
		return nil, apperrors.ErrIndexOutOfRange
	}

	gen := waves.NewOptionsGenerator(5, s.cfg.SkipFrom, s.cfg.SkipTo)
	s.log.Info().
		Int("combinations", gen.Number()).
		Int("start_idx", startIdx).
		Int("pivots", len(analyzer.Pivots())).
		Bool("zigzag", s.cfg.UseZigzag).
		Msg("starting impulse scan")

	result := &Result{PivotCount: len(analyzer.Pivots())}
	seen := make(map[string]bool)

	for i, opt := range gen.Options() {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var chain []*waves.MonoWave
		if s.cfg.UseZigzag {
			chain, err = analyzer.FindImpulsiveWaveZigzag(opt.Values)
		} else {
			chain, err = analyzer.FindImpulsiveWave(startIdx, opt.Values)
		}
		if err != nil {
			return nil, apperrors.NewScanError("impulse", err)
		}
		result.Evaluated++
		if chain == nil {
			continue
		}

		pattern, err := waves.NewWavePattern(chain)
		if err != nil {
			return nil, apperrors.NewScanError("pattern", err)
		}

		for _, rule := range ruleSet {
			if pattern.CheckRule(rule) {
				if seen[pattern.Key()] {
					continue
				}
				seen[pattern.Key()] = true
				result.Accepted = append(result.Accepted, Accepted{
					Pattern:  pattern,
					RuleName: rule.Name,
					Option:   opt,
				})
				s.log.Info().
					Str("rule", rule.Name).
					Str("option", opt.String()).
					Int("idx_start", pattern.IdxStart()).
					Int("idx_end", pattern.IdxEnd()).
					Msg("pattern accepted")
			} else {
				s.log.Debug().
					Str("rule", rule.Name).
					Str("option", opt.String()).
					Str("violation", pattern.Violation).
					Msg("pattern rejected")
				if s.cfg.WithRejections {
					result.Rejections = append(result.Rejections, Rejection{
						Pattern:   pattern,
						RuleName:  rule.Name,
						Option:    opt,
						Violation: pattern.Violation,
					})
				}
			}
		}
	}

	if err := s.scanCorrections(ctx, analyzer, result); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("evaluated", result.Evaluated).
		Int("accepted", len(result.Accepted)).
		Int("corrections", len(result.Corrections)).
		Int("rejections", len(result.Rejections)).
		Msg("scan finished")
	return result, nil
}

// scanCorrections looks for an A-B-C correction after each accepted
// impulsive pattern.
func (s *Scanner) scanCorrections(ctx context.Context, analyzer *waves.Analyzer, result *Result) error {
	if len(result.Accepted) == 0 {
		return nil
	}

	correction := rules.Correction()
	gen := waves.NewOptionsGenerator(3, s.cfg.SkipFrom, s.cfg.SkipTo)
	seen := make(map[string]bool)

	for _, accepted := range result.Accepted {
		idxStart := accepted.Pattern.IdxEnd()
		if idxStart >= s.series.Len()-1 {
			continue
		}

		for i, opt := range gen.Options() {
			if i%256 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			chain, err := analyzer.FindCorrectiveWave(idxStart, opt.Values)
			if err != nil {
				return apperrors.NewScanError("correction", err)
			}
			result.Evaluated++
			if chain == nil {
				continue
			}

			pattern, err := waves.NewWavePattern(chain)
			if err != nil {
				return apperrors.NewScanError("pattern", err)
			}

			if pattern.CheckRule(correction) {
				if seen[pattern.Key()] {
					continue
				}
				seen[pattern.Key()] = true
				result.Corrections = append(result.Corrections, Accepted{
					Pattern:  pattern,
					RuleName: correction.Name,
					Option:   opt,
				})
				s.log.Info().
					Str("option", opt.String()).
					Int("idx_start", pattern.IdxStart()).
					Int("idx_end", pattern.IdxEnd()).
					Msg("correction accepted")
			} else if s.cfg.WithRejections {
				result.Rejections = append(result.Rejections, Rejection{
					Pattern:   pattern,
					RuleName:  correction.Name,
					Option:    opt,
					Violation: pattern.Violation,
				})
			}
		}
	}
	return nil
}

func (s *Scanner) ruleSet() ([]*waves.Rule, error) {
	if len(s.cfg.Archetypes) == 0 {
		return rules.DefaultScanSet(s.cfg.XYRatio), nil
	}
	return rules.ForNames(s.cfg.Archetypes, s.cfg.XYRatio)
}
