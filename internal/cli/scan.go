package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wave-scanner/internal/data"
	"wave-scanner/internal/logging"
	"wave-scanner/internal/scanner"
	"wave-scanner/internal/store"
	"wave-scanner/internal/waves"
	"wave-scanner/internal/waves/rules"
)

func newScanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <csv-file>",
		Short: "Scan an OHLC CSV file for Elliott Wave patterns",
		Long: `Scan enumerates skip configurations in ascending order, chains monowaves
into five-wave candidates, validates them against the selected archetypes
and reports structurally distinct matches. Each accepted impulse is
followed by an A-B-C correction search from its end.`,
		Example: `  wave-scanner scan data/btc-usd_1d.csv
  wave-scanner scan data/kospi.csv --skip-to 5 --archetypes impulse_3_longest,correction
  wave-scanner scan data/aapl.csv --raw-bars --rejected --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logging.SetDebugLevel()
			}

			cfg := scanConfigFromFlags(cmd, app)

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			series, err := data.LoadSeries(args[0])
			if err != nil {
				output.Error("Failed to load data: %v", err)
				return err
			}
			output.Info("Loaded %d bars from %s", series.Len(), args[0])

			sc, err := scanner.New(series, cfg, app.Logger)
			if err != nil {
				output.Error("Invalid scan configuration: %v", err)
				return err
			}

			started := time.Now()
			result, err := sc.Scan(ctx)
			if err != nil {
				output.Error("Scan failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(scanReport(args[0], cfg, result))
			}

			printResult(output, result, time.Since(started))

			if app.Store != nil {
				if err := persistResult(ctx, app.Store, args[0], cfg, result); err != nil {
					output.Warning("Failed to persist results: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("skip-from", -1, "lower skip bound per wave (default from config)")
	cmd.Flags().Int("skip-to", -1, "upper skip bound per wave (default from config)")
	cmd.Flags().Float64("xy-ratio", 0, "diagonal-length time/price ratio (default from config)")
	cmd.Flags().Float64("threshold", 0, "zigzag reversal threshold (default from config)")
	cmd.Flags().String("archetypes", "", "comma-separated archetypes, default: practical scan set ("+archetypesHelp()+")")
	cmd.Flags().Bool("raw-bars", false, "chain monowaves over raw bars instead of zigzag pivots")
	cmd.Flags().Int("start-idx", -1, "raw-bar start index (default: lowest low)")
	cmd.Flags().Bool("rejected", false, "report rejected candidates with violation messages")
	cmd.Flags().Duration("timeout", 0, "abort the search after this duration")

	return cmd
}

func scanConfigFromFlags(cmd *cobra.Command, app *App) scanner.Config {
	cfg := scanner.Config{
		SkipFrom:        app.Config.Scan.SkipFrom,
		SkipTo:          app.Config.Scan.SkipTo,
		XYRatio:         app.Config.Scan.XYRatio,
		ZigzagThreshold: app.Config.Scan.ZigzagThreshold,
		Archetypes:      app.Config.Scan.Archetypes,
		UseZigzag:       app.Config.Scan.UseZigzag,
		StartIndex:      -1,
	}

	if v, _ := cmd.Flags().GetInt("skip-from"); v >= 0 {
		cfg.SkipFrom = v
	}
	if v, _ := cmd.Flags().GetInt("skip-to"); v >= 0 {
		cfg.SkipTo = v
	}
	if v, _ := cmd.Flags().GetFloat64("xy-ratio"); v > 0 {
		cfg.XYRatio = v
	}
	if v, _ := cmd.Flags().GetFloat64("threshold"); v > 0 {
		cfg.ZigzagThreshold = v
	}
	if v, _ := cmd.Flags().GetString("archetypes"); v != "" {
		cfg.Archetypes = strings.Split(v, ",")
	}
	if raw, _ := cmd.Flags().GetBool("raw-bars"); raw {
		cfg.UseZigzag = false
	}
	if v, _ := cmd.Flags().GetInt("start-idx"); v >= 0 {
		cfg.StartIndex = v
	}
	cfg.WithRejections, _ = cmd.Flags().GetBool("rejected")

	return cfg
}

func printResult(output *Output, result *scanner.Result, elapsed time.Duration) {
	output.Info("Evaluated %d candidates in %s (%d zigzag pivots)",
		result.Evaluated, elapsed.Round(time.Millisecond), result.PivotCount)

	if len(result.Accepted) == 0 {
		output.Warning("No impulsive pattern found")
	}
	for _, acc := range result.Accepted {
		output.Success("%s %s  bars %d-%d  %s to %s",
			acc.RuleName, acc.Option,
			acc.Pattern.IdxStart(), acc.Pattern.IdxEnd(),
			acc.Pattern.DateStart().Format("2006-01-02"),
			acc.Pattern.DateEnd().Format("2006-01-02"))
		printWaves(output, acc.Pattern)
	}

	for _, corr := range result.Corrections {
		output.Success("%s %s  bars %d-%d (follow-up)",
			corr.RuleName, corr.Option,
			corr.Pattern.IdxStart(), corr.Pattern.IdxEnd())
		printWaves(output, corr.Pattern)
	}

	for _, rej := range result.Rejections {
		output.Warning("%s %s rejected: %s", rej.RuleName, rej.Option, rej.Violation)
	}
}

func printWaves(output *Output, pattern *waves.WavePattern) {
	labels := pattern.Labels()
	values := pattern.Values()
	dates := pattern.Dates()
	for i := range labels {
		output.Print("    %-2s %10.2f  %s\n", labels[i], values[i], dates[i].Format("2006-01-02"))
	}
}

// scanReport shapes a result for JSON output.
func scanReport(source string, cfg scanner.Config, result *scanner.Result) map[string]interface{} {
	patterns := make([]map[string]interface{}, 0, len(result.Accepted)+len(result.Corrections))
	for _, acc := range result.Accepted {
		patterns = append(patterns, patternJSON(acc, "impulse"))
	}
	for _, corr := range result.Corrections {
		patterns = append(patterns, patternJSON(corr, "correction"))
	}

	rejections := make([]map[string]interface{}, 0, len(result.Rejections))
	for _, rej := range result.Rejections {
		rejections = append(rejections, map[string]interface{}{
			"rule":      rej.RuleName,
			"option":    rej.Option.String(),
			"violation": rej.Violation,
		})
	}

	return map[string]interface{}{
		"source":     source,
		"config":     cfg,
		"evaluated":  result.Evaluated,
		"pivots":     result.PivotCount,
		"patterns":   patterns,
		"rejections": rejections,
	}
}

func patternJSON(acc scanner.Accepted, kind string) map[string]interface{} {
	return map[string]interface{}{
		"rule":      acc.RuleName,
		"kind":      kind,
		"option":    acc.Option.String(),
		"idx_start": acc.Pattern.IdxStart(),
		"idx_end":   acc.Pattern.IdxEnd(),
		"dates":     acc.Pattern.Dates(),
		"values":    acc.Pattern.Values(),
		"labels":    acc.Pattern.Labels(),
	}
}

func persistResult(ctx context.Context, dataStore store.DataStore, source string, cfg scanner.Config, result *scanner.Result) error {
	runID, err := dataStore.SaveRun(ctx, &store.ScanRun{
		Timestamp:       time.Now(),
		Source:          source,
		SkipFrom:        cfg.SkipFrom,
		SkipTo:          cfg.SkipTo,
		XYRatio:         cfg.XYRatio,
		ZigzagThreshold: cfg.ZigzagThreshold,
		Evaluated:       result.Evaluated,
		Accepted:        len(result.Accepted) + len(result.Corrections),
		Rejected:        len(result.Rejections),
	})
	if err != nil {
		return err
	}

	for _, acc := range result.Accepted {
		if err := dataStore.SavePattern(ctx, patternRecord(runID, acc, "impulse", "")); err != nil {
			return err
		}
	}
	for _, corr := range result.Corrections {
		if err := dataStore.SavePattern(ctx, patternRecord(runID, corr, "correction", "")); err != nil {
			return err
		}
	}
	for _, rej := range result.Rejections {
		rec := patternRecord(runID, scanner.Accepted{
			Pattern:  rej.Pattern,
			RuleName: rej.RuleName,
			Option:   rej.Option,
		}, rejectionKind(rej), rej.Violation)
		if err := dataStore.SavePattern(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func rejectionKind(rej scanner.Rejection) string {
	if rej.Pattern.Len() == 3 {
		return "correction"
	}
	return "impulse"
}

func patternRecord(runID int64, acc scanner.Accepted, kind, violation string) *store.PatternRecord {
	monowaves := acc.Pattern.Waves()
	records := make([]store.WaveRecord, len(monowaves))
	for i, w := range monowaves {
		records[i] = store.WaveRecord{
			Label:     w.Label,
			Direction: w.Direction.String(),
			IdxStart:  w.IdxStart,
			IdxEnd:    w.IdxEnd,
			Low:       w.Low,
			High:      w.High,
			DateStart: w.DateStart,
			DateEnd:   w.DateEnd,
			SkipN:     w.SkipN,
		}
	}
	return &store.PatternRecord{
		RunID:     runID,
		RuleName:  acc.RuleName,
		Kind:      kind,
		Option:    acc.Option.String(),
		IdxStart:  acc.Pattern.IdxStart(),
		IdxEnd:    acc.Pattern.IdxEnd(),
		Waves:     records,
		Violation: violation,
	}
}

// archetypesHelp lists the registered archetype names for command help.
func archetypesHelp() string {
	return fmt.Sprintf("available archetypes: %s", strings.Join(rules.Names(), ", "))
}
