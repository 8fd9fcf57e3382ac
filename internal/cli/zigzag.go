package cli

import (
	"github.com/spf13/cobra"

	"wave-scanner/internal/data"
	"wave-scanner/internal/waves"
)

func newZigzagCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zigzag <csv-file>",
		Short: "Print the zigzag pivots of an OHLC CSV file",
		Long: `Zigzag compresses the series into alternating pivot points, committing a
pivot whenever price reverses by at least the threshold ratio. These are
the swings the pivot-based impulse search chains into waves.`,
		Example: `  wave-scanner zigzag data/btc-usd_1d.csv
  wave-scanner zigzag data/kospi.csv --threshold 0.03 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			threshold := app.Config.Scan.ZigzagThreshold
			if v, _ := cmd.Flags().GetFloat64("threshold"); v > 0 {
				threshold = v
			}

			series, err := data.LoadSeries(args[0])
			if err != nil {
				output.Error("Failed to load data: %v", err)
				return err
			}

			pivots, err := waves.DetectZigzag(series, threshold)
			if err != nil {
				output.Error("Zigzag detection failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"source":    args[0],
					"threshold": threshold,
					"pivots":    pivots,
				})
			}

			output.Info("%d pivots at threshold %.3f over %d bars", len(pivots), threshold, series.Len())
			for _, p := range pivots {
				kind := "low "
				if p.High {
					kind = "high"
				}
				output.Print("  %4d  %s  %10.2f  %s\n", p.Index, kind, p.Price, p.Date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().Float64("threshold", 0, "zigzag reversal threshold (default from config)")
	return cmd
}
