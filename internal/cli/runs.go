package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newRunsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect persisted scan runs",
	}
	cmd.AddCommand(newRunsListCmd(app))
	cmd.AddCommand(newRunsShowCmd(app))
	return cmd
}

func newRunsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent scan runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store is disabled")
				return fmt.Errorf("store disabled")
			}

			limit, _ := cmd.Flags().GetInt("limit")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			runs, err := app.Store.GetRuns(ctx, limit)
			if err != nil {
				output.Error("Failed to load runs: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(runs)
			}

			if len(runs) == 0 {
				output.Info("No scan runs recorded")
				return nil
			}
			output.Print("%-5s %-20s %-30s %-10s %-9s %-9s\n",
				"ID", "TIME", "SOURCE", "EVALUATED", "ACCEPTED", "REJECTED")
			for _, r := range runs {
				output.Print("%-5d %-20s %-30s %-10d %-9d %-9d\n",
					r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Source,
					r.Evaluated, r.Accepted, r.Rejected)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of runs to list")
	return cmd
}

func newRunsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the patterns of a scan run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store is disabled")
				return fmt.Errorf("store disabled")
			}

			runID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				output.Error("Invalid run id %q", args[0])
				return err
			}
			includeRejected, _ := cmd.Flags().GetBool("rejected")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			patterns, err := app.Store.GetPatterns(ctx, runID, includeRejected)
			if err != nil {
				output.Error("Failed to load patterns: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(patterns)
			}

			if len(patterns) == 0 {
				output.Info("No patterns recorded for run %d", runID)
				return nil
			}
			for _, p := range patterns {
				header := fmt.Sprintf("%s %s %s  bars %d-%d", p.Kind, p.RuleName, p.Option, p.IdxStart, p.IdxEnd)
				if p.Violation != "" {
					output.Warning("%s rejected: %s", header, p.Violation)
				} else {
					output.Success("%s", header)
				}
				for _, w := range p.Waves {
					output.Print("    %-6s %-4s %4d-%-4d  low %10.2f  high %10.2f  skip %d\n",
						w.Label, w.Direction, w.IdxStart, w.IdxEnd, w.Low, w.High, w.SkipN)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("rejected", false, "include rejected candidates")
	return cmd
}
