package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// WeightsCmd returns the weights command
func WeightsCmd(a *App) *cobra.Command {
	var fromFlag, toFlag string
	var mobID int64

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the weight table with average daily gains",
		Long: `Show weigh records in a date range with per-row average daily gain.

ADG is blank for an animal's first weight in the range.

Examples:
  stockbook weights --from 2024-01-01 --to 2024-06-30
  stockbook weights --mob 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := reportRange(fromFlag, toFlag)
			if err != nil {
				return err
			}

			summary, err := a.Weights.Summary(context.Background(), primary.WeightSummaryRequest{
				From:  from,
				To:    to,
				MobID: mobID,
			})
			if err != nil {
				return fmt.Errorf("failed to build weight summary: %w", err)
			}

			if summary.Count == 0 {
				fmt.Printf("No weights recorded between %s and %s.\n", fmtDate(from), fmtDate(to))
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "DATE\tANIMAL\tWEIGHT (KG)\tADG (KG/D)\tCONDITION")
			fmt.Fprintln(w, "----\t------\t-----------\t----------\t---------")
			for _, row := range summary.Rows {
				adg := "-"
				if row.ADG != nil {
					adg = fmt.Sprintf("%.2f", *row.ADG)
				}
				condition := "-"
				if row.ConditionScore != nil {
					condition = fmt.Sprintf("%.1f", *row.ConditionScore)
				}
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\n",
					fmtDate(row.Date), row.AnimalDisplay, row.WeightKg, adg, condition)
			}
			w.Flush()

			fmt.Println()
			fmt.Printf("Records: %d  Avg: %.1f kg  Min: %.1f kg  Max: %.1f kg  Avg ADG: %.2f kg/d\n",
				summary.Count, summary.AvgWeight, summary.MinWeight, summary.MaxWeight, summary.AvgADG)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD, default 12 months ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, default today)")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Restrict to one mob")

	return cmd
}
