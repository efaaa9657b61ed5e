package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// WHPCmd returns the whp command
func WHPCmd(a *App) *cobra.Command {
	var asOfFlag string

	cmd := &cobra.Command{
		Use:   "whp",
		Short: "List animals under withholding periods",
		Long: `List alive animals still inside a meat WHP, milk WHP, or export
slaughter interval as of the given date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateOrToday(asOfFlag)
			if err != nil {
				return err
			}

			entries, err := a.Summary.AnimalsOnWHP(context.Background(), asOf)
			if err != nil {
				return fmt.Errorf("failed to list WHP animals: %w", err)
			}

			if len(entries) == 0 {
				fmt.Printf("No animals on withholding as of %s.\n", fmtDate(asOf))
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "TAG\tEID\tPRODUCT\tTREATED\tMEAT WHP\tMILK WHP\tESI\tDAYS LEFT")
			fmt.Fprintln(w, "---\t---\t-------\t-------\t--------\t--------\t---\t---------")
			for _, e := range entries {
				meat, milk, esi := "-", "-", "-"
				daysLeft := "-"
				if e.MeatWHPEnd != nil {
					meat = fmtDate(*e.MeatWHPEnd)
					daysLeft = fmt.Sprintf("%d", e.MeatDaysLeft)
				}
				if e.MilkWHPEnd != nil {
					milk = fmtDate(*e.MilkWHPEnd)
				}
				if e.ESIEnd != nil {
					esi = fmtDate(*e.ESIEnd)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					orDash(e.VisualTag), orDash(e.EID), orDash(e.ProductName),
					fmtDate(e.TreatmentDate), meat, milk, esi, daysLeft)
			}
			w.Flush()

			restricted := 0
			for _, e := range entries {
				if e.MeatWHPEnd != nil && e.MeatDaysLeft <= 3 {
					restricted++
				}
			}
			if restricted > 0 {
				color.Red("%d animal(s) clear within 3 days - hold back from any sale.", restricted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "Reference date (YYYY-MM-DD, default today)")

	return cmd
}
