package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// TreatCmd returns the treat command
func TreatCmd(a *App) *cobra.Command {
	var (
		animalIDs  []int64
		mobID      int64
		productID  int64
		date       string
		batch      string
		dose       string
		route      string
		admin      string
		notes      string
		recordedBy string
	)

	cmd := &cobra.Command{
		Use:   "treat",
		Short: "Record a treatment",
		Long: `Record a treatment for one or more animals, or a whole mob.

The product's withholding periods are resolved into fixed end dates at
entry time and stored with the record. Changing the product later never
changes what was recorded.

Examples:
  stockbook treat --animal 12 --product 3 --date 2024-01-10
  stockbook treat --animal 12 --animal 13 --product 3 --dose 15ml
  stockbook treat --mob 2 --product 1 --batch B2287`,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseDateOrToday(date)
			if err != nil {
				return err
			}

			result, err := a.Events.RecordTreatment(context.Background(), primary.RecordTreatmentRequest{
				AnimalIDs:      animalIDs,
				MobID:          mobID,
				Date:           when,
				ProductID:      productID,
				BatchNumber:    batch,
				Dose:           dose,
				Route:          route,
				AdministeredBy: admin,
				Notes:          notes,
				RecordedBy:     a.recordedBy(recordedBy),
			})
			if err != nil {
				return fmt.Errorf("failed to record treatment: %w", err)
			}

			fmt.Printf("✓ Recorded %d treatment event(s)\n", len(result.EventIDs))
			if result.MeatWHPEnd != nil {
				fmt.Printf("  Meat WHP until %s\n", fmtDate(*result.MeatWHPEnd))
			}
			if result.MilkWHPEnd != nil {
				fmt.Printf("  Milk WHP until %s\n", fmtDate(*result.MilkWHPEnd))
			}
			if result.ESIEnd != nil {
				fmt.Printf("  ESI until %s\n", fmtDate(*result.ESIEnd))
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&animalIDs, "animal", nil, "Animal ID (repeatable for a batch)")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Mob ID (records one mob-level event)")
	cmd.Flags().Int64Var(&productID, "product", 0, "Product ID")
	cmd.Flags().StringVar(&date, "date", "", "Treatment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&batch, "batch", "", "Product batch number")
	cmd.Flags().StringVar(&dose, "dose", "", "Dose (default from product)")
	cmd.Flags().StringVar(&route, "route", "", "Route (default from product)")
	cmd.Flags().StringVar(&admin, "by", "", "Administered by")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&recordedBy, "recorded-by", "", "Recorded by")
	cmd.MarkFlagRequired("product")

	return cmd
}
