package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// WeighCmd returns the weigh command
func WeighCmd(a *App) *cobra.Command {
	var (
		date       string
		condition  float64
		notes      string
		recordedBy string
	)

	cmd := &cobra.Command{
		Use:   "weigh [animal-id|eid] [weight-kg]",
		Short: "Record a weight for an animal",
		Long: `Record a weight for a single animal.

Examples:
  stockbook weigh 12 385.5
  stockbook weigh 982000123456789 42.0 --condition 3.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			animal, err := resolveAnimal(ctx, a, args[0])
			if err != nil {
				return err
			}

			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[1])
			}

			when, err := parseDateOrToday(date)
			if err != nil {
				return err
			}

			event, err := a.Events.RecordWeigh(ctx, primary.RecordWeighRequest{
				AnimalID:       animal.ID,
				Date:           when,
				WeightKg:       weight,
				ConditionScore: condition,
				Notes:          notes,
				RecordedBy:     a.recordedBy(recordedBy),
			})
			if err != nil {
				return fmt.Errorf("failed to record weight: %w", err)
			}

			fmt.Printf("✓ Recorded %.1f kg for %s (event %d)\n", weight, animal.DisplayID(), event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Weigh date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&condition, "condition", 0, "Body condition score (1-5)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&recordedBy, "recorded-by", "", "Recorded by")

	return cmd
}
