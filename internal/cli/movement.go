package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// MoveCmd returns the move command
func MoveCmd(a *App) *cobra.Command {
	var (
		animalID   int64
		mobID      int64
		date       string
		fromID     int64
		toID       int64
		reason     string
		headCount  int
		notes      string
		recordedBy string
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Record a movement between paddocks",
		Long: `Record a movement for an animal or a mob.

Moving a mob also updates its current paddock. When --from is omitted
for a mob move, the mob's current paddock is recorded as the origin.
A --to of 0 records removal from paddocks.

Examples:
  stockbook move --mob 2 --to 5 --reason "rotation"
  stockbook move --animal 12 --from 3 --to 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseDateOrToday(date)
			if err != nil {
				return err
			}

			event, err := a.Events.RecordMovement(context.Background(), primary.RecordMovementRequest{
				AnimalID:      animalID,
				MobID:         mobID,
				Date:          when,
				FromPaddockID: fromID,
				ToPaddockID:   toID,
				Reason:        reason,
				HeadCount:     headCount,
				Notes:         notes,
				RecordedBy:    a.recordedBy(recordedBy),
			})
			if err != nil {
				return fmt.Errorf("failed to record movement: %w", err)
			}

			fmt.Printf("✓ Recorded movement event %d\n", event.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&animalID, "animal", 0, "Animal ID")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Mob ID")
	cmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD, default today)")
	cmd.Flags().Int64Var(&fromID, "from", 0, "Origin paddock ID")
	cmd.Flags().Int64Var(&toID, "to", 0, "Destination paddock ID (0 = off paddocks)")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the move")
	cmd.Flags().IntVar(&headCount, "head", 0, "Head count (default: mob's alive count)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&recordedBy, "recorded-by", "", "Recorded by")

	return cmd
}
