package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// EventCmd returns the event command
func EventCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Record and inspect events",
		Long: `Record untyped events (death, sale, birth, pregnancy test, joining,
note) and inspect the event log. Treatments, movements, and weights
have their own commands: treat, move, weigh.`,
	}

	cmd.AddCommand(eventRecordCmd(a))
	cmd.AddCommand(eventRecentCmd(a))
	cmd.AddCommand(eventShowCmd(a))
	cmd.AddCommand(eventDeleteCmd(a))

	return cmd
}

func eventRecordCmd(a *App) *cobra.Command {
	var (
		animalID   int64
		mobID      int64
		date       string
		notes      string
		recordedBy string
	)

	cmd := &cobra.Command{
		Use:   "record [type]",
		Short: "Record an event against an animal or mob",
		Long: `Record an event. Recording a death or sale against an animal also
updates the animal's status.

Examples:
  stockbook event record death --animal 12 --notes "snake bite"
  stockbook event record joining --mob 2 --date 2024-11-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseDateOrToday(date)
			if err != nil {
				return err
			}

			event, err := a.Events.RecordEvent(context.Background(), primary.RecordEventRequest{
				Type:       args[0],
				AnimalID:   animalID,
				MobID:      mobID,
				Date:       when,
				Notes:      notes,
				RecordedBy: a.recordedBy(recordedBy),
			})
			if err != nil {
				return fmt.Errorf("failed to record event: %w", err)
			}

			fmt.Printf("✓ Recorded %s event %d\n", event.EventType, event.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&animalID, "animal", 0, "Animal ID")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Mob ID")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&recordedBy, "recorded-by", "", "Recorded by")

	return cmd
}

func eventRecentCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := a.Events.RecentEvents(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events recorded yet.")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tANIMAL\tMOB\tNOTES")
			fmt.Fprintln(w, "--\t----\t----\t------\t---\t-----")
			for _, e := range events {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, fmtDate(e.EventDate), e.EventType,
					fmtNullID(e.AnimalID), fmtNullID(e.MobID), orDash(e.Notes))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events")

	return cmd
}

func eventShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [event-id]",
		Short: "Show an event with its detail record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id: %w", err)
			}

			if detail, err := a.Events.TreatmentDetail(ctx, id); err != nil {
				return fmt.Errorf("failed to read treatment detail: %w", err)
			} else if detail != nil {
				fmt.Printf("Treatment event %d\n", id)
				fmt.Printf("Product: %s\n", fmtNullID(detail.ProductID))
				fmt.Printf("Batch: %s\n", orDash(detail.BatchNumber))
				fmt.Printf("Dose: %s  Route: %s\n", orDash(detail.Dose), orDash(detail.Route))
				fmt.Printf("Administered by: %s\n", orDash(detail.AdministeredBy))
				fmt.Printf("Meat WHP end: %s\n", fmtNullDate(detail.MeatWHPEnd))
				fmt.Printf("Milk WHP end: %s\n", fmtNullDate(detail.MilkWHPEnd))
				fmt.Printf("ESI end: %s\n", fmtNullDate(detail.ESIEnd))
				return nil
			}

			if detail, err := a.Events.MovementDetail(ctx, id); err != nil {
				return fmt.Errorf("failed to read movement detail: %w", err)
			} else if detail != nil {
				fmt.Printf("Movement event %d\n", id)
				fmt.Printf("From paddock: %s\n", fmtNullID(detail.FromPaddockID))
				fmt.Printf("To paddock: %s\n", fmtNullID(detail.ToPaddockID))
				fmt.Printf("Reason: %s\n", orDash(detail.Reason))
				fmt.Printf("Head count: %d\n", detail.HeadCount)
				return nil
			}

			if detail, err := a.Events.WeighDetail(ctx, id); err != nil {
				return fmt.Errorf("failed to read weigh detail: %w", err)
			} else if detail != nil {
				fmt.Printf("Weigh event %d\n", id)
				fmt.Printf("Weight: %.1f kg\n", detail.WeightKg)
				fmt.Printf("Condition score: %s\n", fmtNullFloat(detail.ConditionScore))
				return nil
			}

			fmt.Printf("Event %d has no detail record (untyped event).\n", id)
			return nil
		},
	}
}

func eventDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [event-id]",
		Short: "Delete an event and its detail record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id: %w", err)
			}

			if err := a.Events.DeleteEvent(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}

			fmt.Printf("✓ Deleted event %d\n", id)
			return nil
		},
	}
}
