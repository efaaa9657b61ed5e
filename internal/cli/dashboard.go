package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
)

// DashboardCmd returns the dashboard command
func DashboardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the property dashboard",
		Long:  `Herd counts, animals under withholding, pending tasks, and recent events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.Summary.Dashboard(context.Background())
			if err != nil {
				return fmt.Errorf("failed to build dashboard: %w", err)
			}

			printHerdCounts(summary.StatusCounts, summary.SpeciesCounts)
			printWHPSection(summary.OnWHP)
			printTaskSection(summary.PendingTasks)
			printRecentSection(summary.RecentEvents)
			return nil
		},
	}
}

func printHerdCounts(statusCounts, speciesCounts map[string]int) {
	color.New(color.Bold).Println("Herd")
	fmt.Printf("  Alive: %d  Sold: %d  Dead: %d  Missing: %d\n",
		statusCounts[models.AnimalStatusAlive],
		statusCounts[models.AnimalStatusSold],
		statusCounts[models.AnimalStatusDead],
		statusCounts[models.AnimalStatusMissing])
	if len(speciesCounts) > 0 {
		fmt.Printf("  Cattle: %d  Sheep: %d\n",
			speciesCounts[models.SpeciesCattle],
			speciesCounts[models.SpeciesSheep])
	}
	fmt.Println()
}

func printWHPSection(entries []*primary.WHPEntry) {
	color.New(color.Bold).Println("On withholding")
	if len(entries) == 0 {
		fmt.Println("  All clear.")
		fmt.Println()
		return
	}

	for _, e := range entries {
		tag := e.VisualTag
		if tag == "" {
			tag = e.EID
		}
		line := fmt.Sprintf("  %s  %s  treated %s",
			tag, orDash(e.ProductName), fmtDate(e.TreatmentDate))
		if e.MeatWHPEnd != nil {
			line += fmt.Sprintf("  meat WHP until %s (%dd left)",
				fmtDate(*e.MeatWHPEnd), e.MeatDaysLeft)
		} else if e.ESIEnd != nil {
			line += fmt.Sprintf("  ESI until %s", fmtDate(*e.ESIEnd))
		} else if e.MilkWHPEnd != nil {
			line += fmt.Sprintf("  milk WHP until %s", fmtDate(*e.MilkWHPEnd))
		}

		// Soon-to-clear animals in yellow, imminent ones in red, so the
		// loadout for a sale this week stands out.
		switch {
		case e.MeatWHPEnd != nil && e.MeatDaysLeft <= 3:
			color.Red("%s", line)
		case e.MeatWHPEnd != nil && e.MeatDaysLeft <= 7:
			color.Yellow("%s", line)
		default:
			fmt.Println(line)
		}
	}
	fmt.Println()
}

func printTaskSection(tasks []*models.Task) {
	color.New(color.Bold).Println("Pending tasks")
	if len(tasks) == 0 {
		fmt.Println("  None.")
		fmt.Println()
		return
	}

	for _, t := range tasks {
		fmt.Printf("  [%d] %s (due %s)\n", t.ID, t.Title, fmtNullDate(t.DueDate))
	}
	fmt.Println()
}

func printRecentSection(events []*models.Event) {
	color.New(color.Bold).Println("Recent events")
	if len(events) == 0 {
		fmt.Println("  None.")
		return
	}

	for _, e := range events {
		subject := "-"
		if e.AnimalID.Valid {
			subject = fmt.Sprintf("animal %d", e.AnimalID.Int64)
		} else if e.MobID.Valid {
			subject = fmt.Sprintf("mob %d", e.MobID.Int64)
		}
		fmt.Printf("  %s  %s  %s\n", fmtDate(e.EventDate), e.EventType, subject)
	}
}
