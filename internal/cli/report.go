package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// ReportCmd returns the report command
func ReportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate PDF reports",
		Long: `Generate PDF reports into the reports directory (or --out).

Date-ranged reports default to the last 12 months.`,
	}

	cmd.AddCommand(reportTreatmentsCmd(a))
	cmd.AddCommand(reportMovementsCmd(a))
	cmd.AddCommand(reportWHPCmd(a))
	cmd.AddCommand(reportSaleDraftCmd(a))
	cmd.AddCommand(reportInventoryCmd(a))
	cmd.AddCommand(reportWeightsCmd(a))

	return cmd
}

// reportRange resolves the --from/--to flags, defaulting to the last
// 12 months ending today.
func reportRange(fromFlag, toFlag string) (time.Time, time.Time, error) {
	to, err := parseDateOrToday(toFlag)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var from time.Time
	if fromFlag == "" {
		from = to.AddDate(-1, 0, 0)
	} else {
		from, err = parseDate(fromFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from %s is after --to %s", fmtDate(from), fmtDate(to))
	}
	return from, to, nil
}

// reportPath resolves the output path, defaulting to a timestamped
// file in the reports directory.
func reportPath(a *App, out, name string) (string, error) {
	if out != "" {
		return out, nil
	}
	if err := a.EnsureDirs(); err != nil {
		return "", err
	}
	stamp := time.Now().Format("20060102-150405")
	return filepath.Join(a.Config.ReportsDir, fmt.Sprintf("%s-%s.pdf", name, stamp)), nil
}

func reportTreatmentsCmd(a *App) *cobra.Command {
	var fromFlag, toFlag, out string

	cmd := &cobra.Command{
		Use:   "treatments",
		Short: "Treatment register for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := reportRange(fromFlag, toFlag)
			if err != nil {
				return err
			}
			path, err := reportPath(a, out, "treatments")
			if err != nil {
				return err
			}

			if err := a.Reports.TreatmentRegister(context.Background(), from, to, path); err != nil {
				return fmt.Errorf("failed to generate treatment register: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}

func reportMovementsCmd(a *App) *cobra.Command {
	var fromFlag, toFlag, out string

	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Movement log for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := reportRange(fromFlag, toFlag)
			if err != nil {
				return err
			}
			path, err := reportPath(a, out, "movements")
			if err != nil {
				return err
			}

			if err := a.Reports.MovementLog(context.Background(), from, to, path); err != nil {
				return fmt.Errorf("failed to generate movement log: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}

func reportWHPCmd(a *App) *cobra.Command {
	var asOfFlag, out string

	cmd := &cobra.Command{
		Use:   "whp",
		Short: "Animals currently under withholding periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateOrToday(asOfFlag)
			if err != nil {
				return err
			}
			path, err := reportPath(a, out, "whp-clearance")
			if err != nil {
				return err
			}

			if err := a.Reports.WHPClearance(context.Background(), asOf, path); err != nil {
				return fmt.Errorf("failed to generate WHP clearance report: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}

func reportSaleDraftCmd(a *App) *cobra.Command {
	var mobID int64
	var asOfFlag, out string

	cmd := &cobra.Command{
		Use:   "sale-draft",
		Short: "Sale draft with per-animal WHP status",
		Long: `List saleable animals with their withholding status as of the sale
date, so restricted animals are caught before they leave the property.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateOrToday(asOfFlag)
			if err != nil {
				return err
			}
			path, err := reportPath(a, out, "sale-draft")
			if err != nil {
				return err
			}

			if err := a.Reports.SaleDraft(context.Background(), mobID, asOf, path); err != nil {
				return fmt.Errorf("failed to generate sale draft: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&mobID, "mob", 0, "Restrict to one mob (default all alive animals)")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "Planned sale date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}

func reportInventoryCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Full animal inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := reportPath(a, out, "inventory")
			if err != nil {
				return err
			}

			if err := a.Reports.Inventory(context.Background(), path); err != nil {
				return fmt.Errorf("failed to generate inventory: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}

func reportWeightsCmd(a *App) *cobra.Command {
	var fromFlag, toFlag, out string
	var mobID int64

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Weight summary with average daily gains",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			from, to, err := reportRange(fromFlag, toFlag)
			if err != nil {
				return err
			}
			path, err := reportPath(a, out, "weights")
			if err != nil {
				return err
			}

			summary, err := a.Weights.Summary(ctx, primary.WeightSummaryRequest{
				From:  from,
				To:    to,
				MobID: mobID,
			})
			if err != nil {
				return fmt.Errorf("failed to build weight summary: %w", err)
			}

			if err := a.Reports.WeightSummary(ctx, summary, from, to, path); err != nil {
				return fmt.Errorf("failed to generate weight report: %w", err)
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, default today)")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Restrict to one mob")
	cmd.Flags().StringVar(&out, "out", "", "Output file")

	return cmd
}
