package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/version"
)

// RootCmd builds the stockbook root command over a wired App.
func RootCmd(a *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stockbook",
		Short:   "Stockbook - livestock record keeping",
		Version: version.String(),
		Long: `Stockbook keeps the records a small grazing property needs: animals,
mobs, paddocks, treatments with withholding periods, movements,
weights, and the PDF registers an audit asks for.`,
	}

	rootCmd.AddCommand(DashboardCmd(a))
	rootCmd.AddCommand(AnimalCmd(a))
	rootCmd.AddCommand(MobCmd(a))
	rootCmd.AddCommand(PaddockCmd(a))
	rootCmd.AddCommand(ProductCmd(a))

	// Event entry paths
	rootCmd.AddCommand(TreatCmd(a))
	rootCmd.AddCommand(MoveCmd(a))
	rootCmd.AddCommand(WeighCmd(a))
	rootCmd.AddCommand(EventCmd(a))

	// Read-side views
	rootCmd.AddCommand(WHPCmd(a))
	rootCmd.AddCommand(WeightsCmd(a))

	rootCmd.AddCommand(TaskCmd(a))
	rootCmd.AddCommand(ReportCmd(a))
	rootCmd.AddCommand(SettingsCmd(a))
	rootCmd.AddCommand(BackupCmd(a))

	return rootCmd
}
