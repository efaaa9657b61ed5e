package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// MobCmd returns the mob command
func MobCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mob",
		Short: "Manage mobs",
		Long:  `Create and manage mobs - named groups of animals run as a unit.`,
	}

	cmd.AddCommand(mobAddCmd(a))
	cmd.AddCommand(mobListCmd(a))
	cmd.AddCommand(mobShowCmd(a))
	cmd.AddCommand(mobUpdateCmd(a))
	cmd.AddCommand(mobDeleteCmd(a))

	return cmd
}

func mobAddCmd(a *App) *cobra.Command {
	var species, description string
	var paddockID int64

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new mob",
		Long: `Add a new mob.

Examples:
  stockbook mob add "2023 Heifers" --species cattle
  stockbook mob add "Merino Ewes" --species sheep --paddock 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mob, err := a.Mobs.SaveMob(context.Background(), primary.SaveMobRequest{
				Name:             args[0],
				Species:          species,
				Description:      description,
				CurrentPaddockID: paddockID,
			})
			if err != nil {
				return fmt.Errorf("failed to add mob: %w", err)
			}

			fmt.Printf("✓ Added mob %d: %s\n", mob.ID, mob.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&species, "species", "", "Species (cattle or sheep)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Int64Var(&paddockID, "paddock", 0, "Current paddock ID")
	cmd.MarkFlagRequired("species")

	return cmd
}

func mobListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all mobs with head counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			mobs, err := a.Mobs.ListMobs(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list mobs: %w", err)
			}

			if len(mobs) == 0 {
				fmt.Println("No mobs found.")
				fmt.Println()
				fmt.Println("Add your first mob:")
				fmt.Println("  stockbook mob add \"2023 Heifers\" --species cattle")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tSPECIES\tHEAD\tPADDOCK")
			fmt.Fprintln(w, "--\t----\t-------\t----\t-------")
			for _, m := range mobs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
					m.Mob.ID, m.Mob.Name, m.Mob.Species, m.HeadCount,
					fmtNullID(m.Mob.CurrentPaddockID))
			}
			w.Flush()
			return nil
		},
	}
}

func mobShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [mob-id]",
		Short: "Show mob details and members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mob id: %w", err)
			}

			mob, err := a.Mobs.GetMob(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get mob: %w", err)
			}
			if mob == nil {
				return fmt.Errorf("mob %d not found", id)
			}

			fmt.Printf("Mob: %d\n", mob.ID)
			fmt.Printf("Name: %s\n", mob.Name)
			fmt.Printf("Species: %s\n", mob.Species)
			fmt.Printf("Paddock: %s\n", fmtNullID(mob.CurrentPaddockID))
			if mob.Description != "" {
				fmt.Printf("Description: %s\n", mob.Description)
			}

			animals, err := a.Animals.ListAnimalsByMob(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to list mob animals: %w", err)
			}
			if len(animals) == 0 {
				fmt.Println()
				fmt.Println("No animals assigned.")
				return nil
			}

			fmt.Println()
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tTAG\tEID\tSEX\tSTATUS")
			fmt.Fprintln(w, "--\t---\t---\t---\t------")
			for _, an := range animals {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					an.ID, orDash(an.VisualTag), orDash(an.EID), an.Sex, an.Status)
			}
			w.Flush()
			return nil
		},
	}
}

func mobUpdateCmd(a *App) *cobra.Command {
	var name, species, description string
	var paddockID int64

	cmd := &cobra.Command{
		Use:   "update [mob-id]",
		Short: "Update a mob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mob id: %w", err)
			}

			existing, err := a.Mobs.GetMob(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get mob: %w", err)
			}
			if existing == nil {
				return fmt.Errorf("mob %d not found", id)
			}

			req := primary.SaveMobRequest{
				ID:               existing.ID,
				Name:             existing.Name,
				Species:          existing.Species,
				Description:      existing.Description,
				CurrentPaddockID: existing.CurrentPaddockID.Int64,
			}
			if cmd.Flags().Changed("name") {
				req.Name = name
			}
			if cmd.Flags().Changed("species") {
				req.Species = species
			}
			if cmd.Flags().Changed("description") {
				req.Description = description
			}
			if cmd.Flags().Changed("paddock") {
				req.CurrentPaddockID = paddockID
			}

			mob, err := a.Mobs.SaveMob(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to update mob: %w", err)
			}

			fmt.Printf("✓ Updated mob %d: %s\n", mob.ID, mob.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Mob name")
	cmd.Flags().StringVar(&species, "species", "", "Species (cattle or sheep)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Int64Var(&paddockID, "paddock", 0, "Current paddock ID (0 clears it)")

	return cmd
}

func mobDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [mob-id]",
		Short: "Delete a mob (animals are unassigned, not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mob id: %w", err)
			}

			if err := a.Mobs.DeleteMob(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete mob: %w", err)
			}

			fmt.Printf("✓ Deleted mob %d\n", id)
			return nil
		},
	}
}
