package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// PaddockCmd returns the paddock command
func PaddockCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paddock",
		Short: "Manage paddocks",
		Long:  `Create and manage paddocks - the named areas animals move between.`,
	}

	cmd.AddCommand(paddockAddCmd(a))
	cmd.AddCommand(paddockListCmd(a))
	cmd.AddCommand(paddockShowCmd(a))
	cmd.AddCommand(paddockUpdateCmd(a))
	cmd.AddCommand(paddockDeleteCmd(a))

	return cmd
}

func paddockAddCmd(a *App) *cobra.Command {
	var area float64
	var notes, pic string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new paddock",
		Long: `Add a new paddock.

Examples:
  stockbook paddock add "River Flat" --area 42.5
  stockbook paddock add "Top Block" --pic NA123456`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paddock, err := a.Paddocks.SavePaddock(context.Background(), primary.SavePaddockRequest{
				Name:         args[0],
				AreaHectares: area,
				Notes:        notes,
				PIC:          pic,
			})
			if err != nil {
				return fmt.Errorf("failed to add paddock: %w", err)
			}

			fmt.Printf("✓ Added paddock %d: %s\n", paddock.ID, paddock.Name)
			return nil
		},
	}

	cmd.Flags().Float64Var(&area, "area", 0, "Area in hectares")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&pic, "pic", "", "Property Identification Code")

	return cmd
}

func paddockListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all paddocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			paddocks, err := a.Paddocks.ListPaddocks(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list paddocks: %w", err)
			}

			if len(paddocks) == 0 {
				fmt.Println("No paddocks found.")
				fmt.Println()
				fmt.Println("Add your first paddock:")
				fmt.Println("  stockbook paddock add \"River Flat\" --area 42.5")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tAREA (HA)\tPIC")
			fmt.Fprintln(w, "--\t----\t---------\t---")
			for _, p := range paddocks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					p.ID, p.Name, fmtNullFloat(p.AreaHectares), orDash(p.PIC))
			}
			w.Flush()
			return nil
		},
	}
}

func paddockShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [paddock-id]",
		Short: "Show paddock details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paddock id: %w", err)
			}

			paddock, err := a.Paddocks.GetPaddock(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get paddock: %w", err)
			}
			if paddock == nil {
				return fmt.Errorf("paddock %d not found", id)
			}

			fmt.Printf("Paddock: %d\n", paddock.ID)
			fmt.Printf("Name: %s\n", paddock.Name)
			fmt.Printf("Area: %s ha\n", fmtNullFloat(paddock.AreaHectares))
			fmt.Printf("PIC: %s\n", orDash(paddock.PIC))
			if paddock.Notes != "" {
				fmt.Printf("Notes: %s\n", paddock.Notes)
			}
			return nil
		},
	}
}

func paddockUpdateCmd(a *App) *cobra.Command {
	var name, notes, pic string
	var area float64

	cmd := &cobra.Command{
		Use:   "update [paddock-id]",
		Short: "Update a paddock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paddock id: %w", err)
			}

			existing, err := a.Paddocks.GetPaddock(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get paddock: %w", err)
			}
			if existing == nil {
				return fmt.Errorf("paddock %d not found", id)
			}

			req := primary.SavePaddockRequest{
				ID:           existing.ID,
				Name:         existing.Name,
				AreaHectares: existing.AreaHectares.Float64,
				Notes:        existing.Notes,
				PIC:          existing.PIC,
			}
			if cmd.Flags().Changed("name") {
				req.Name = name
			}
			if cmd.Flags().Changed("area") {
				req.AreaHectares = area
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = notes
			}
			if cmd.Flags().Changed("pic") {
				req.PIC = pic
			}

			paddock, err := a.Paddocks.SavePaddock(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to update paddock: %w", err)
			}

			fmt.Printf("✓ Updated paddock %d: %s\n", paddock.ID, paddock.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Paddock name")
	cmd.Flags().Float64Var(&area, "area", 0, "Area in hectares")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&pic, "pic", "", "Property Identification Code")

	return cmd
}

func paddockDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [paddock-id]",
		Short: "Delete a paddock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paddock id: %w", err)
			}

			if err := a.Paddocks.DeletePaddock(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete paddock: %w", err)
			}

			fmt.Printf("✓ Deleted paddock %d\n", id)
			return nil
		},
	}
}
