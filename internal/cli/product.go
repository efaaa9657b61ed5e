package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// ProductCmd returns the product command
func ProductCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage treatment products",
		Long: `Manage the treatment products catalogue.

Each product carries its withholding periods (meat and milk WHP) and
export slaughter interval (ESI) in days. These are resolved into fixed
end dates whenever a treatment is recorded.`,
	}

	cmd.AddCommand(productAddCmd(a))
	cmd.AddCommand(productListCmd(a))
	cmd.AddCommand(productShowCmd(a))
	cmd.AddCommand(productUpdateCmd(a))
	cmd.AddCommand(productDeleteCmd(a))

	return cmd
}

type productFlags struct {
	ingredient, category, dose, route, notes string
	meatWHP, milkWHP, esi                    int
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ingredient, "ingredient", "", "Active ingredient")
	cmd.Flags().StringVar(&f.category, "category", "", "Category (drench, vaccine, antibiotic, ...)")
	cmd.Flags().IntVar(&f.meatWHP, "meat-whp", 0, "Meat withholding period in days")
	cmd.Flags().IntVar(&f.milkWHP, "milk-whp", 0, "Milk withholding period in days")
	cmd.Flags().IntVar(&f.esi, "esi", 0, "Export slaughter interval in days")
	cmd.Flags().StringVar(&f.dose, "dose", "", "Default dose")
	cmd.Flags().StringVar(&f.route, "route", "", "Default route (oral, subcutaneous, ...)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
}

func productAddCmd(a *App) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new product",
		Long: `Add a new product.

Examples:
  stockbook product add "Cydectin Pour-On" --meat-whp 0 --esi 42 --route pour_on
  stockbook product add "Penicillin LA" --meat-whp 30 --milk-whp 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.Products.SaveProduct(context.Background(), primary.SaveProductRequest{
				Name:             args[0],
				ActiveIngredient: flags.ingredient,
				Category:         flags.category,
				MeatWHPDays:      flags.meatWHP,
				MilkWHPDays:      flags.milkWHP,
				ESIDays:          flags.esi,
				DefaultDose:      flags.dose,
				DefaultRoute:     flags.route,
				Notes:            flags.notes,
			})
			if err != nil {
				return fmt.Errorf("failed to add product: %w", err)
			}

			fmt.Printf("✓ Added product %d: %s\n", product.ID, product.Name)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func productListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.Products.ListProducts(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if len(products) == 0 {
				fmt.Println("No products found.")
				fmt.Println()
				fmt.Println("Add your first product:")
				fmt.Println("  stockbook product add \"Cydectin Pour-On\" --esi 42")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tMEAT WHP\tMILK WHP\tESI")
			fmt.Fprintln(w, "--\t----\t--------\t--------\t--------\t---")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%dd\t%dd\t%dd\n",
					p.ID, p.Name, orDash(p.Category),
					p.MeatWHPDays, p.MilkWHPDays, p.ESIDays)
			}
			w.Flush()
			return nil
		},
	}
}

func productShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [product-id]",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id: %w", err)
			}

			product, err := a.Products.GetProduct(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			if product == nil {
				return fmt.Errorf("product %d not found", id)
			}

			fmt.Printf("Product: %d\n", product.ID)
			fmt.Printf("Name: %s\n", product.Name)
			fmt.Printf("Active ingredient: %s\n", orDash(product.ActiveIngredient))
			fmt.Printf("Category: %s\n", orDash(product.Category))
			fmt.Printf("Meat WHP: %d days\n", product.MeatWHPDays)
			fmt.Printf("Milk WHP: %d days\n", product.MilkWHPDays)
			fmt.Printf("ESI: %d days\n", product.ESIDays)
			fmt.Printf("Default dose: %s\n", orDash(product.DefaultDose))
			fmt.Printf("Default route: %s\n", orDash(product.DefaultRoute))
			if product.Notes != "" {
				fmt.Printf("Notes: %s\n", product.Notes)
			}
			return nil
		},
	}
}

func productUpdateCmd(a *App) *cobra.Command {
	var flags productFlags
	var name string

	cmd := &cobra.Command{
		Use:   "update [product-id]",
		Short: "Update a product (existing treatment records keep their stored dates)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id: %w", err)
			}

			existing, err := a.Products.GetProduct(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			if existing == nil {
				return fmt.Errorf("product %d not found", id)
			}

			req := primary.SaveProductRequest{
				ID:               existing.ID,
				Name:             existing.Name,
				ActiveIngredient: existing.ActiveIngredient,
				Category:         existing.Category,
				MeatWHPDays:      existing.MeatWHPDays,
				MilkWHPDays:      existing.MilkWHPDays,
				ESIDays:          existing.ESIDays,
				DefaultDose:      existing.DefaultDose,
				DefaultRoute:     existing.DefaultRoute,
				Notes:            existing.Notes,
			}
			if cmd.Flags().Changed("name") {
				req.Name = name
			}
			if cmd.Flags().Changed("ingredient") {
				req.ActiveIngredient = flags.ingredient
			}
			if cmd.Flags().Changed("category") {
				req.Category = flags.category
			}
			if cmd.Flags().Changed("meat-whp") {
				req.MeatWHPDays = flags.meatWHP
			}
			if cmd.Flags().Changed("milk-whp") {
				req.MilkWHPDays = flags.milkWHP
			}
			if cmd.Flags().Changed("esi") {
				req.ESIDays = flags.esi
			}
			if cmd.Flags().Changed("dose") {
				req.DefaultDose = flags.dose
			}
			if cmd.Flags().Changed("route") {
				req.DefaultRoute = flags.route
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = flags.notes
			}

			product, err := a.Products.SaveProduct(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}

			fmt.Printf("✓ Updated product %d: %s\n", product.ID, product.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	flags.register(cmd)

	return cmd
}

func productDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [product-id]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id: %w", err)
			}

			if err := a.Products.DeleteProduct(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}

			fmt.Printf("✓ Deleted product %d\n", id)
			return nil
		},
	}
}
