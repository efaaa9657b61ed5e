package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// SettingsCmd returns the settings command
func SettingsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage property settings",
		Long:  `Property identity and contact details, used in report headers.`,
	}

	cmd.AddCommand(settingsShowCmd(a))
	cmd.AddCommand(settingsSetCmd(a))

	return cmd
}

func settingsShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show property settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.Settings.GetSettings(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			if settings.ID == 0 {
				fmt.Println("No property settings saved yet.")
				fmt.Println()
				fmt.Println("Set them with:")
				fmt.Println("  stockbook settings set --name \"Glenbrook Station\" --pic NA123456")
				return nil
			}

			fmt.Printf("Property: %s\n", settings.PropertyName)
			fmt.Printf("PIC: %s\n", orDash(settings.PIC))
			fmt.Printf("Owner: %s\n", orDash(settings.OwnerName))
			fmt.Printf("Address: %s\n", orDash(settings.Address))
			fmt.Printf("Phone: %s\n", orDash(settings.Phone))
			fmt.Printf("Email: %s\n", orDash(settings.Email))
			return nil
		},
	}
}

func settingsSetCmd(a *App) *cobra.Command {
	var name, pic, owner, address, phone, email string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set property settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			existing, err := a.Settings.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			req := primary.SaveSettingsRequest{
				PropertyName: existing.PropertyName,
				PIC:          existing.PIC,
				OwnerName:    existing.OwnerName,
				Address:      existing.Address,
				Phone:        existing.Phone,
				Email:        existing.Email,
			}
			if cmd.Flags().Changed("name") {
				req.PropertyName = name
			}
			if cmd.Flags().Changed("pic") {
				req.PIC = pic
			}
			if cmd.Flags().Changed("owner") {
				req.OwnerName = owner
			}
			if cmd.Flags().Changed("address") {
				req.Address = address
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = phone
			}
			if cmd.Flags().Changed("email") {
				req.Email = email
			}

			settings, err := a.Settings.SaveSettings(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Printf("✓ Saved settings for %s\n", settings.PropertyName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Property name")
	cmd.Flags().StringVar(&pic, "pic", "", "Property Identification Code")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner name")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")

	return cmd
}
