package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
)

// AnimalCmd returns the animal command
func AnimalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animal",
		Short: "Manage animals",
		Long:  `Register and manage individual animals with their tags and lineage.`,
	}

	cmd.AddCommand(animalAddCmd(a))
	cmd.AddCommand(animalListCmd(a))
	cmd.AddCommand(animalShowCmd(a))
	cmd.AddCommand(animalUpdateCmd(a))
	cmd.AddCommand(animalSearchCmd(a))
	cmd.AddCommand(animalHistoryCmd(a))
	cmd.AddCommand(animalDeleteCmd(a))

	return cmd
}

type animalFlags struct {
	eid, tag, species, breed, sex, dob, status, notes string
	mobID, damID, sireID                              int64
}

func (f *animalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.eid, "eid", "", "Electronic ID (NLIS/RFID tag)")
	cmd.Flags().StringVar(&f.tag, "tag", "", "Visual tag")
	cmd.Flags().StringVar(&f.species, "species", "", "Species (cattle or sheep)")
	cmd.Flags().StringVar(&f.breed, "breed", "", "Breed")
	cmd.Flags().StringVar(&f.sex, "sex", "", "Sex (male, female, steer, wether)")
	cmd.Flags().StringVar(&f.dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "Status (alive, sold, dead, missing)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
	cmd.Flags().Int64Var(&f.mobID, "mob", 0, "Mob ID")
	cmd.Flags().Int64Var(&f.damID, "dam", 0, "Dam (mother) animal ID")
	cmd.Flags().Int64Var(&f.sireID, "sire", 0, "Sire (father) animal ID")
}

func animalAddCmd(a *App) *cobra.Command {
	var flags animalFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new animal",
		Long: `Register a new animal.

Examples:
  stockbook animal add --tag Y42 --species cattle --sex female
  stockbook animal add --eid 982000123456789 --species sheep --sex wether --mob 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dob *time.Time
			if flags.dob != "" {
				d, err := parseDate(flags.dob)
				if err != nil {
					return err
				}
				dob = &d
			}

			status := flags.status
			if status == "" {
				status = models.AnimalStatusAlive
			}

			animal, err := a.Animals.SaveAnimal(context.Background(), primary.SaveAnimalRequest{
				EID:         flags.eid,
				VisualTag:   flags.tag,
				Species:     flags.species,
				Breed:       flags.breed,
				Sex:         flags.sex,
				DateOfBirth: dob,
				Status:      status,
				MobID:       flags.mobID,
				DamID:       flags.damID,
				SireID:      flags.sireID,
				Notes:       flags.notes,
			})
			if err != nil {
				return fmt.Errorf("failed to add animal: %w", err)
			}

			fmt.Printf("✓ Added animal %d: %s\n", animal.ID, animal.DisplayID())
			return nil
		},
	}

	flags.register(cmd)
	cmd.MarkFlagRequired("species")
	cmd.MarkFlagRequired("sex")

	return cmd
}

func printAnimalTable(animals []*models.Animal) {
	w := newTabWriter()
	fmt.Fprintln(w, "ID\tTAG\tEID\tSPECIES\tSEX\tSTATUS\tMOB")
	fmt.Fprintln(w, "--\t---\t---\t-------\t---\t------\t---")
	for _, an := range animals {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			an.ID, orDash(an.VisualTag), orDash(an.EID), an.Species,
			an.Sex, an.Status, fmtNullID(an.MobID))
	}
	w.Flush()
}

func animalListCmd(a *App) *cobra.Command {
	var status string
	var mobID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var animals []*models.Animal
			var err error
			if mobID > 0 {
				animals, err = a.Animals.ListAnimalsByMob(ctx, mobID)
			} else {
				animals, err = a.Animals.ListAnimals(ctx, status)
			}
			if err != nil {
				return fmt.Errorf("failed to list animals: %w", err)
			}

			if len(animals) == 0 {
				fmt.Println("No animals found.")
				return nil
			}
			printAnimalTable(animals)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (alive, sold, dead, missing)")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Filter by mob ID")

	return cmd
}

// resolveAnimal accepts a numeric row id or an EID.
func resolveAnimal(ctx context.Context, a *App, arg string) (*models.Animal, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		animal, err := a.Animals.GetAnimal(ctx, id)
		if err != nil {
			return nil, err
		}
		if animal != nil {
			return animal, nil
		}
	}
	animal, err := a.Animals.GetAnimalByEID(ctx, arg)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, fmt.Errorf("animal %q not found", arg)
	}
	return animal, nil
}

func animalShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [animal-id|eid]",
		Short: "Show animal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			animal, err := resolveAnimal(context.Background(), a, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Animal: %d (%s)\n", animal.ID, animal.DisplayID())
			fmt.Printf("EID: %s\n", orDash(animal.EID))
			fmt.Printf("Visual tag: %s\n", orDash(animal.VisualTag))
			fmt.Printf("Species: %s\n", animal.Species)
			fmt.Printf("Breed: %s\n", orDash(animal.Breed))
			fmt.Printf("Sex: %s\n", animal.Sex)
			fmt.Printf("Born: %s\n", fmtNullDate(animal.DateOfBirth))
			fmt.Printf("Status: %s\n", animal.Status)
			fmt.Printf("Mob: %s\n", fmtNullID(animal.MobID))
			fmt.Printf("Dam: %s  Sire: %s\n", fmtNullID(animal.DamID), fmtNullID(animal.SireID))
			if animal.Notes != "" {
				fmt.Printf("Notes: %s\n", animal.Notes)
			}
			return nil
		},
	}
}

func animalUpdateCmd(a *App) *cobra.Command {
	var flags animalFlags

	cmd := &cobra.Command{
		Use:   "update [animal-id|eid]",
		Short: "Update an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			existing, err := resolveAnimal(ctx, a, args[0])
			if err != nil {
				return err
			}

			req := primary.SaveAnimalRequest{
				ID:        existing.ID,
				EID:       existing.EID,
				VisualTag: existing.VisualTag,
				Species:   existing.Species,
				Breed:     existing.Breed,
				Sex:       existing.Sex,
				Status:    existing.Status,
				MobID:     existing.MobID.Int64,
				DamID:     existing.DamID.Int64,
				SireID:    existing.SireID.Int64,
				Notes:     existing.Notes,
			}
			if existing.DateOfBirth.Valid {
				d := existing.DateOfBirth.Time
				req.DateOfBirth = &d
			}

			if cmd.Flags().Changed("eid") {
				req.EID = flags.eid
			}
			if cmd.Flags().Changed("tag") {
				req.VisualTag = flags.tag
			}
			if cmd.Flags().Changed("species") {
				req.Species = flags.species
			}
			if cmd.Flags().Changed("breed") {
				req.Breed = flags.breed
			}
			if cmd.Flags().Changed("sex") {
				req.Sex = flags.sex
			}
			if cmd.Flags().Changed("dob") {
				d, err := parseDate(flags.dob)
				if err != nil {
					return err
				}
				req.DateOfBirth = &d
			}
			if cmd.Flags().Changed("status") {
				req.Status = flags.status
			}
			if cmd.Flags().Changed("mob") {
				req.MobID = flags.mobID
			}
			if cmd.Flags().Changed("dam") {
				req.DamID = flags.damID
			}
			if cmd.Flags().Changed("sire") {
				req.SireID = flags.sireID
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = flags.notes
			}

			animal, err := a.Animals.SaveAnimal(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to update animal: %w", err)
			}

			fmt.Printf("✓ Updated animal %d: %s\n", animal.ID, animal.DisplayID())
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func animalSearchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search animals by tag or EID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			animals, err := a.Animals.SearchAnimals(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search animals: %w", err)
			}

			if len(animals) == 0 {
				fmt.Printf("No animals match %q.\n", args[0])
				return nil
			}
			printAnimalTable(animals)
			return nil
		},
	}
}

func animalHistoryCmd(a *App) *cobra.Command {
	var eventType string

	cmd := &cobra.Command{
		Use:   "history [animal-id|eid]",
		Short: "Show an animal's event history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			animal, err := resolveAnimal(ctx, a, args[0])
			if err != nil {
				return err
			}

			events, err := a.Events.AnimalHistory(ctx, animal.ID, eventType)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			if len(events) == 0 {
				fmt.Printf("No events recorded for %s.\n", animal.DisplayID())
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tNOTES")
			fmt.Fprintln(w, "--\t----\t----\t-----")
			for _, e := range events {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					e.ID, fmtDate(e.EventDate), e.EventType, orDash(e.Notes))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "Filter by event type")

	return cmd
}

func animalDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [animal-id]",
		Short: "Delete an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid animal id: %w", err)
			}

			if err := a.Animals.DeleteAnimal(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete animal: %w", err)
			}

			fmt.Printf("✓ Deleted animal %d\n", id)
			return nil
		},
	}
}
