package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockbook/internal/ports/primary"
)

// TaskCmd returns the task command
func TaskCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage reminder tasks",
	}

	cmd.AddCommand(taskAddCmd(a))
	cmd.AddCommand(taskListCmd(a))
	cmd.AddCommand(taskDoneCmd(a))
	cmd.AddCommand(taskDeleteCmd(a))

	return cmd
}

func taskAddCmd(a *App) *cobra.Command {
	var due, description string
	var animalID, mobID int64

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long: `Add a task. Tasks without a due date sort after every dated task.

Examples:
  stockbook task add "Book shearer" --due 2024-09-15
  stockbook task add "Check water trough" `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.SaveTaskRequest{
				Title:       args[0],
				Description: description,
				AnimalID:    animalID,
				MobID:       mobID,
			}
			if due != "" {
				d, err := parseDate(due)
				if err != nil {
					return err
				}
				req.DueDate = &d
			}

			task, err := a.Tasks.SaveTask(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}

			fmt.Printf("✓ Added task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Int64Var(&animalID, "animal", 0, "Related animal ID")
	cmd.Flags().Int64Var(&mobID, "mob", 0, "Related mob ID")

	return cmd
}

func taskListCmd(a *App) *cobra.Command {
	var daysAhead int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("days") {
				daysAhead = a.Config.PendingTaskDays
			}

			tasks, err := a.Tasks.PendingTasks(context.Background(), daysAhead)
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No pending tasks.")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tDUE\tTITLE\tANIMAL\tMOB")
			fmt.Fprintln(w, "--\t---\t-----\t------\t---")
			for _, t := range tasks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					t.ID, fmtNullDate(t.DueDate), t.Title,
					fmtNullID(t.AnimalID), fmtNullID(t.MobID))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&daysAhead, "days", 0, "Look-ahead window in days (default from config)")

	return cmd
}

func taskDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done [task-id]",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}

			if err := a.Tasks.CompleteTask(context.Background(), id); err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}

			fmt.Printf("✓ Completed task %d\n", id)
			return nil
		},
	}
}

func taskDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}

			if err := a.Tasks.DeleteTask(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Printf("✓ Deleted task %d\n", id)
			return nil
		},
	}
}
