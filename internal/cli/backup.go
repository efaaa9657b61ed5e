package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// BackupCmd returns the backup command
func BackupCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up and restore the store",
	}

	cmd.AddCommand(backupCreateCmd(a))
	cmd.AddCommand(backupRestoreCmd(a))

	return cmd
}

func backupCreateCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Back up the store file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := out
			if dest == "" {
				if err := a.EnsureDirs(); err != nil {
					return err
				}
				stamp := time.Now().Format("20060102-150405")
				dest = filepath.Join(a.Config.BackupsDir, fmt.Sprintf("stockbook-%s.db", stamp))
			}

			if err := a.Store.Backup(dest); err != nil {
				return err
			}

			fmt.Printf("✓ Backed up store to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Destination file (default: timestamped file in the backups dir)")

	return cmd
}

func backupRestoreCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [backup-file]",
		Short: "Replace the store with a backup",
		Long: `Replace the live store with the given backup file.

The backup is copied next to the live store and swapped in atomically;
a failed copy leaves the current store untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Store.Restore(args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Restored store from %s\n", args[0])
			return nil
		},
	}
}
