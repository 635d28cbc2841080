// Backup commands for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, restore, and list backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Back up the collection files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stamp, err := store.Backups().Create()
		if err != nil {
			return err
		}

		fmt.Println("created backup", stamp)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore TIMESTAMP",
	Short: "Restore the collection files from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Backups().Restore(args[0]); err != nil {
			return err
		}

		fmt.Println("restored backup", args[0])
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stamps, err := store.Backups().List()
		if err != nil {
			return err
		}

		return printResult(stamps, func() {
			for _, stamp := range stamps {
				fmt.Println(stamp)
			}
		})
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupListCmd)
}
