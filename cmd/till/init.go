// Init command for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory and collection files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Println("initialized data directory:", dataDir)
		return nil
	},
}
