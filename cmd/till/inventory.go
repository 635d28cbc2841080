// Inventory commands for the till CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect and adjust stock levels",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stock records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Inventory().List()
		if err != nil {
			return err
		}

		return printResult(records, func() {
			for _, record := range records {
				fmt.Printf("%s\t%d\n", record.Name, record.Quantity)
			}
		})
	},
}

var adjustRemove bool

var inventoryAdjustCmd = &cobra.Command{
	Use:   "adjust NAME QUANTITY",
	Short: "Add stock for an item, or remove it with --remove",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		quantity, err := parseQuantity(args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Inventory().Adjust(name, quantity, !adjustRemove); err != nil {
			return err
		}

		verb := "added"
		if adjustRemove {
			verb = "removed"
		}
		fmt.Printf("%s %d of %q\n", verb, quantity, name)
		return nil
	},
}

func parseQuantity(input string) (int, error) {
	quantity, err := strconv.Atoi(input)
	if err != nil || quantity <= 0 {
		return 0, fmt.Errorf("invalid quantity %q (expected a positive integer)", input)
	}
	return quantity, nil
}

func init() {
	inventoryAdjustCmd.Flags().BoolVar(&adjustRemove, "remove", false, "remove stock instead of adding")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryAdjustCmd)
}
