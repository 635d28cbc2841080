// Catalog commands for the till CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/till/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog",
}

// Flag values for catalog add.
var (
	addName         string
	addCategory     string
	addPrice        string
	addDescription  string
	addShortcut     string
	addInitialStock int
)

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := parsePrice(addPrice)
		if err != nil {
			return err
		}

		item := types.CatalogItem{
			Name:        addName,
			Category:    addCategory,
			Price:       price,
			Description: addDescription,
			Shortcut:    addShortcut,
		}
		if cmd.Flags().Changed("initial-stock") {
			stock := addInitialStock
			item.InitialStock = &stock
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		created, err := store.Catalog().Add(item)
		if err != nil {
			return err
		}

		return printResult(created, func() {
			fmt.Printf("added %q (id %d)\n", created.Name, created.ID)
		})
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.Catalog().List()
		if err != nil {
			return err
		}

		return printResult(items, func() {
			for _, item := range items {
				fmt.Printf("%d\t%s\t%s\t%s\n", item.ID, item.Name, item.Category, item.Price.StringFixed(2))
			}
		})
	},
}

// Flag values for catalog update.
var (
	updateName        string
	updateCategory    string
	updatePrice       string
	updateDescription string
	updateShortcut    string
)

var catalogUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update fields of a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		var patch types.CatalogPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &updateCategory
		}
		if cmd.Flags().Changed("price") {
			price, err := parsePrice(updatePrice)
			if err != nil {
				return err
			}
			patch.Price = &price
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescription
		}
		if cmd.Flags().Changed("shortcut") {
			patch.Shortcut = &updateShortcut
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		updated, err := store.Catalog().Update(id, patch)
		if err != nil {
			return err
		}

		return printResult(updated, func() {
			fmt.Printf("updated %q (id %d)\n", updated.Name, updated.ID)
		})
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Catalog().Delete(id); err != nil {
			return err
		}

		fmt.Println("deleted item", id)
		return nil
	},
}

func init() {
	catalogAddCmd.Flags().StringVar(&addName, "name", "", "item name (required)")
	catalogAddCmd.Flags().StringVar(&addCategory, "category", "", "item category")
	catalogAddCmd.Flags().StringVar(&addPrice, "price", "0", "unit price")
	catalogAddCmd.Flags().StringVar(&addDescription, "description", "", "item description")
	catalogAddCmd.Flags().StringVar(&addShortcut, "shortcut", "", "keyboard shortcut")
	catalogAddCmd.Flags().IntVar(&addInitialStock, "initial-stock", 0, "seed the inventory with this quantity")
	catalogAddCmd.MarkFlagRequired("name")

	catalogUpdateCmd.Flags().StringVar(&updateName, "name", "", "new item name")
	catalogUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	catalogUpdateCmd.Flags().StringVar(&updatePrice, "price", "", "new unit price")
	catalogUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	catalogUpdateCmd.Flags().StringVar(&updateShortcut, "shortcut", "", "new keyboard shortcut")

	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogUpdateCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
}
