// Sale commands for the till CLI.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/till/pkg/types"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and list sales",
}

// Flag values for sale record.
var (
	saleItems []string
	saleTotal string
)

var saleRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a sale and draw down inventory",
	Long: `Record a sale. Each --item takes NAME:QTY:PRICE, where PRICE is the
unit price charged. The total defaults to the sum of the line amounts
but can be overridden with --total, for example to apply a discount.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(saleItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}

		var lines []types.LineItem
		total := decimal.Zero
		for _, raw := range saleItems {
			line, err := parseLineItem(raw)
			if err != nil {
				return err
			}
			lines = append(lines, line)
			total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		if cmd.Flags().Changed("total") {
			override, err := parsePrice(saleTotal)
			if err != nil {
				return err
			}
			total = override
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sale, err := store.Sales().Record(types.Sale{Items: lines, TotalAmount: total})
		if err != nil {
			return err
		}

		return printResult(sale, func() {
			fmt.Printf("recorded sale %d, total %s\n", sale.ID, sale.TotalAmount.StringFixed(2))
		})
	},
}

var saleListDate string

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales, optionally for a single date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sales, err := store.Sales().List(saleListDate)
		if err != nil {
			return err
		}

		return printResult(sales, func() {
			for _, sale := range sales {
				fmt.Printf("%d\t%s\t%s\t%d items\n", sale.ID, sale.Date, sale.TotalAmount.StringFixed(2), len(sale.Items))
			}
		})
	},
}

func init() {
	saleRecordCmd.Flags().StringArrayVar(&saleItems, "item", nil, "line item as NAME:QTY:PRICE (repeatable)")
	saleRecordCmd.Flags().StringVar(&saleTotal, "total", "", "override the sale total")

	saleListCmd.Flags().StringVar(&saleListDate, "date", "", "filter by date (YYYY-MM-DD)")

	saleCmd.AddCommand(saleRecordCmd)
	saleCmd.AddCommand(saleListCmd)
}
