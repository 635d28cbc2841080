// Summary command for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the daily sales summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		summary, err := store.Summaries().Daily(summaryDate)
		if err != nil {
			return err
		}

		return printResult(summary, func() {
			fmt.Printf("date: %s\n", summary.Date)
			fmt.Printf("revenue: %s\n", summary.TotalRevenue.StringFixed(2))
			fmt.Printf("transactions: %d\n", summary.Transactions)
			for name, quantity := range summary.ItemsSold {
				fmt.Printf("  %s: %d\n", name, quantity)
			}
		})
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "date to summarize (YYYY-MM-DD, default today)")
}
