package types

import "github.com/shopspring/decimal"

// DailySummary aggregates one calendar day of the sales ledger. It is
// derived on demand and never persisted. ItemsSold maps item names to the
// total quantity sold that day, across all line items.
type DailySummary struct {
	Date         string          `json:"date"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ItemsSold    map[string]int  `json:"items_sold"`
	Transactions int             `json:"total_transactions"`
}
