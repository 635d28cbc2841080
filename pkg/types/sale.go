package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day encoding used by Sale.Date and the daily
// summary. The day is stored alongside the full timestamp so date filters
// are a plain string equality.
const DateLayout = "2006-01-02"

// DateOf returns t's calendar day in DateLayout.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// LineItem is one position of a sale: a name, a quantity, and the unit
// price charged at the time of sale.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Sale is an immutable record of a completed transaction. TotalAmount is
// supplied by the caller and stored at face value; the ledger does not
// recompute it from the line items.
type Sale struct {
	ID          int64           `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Date        string          `json:"date"`
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
