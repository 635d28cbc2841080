package jsonfile

import (
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// summaries implements types.Summaries by scanning the sales ledger. There
// is no cache and no incremental maintenance: every call pays a full scan.
type summaries struct {
	s *Store
}

func (m *summaries) Daily(date string) (types.DailySummary, error) {
	if !m.s.open {
		return types.DailySummary{}, types.ErrStoreClosed
	}
	if date == "" {
		date = types.DateOf(time.Now())
	}

	sales, err := (&salesLedger{s: m.s}).List(date)
	if err != nil {
		return types.DailySummary{}, err
	}

	summary := types.DailySummary{
		Date:         date,
		ItemsSold:    make(map[string]int),
		Transactions: len(sales),
	}
	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
		for _, line := range sale.Items {
			summary.ItemsSold[line.Name] += line.Quantity
		}
	}
	return summary, nil
}
