// Tests for daily aggregation.
package jsonfile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/till/pkg/types"
)

func TestSummaries_Daily(t *testing.T) {
	s := newOpenStore(t)

	_, err := s.Sales().Record(types.Sale{
		Date: "2026-08-30",
		Items: []types.LineItem{
			{Name: "Latte", Quantity: 1, Price: decimal.NewFromFloat(4.50)},
		},
		TotalAmount: decimal.NewFromFloat(4.50),
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	_, err = s.Sales().Record(types.Sale{
		Date: "2026-08-30",
		Items: []types.LineItem{
			{Name: "Latte", Quantity: 1, Price: decimal.NewFromFloat(1.50)},
			{Name: "Muffin", Quantity: 2, Price: decimal.NewFromFloat(0.75)},
		},
		TotalAmount: decimal.NewFromFloat(3.00),
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// A sale on another date stays out of the summary.
	_, err = s.Sales().Record(types.Sale{
		Date:        "2026-08-29",
		Items:       []types.LineItem{{Name: "Latte", Quantity: 5, Price: decimal.NewFromFloat(4.50)}},
		TotalAmount: decimal.NewFromFloat(22.50),
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	summary, err := s.Summaries().Daily("2026-08-30")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}

	if summary.Date != "2026-08-30" {
		t.Errorf("date = %q, want 2026-08-30", summary.Date)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromFloat(7.50)) {
		t.Errorf("revenue = %s, want 7.5", summary.TotalRevenue)
	}
	if summary.Transactions != 2 {
		t.Errorf("transactions = %d, want 2", summary.Transactions)
	}
	if summary.ItemsSold["Latte"] != 2 || summary.ItemsSold["Muffin"] != 2 {
		t.Errorf("items sold = %v, want Latte:2 Muffin:2", summary.ItemsSold)
	}
}

func TestSummaries_DailyEmptyDay(t *testing.T) {
	s := newOpenStore(t)

	summary, err := s.Summaries().Daily("2026-08-30")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if !summary.TotalRevenue.IsZero() {
		t.Errorf("revenue = %s, want 0", summary.TotalRevenue)
	}
	if summary.Transactions != 0 {
		t.Errorf("transactions = %d, want 0", summary.Transactions)
	}
	if len(summary.ItemsSold) != 0 {
		t.Errorf("items sold = %v, want empty", summary.ItemsSold)
	}
}

func TestSummaries_DailyDefaultsToToday(t *testing.T) {
	s := newOpenStore(t)

	_, err := s.Sales().Record(types.Sale{
		Items:       []types.LineItem{{Name: "Latte", Quantity: 1, Price: decimal.NewFromFloat(4.50)}},
		TotalAmount: decimal.NewFromFloat(4.50),
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	summary, err := s.Summaries().Daily("")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if summary.Date != types.DateOf(time.Now()) {
		t.Errorf("date = %q, want today", summary.Date)
	}
	if summary.Transactions != 1 {
		t.Errorf("transactions = %d, want 1", summary.Transactions)
	}
}
