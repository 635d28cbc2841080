// Reconciliation translates catalog and sales events into inventory
// adjustments. It runs inline within the triggering mutation: one addition
// when a catalog item is created with an initial stock hint, one decrement
// per line item when a sale is recorded. Each adjustment is an independent
// collection rewrite; there is no batching and no rollback across them.
package jsonfile

import (
	"fmt"

	"github.com/mesh-intelligence/till/pkg/types"
)

// seedInitialStock adds the creation-time stock hint, if any, to the
// inventory ledger.
func (s *Store) seedInitialStock(item types.CatalogItem) error {
	if item.InitialStock == nil {
		return nil
	}
	return (&inventory{s: s}).Adjust(item.Name, *item.InitialStock, true)
}

// drawDownForSale decrements inventory for every line item of the sale, in
// order. A failure stops the walk: earlier line items stay decremented,
// later ones are never applied.
func (s *Store) drawDownForSale(sale types.Sale) error {
	inv := &inventory{s: s}
	for _, line := range sale.Items {
		if err := inv.Adjust(line.Name, line.Quantity, false); err != nil {
			return fmt.Errorf("line item %q: %w", line.Name, err)
		}
	}
	return nil
}
