package types

import "time"

// InventoryRecord tracks the stock quantity for a name. The name joins to
// CatalogItem.Name by convention only; no referential integrity is
// enforced, so a record can outlive (or predate) its catalog entry.
// Quantity is never negative: decrements clamp at zero.
type InventoryRecord struct {
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"last_updated"`
}
