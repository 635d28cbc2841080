package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is applied when a catalog item is added without one.
const DefaultCategory = "Uncategorized"

// CatalogItem is a sellable product definition. The identifier is assigned
// at creation and never reused; the name is unique across the catalog.
// InitialStock is a creation-time hint only: when present, Catalog.Add
// seeds the inventory ledger with that quantity. It is stored as supplied
// and ignored afterwards.
type CatalogItem struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description,omitempty"`
	Shortcut     string          `json:"shortcut,omitempty"`
	InitialStock *int            `json:"initial_stock,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CatalogPatch describes a partial update to a catalog item. Nil fields
// leave the current value in place.
type CatalogPatch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Description *string
	Shortcut    *string
}

// Apply merges the patch into item. Identifier, timestamps, and the
// initial-stock hint are never touched by a patch.
func (p CatalogPatch) Apply(item *CatalogItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Shortcut != nil {
		item.Shortcut = *p.Shortcut
	}
}
