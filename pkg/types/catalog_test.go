package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalogPatchApply(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	stock := 5
	base := CatalogItem{
		ID:           1001,
		Name:         "Latte",
		Category:     "Drinks",
		Price:        decimal.NewFromFloat(4.50),
		Description:  "with oat milk",
		Shortcut:     "L",
		InitialStock: &stock,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		item := base
		CatalogPatch{}.Apply(&item)
		assert.Equal(t, base, item)
	})

	t.Run("single field", func(t *testing.T) {
		item := base
		price := decimal.NewFromFloat(5.00)
		CatalogPatch{Price: &price}.Apply(&item)

		assert.True(t, item.Price.Equal(price))
		assert.Equal(t, base.Name, item.Name)
		assert.Equal(t, base.Category, item.Category)
	})

	t.Run("zero values are applied", func(t *testing.T) {
		item := base
		empty := ""
		CatalogPatch{Description: &empty, Shortcut: &empty}.Apply(&item)

		assert.Empty(t, item.Description)
		assert.Empty(t, item.Shortcut)
	})

	t.Run("identity fields untouched", func(t *testing.T) {
		item := base
		name := "Mocha"
		CatalogPatch{Name: &name}.Apply(&item)

		assert.Equal(t, base.ID, item.ID)
		assert.Equal(t, base.CreatedAt, item.CreatedAt)
		assert.Equal(t, base.InitialStock, item.InitialStock)
	})
}
