package jsonfile

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// catalog implements types.Catalog over the catalog collection file.
type catalog struct {
	s *Store
}

func (c *catalog) List() ([]types.CatalogItem, error) {
	if !c.s.open {
		return nil, types.ErrStoreClosed
	}
	var items []types.CatalogItem
	if err := c.s.readCollection(catalogFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *catalog) Add(item types.CatalogItem) (types.CatalogItem, error) {
	if !c.s.open {
		return types.CatalogItem{}, types.ErrStoreClosed
	}
	if item.Name == "" {
		return types.CatalogItem{}, types.ErrInvalidName
	}

	var items []types.CatalogItem
	if err := c.s.readCollection(catalogFile, &items); err != nil {
		return types.CatalogItem{}, err
	}
	for _, existing := range items {
		if existing.Name == item.Name {
			return types.CatalogItem{}, types.ErrDuplicateName
		}
	}

	now := time.Now()
	item.ID = c.s.nextID()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Category == "" {
		item.Category = types.DefaultCategory
	}

	items = append(items, item)
	if err := c.s.writeCollection(catalogFile, items); err != nil {
		return types.CatalogItem{}, err
	}

	// The item is persisted at this point; a failed seed does not undo it.
	if err := c.s.seedInitialStock(item); err != nil {
		return item, fmt.Errorf("seeding stock for %q: %w", item.Name, err)
	}
	return item, nil
}

func (c *catalog) Update(id int64, patch types.CatalogPatch) (types.CatalogItem, error) {
	if !c.s.open {
		return types.CatalogItem{}, types.ErrStoreClosed
	}

	var items []types.CatalogItem
	if err := c.s.readCollection(catalogFile, &items); err != nil {
		return types.CatalogItem{}, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		items[i].UpdatedAt = time.Now()
		if err := c.s.writeCollection(catalogFile, items); err != nil {
			return types.CatalogItem{}, err
		}
		return items[i], nil
	}
	return types.CatalogItem{}, types.ErrNotFound
}

func (c *catalog) Delete(id int64) error {
	if !c.s.open {
		return types.ErrStoreClosed
	}

	var items []types.CatalogItem
	if err := c.s.readCollection(catalogFile, &items); err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		return c.s.writeCollection(catalogFile, items)
	}
	return types.ErrNotFound
}
