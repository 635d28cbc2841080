package jsonfile

import (
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// inventory implements types.Inventory over the inventory collection file.
type inventory struct {
	s *Store
}

func (i *inventory) List() ([]types.InventoryRecord, error) {
	if !i.s.open {
		return nil, types.ErrStoreClosed
	}
	var records []types.InventoryRecord
	if err := i.s.readCollection(inventoryFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Adjust applies a single stock delta. Additions create the record when
// the name is untracked; decrements clamp at zero and are a no-op for an
// untracked name. The collection is rewritten either way.
func (i *inventory) Adjust(name string, delta int, addition bool) error {
	if !i.s.open {
		return types.ErrStoreClosed
	}

	var records []types.InventoryRecord
	if err := i.s.readCollection(inventoryFile, &records); err != nil {
		return err
	}

	now := time.Now()
	found := false
	for idx := range records {
		if records[idx].Name != name {
			continue
		}
		if addition {
			records[idx].Quantity += delta
		} else {
			quantity := records[idx].Quantity - delta
			if quantity < 0 {
				// Excess decrement is absorbed, not reported.
				quantity = 0
			}
			records[idx].Quantity = quantity
		}
		records[idx].UpdatedAt = now
		found = true
		break
	}

	if !found && addition {
		records = append(records, types.InventoryRecord{
			Name:      name,
			Quantity:  delta,
			UpdatedAt: now,
		})
	}

	return i.s.writeCollection(inventoryFile, records)
}
