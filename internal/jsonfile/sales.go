package jsonfile

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// salesLedger implements types.Sales over the sales collection file.
type salesLedger struct {
	s *Store
}

func (l *salesLedger) List(date string) ([]types.Sale, error) {
	if !l.s.open {
		return nil, types.ErrStoreClosed
	}
	var all []types.Sale
	if err := l.s.readCollection(salesFile, &all); err != nil {
		return nil, err
	}
	if date == "" {
		return all, nil
	}

	var filtered []types.Sale
	for _, sale := range all {
		if sale.Date == date {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

func (l *salesLedger) Record(sale types.Sale) (types.Sale, error) {
	if !l.s.open {
		return types.Sale{}, types.ErrStoreClosed
	}

	var all []types.Sale
	if err := l.s.readCollection(salesFile, &all); err != nil {
		return types.Sale{}, err
	}

	if sale.ID == 0 {
		sale.ID = l.s.nextID()
	}
	if sale.Timestamp.IsZero() {
		sale.Timestamp = time.Now()
	}
	if sale.Date == "" {
		sale.Date = types.DateOf(sale.Timestamp)
	}

	all = append(all, sale)
	if err := l.s.writeCollection(salesFile, all); err != nil {
		return types.Sale{}, err
	}

	// The sale is persisted at this point; a failed decrement does not
	// undo it, and decrements already applied stay applied.
	if err := l.s.drawDownForSale(sale); err != nil {
		return sale, fmt.Errorf("reconciling inventory: %w", err)
	}
	return sale, nil
}
