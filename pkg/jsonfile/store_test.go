// End-to-end exercise of the public store interface.
package jsonfile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/till/pkg/jsonfile"
	"github.com/mesh-intelligence/till/pkg/types"
)

func TestStoreRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	store := jsonfile.NewStore()
	require.NoError(t, store.Open(types.Config{DataDir: dataDir}))

	// Stock an item, sell some of it, and check the day's numbers.
	stock := 10
	item, err := store.Catalog().Add(types.CatalogItem{
		Name:         "Latte",
		Category:     "Drinks",
		Price:        decimal.NewFromFloat(4.50),
		InitialStock: &stock,
	})
	require.NoError(t, err)

	sale, err := store.Sales().Record(types.Sale{
		Items:       []types.LineItem{{Name: "Latte", Quantity: 3, Price: decimal.NewFromFloat(4.50)}},
		TotalAmount: decimal.NewFromFloat(13.50),
	})
	require.NoError(t, err)

	summary, err := store.Summaries().Daily(sale.Date)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Transactions)
	require.True(t, summary.TotalRevenue.Equal(decimal.NewFromFloat(13.50)))
	require.Equal(t, 3, summary.ItemsSold["Latte"])

	require.NoError(t, store.Close())

	// A second store on the same directory sees everything.
	reopened := jsonfile.NewStore()
	require.NoError(t, reopened.Open(types.Config{DataDir: dataDir}))
	defer reopened.Close()

	items, err := reopened.Catalog().List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, item.ID, items[0].ID)
	require.True(t, items[0].Price.Equal(item.Price))

	records, err := reopened.Inventory().List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 7, records[0].Quantity)

	sales, err := reopened.Sales().List("")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, sale.ID, sales[0].ID)
}
