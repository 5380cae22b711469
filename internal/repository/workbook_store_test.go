package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"StockPulse/pkg/logger"
)

func storeLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func writeFixtureWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Sales"))
	sales := [][]interface{}{
		{"date", "product_id", "quantity"},
		{"2024-01-02", "sku-1", 12},
		{"2024-01-01", "sku-1", 10}, // out of order on purpose
		{"2024-01-01", "sku-2", 5},
		{"2024-01-03", "sku-1", 14},
		{"not-a-date", "sku-1", 99}, // skipped
	}
	for i, row := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sales", cell, &row))
	}

	_, err := f.NewSheet("Inventory")
	require.NoError(t, err)
	inventory := [][]interface{}{
		{"product_id", "stock_level", "min_stock_level", "max_stock_level", "price"},
		{"sku-1", 5, 10, 100, 19.99},
		{"sku-2", 90, 10, 100, 40},
		{"sku-3", 30, 0, 0, 0}, // no price: skipped
	}
	for i, row := range inventory {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Inventory", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWorkbookStoreParsesSalesAndInventory(t *testing.T) {
	store := NewWorkbookStore(writeFixtureWorkbook(t), storeLogger(t))
	ctx := context.Background()

	products, err := store.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sku-1", "sku-2"}, products)

	series, err := store.DemandSeries(ctx, "sku-1")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 14}, series) // chronological

	series, err = store.DemandSeries(ctx, "sku-2")
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, series)

	snapshots, err := store.Snapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "sku-1", snapshots[0].ID)
	assert.Equal(t, 5, snapshots[0].StockLevel)
	assert.InDelta(t, 19.99, snapshots[0].Price, 1e-9)
}

func TestWorkbookStoreUnknownProduct(t *testing.T) {
	store := NewWorkbookStore(writeFixtureWorkbook(t), storeLogger(t))

	series, err := store.DemandSeries(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestWorkbookStoreCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	csv := "date,product_id,quantity\n" +
		"2024-01-01,sku-9,3\n" +
		"2024-01-02,sku-9,6\n" +
		"2024-01-01,sku-8,1\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	store := NewWorkbookStore(path, storeLogger(t))
	ctx := context.Background()

	products, err := store.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sku-9", "sku-8"}, products)

	series, err := store.DemandSeries(ctx, "sku-9")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, series)

	snapshots, err := store.Snapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestWorkbookStoreUnsupportedFormat(t *testing.T) {
	store := NewWorkbookStore("sales.txt", storeLogger(t))
	_, err := store.Products(context.Background())
	assert.Error(t, err)
}

func TestWorkbookStoreMissingFile(t *testing.T) {
	store := NewWorkbookStore(filepath.Join(t.TempDir(), "nope.xlsx"), storeLogger(t))
	_, err := store.Products(context.Background())
	assert.Error(t, err)
}
