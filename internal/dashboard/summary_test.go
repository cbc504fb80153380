package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifmahmud/sheetboard/internal/dashboard"
	"github.com/arifmahmud/sheetboard/internal/sheets"
)

func TestComputeSummary_EmptyInputs(t *testing.T) {
	summary := dashboard.ComputeSummary(nil, nil, nil, nil)

	assert.Empty(t, summary.PNLMetrics)
	assert.Equal(t, "N/A", summary.LatestUpdate)
	assert.Equal(t, 0, summary.TotalExpense)
	assert.Equal(t, 0, summary.TotalProducts)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Zero(t, summary.TotalSalesValue)
	assert.Zero(t, summary.TotalPurchaseValue)
	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Empty(t, summary.SalesSKUWise)
	assert.Equal(t, map[string]int{"Delivered": 0, "Returned": 0, "Pending": 0}, summary.DispatchStatus)
}

func TestComputeSummary_StockScenario(t *testing.T) {
	stock := []sheets.Record{
		{
			"product_name":   "Water",
			"size":           "1L",
			"sale_stock":     int64(10),
			"sale_price":     int64(20),
			"current_stock":  int64(5),
			"reorder_level":  int64(10),
			"total_purchase": int64(150),
		},
	}

	summary := dashboard.ComputeSummary(nil, stock, nil, nil)

	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, float64(200), summary.TotalSalesValue)
	assert.Equal(t, float64(150), summary.TotalPurchaseValue)
	assert.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.SalesSKUWise, 1)
	assert.Equal(t, dashboard.SKUSale{Product: "Water - 1L", Quantity: 10}, summary.SalesSKUWise[0])
}

func TestComputeSummary_StockDefaultsToZero(t *testing.T) {
	stock := []sheets.Record{
		{},
		{"sale_stock": "not a number", "sale_price": int64(99)},
	}

	summary := dashboard.ComputeSummary(nil, stock, nil, nil)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Zero(t, summary.TotalSalesValue)
	assert.Zero(t, summary.TotalPurchaseValue)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Empty(t, summary.SalesSKUWise)
}

func TestComputeSummary_SalesSKUWiseOrderAndFilter(t *testing.T) {
	stock := []sheets.Record{
		{"product_name": "A", "size": "S", "sale_stock": int64(3)},
		{"product_name": "B", "size": "M", "sale_stock": int64(0)},
		{"sale_stock": int64(7)},
		{"product_name": "C", "size": "L", "sale_stock": int64(1)},
	}

	summary := dashboard.ComputeSummary(nil, stock, nil, nil)

	require.Len(t, summary.SalesSKUWise, 3)
	assert.Equal(t, "A - S", summary.SalesSKUWise[0].Product)
	assert.Equal(t, "Unknown - ", summary.SalesSKUWise[1].Product)
	assert.Equal(t, 7, summary.SalesSKUWise[1].Quantity)
	assert.Equal(t, "C - L", summary.SalesSKUWise[2].Product)
}

func TestComputeSummary_LowStockStrictInequality(t *testing.T) {
	stock := []sheets.Record{
		{"current_stock": int64(10), "reorder_level": int64(10)},
		{"current_stock": int64(9), "reorder_level": int64(10)},
		{"current_stock": int64(11), "reorder_level": int64(10)},
	}

	summary := dashboard.ComputeSummary(nil, stock, nil, nil)

	assert.Equal(t, 1, summary.LowStockCount)
}

func TestComputeSummary_DistinctCustomers(t *testing.T) {
	customers := []sheets.Record{
		{"customer_name": "Alice"},
		{"customer_name": "Bob"},
		{"customer_name": "Alice"},
		{"customer_name": ""},
		{},
	}

	summary := dashboard.ComputeSummary(nil, nil, customers, nil)

	assert.Equal(t, 2, summary.TotalCustomers)
}

func TestComputeSummary_PNLFirstRow(t *testing.T) {
	pnl := []sheets.Record{
		{"Date": "2024-06-01", "Total Expense": int64(4500), "Revenue": int64(9000)},
		{"Date": "2024-05-01", "Total Expense": int64(9999)},
	}

	summary := dashboard.ComputeSummary(pnl, nil, nil, nil)

	assert.Equal(t, "2024-06-01", summary.LatestUpdate)
	assert.Equal(t, 4500, summary.TotalExpense)
	assert.Equal(t, int64(9000), summary.PNLMetrics["Revenue"])
}

func TestComputeSummary_PNLMissingFields(t *testing.T) {
	pnl := []sheets.Record{
		{"Revenue": int64(100)},
	}

	summary := dashboard.ComputeSummary(pnl, nil, nil, nil)

	assert.Equal(t, "N/A", summary.LatestUpdate)
	assert.Equal(t, 0, summary.TotalExpense)
}

func TestComputeSummary_PNLUnparseableExpense(t *testing.T) {
	pnl := []sheets.Record{
		{"Total Expense": "unknown"},
	}

	summary := dashboard.ComputeSummary(pnl, nil, nil, nil)

	assert.Equal(t, 0, summary.TotalExpense)
}

func TestComputeSummary_DispatchGrouping(t *testing.T) {
	dispatch := []sheets.Record{
		{"current_status": "Delivered"},
		{"current_status": "Delivered"},
		{"current_status": "Pending"},
		{},
	}

	summary := dashboard.ComputeSummary(nil, nil, nil, dispatch)

	assert.Equal(t, map[string]int{
		"Delivered": 2,
		"Pending":   1,
		"Unknown":   1,
	}, summary.DispatchStatus)
}

func TestComputeSummary_DispatchEmptyMatchesUnavailable(t *testing.T) {
	unavailable := dashboard.ComputeSummary(nil, nil, nil, nil)
	empty := dashboard.ComputeSummary(nil, nil, nil, []sheets.Record{})

	want := map[string]int{"Delivered": 0, "Returned": 0, "Pending": 0}
	assert.Equal(t, want, unavailable.DispatchStatus)
	assert.Equal(t, want, empty.DispatchStatus)
}

func TestComputeSummary_SalesValueSumsAcrossRows(t *testing.T) {
	stock := []sheets.Record{
		{"sale_stock": int64(2), "sale_price": 10.5},
		{"sale_stock": int64(4), "sale_price": int64(3)},
		{"sale_price": int64(100)},
	}

	summary := dashboard.ComputeSummary(nil, stock, nil, nil)

	assert.InDelta(t, 33.0, summary.TotalSalesValue, 1e-9)
	assert.Equal(t, 3, summary.TotalProducts)
}
