// Package dashboard computes the aggregated metrics shown on the dashboard
// page from raw worksheet rows.
package dashboard

import (
	"fmt"

	"github.com/arifmahmud/sheetboard/internal/sheets"
)

// SKUSale is one product variant's units sold, labelled "<name> - <size>".
type SKUSale struct {
	Product  string
	Quantity int
}

// Summary holds everything the dashboard template renders. It is built fresh
// on every request and never cached or persisted.
type Summary struct {
	PNLMetrics         map[string]any
	TotalProducts      int
	LowStockCount      int
	TotalSalesValue    float64
	TotalPurchaseValue float64
	TotalExpense       int
	TotalCustomers     int
	LatestUpdate       string
	SalesSKUWise       []SKUSale
	DispatchStatus     map[string]int
}

// ComputeSummary aggregates the four worksheets into a Summary. It never
// fails: absent or malformed fields count as zero, and the caller is the one
// responsible for reporting worksheets that could not be fetched at all.
func ComputeSummary(pnlRows, stockRows, customerRows, dispatchRows []sheets.Record) Summary {
	summary := Summary{
		PNLMetrics:   map[string]any{},
		LatestUpdate: "N/A",
	}

	if len(pnlRows) > 0 {
		summary.PNLMetrics = pnlRows[0]
		if _, ok := pnlRows[0]["Date"]; ok {
			summary.LatestUpdate = pnlRows[0].Str("Date", "N/A")
		}
		summary.TotalExpense = pnlRows[0].Int("Total Expense")
	}

	summary.TotalProducts = len(stockRows)
	for _, row := range stockRows {
		saleStock := row.Int("sale_stock")
		summary.TotalSalesValue += float64(saleStock) * row.Float("sale_price")
		summary.TotalPurchaseValue += row.Float("total_purchase")

		if row.Float("current_stock") < row.Float("reorder_level") {
			summary.LowStockCount++
		}

		if saleStock > 0 {
			name := row.Str("product_name", "Unknown")
			size := row.Str("size", "")
			summary.SalesSKUWise = append(summary.SalesSKUWise, SKUSale{
				Product:  fmt.Sprintf("%s - %s", name, size),
				Quantity: saleStock,
			})
		}
	}

	seen := map[string]struct{}{}
	for _, row := range customerRows {
		name := row.Str("customer_name", "")
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}
	summary.TotalCustomers = len(seen)

	summary.DispatchStatus = countDispatchStatus(dispatchRows)

	return summary
}

// countDispatchStatus groups dispatch rows by their current status. An
// unavailable dispatch worksheet and an existing-but-empty one are treated
// alike: both report the standard statuses as zero so the page always has
// something to show.
func countDispatchStatus(rows []sheets.Record) map[string]int {
	if len(rows) == 0 {
		return map[string]int{"Delivered": 0, "Returned": 0, "Pending": 0}
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Str("current_status", "Unknown")]++
	}
	return counts
}
