// Package report turns core data into the tabular structures the PDF
// renderer consumes. Rows carry already-formatted currency strings so the
// renderer stays a dumb table printer.
package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// Table is a plain tabular report: a title, a header row, body rows of
// displayable scalars and an optional footer row.
type Table struct {
	Title string
	Head  []string
	Rows  [][]string
	Foot  []string
}

// BillingTable lays out an order the way the billing receipt prints it:
// one row per line with the line amount, and a grand total footer.
func BillingTable(lines []domain.LineItem, total decimal.Decimal) Table {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			line.Name,
			strconv.Itoa(line.Quantity),
			money(line.UnitPrice),
			money(line.Amount()),
		})
	}
	return Table{
		Title: "Billing Report",
		Head:  []string{"Name", "Quantity", "Amount", "Total"},
		Rows:  rows,
		Foot:  []string{"Total", "", "", money(total)},
	}
}

// InventoryTable lists current stock quantities per item.
func InventoryTable(levels []domain.StockLevel) Table {
	rows := make([][]string, 0, len(levels))
	for _, level := range levels {
		rows = append(rows, []string{level.Name, strconv.Itoa(level.Quantity)})
	}
	return Table{
		Title: "Item List",
		Head:  []string{"Item Name", "Quantity"},
		Rows:  rows,
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
