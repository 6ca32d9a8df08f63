package domain

import "github.com/shopspring/decimal"

// LineItem is a snapshot taken when a line is added to the order. The unit
// price is copied at add-time and does not track later price changes.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Amount is quantity times unit price for this line.
func (l LineItem) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
