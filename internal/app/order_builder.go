package app

import (
	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// OrderBuilder accumulates line items for the transaction in progress. It is
// a pure accumulator: callers validate input and reserve stock before adding
// a line. Not safe for concurrent use; the billing workflow serializes access.
type OrderBuilder struct {
	lines []domain.LineItem
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{}
}

// AddLine appends a snapshot line to the current order.
func (b *OrderBuilder) AddLine(name string, quantity int, unitPrice decimal.Decimal) domain.LineItem {
	line := domain.LineItem{Name: name, Quantity: quantity, UnitPrice: unitPrice}
	b.lines = append(b.lines, line)
	return line
}

// Total recomputes the order total from the current lines on every call, so
// it is always consistent with the line sequence.
func (b *OrderBuilder) Total() decimal.Decimal {
	total := decimal.Decimal{}
	for _, line := range b.lines {
		total = total.Add(line.Amount())
	}
	return total
}

// Lines returns a copy of the current lines in insertion order.
func (b *OrderBuilder) Lines() []domain.LineItem {
	out := make([]domain.LineItem, len(b.lines))
	copy(out, b.lines)
	return out
}

// Clear empties the order after a successful finalize.
func (b *OrderBuilder) Clear() {
	b.lines = nil
}
