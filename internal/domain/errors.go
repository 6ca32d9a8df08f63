package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrPriceNotFound     = errors.New("price not found")
	ErrEmptyOrder        = errors.New("order is empty")
	ErrBillNotFound      = errors.New("bill not found")
	ErrNameRequired      = errors.New("item name required")
	ErrInvalidPrice      = errors.New("invalid price")
)

// InsufficientStockError reports a rejected reservation together with the
// quantity still available, so callers can show it to the cashier.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
