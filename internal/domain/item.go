package domain

import "github.com/shopspring/decimal"

// Item is a sellable recipe. The name is the identity; items are created
// implicitly the first time they are read from the reference data store.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Available int
}

// StockLevel is one row of the inventory view.
type StockLevel struct {
	Name     string
	Quantity int
}
