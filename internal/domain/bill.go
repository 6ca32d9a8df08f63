package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a finalized transaction. Written once to the bill store and never
// mutated afterwards.
type Bill struct {
	ID        string
	Lines     []LineItem
	Total     decimal.Decimal
	CreatedAt time.Time
}
