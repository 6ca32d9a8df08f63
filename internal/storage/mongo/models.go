package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// Document shapes mirror the hosted collections: recipes, price, quantity
// and bills, keyed by item name. Monetary values are stored as strings to
// keep decimal exactness.

type recipeDoc struct {
	Name string `bson:"_id"`
}

type priceDoc struct {
	Name  string `bson:"_id"`
	Price string `bson:"price"`
}

type quantityDoc struct {
	Name     string `bson:"_id"`
	Quantity int    `bson:"quantity"`
}

type billLineDoc struct {
	Name     string `bson:"name"`
	Quantity int    `bson:"quantity"`
	Amount   string `bson:"amount"`
}

type billDoc struct {
	ID        string        `bson:"_id"`
	Orders    []billLineDoc `bson:"orders"`
	Total     string        `bson:"total"`
	Timestamp time.Time     `bson:"timestamp"`
}

func toBillDoc(bill domain.Bill) billDoc {
	lines := make([]billLineDoc, 0, len(bill.Lines))
	for _, line := range bill.Lines {
		lines = append(lines, billLineDoc{
			Name:     line.Name,
			Quantity: line.Quantity,
			Amount:   line.UnitPrice.String(),
		})
	}
	return billDoc{
		ID:        bill.ID,
		Orders:    lines,
		Total:     bill.Total.String(),
		Timestamp: bill.CreatedAt,
	}
}

func fromBillDoc(doc billDoc) (domain.Bill, error) {
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("parse total %q: %w", doc.Total, err)
	}

	lines := make([]domain.LineItem, 0, len(doc.Orders))
	for _, l := range doc.Orders {
		price, err := decimal.NewFromString(l.Amount)
		if err != nil {
			return domain.Bill{}, fmt.Errorf("parse amount %q: %w", l.Amount, err)
		}
		lines = append(lines, domain.LineItem{Name: l.Name, Quantity: l.Quantity, UnitPrice: price})
	}

	return domain.Bill{
		ID:        doc.ID,
		Lines:     lines,
		Total:     total,
		CreatedAt: doc.Timestamp,
	}, nil
}
