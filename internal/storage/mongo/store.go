// Package mongo implements the reference-data and bill stores on a hosted
// document database, one collection per concern.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

const (
	colRecipes    = "recipes"
	colPrices     = "price"
	colQuantities = "quantity"
	colBills      = "bills"
)

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) ListRecipes(ctx context.Context) ([]string, error) {
	cursor, err := s.db.Collection(colRecipes).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	var docs []recipeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}
	return names, nil
}

func (s *Store) CreateRecipe(ctx context.Context, name string) error {
	_, err := s.db.Collection(colRecipes).UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$setOnInsert": bson.M{"_id": name}},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (s *Store) GetPrice(ctx context.Context, name string) (decimal.Decimal, error) {
	var doc priceDoc
	err := s.db.Collection(colPrices).FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return decimal.Decimal{}, domain.ErrPriceNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("get price: %w", err)
	}

	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", doc.Price, err)
	}
	return price, nil
}

func (s *Store) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	_, err := s.db.Collection(colPrices).UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"price": price.String()}},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set price: %w", err)
	}
	return nil
}

func (s *Store) GetQuantity(ctx context.Context, name string) (int, error) {
	var doc quantityDoc
	err := s.db.Collection(colQuantities).FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("get quantity: %w", err)
	}
	return doc.Quantity, nil
}

func (s *Store) SetQuantity(ctx context.Context, name string, quantity int) error {
	_, err := s.db.Collection(colQuantities).UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"quantity": quantity}},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}

func (s *Store) ListQuantities(ctx context.Context) ([]domain.StockLevel, error) {
	cursor, err := s.db.Collection(colQuantities).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list quantities: %w", err)
	}

	var docs []quantityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode quantities: %w", err)
	}

	levels := make([]domain.StockLevel, 0, len(docs))
	for _, doc := range docs {
		levels = append(levels, domain.StockLevel{Name: doc.Name, Quantity: doc.Quantity})
	}
	return levels, nil
}

func (s *Store) AppendBill(ctx context.Context, bill domain.Bill) error {
	if _, err := s.db.Collection(colBills).InsertOne(ctx, toBillDoc(bill)); err != nil {
		return fmt.Errorf("append bill: %w", err)
	}
	return nil
}

func (s *Store) GetBill(ctx context.Context, id string) (domain.Bill, error) {
	var doc billDoc
	err := s.db.Collection(colBills).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Bill{}, domain.ErrBillNotFound
		}
		return domain.Bill{}, fmt.Errorf("get bill: %w", err)
	}
	return fromBillDoc(doc)
}

func (s *Store) ListBills(ctx context.Context) ([]domain.Bill, error) {
	cursor, err := s.db.Collection(colBills).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	var docs []billDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bills: %w", err)
	}

	bills := make([]domain.Bill, 0, len(docs))
	for _, doc := range docs {
		bill, err := fromBillDoc(doc)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}
