// Package memory provides an in-process store used as the default driver in
// development and as the storage double in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// Store keeps reference data and bills in mutex-guarded maps.
type Store struct {
	mu         sync.RWMutex
	recipes    map[string]struct{}
	prices     map[string]decimal.Decimal
	quantities map[string]int
	bills      []domain.Bill
}

func New() *Store {
	return &Store{
		recipes:    make(map[string]struct{}),
		prices:     make(map[string]decimal.Decimal),
		quantities: make(map[string]int),
	}
}

func (s *Store) ListRecipes(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.recipes))
	for name := range s.recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) CreateRecipe(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[name] = struct{}{}
	return nil
}

func (s *Store) GetPrice(_ context.Context, name string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.prices[name]
	if !ok {
		return decimal.Decimal{}, domain.ErrPriceNotFound
	}
	return price, nil
}

func (s *Store) SetPrice(_ context.Context, name string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[name] = price
	return nil
}

func (s *Store) GetQuantity(_ context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	qty, ok := s.quantities[name]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	return qty, nil
}

func (s *Store) SetQuantity(_ context.Context, name string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities[name] = quantity
	return nil
}

func (s *Store) ListQuantities(_ context.Context) ([]domain.StockLevel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels := make([]domain.StockLevel, 0, len(s.quantities))
	for name, qty := range s.quantities {
		levels = append(levels, domain.StockLevel{Name: name, Quantity: qty})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

func (s *Store) AppendBill(_ context.Context, bill domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill.Lines = append([]domain.LineItem{}, bill.Lines...)
	s.bills = append(s.bills, bill)
	return nil
}

func (s *Store) GetBill(_ context.Context, id string) (domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bill := range s.bills {
		if bill.ID == id {
			bill.Lines = append([]domain.LineItem{}, bill.Lines...)
			return bill, nil
		}
	}
	return domain.Bill{}, domain.ErrBillNotFound
}

func (s *Store) ListBills(_ context.Context) ([]domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]domain.Bill, len(s.bills))
	copy(bills, s.bills)
	return bills, nil
}
