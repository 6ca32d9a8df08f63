package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// StockRepository is the reference-data surface the ledger needs: recipe
// names, unit prices and per-item stock counters.
type StockRepository interface {
	ListRecipes(ctx context.Context) ([]string, error)
	GetPrice(ctx context.Context, name string) (decimal.Decimal, error)
	GetQuantity(ctx context.Context, name string) (int, error)
	SetQuantity(ctx context.Context, name string, quantity int) error
}

// StockCache is an optional admission-control fast path shared across
// processes. Reserve must decrement atomically and report false when the
// cached stock is insufficient.
type StockCache interface {
	Reserve(ctx context.Context, name string, quantity int) (bool, error)
	Prime(ctx context.Context, name string, quantity int) error
}

// defaultQuantity seeds the stock counter the first time an item is seen
// without a stock record.
const defaultQuantity = 7

// StockLedger maintains per-item available quantity and resolves unit prices.
type StockLedger struct {
	repo   StockRepository
	cache  StockCache
	logger *log.Logger
}

func NewStockLedger(repo StockRepository, opts ...StockLedgerOption) *StockLedger {
	l := &StockLedger{
		repo:   repo,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type StockLedgerOption func(*StockLedger)

// WithStockCache fronts reservations with an atomic shared counter.
func WithStockCache(cache StockCache) StockLedgerOption {
	return func(l *StockLedger) {
		if cache != nil {
			l.cache = cache
		}
	}
}

func WithLedgerLogger(logger *log.Logger) StockLedgerOption {
	return func(l *StockLedger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Available returns the current stock for name. A missing stock record is
// initialized to the default quantity and persisted before returning.
func (l *StockLedger) Available(ctx context.Context, name string) (int, error) {
	qty, err := l.repo.GetQuantity(ctx, name)
	if err == nil {
		return qty, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return 0, fmt.Errorf("get quantity: %w", err)
	}

	if err := l.repo.SetQuantity(ctx, name, defaultQuantity); err != nil {
		return 0, fmt.Errorf("seed quantity: %w", err)
	}
	if l.cache != nil {
		if err := l.cache.Prime(ctx, name, defaultQuantity); err != nil {
			l.logger.Printf("WARN: prime stock cache for %s: %v", name, err)
		}
	}
	return defaultQuantity, nil
}

// Reserve decrements available stock by quantity and persists the new count.
// It fails with domain.ErrInsufficientStock when quantity exceeds the stock
// available at call time; reserving exactly the remaining stock succeeds.
func (l *StockLedger) Reserve(ctx context.Context, name string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	available, err := l.Available(ctx, name)
	if err != nil {
		return 0, err
	}

	if l.cache != nil {
		ok, err := l.cache.Reserve(ctx, name, quantity)
		if err != nil {
			return 0, fmt.Errorf("stock cache reserve: %w", err)
		}
		if !ok {
			return 0, &domain.InsufficientStockError{Name: name, Requested: quantity, Available: available}
		}
	}

	// The store count is authoritative. A stale cache approval must never
	// drive the persisted quantity below zero; re-sync the cache and reject.
	if quantity > available {
		if l.cache != nil {
			if err := l.cache.Prime(ctx, name, available); err != nil {
				l.logger.Printf("WARN: prime stock cache for %s: %v", name, err)
			}
		}
		return 0, &domain.InsufficientStockError{Name: name, Requested: quantity, Available: available}
	}

	remaining := available - quantity
	if err := l.repo.SetQuantity(ctx, name, remaining); err != nil {
		return 0, fmt.Errorf("persist quantity: %w", err)
	}
	return remaining, nil
}

// Price resolves the unit price fixed at selection time. Missing prices are
// logged and reported as domain.ErrPriceNotFound; the item is simply not
// priceable.
func (l *StockLedger) Price(ctx context.Context, name string) (decimal.Decimal, error) {
	price, err := l.repo.GetPrice(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			l.logger.Printf("WARN: price not found for %s", name)
			return decimal.Decimal{}, domain.ErrPriceNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("get price: %w", err)
	}
	return price, nil
}

// Catalog loads every recipe with its price and available stock. Items seen
// for the first time get their stock counter seeded; items without a price
// are listed with a zero price and logged.
func (l *StockLedger) Catalog(ctx context.Context) ([]domain.Item, error) {
	names, err := l.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	items := make([]domain.Item, 0, len(names))
	for _, name := range names {
		item := domain.Item{Name: name}

		price, err := l.repo.GetPrice(ctx, name)
		switch {
		case err == nil:
			item.UnitPrice = price
		case errors.Is(err, domain.ErrPriceNotFound):
			l.logger.Printf("WARN: price not found for %s", name)
		default:
			return nil, fmt.Errorf("get price: %w", err)
		}

		available, err := l.Available(ctx, name)
		if err != nil {
			return nil, err
		}
		item.Available = available

		if l.cache != nil {
			if err := l.cache.Prime(ctx, name, available); err != nil {
				l.logger.Printf("WARN: prime stock cache for %s: %v", name, err)
			}
		}

		items = append(items, item)
	}
	return items, nil
}
