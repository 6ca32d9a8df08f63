package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// AdminRepository is the write surface for reference data: recipes, prices
// and stock counters.
type AdminRepository interface {
	CreateRecipe(ctx context.Context, name string) error
	SetPrice(ctx context.Context, name string, price decimal.Decimal) error
	SetQuantity(ctx context.Context, name string, quantity int) error
	ListRecipes(ctx context.Context) ([]string, error)
	GetPrice(ctx context.Context, name string) (decimal.Decimal, error)
	GetQuantity(ctx context.Context, name string) (int, error)
}

// AdminService manages the reference data the billing screen sells from.
type AdminService struct {
	repo   AdminRepository
	cache  StockCache
	logger *log.Logger
}

func NewAdminService(repo AdminRepository, opts ...AdminServiceOption) *AdminService {
	s := &AdminService{
		repo:   repo,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type AdminServiceOption func(*AdminService)

// WithAdminStockCache keeps the shared stock counter in step with admin
// stock writes.
func WithAdminStockCache(cache StockCache) AdminServiceOption {
	return func(s *AdminService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

func WithAdminLogger(logger *log.Logger) AdminServiceOption {
	return func(s *AdminService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type UpsertItemInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// UpsertItem creates or updates a recipe with its price and stock counter.
func (s *AdminService) UpsertItem(ctx context.Context, in UpsertItemInput) (domain.Item, error) {
	if in.Name == "" {
		return domain.Item{}, domain.ErrNameRequired
	}
	if in.Price.IsNegative() {
		return domain.Item{}, domain.ErrInvalidPrice
	}
	if in.Quantity < 0 {
		return domain.Item{}, domain.ErrInvalidQuantity
	}

	if err := s.repo.CreateRecipe(ctx, in.Name); err != nil {
		return domain.Item{}, fmt.Errorf("create recipe: %w", err)
	}
	if err := s.repo.SetPrice(ctx, in.Name, in.Price); err != nil {
		return domain.Item{}, fmt.Errorf("set price: %w", err)
	}
	if err := s.repo.SetQuantity(ctx, in.Name, in.Quantity); err != nil {
		return domain.Item{}, fmt.Errorf("set quantity: %w", err)
	}

	// The shared counter must follow the authoritative count, or reservations
	// keep admitting against the pre-update stock.
	if s.cache != nil {
		if err := s.cache.Prime(ctx, in.Name, in.Quantity); err != nil {
			s.logger.Printf("WARN: prime stock cache for %s: %v", in.Name, err)
		}
	}

	return domain.Item{Name: in.Name, UnitPrice: in.Price, Available: in.Quantity}, nil
}

// ListItems returns every recipe with its price and stock counter. Unlike the
// catalog load it never seeds defaults: an item without a stock record is
// reported with zero stock.
func (s *AdminService) ListItems(ctx context.Context) ([]domain.Item, error) {
	names, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	items := make([]domain.Item, 0, len(names))
	for _, name := range names {
		item := domain.Item{Name: name}

		price, err := s.repo.GetPrice(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrPriceNotFound) {
			return nil, fmt.Errorf("get price: %w", err)
		}
		if err == nil {
			item.UnitPrice = price
		}

		qty, err := s.repo.GetQuantity(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
			return nil, fmt.Errorf("get quantity: %w", err)
		}
		if err == nil {
			item.Available = qty
		}

		items = append(items, item)
	}
	return items, nil
}
