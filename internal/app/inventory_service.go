package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// InventoryRepository lists the current stock counters.
type InventoryRepository interface {
	ListQuantities(ctx context.Context) ([]domain.StockLevel, error)
}

// InventoryService serves the read-only stock listing. It caches the last
// snapshot and refreshes after the billing workflow broadcasts a stock
// change; wire Invalidate as a billing subscriber.
type InventoryService struct {
	repo InventoryRepository

	mu     sync.Mutex
	levels []domain.StockLevel
	fresh  bool
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Levels returns the current stock rows, served from cache until invalidated.
func (s *InventoryService) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fresh {
		levels, err := s.repo.ListQuantities(ctx)
		if err != nil {
			return nil, fmt.Errorf("list quantities: %w", err)
		}
		s.levels = levels
		s.fresh = true
	}

	out := make([]domain.StockLevel, len(s.levels))
	copy(out, s.levels)
	return out, nil
}

// Invalidate drops the cached snapshot so the next read re-fetches.
func (s *InventoryService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fresh = false
}
