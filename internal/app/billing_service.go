package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/clock"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/report"
)

// BillRepository is the append-only store of finalized bills.
type BillRepository interface {
	AppendBill(ctx context.Context, bill domain.Bill) error
	GetBill(ctx context.Context, id string) (domain.Bill, error)
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// BillingService owns the current order and drives the add-line / finalize
// workflow. One instance per cashier session; a mutex serializes the workflow
// steps so in-flight state is never mutated concurrently.
type BillingService struct {
	ledger *StockLedger
	bills  BillRepository
	clock  clock.Clock

	mu          sync.Mutex
	order       *OrderBuilder
	subscribers []func()
}

func NewBillingService(ledger *StockLedger, bills BillRepository, clk clock.Clock) *BillingService {
	return &BillingService{
		ledger: ledger,
		bills:  bills,
		clock:  clk,
		order:  NewOrderBuilder(),
	}
}

// Subscribe registers a callback invoked synchronously after every
// successful finalize. Registration is not safe to interleave with the
// workflow; subscribe everything at wiring time.
func (s *BillingService) Subscribe(fn func()) {
	if fn != nil {
		s.subscribers = append(s.subscribers, fn)
	}
}

type AddLineResult struct {
	Line      domain.LineItem
	Available int
	Total     decimal.Decimal
}

// AddLine parses the cashier's quantity input, fixes the unit price at
// selection time, reserves stock, and appends the line to the current order.
// A rejected line leaves the order unchanged.
func (s *BillingService) AddLine(ctx context.Context, name, quantityInput string) (AddLineResult, error) {
	quantity, err := parseQuantity(quantityInput)
	if err != nil {
		return AddLineResult{}, err
	}
	if name == "" {
		return AddLineResult{}, domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Resolve the price before touching the ledger so an unpriceable item
	// never consumes stock.
	price, err := s.ledger.Price(ctx, name)
	if err != nil {
		return AddLineResult{}, err
	}

	available, err := s.ledger.Reserve(ctx, name, quantity)
	if err != nil {
		return AddLineResult{}, err
	}

	line := s.order.AddLine(name, quantity, price)
	return AddLineResult{
		Line:      line,
		Available: available,
		Total:     s.order.Total(),
	}, nil
}

// Current returns the in-progress order lines and total.
func (s *BillingService) Current() ([]domain.LineItem, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Lines(), s.order.Total()
}

type FinalizeResult struct {
	Bill    domain.Bill
	Receipt report.Table
}

// Finalize commits the current order as a bill. Stock was already deducted
// at reservation time, so finalize performs no further ledger writes. On
// success the order is cleared, stock-changed subscribers are notified, and
// the receipt table for the bill is returned for rendering. On a persistence
// failure the order is left untouched and reservations are not rolled back.
func (s *BillingService) Finalize(ctx context.Context) (FinalizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.order.Lines()
	if len(lines) == 0 {
		return FinalizeResult{}, domain.ErrEmptyOrder
	}

	bill := domain.Bill{
		ID:        uuid.NewString(),
		Lines:     lines,
		Total:     s.order.Total(),
		CreatedAt: s.clock.Now(),
	}

	if err := s.bills.AppendBill(ctx, bill); err != nil {
		return FinalizeResult{}, fmt.Errorf("append bill: %w", err)
	}

	s.order.Clear()
	for _, fn := range s.subscribers {
		fn()
	}

	return FinalizeResult{
		Bill:    bill,
		Receipt: report.BillingTable(bill.Lines, bill.Total),
	}, nil
}

func parseQuantity(input string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return quantity, nil
}
