package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/app"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/report"
)

type stubCatalog struct {
	items []domain.Item
	err   error
}

func (s *stubCatalog) Catalog(context.Context) ([]domain.Item, error) {
	return s.items, s.err
}

type stubWorkflow struct {
	addResult app.AddLineResult
	addErr    error
	lines     []domain.LineItem
	total     decimal.Decimal
	finResult app.FinalizeResult
	finErr    error
}

func (s *stubWorkflow) AddLine(context.Context, string, string) (app.AddLineResult, error) {
	return s.addResult, s.addErr
}

func (s *stubWorkflow) Current() ([]domain.LineItem, decimal.Decimal) {
	return s.lines, s.total
}

func (s *stubWorkflow) Finalize(context.Context) (app.FinalizeResult, error) {
	return s.finResult, s.finErr
}

func TestHandleCatalog(t *testing.T) {
	t.Parallel()

	svc := &stubCatalog{items: []domain.Item{
		{Name: "Croissant", UnitPrice: decimal.RequireFromString("2.50"), Available: 5},
	}}

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	HandleCatalog(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []itemResponse
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Croissant" || items[0].UnitPrice != "2.50" || items[0].Available != 5 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestHandleCatalog_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/catalog", nil)
	rec := httptest.NewRecorder()
	HandleCatalog(&stubCatalog{})(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandleAddLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			body:           `{"name":"Croissant","quantity":"3"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid body",
			body:           `{"name":"Croissant","quantity":"3","extra":true}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   codeInvalidRequestBody,
		},
		{
			name:           "invalid quantity",
			body:           `{"name":"Croissant","quantity":"abc"}`,
			serviceErr:     domain.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   codeInvalidQuantity,
		},
		{
			name:           "insufficient stock",
			body:           `{"name":"Croissant","quantity":"10"}`,
			serviceErr:     &domain.InsufficientStockError{Name: "Croissant", Requested: 10, Available: 5},
			expectedStatus: http.StatusConflict,
			expectedCode:   codeInsufficientStock,
		},
		{
			name:           "price not found",
			body:           `{"name":"Mystery","quantity":"1"}`,
			serviceErr:     domain.ErrPriceNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   codePriceNotFound,
		},
		{
			name:           "internal error",
			body:           `{"name":"Croissant","quantity":"1"}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   codeInternalError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubWorkflow{
				addResult: app.AddLineResult{
					Line:      domain.LineItem{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
					Available: 2,
					Total:     decimal.RequireFromString("7.50"),
				},
				addErr: tt.serviceErr,
			}

			req := httptest.NewRequest(http.MethodPost, "/order/lines", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			HandleAddLine(svc)(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedCode != "" {
				var resp errorResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode error response: %v", err)
				}
				if resp.Code != tt.expectedCode {
					t.Fatalf("expected code %q, got %q", tt.expectedCode, resp.Code)
				}
			}
		})
	}
}

func TestHandleAddLine_ReportsAvailableStock(t *testing.T) {
	t.Parallel()

	svc := &stubWorkflow{
		addErr: &domain.InsufficientStockError{Name: "Croissant", Requested: 10, Available: 5},
	}

	req := httptest.NewRequest(http.MethodPost, "/order/lines", strings.NewReader(`{"name":"Croissant","quantity":"10"}`))
	rec := httptest.NewRecorder()
	HandleAddLine(svc)(rec, req)

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Available == nil || *resp.Available != 5 {
		t.Fatalf("expected available 5, got %v", resp.Available)
	}
}

func TestHandleAddLine_Success(t *testing.T) {
	t.Parallel()

	svc := &stubWorkflow{
		addResult: app.AddLineResult{
			Line:      domain.LineItem{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
			Available: 2,
			Total:     decimal.RequireFromString("7.50"),
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/order/lines", strings.NewReader(`{"name":"Croissant","quantity":"3"}`))
	rec := httptest.NewRecorder()
	HandleAddLine(svc)(rec, req)

	var resp addLineResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Line.Amount != "7.50" || resp.Available != 2 || resp.Total != "7.50" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleCurrentOrder(t *testing.T) {
	t.Parallel()

	svc := &stubWorkflow{
		lines: []domain.LineItem{
			{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
		},
		total: decimal.RequireFromString("7.50"),
	}

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	rec := httptest.NewRecorder()
	HandleCurrentOrder(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp orderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Lines) != 1 || resp.Total != "7.50" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleCheckout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty order",
			serviceErr:     domain.ErrEmptyOrder,
			expectedStatus: http.StatusConflict,
			expectedCode:   codeEmptyOrder,
		},
		{
			name:           "persistence failure",
			serviceErr:     errors.New("write failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   codeInternalError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubWorkflow{
				finResult: app.FinalizeResult{
					Bill: domain.Bill{
						ID: "bill-1",
						Lines: []domain.LineItem{
							{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
						},
						Total:     decimal.RequireFromString("7.50"),
						CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
					},
					Receipt: report.Table{},
				},
				finErr: tt.serviceErr,
			}

			req := httptest.NewRequest(http.MethodPost, "/order/checkout", nil)
			rec := httptest.NewRecorder()
			HandleCheckout(svc)(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				var resp billResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.ID != "bill-1" || resp.Total != "7.50" || resp.ReceiptURL != "/bills/bill-1/receipt" {
					t.Fatalf("unexpected response: %+v", resp)
				}
			}
			if tt.expectedCode != "" {
				var resp errorResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode error response: %v", err)
				}
				if resp.Code != tt.expectedCode {
					t.Fatalf("expected code %q, got %q", tt.expectedCode, resp.Code)
				}
			}
		})
	}
}
