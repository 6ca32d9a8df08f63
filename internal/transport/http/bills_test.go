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

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

type stubBillReader struct {
	bill    domain.Bill
	getErr  error
	bills   []domain.Bill
	listErr error
}

func (s *stubBillReader) GetBill(context.Context, string) (domain.Bill, error) {
	return s.bill, s.getErr
}

func (s *stubBillReader) ListBills(context.Context) ([]domain.Bill, error) {
	return s.bills, s.listErr
}

func testBill() domain.Bill {
	return domain.Bill{
		ID: "a6f3b9e2-0000-0000-0000-000000000001",
		Lines: []domain.LineItem{
			{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
		},
		Total:     decimal.RequireFromString("7.50"),
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleListBills(t *testing.T) {
	t.Parallel()

	svc := &stubBillReader{bills: []domain.Bill{testBill()}}

	req := httptest.NewRequest(http.MethodGet, "/bills", nil)
	rec := httptest.NewRecorder()
	HandleListBills(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []billResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Total != "7.50" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !strings.HasSuffix(resp[0].ReceiptURL, "/receipt") {
		t.Fatalf("expected receipt URL, got %q", resp[0].ReceiptURL)
	}
}

func TestHandleBillReceipt(t *testing.T) {
	t.Parallel()

	bill := testBill()
	svc := &stubBillReader{bill: bill}

	req := httptest.NewRequest(http.MethodGet, "/bills/"+bill.ID+"/receipt", nil)
	rec := httptest.NewRecorder()
	HandleBillReceipt(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("expected PDF payload")
	}
}

func TestHandleBillReceipt_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubBillReader{getErr: domain.ErrBillNotFound}

	req := httptest.NewRequest(http.MethodGet, "/bills/missing/receipt", nil)
	rec := httptest.NewRecorder()
	HandleBillReceipt(svc)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != codeBillNotFound {
		t.Fatalf("expected code %q, got %q", codeBillNotFound, resp.Code)
	}
}

func TestHandleBillReceipt_StoreError(t *testing.T) {
	t.Parallel()

	svc := &stubBillReader{getErr: errors.New("boom")}

	req := httptest.NewRequest(http.MethodGet, "/bills/some-id/receipt", nil)
	rec := httptest.NewRecorder()
	HandleBillReceipt(svc)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestParseReceiptPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		id   string
		ok   bool
	}{
		{path: "/bills/abc/receipt", id: "abc", ok: true},
		{path: "/bills/abc", ok: false},
		{path: "/bills//receipt", ok: false},
		{path: "/bills/a/b/receipt", ok: false},
		{path: "/other/abc/receipt", ok: false},
	}

	for _, tt := range tests {
		id, ok := parseReceiptPath(tt.path)
		if id != tt.id || ok != tt.ok {
			t.Errorf("parseReceiptPath(%q) = (%q, %v), want (%q, %v)", tt.path, id, ok, tt.id, tt.ok)
		}
	}
}
