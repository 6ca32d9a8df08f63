package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/report"
)

// BillReader is the minimal interface needed to serve finalized bills.
type BillReader interface {
	GetBill(ctx context.Context, id string) (domain.Bill, error)
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// HandleListBills returns all finalized bills, oldest first.
func HandleListBills(svc BillReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		bills, err := svc.ListBills(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]billResponse, 0, len(bills))
		for _, bill := range bills {
			resp = append(resp, billResponse{
				ID:         bill.ID,
				Lines:      toLineResponses(bill.Lines),
				Total:      bill.Total.StringFixed(2),
				CreatedAt:  bill.CreatedAt,
				ReceiptURL: "/bills/" + bill.ID + "/receipt",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleBillReceipt renders a bill's PDF receipt as a download.
func HandleBillReceipt(svc BillReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseReceiptPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		bill, err := svc.GetBill(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrBillNotFound) {
				writeError(w, http.StatusNotFound, codeBillNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		pdf, err := report.RenderPDF(report.BillingTable(bill.Lines, bill.Total))
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="billing_report.pdf"`)
		_, _ = w.Write(pdf)
	}
}

// parseReceiptPath extracts the bill ID from /bills/{id}/receipt.
func parseReceiptPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/bills/")
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, "/receipt")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
