package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/app"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// CatalogReader is the minimal interface needed to load the billing catalog.
type CatalogReader interface {
	Catalog(ctx context.Context) ([]domain.Item, error)
}

// HandleCatalog returns the selectable items with price and available stock.
// First-time items get their stock counter seeded as a side effect of the
// read, the same way the billing screen load does.
func HandleCatalog(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		items, err := svc.Catalog(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]itemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, itemResponse{
				Name:      item.Name,
				UnitPrice: item.UnitPrice.StringFixed(2),
				Available: item.Available,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// BillingWorkflow is the minimal interface the order endpoints need.
type BillingWorkflow interface {
	AddLine(ctx context.Context, name, quantityInput string) (app.AddLineResult, error)
	Current() ([]domain.LineItem, decimal.Decimal)
	Finalize(ctx context.Context) (app.FinalizeResult, error)
}

// HandleCurrentOrder returns the in-progress order lines and total.
func HandleCurrentOrder(svc BillingWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		lines, total := svc.Current()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(orderResponse{
			Lines: toLineResponses(lines),
			Total: total.StringFixed(2),
		})
	}
}

// HandleAddLine adds one line to the running order, reserving stock.
func HandleAddLine(svc BillingWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req addLineRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.AddLine(r.Context(), req.Name, req.Quantity)
		if err != nil {
			var insufficient *domain.InsufficientStockError
			switch {
			case errors.Is(err, domain.ErrInvalidQuantity):
				writeError(w, http.StatusBadRequest, codeInvalidQuantity, "select an item and enter a valid quantity")
			case errors.As(err, &insufficient):
				writeErrorWithAvailable(w, http.StatusConflict, codeInsufficientStock, insufficient.Error(), &insufficient.Available)
			case errors.Is(err, domain.ErrInsufficientStock):
				writeError(w, http.StatusConflict, codeInsufficientStock, err.Error())
			case errors.Is(err, domain.ErrPriceNotFound):
				writeError(w, http.StatusNotFound, codePriceNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(addLineResponse{
			Line:      toLineResponse(res.Line),
			Available: res.Available,
			Total:     res.Total.StringFixed(2),
		})
	}
}

// HandleCheckout finalizes the running order into a bill.
func HandleCheckout(svc BillingWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		res, err := svc.Finalize(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrEmptyOrder) {
				writeError(w, http.StatusConflict, codeEmptyOrder, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "error processing payment")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(billResponse{
			ID:         res.Bill.ID,
			Lines:      toLineResponses(res.Bill.Lines),
			Total:      res.Bill.Total.StringFixed(2),
			CreatedAt:  res.Bill.CreatedAt,
			ReceiptURL: "/bills/" + res.Bill.ID + "/receipt",
		})
	}
}

type itemResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Available int    `json:"available"`
}

type addLineRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type lineResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
}

type addLineResponse struct {
	Line      lineResponse `json:"line"`
	Available int          `json:"available"`
	Total     string       `json:"total"`
}

type orderResponse struct {
	Lines []lineResponse `json:"lines"`
	Total string         `json:"total"`
}

type billResponse struct {
	ID         string         `json:"id"`
	Lines      []lineResponse `json:"lines"`
	Total      string         `json:"total"`
	CreatedAt  time.Time      `json:"created_at"`
	ReceiptURL string         `json:"receipt_url"`
}

func toLineResponse(line domain.LineItem) lineResponse {
	return lineResponse{
		Name:      line.Name,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice.StringFixed(2),
		Amount:    line.Amount().StringFixed(2),
	}
}

func toLineResponses(lines []domain.LineItem) []lineResponse {
	out := make([]lineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, toLineResponse(line))
	}
	return out
}
