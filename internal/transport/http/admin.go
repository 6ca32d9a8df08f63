package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/app"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

// AdminItemService is the minimal interface for reference-data management.
type AdminItemService interface {
	UpsertItem(ctx context.Context, in app.UpsertItemInput) (domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// HandleAdminItems manages the recipes, prices and stock counters the
// billing screen sells from.
func HandleAdminItems(svc AdminItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			items, err := svc.ListItems(r.Context())
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

		case http.MethodPost:
			var req upsertItemRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			price, err := decimal.NewFromString(req.UnitPrice)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidPrice, domain.ErrInvalidPrice.Error())
				return
			}

			item, err := svc.UpsertItem(r.Context(), app.UpsertItemInput{
				Name:     req.Name,
				Price:    price,
				Quantity: req.Quantity,
			})
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrNameRequired):
					writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
				case errors.Is(err, domain.ErrInvalidPrice):
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				case errors.Is(err, domain.ErrInvalidQuantity):
					writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(itemResponse{
				Name:      item.Name,
				UnitPrice: item.UnitPrice.StringFixed(2),
				Available: item.Available,
			})

		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

type upsertItemRequest struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}
