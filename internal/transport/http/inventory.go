package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
	"github.com/VinodVibhashana/BakeryManagementSystem/internal/report"
)

// InventoryReader is the minimal interface needed for the inventory screen.
type InventoryReader interface {
	Levels(ctx context.Context) ([]domain.StockLevel, error)
}

// HandleInventory lists current stock quantities.
func HandleInventory(svc InventoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		levels, err := svc.Levels(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]stockLevelResponse, 0, len(levels))
		for _, level := range levels {
			resp = append(resp, stockLevelResponse{Name: level.Name, Quantity: level.Quantity})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleInventoryReport exports the stock listing as a PDF download.
func HandleInventoryReport(svc InventoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		levels, err := svc.Levels(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		pdf, err := report.RenderPDF(report.InventoryTable(levels))
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="item-list.pdf"`)
		_, _ = w.Write(pdf)
	}
}

type stockLevelResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
