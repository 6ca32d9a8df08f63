package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidQuantity    = "invalid_quantity"
	codeInsufficientStock  = "insufficient_stock"
	codePriceNotFound      = "price_not_found"
	codeEmptyOrder         = "empty_order"
	codeItemNotFound       = "item_not_found"
	codeBillNotFound       = "bill_not_found"
	codeNameRequired       = "item_name_required"
	codeInvalidPrice       = "invalid_price"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Available *int   `json:"available,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeErrorWithAvailable(w, status, code, msg, nil)
}

// writeErrorWithAvailable carries the remaining stock on insufficient-stock
// rejections so the cashier sees what is left.
func writeErrorWithAvailable(w http.ResponseWriter, status int, code, msg string, available *int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error:     msg,
		Code:      code,
		Available: available,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
