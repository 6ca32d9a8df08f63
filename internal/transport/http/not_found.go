package http

import "net/http"

// NotFoundHandler answers unknown routes with the same JSON error envelope
// the rest of the API uses, instead of the stdlib plain-text 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
}
