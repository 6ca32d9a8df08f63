package http

import (
	stdhttp "net/http"
)

// HealthHandler reports liveness for the register API. It answers without
// touching any store, so a degraded database does not fail the probe.
func HealthHandler(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
