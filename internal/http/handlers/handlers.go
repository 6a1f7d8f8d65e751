package handlers

import (
	"net/http"

	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// Handlers serves the service-level endpoints.
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance; a nil logger is replaced with a no-op one.
func New(logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger}
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, h.Logger, http.StatusOK, "pong", nil)
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, r, h.Logger, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
}
