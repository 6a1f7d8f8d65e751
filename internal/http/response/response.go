// Package response writes the JSON envelope shared by every HTTP endpoint.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"service-food-delivery/internal/logx"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OK writes a successful envelope with the given status.
func OK(w http.ResponseWriter, r *http.Request, logger logx.Logger, status int, message string, data any) {
	write(w, r, logger, status, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes an error envelope with null data.
func Fail(w http.ResponseWriter, r *http.Request, logger logx.Logger, status int, message string) {
	if logger != nil && status >= http.StatusInternalServerError {
		logger.Error("http error",
			logx.String("request_id", reqID(r)),
			logx.Int("status", status),
			logx.String("message", message),
		)
	}
	write(w, r, logger, status, Envelope{Success: false, Message: message})
}

func write(w http.ResponseWriter, r *http.Request, logger logx.Logger, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil && logger != nil {
		// client may have gone away
		logger.Debug("json encode failed",
			logx.String("request_id", reqID(r)),
			logx.Err(err),
		)
	}
}

func reqID(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return "-"
}
