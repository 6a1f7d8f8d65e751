package handlers

import (
	"net/http"

	"service-food-delivery/internal/http/middleware"
	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// AuthHandler serves signup, login and the current customer.
type AuthHandler struct {
	uc     AuthUsecase
	logger logx.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(logger logx.Logger, uc AuthUsecase) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{uc: uc, logger: logger}
}

// Signup handles POST /v1/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.uc.Signup(r.Context(), req.toInput())
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusCreated, "Customer registered successfully", sessionToResponse(s))
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.uc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Login successful", sessionToResponse(s))
}

// Me handles GET /v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		response.Fail(w, r, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := h.uc.Me(r.Context(), caller.ID)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Customer retrieved successfully", customerToResponse(c))
}
