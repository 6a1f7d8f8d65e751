package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// PromotionHandler serves promotion codes.
type PromotionHandler struct {
	uc     PromotionUsecase
	logger logx.Logger
}

// NewPromotionHandler creates a PromotionHandler.
func NewPromotionHandler(logger logx.Logger, uc PromotionUsecase) *PromotionHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PromotionHandler{uc: uc, logger: logger}
}

// Create handles POST /v1/promotions.
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPromotionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p := req.toModel()
	if err := h.uc.Create(r.Context(), p); err != nil {
		fail(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/promotions/"+p.Code)
	response.OK(w, r, h.logger, http.StatusCreated, "Promotion created successfully", promotionToResponse(*p))
}

// List handles GET /v1/promotions?isActive=true|false.
func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	active, err := queryBool(r, "isActive")
	if err != nil {
		response.Fail(w, r, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.List(r.Context(), domain.PromotionFilter{IsActive: active})
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Promotions retrieved successfully", promotionsToResponse(list))
}

// Get handles GET /v1/promotions/{code}.
func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Promotion retrieved successfully", promotionToResponse(*p))
}
