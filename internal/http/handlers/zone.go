package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// ZoneHandler serves delivery zone tariffs.
type ZoneHandler struct {
	uc     ZoneUsecase
	logger logx.Logger
}

// NewZoneHandler creates a ZoneHandler.
func NewZoneHandler(logger logx.Logger, uc ZoneUsecase) *ZoneHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ZoneHandler{uc: uc, logger: logger}
}

func zoneFromURL(r *http.Request) (domain.ZoneType, bool) {
	zt := domain.ZoneType(chi.URLParam(r, "zoneType"))
	return zt, zt.Valid()
}

// Create handles POST /v1/delivery-zones.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createZoneRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	z := req.toModel()
	if err := h.uc.Create(r.Context(), z); err != nil {
		fail(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/delivery-zones/"+string(z.ZoneType))
	response.OK(w, r, h.logger, http.StatusCreated, "Delivery zone created successfully", zoneToResponse(*z))
}

// List handles GET /v1/delivery-zones.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Delivery zones retrieved successfully", zonesToResponse(list))
}

// Get handles GET /v1/delivery-zones/{zoneType}.
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	zt, ok := zoneFromURL(r)
	if !ok {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid zone type, must be Urban, Suburban, or Remote")
		return
	}

	z, err := h.uc.Get(r.Context(), zt)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Delivery zone retrieved successfully", zoneToResponse(*z))
}

// Update handles PATCH /v1/delivery-zones/{zoneType}.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	zt, ok := zoneFromURL(r)
	if !ok {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid zone type, must be Urban, Suburban, or Remote")
		return
	}
	var req updateZoneRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	z, err := h.uc.UpdatePartial(r.Context(), req.toModel(zt))
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Delivery zone updated successfully", zoneToResponse(*z))
}
