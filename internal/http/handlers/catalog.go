package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// CatalogHandler serves restaurants and items.
type CatalogHandler struct {
	uc     CatalogUsecase
	logger logx.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(logger logx.Logger, uc CatalogUsecase) *CatalogHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CatalogHandler{uc: uc, logger: logger}
}

// CreateRestaurant handles POST /v1/restaurants.
func (h *CatalogHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req createRestaurantRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	rest := req.toModel()
	if err := h.uc.CreateRestaurant(r.Context(), rest); err != nil {
		fail(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/restaurants/"+rest.RestaurantID)
	response.OK(w, r, h.logger, http.StatusCreated, "Restaurant created successfully", restaurantToResponse(*rest))
}

// ListRestaurants handles GET /v1/restaurants.
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListRestaurants(r.Context())
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Restaurants retrieved successfully", restaurantsToResponse(list))
}

// GetRestaurant handles GET /v1/restaurants/{id}; id is numeric or public.
func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid id")
		return
	}

	rest, err := h.uc.GetRestaurant(r.Context(), id)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Restaurant retrieved successfully", restaurantToResponse(*rest))
}

// CreateItem handles POST /v1/items.
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	it, err := h.uc.CreateItem(r.Context(), req.toInput())
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/items/"+strconv.FormatInt(it.ID, 10))
	response.OK(w, r, h.logger, http.StatusCreated, "Item created successfully", itemToResponse(*it))
}

// ListItems handles GET /v1/items with an optional restaurantId filter.
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	restaurant := strings.TrimSpace(r.URL.Query().Get("restaurantId"))

	list, err := h.uc.ListItems(r.Context(), restaurant)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Items retrieved successfully", itemsToResponse(list))
}

// GetItem handles GET /v1/items/{id}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid id")
		return
	}

	it, err := h.uc.GetItem(r.Context(), id)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Item retrieved successfully", itemToResponse(*it))
}

// UpdateItem handles PATCH /v1/items/{id}.
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	it, err := h.uc.UpdateItem(r.Context(), req.toModel(id))
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Item updated successfully", itemToResponse(*it))
}
