package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/http/middleware"
	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

// OrderHandler serves order placement and tracking.
type OrderHandler struct {
	uc     OrderUsecase
	logger logx.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(logger logx.Logger, uc OrderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{uc: uc, logger: logger}
}

func (h *OrderHandler) caller(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	c, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		response.Fail(w, r, h.logger, http.StatusUnauthorized, "unauthorized")
	}
	return c, ok
}

// Create handles POST /v1/orders.
// @Summary Place an order
// @Description Prices the items, delivery fee and promotion and stores a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "Order payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope "invalid input or business rule"
// @Failure 404 {object} response.Envelope "customer, restaurant, item or zone not found"
// @Failure 409 {object} response.Envelope "order number conflict"
// @Router /v1/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	customerID := req.CustomerID
	if customerID == 0 {
		customerID = c.ID
	}

	o, err := h.uc.Create(r.Context(), req.toInput(customerID))
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/orders/"+o.OrderNumber)
	response.OK(w, r, h.logger, http.StatusCreated, "Order created successfully", orderToResponse(o))
}

// List handles GET /v1/orders and returns the caller's orders newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	c, ok := h.caller(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		response.Fail(w, r, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		response.Fail(w, r, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.ListByCustomer(r.Context(), c.ID, limit, offset)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Orders retrieved successfully", ordersToResponse(list))
}

// Get handles GET /v1/orders/{id}; id is numeric or an order number.
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order id or order number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "order not found"
// @Router /v1/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.caller(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.uc.Get(r.Context(), id, c.ID)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Order retrieved successfully", orderToResponse(o))
}

// UpdateStatus handles PATCH /v1/orders/{id}/status.
// @Summary Move an order to the next status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order id or order number"
// @Param request body updateOrderStatusRequest true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "transition not allowed"
// @Failure 404 {object} response.Envelope "order not found"
// @Router /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	c, ok := h.caller(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		response.Fail(w, r, h.logger, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateOrderStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.uc.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status), c.ID)
	if err != nil {
		fail(h.logger, w, r, err)
		return
	}
	response.OK(w, r, h.logger, http.StatusOK, "Order status updated successfully", orderToResponse(o))
}
