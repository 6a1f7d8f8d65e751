package kafka

import (
	"strings"
	"time"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/service/statusevents"
)

// Event types published on the order events topic.
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// StatusEventDTO is an incoming order status update.
type StatusEventDTO struct {
	EventID     string    `json:"event_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ToDomain converts StatusEventDTO to statusevents.Event
func ToDomain(dto StatusEventDTO) statusevents.Event {
	return statusevents.Event{
		EventID:     strings.TrimSpace(dto.EventID),
		OrderNumber: strings.TrimSpace(dto.OrderNumber),
		Status:      strings.TrimSpace(dto.Status),
		OccurredAt:  dto.OccurredAt,
	}
}

// OrderEventDTO is an outgoing order event.
type OrderEventDTO struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OccurredAt   time.Time `json:"occurred_at"`
	OrderNumber  string    `json:"order_number"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	Status       string    `json:"status"`
	FromStatus   string    `json:"from_status,omitempty"`
	DeliveryZone string    `json:"delivery_zone"`
	DeliveryFee  float64   `json:"delivery_fee"`
	Discount     float64   `json:"promo_discount"`
	PromoCode    *string   `json:"promo_code,omitempty"`
	TotalAmount  float64   `json:"total_amount"`
}

func fromOrder(eventID, eventType string, at time.Time, o *domain.Order) OrderEventDTO {
	return OrderEventDTO{
		EventID:      eventID,
		Type:         eventType,
		OccurredAt:   at,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		DeliveryZone: string(o.DeliveryZone),
		DeliveryFee:  o.DeliveryFee,
		Discount:     o.PromoDiscount,
		PromoCode:    o.PromoCode,
		TotalAmount:  o.TotalAmount,
	}
}
