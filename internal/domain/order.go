package domain

import "time"

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

// List of order statuses
const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderPreparing},
	OrderPreparing:      {OrderOutForDelivery},
	OrderOutForDelivery: {OrderDelivered},
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, v := range orderTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Final reports whether no further transition is possible.
func (s OrderStatus) Final() bool {
	return len(orderTransitions[s]) == 0
}

// OrderLineItem is an ordered catalog item. UnitPrice is the price at order time.
type OrderLineItem struct {
	ItemID    int64
	Quantity  int
	UnitPrice float64
}

// OrderLineRequest is a requested item and quantity.
type OrderLineRequest struct {
	ItemID   int64
	Quantity int
}

// Order is the persisted snapshot of a priced order.
type Order struct {
	ID             int64
	OrderNumber    string
	CustomerID     int64
	RestaurantID   int64
	Items          []OrderLineItem
	DeliveryZone   ZoneType
	DistanceKm     float64
	BasePrice      float64
	DeliveryFee    float64
	ZoneBaseFee    float64
	DistanceCost   float64
	PeakMultiplier float64
	PeakSurcharge  float64
	PromoDiscount  float64
	PromoCode      *string
	TotalAmount    float64
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateOrderInput is the order creation request.
// RestaurantRef is either the numeric id or the public "REST-001" identifier.
type CreateOrderInput struct {
	CustomerID    int64
	RestaurantRef string
	Items         []OrderLineRequest
	PromoCode     string
}
