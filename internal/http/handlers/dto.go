package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// ref accepts a JSON string or number; restaurants are addressed by numeric id or "REST-001".
type ref string

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ref(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*r = ref(n.String())
	return nil
}

type locationDTO struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type signupRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=6"`
	Location *locationDTO `json:"location" validate:"required"`
	Zone     string       `json:"zone" validate:"required,oneof=Urban Suburban Remote"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type customerDTO struct {
	ID           int64            `json:"id"`
	CustomerID   string           `json:"customerId"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Location     locationResponse `json:"location"`
	Zone         string           `json:"zone"`
	IsFirstOrder bool             `json:"isFirstOrder"`
	IsActive     bool             `json:"isActive"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type sessionDTO struct {
	Customer customerDTO `json:"customer"`
	Token    string      `json:"token"`
}

type createRestaurantRequest struct {
	Name     string       `json:"name" validate:"required"`
	Location *locationDTO `json:"location" validate:"required"`
	Zone     string       `json:"zone" validate:"required,oneof=Urban Suburban Remote"`
}

type restaurantDTO struct {
	ID           int64            `json:"id"`
	RestaurantID string           `json:"restaurantId"`
	Name         string           `json:"name"`
	Location     locationResponse `json:"location"`
	Zone         string           `json:"zone"`
	IsActive     bool             `json:"isActive"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type createItemRequest struct {
	RestaurantID ref      `json:"restaurantId" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	IsAvailable  *bool    `json:"isAvailable"`
}

type updateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

type itemDTO struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type createZoneRequest struct {
	ZoneType  string   `json:"zoneType" validate:"required,oneof=Urban Suburban Remote"`
	BaseFee   *float64 `json:"baseFee" validate:"required,gte=0"`
	PerKmRate *float64 `json:"perKmRate" validate:"required,gte=0"`
}

type updateZoneRequest struct {
	BaseFee   *float64 `json:"baseFee,omitempty" validate:"omitempty,gte=0"`
	PerKmRate *float64 `json:"perKmRate,omitempty" validate:"omitempty,gte=0"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

type zoneDTO struct {
	ID        int64     `json:"id"`
	ZoneType  string    `json:"zoneType"`
	BaseFee   float64   `json:"baseFee"`
	PerKmRate float64   `json:"perKmRate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createPromotionRequest struct {
	PromoCode         string     `json:"promoCode" validate:"required"`
	Name              string     `json:"name" validate:"required"`
	Description       string     `json:"description"`
	Type              string     `json:"type" validate:"required,oneof=first_order restaurant_specific zone_specific percentage fixed_amount"`
	DiscountType      string     `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue     *float64   `json:"discountValue" validate:"required,gte=0"`
	RestaurantID      *string    `json:"restaurantId,omitempty"`
	ZoneType          *string    `json:"zoneType,omitempty" validate:"omitempty,oneof=Urban Suburban Remote"`
	MinOrderAmount    float64    `json:"minOrderAmount" validate:"gte=0"`
	MaxDiscountAmount *float64   `json:"maxDiscountAmount,omitempty" validate:"omitempty,gte=0"`
	StartDate         *time.Time `json:"startDate" validate:"required"`
	EndDate           *time.Time `json:"endDate" validate:"required"`
	UsageLimit        *int       `json:"usageLimit,omitempty" validate:"omitempty,gte=1"`
}

type promotionDTO struct {
	PromoCode         string    `json:"promoCode"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Type              string    `json:"type"`
	DiscountType      string    `json:"discountType"`
	DiscountValue     float64   `json:"discountValue"`
	RestaurantID      *string   `json:"restaurantId"`
	ZoneType          *string   `json:"zoneType"`
	MinOrderAmount    float64   `json:"minOrderAmount"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	UsageLimit        *int      `json:"usageLimit"`
	UsedCount         int       `json:"usedCount"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type orderLineRequest struct {
	ItemID int64 `json:"itemId" validate:"required,gt=0"`
	Qty    int   `json:"qty" validate:"gte=1"`
}

type createOrderRequest struct {
	CustomerID int64              `json:"customerId,omitempty" validate:"gte=0"`
	Restaurant ref                `json:"restaurantId" validate:"required"`
	Items      []orderLineRequest `json:"items" validate:"required,min=1,dive"`
	PromoCode  string             `json:"promoCode,omitempty"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing out_for_delivery delivered cancelled"`
}

type orderLineDTO struct {
	ItemID    int64   `json:"itemId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type orderDTO struct {
	ID             int64          `json:"id"`
	OrderNumber    string         `json:"orderNumber"`
	CustomerID     int64          `json:"customerId"`
	RestaurantID   int64          `json:"restaurantId"`
	Items          []orderLineDTO `json:"items"`
	DeliveryZone   string         `json:"deliveryZone"`
	DistanceKm     float64        `json:"distanceKm"`
	BasePrice      float64        `json:"basePrice"`
	DeliveryFee    float64        `json:"deliveryFee"`
	ZoneBaseFee    float64        `json:"zoneBaseFee"`
	DistanceCost   float64        `json:"distanceCost"`
	PeakMultiplier float64        `json:"peakMultiplier"`
	PeakSurcharge  float64        `json:"peakSurcharge"`
	PromoDiscount  float64        `json:"promoDiscount"`
	PromoCode      *string        `json:"promoCode"`
	TotalAmount    float64        `json:"totalAmount"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
