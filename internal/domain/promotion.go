package domain

import "time"

type (
	// PromotionType decides which eligibility gate applies to a promotion.
	PromotionType string
	// DiscountType decides how the discount amount is computed.
	DiscountType string
)

// List of promotion types
const (
	PromoFirstOrder         PromotionType = "first_order"
	PromoRestaurantSpecific PromotionType = "restaurant_specific"
	PromoZoneSpecific       PromotionType = "zone_specific"
	PromoPercentage         PromotionType = "percentage"
	PromoFixedAmount        PromotionType = "fixed_amount"
)

// List of discount types
const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var allowedPromotionTypes = [...]PromotionType{
	PromoFirstOrder, PromoRestaurantSpecific, PromoZoneSpecific, PromoPercentage, PromoFixedAmount,
}

// Valid checks if the PromotionType is valid
func (t PromotionType) Valid() bool {
	for _, v := range allowedPromotionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the DiscountType is valid
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Promotion is a promo code. Code is stored uppercase.
// RestaurantID holds the public restaurant identifier ("REST-001").
type Promotion struct {
	ID                int64
	Code              string
	Name              string
	Description       string
	Type              PromotionType
	DiscountType      DiscountType
	DiscountValue     float64
	RestaurantID      *string
	ZoneType          *ZoneType
	MinOrderAmount    float64
	MaxDiscountAmount *float64
	StartDate         time.Time
	EndDate           time.Time
	UsageLimit        *int
	UsedCount         int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PromotionFilter narrows promotion listing. Nil IsActive lists all.
type PromotionFilter struct {
	IsActive *bool
}
