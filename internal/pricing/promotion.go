package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// Promotion gate messages.
const (
	MsgPromoInvalid      = "invalid or inactive promotion code"
	MsgPromoExpired      = "promotion code has expired"
	MsgPromoUsageReached = "promotion code usage limit reached"
	MsgPromoFirstOrder   = "promotion is only valid for first-time customers"
	MsgPromoRestaurant   = "promotion is not valid for this restaurant"
	MsgPromoZone         = "promotion is not valid for this delivery zone"
)

// PromoContext is the order data a promotion is evaluated against.
// OrderTotal is basePrice + deliveryFee.
type PromoContext struct {
	OrderTotal         float64
	IsFirstOrder       bool
	CustomerZone       domain.ZoneType
	RestaurantPublicID string
	Now                time.Time
}

// NormalizeCode trims and uppercases a promo code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CheckPromotion runs the eligibility gates in order and returns the first failure.
// A nil promotion means the code was not found.
func CheckPromotion(p *domain.Promotion, pc PromoContext) error {
	if p == nil || !p.IsActive {
		return apperr.BusinessRulef(MsgPromoInvalid)
	}
	if pc.Now.Before(p.StartDate) || pc.Now.After(p.EndDate) {
		return apperr.BusinessRulef(MsgPromoExpired)
	}
	if p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit {
		return UsageLimitReached()
	}
	if dec(pc.OrderTotal).LessThan(dec(p.MinOrderAmount)) {
		return apperr.BusinessRulef("minimum order amount of %s required for this promotion",
			strconv.FormatFloat(p.MinOrderAmount, 'f', -1, 64))
	}

	switch p.Type {
	case domain.PromoFirstOrder:
		if !pc.IsFirstOrder {
			return apperr.BusinessRulef(MsgPromoFirstOrder)
		}
	case domain.PromoRestaurantSpecific:
		if p.RestaurantID == nil || *p.RestaurantID != pc.RestaurantPublicID {
			return apperr.BusinessRulef(MsgPromoRestaurant)
		}
	case domain.PromoZoneSpecific:
		if p.ZoneType == nil || *p.ZoneType != pc.CustomerZone {
			return apperr.BusinessRulef(MsgPromoZone)
		}
	}
	return nil
}

// UsageLimitReached is returned by the gate and by the atomic usage increment.
func UsageLimitReached() error {
	return apperr.BusinessRulef(MsgPromoUsageReached)
}

// Discount computes the discount of an eligible promotion for orderTotal.
// The result never exceeds orderTotal or, for percentages, MaxDiscountAmount.
func Discount(p *domain.Promotion, orderTotal float64) float64 {
	total := dec(orderTotal)

	var raw decimal.Decimal
	switch p.DiscountType {
	case domain.DiscountPercentage:
		raw = total.Mul(dec(p.DiscountValue)).Div(decimal.NewFromInt(100))
		if p.MaxDiscountAmount != nil {
			raw = decimal.Min(raw, dec(*p.MaxDiscountAmount))
		}
	default:
		raw = dec(p.DiscountValue)
	}

	raw = decimal.Min(raw, total)
	if raw.IsNegative() {
		raw = decimal.Zero
	}
	return toFloat(raw)
}

// EvaluatePromotion checks p and returns the discount amount.
func EvaluatePromotion(p *domain.Promotion, pc PromoContext) (float64, error) {
	if err := CheckPromotion(p, pc); err != nil {
		return 0, err
	}
	return Discount(p, pc.OrderTotal), nil
}
