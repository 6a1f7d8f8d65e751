package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// Line is a priced order line.
type Line struct {
	Price    float64
	Quantity int
}

// BasePrice returns Σ price × quantity rounded to cents.
func BasePrice(lines []Line) (float64, error) {
	if len(lines) == 0 {
		return 0, apperr.Invalidf("order must contain at least one item")
	}
	sum := decimal.Zero
	for _, l := range lines {
		if l.Quantity < 1 {
			return 0, apperr.Invalidf("quantity must be at least 1")
		}
		sum = sum.Add(dec(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return toFloat(sum), nil
}

// QuoteInput holds everything the delivery part of a quote needs.
type QuoteInput struct {
	BasePrice float64
	From      domain.Coordinate
	To        domain.Coordinate
	Zone      *domain.DeliveryZone
	ZoneType  domain.ZoneType
	At        time.Time
}

// Quote is the priced order before the promotion is applied.
type Quote struct {
	DistanceKm     float64
	BasePrice      float64
	ZoneBaseFee    float64
	DistanceCost   float64
	PeakMultiplier float64
	PeakSurcharge  float64
	DeliveryFee    float64
}

// OrderTotal is basePrice + deliveryFee, the amount promotions apply to.
func (q Quote) OrderTotal() float64 {
	return toFloat(dec(q.BasePrice).Add(dec(q.DeliveryFee)))
}

// Total returns round2(basePrice + deliveryFee − discount).
func (q Quote) Total(discount float64) float64 {
	return toFloat(dec(q.BasePrice).Add(dec(q.DeliveryFee)).Sub(dec(discount)))
}

// BuildQuote runs distance, delivery fee and surcharge.
func BuildQuote(in QuoteInput) (Quote, error) {
	distance := DistanceKm(in.From, in.To)
	fee, err := DeliveryFee(in.Zone, in.ZoneType, distance)
	if err != nil {
		return Quote{}, err
	}
	s := ApplySurcharge(fee.Subtotal, in.At)

	return Quote{
		DistanceKm:     distance,
		BasePrice:      in.BasePrice,
		ZoneBaseFee:    fee.ZoneBaseFee,
		DistanceCost:   fee.DistanceCost,
		PeakMultiplier: s.Multiplier,
		PeakSurcharge:  s.Amount,
		DeliveryFee:    s.DeliveryFee,
	}, nil
}
