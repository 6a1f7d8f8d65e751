package pricing

import (
	"github.com/shopspring/decimal"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// FeeBreakdown is the zone tariff applied to a distance.
// Subtotal is kept unrounded; rounding happens after the surcharge.
type FeeBreakdown struct {
	ZoneBaseFee  float64
	DistanceCost float64
	Subtotal     decimal.Decimal
}

// ZoneUnavailable is the error for a missing or inactive delivery zone.
func ZoneUnavailable(zone domain.ZoneType) error {
	return apperr.NotFoundf("delivery zone '%s' not found or inactive", zone)
}

// DeliveryFee applies the zone tariff to distanceKm.
func DeliveryFee(zone *domain.DeliveryZone, zoneType domain.ZoneType, distanceKm float64) (FeeBreakdown, error) {
	if zone == nil || !zone.IsActive {
		return FeeBreakdown{}, ZoneUnavailable(zoneType)
	}
	if distanceKm < 0 {
		return FeeBreakdown{}, apperr.Invalidf("distance must not be negative")
	}

	distanceCost := dec(distanceKm).Mul(dec(zone.PerKmRate))
	return FeeBreakdown{
		ZoneBaseFee:  zone.BaseFee,
		DistanceCost: toFloat(distanceCost),
		Subtotal:     dec(zone.BaseFee).Add(distanceCost),
	}, nil
}
