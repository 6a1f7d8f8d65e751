//go:generate mockgen -source=contracts.go -destination=zone_mocks_test.go -package=zone_test

package zone

import (
	"context"

	"service-food-delivery/internal/domain"
)

// Repository defines storage operations required by the zone service.
type Repository interface {
	Create(ctx context.Context, z *domain.DeliveryZone) error
	GetByType(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error)
	List(ctx context.Context) ([]domain.DeliveryZone, error)
	UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (*domain.DeliveryZone, error)
}

// Invalidator drops cached zone tariffs.
type Invalidator interface {
	Invalidate(ctx context.Context, zoneType domain.ZoneType) error
}
