package zone

import (
	"context"
	"time"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
)

// Service manages delivery zone tariffs.
type Service struct {
	repo             Repository
	cache            Invalidator
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a zone Service. cache may be nil.
func NewService(r Repository, cache Invalidator, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, cache: cache, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func invalidZone(zt domain.ZoneType) error {
	return apperr.Invalidf("invalid zoneType '%s', must be Urban, Suburban, or Remote", zt)
}

func validateCreate(z *domain.DeliveryZone) error {
	if z == nil {
		return apperr.Invalidf("zoneType, baseFee and perKmRate are required")
	}
	if !z.ZoneType.Valid() {
		return invalidZone(z.ZoneType)
	}
	if z.BaseFee < 0 || z.PerKmRate < 0 {
		return apperr.Invalidf("baseFee and perKmRate must not be negative")
	}
	return nil
}

func validateUpdate(u domain.PartialZoneUpdate) error {
	if !u.ZoneType.Valid() {
		return invalidZone(u.ZoneType)
	}
	if u.BaseFee == nil && u.PerKmRate == nil && u.IsActive == nil {
		return apperr.Invalidf("nothing to update")
	}
	if u.BaseFee != nil && *u.BaseFee < 0 {
		return apperr.Invalidf("baseFee must not be negative")
	}
	if u.PerKmRate != nil && *u.PerKmRate < 0 {
		return apperr.Invalidf("perKmRate must not be negative")
	}
	return nil
}

// Create stores a new active zone. One zone per type.
func (s *Service) Create(ctx context.Context, z *domain.DeliveryZone) error {
	if err := validateCreate(z); err != nil {
		return err
	}
	z.IsActive = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, z); err != nil {
		return err
	}
	s.invalidate(ctx, z.ZoneType)
	return nil
}

// List returns all zones.
func (s *Service) List(ctx context.Context) ([]domain.DeliveryZone, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Get returns the zone of the given type.
func (s *Service) Get(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error) {
	if !zoneType.Valid() {
		return nil, invalidZone(zoneType)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	z, err := s.repo.GetByType(ctx, zoneType)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, apperr.NotFoundf("delivery zone not found")
	}
	return z, nil
}

// UpdatePartial changes fees or the active flag and drops the cached tariff.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (*domain.DeliveryZone, error) {
	if err := validateUpdate(u); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	z, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, apperr.NotFoundf("delivery zone not found")
	}
	s.invalidate(ctx, z.ZoneType)

	s.logger.Info("delivery zone updated",
		logx.String("event", "zone_updated"),
		logx.String("zone_type", string(z.ZoneType)),
		logx.Float64("base_fee", z.BaseFee),
		logx.Float64("per_km_rate", z.PerKmRate),
		logx.Bool("is_active", z.IsActive),
	)
	return z, nil
}

func (s *Service) invalidate(ctx context.Context, zt domain.ZoneType) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, zt); err != nil {
		s.logger.Warn("zone cache invalidation failed",
			logx.String("zone_type", string(zt)),
			logx.Err(err),
		)
	}
}
