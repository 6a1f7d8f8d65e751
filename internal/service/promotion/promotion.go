package promotion

import (
	"context"
	"strings"
	"time"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/pricing"
)

// Service manages promotion codes.
type Service struct {
	repo             promotionRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a promotion Service.
func NewService(r promotionRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(p *domain.Promotion) error {
	if p == nil {
		return apperr.Invalidf("missing required fields")
	}
	p.Code = pricing.NormalizeCode(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	if p.Code == "" || p.Name == "" || p.StartDate.IsZero() || p.EndDate.IsZero() {
		return apperr.Invalidf("missing required fields")
	}
	if !p.Type.Valid() {
		return apperr.Invalidf("invalid promotion type '%s'", p.Type)
	}
	if !p.DiscountType.Valid() {
		return apperr.Invalidf("invalid discount type '%s'", p.DiscountType)
	}
	if p.DiscountValue < 0 || p.MinOrderAmount < 0 {
		return apperr.Invalidf("discount value and minimum order amount must not be negative")
	}
	if p.DiscountType == domain.DiscountPercentage && p.DiscountValue > 100 {
		return apperr.Invalidf("percentage discount must not exceed 100")
	}
	if p.MaxDiscountAmount != nil && *p.MaxDiscountAmount < 0 {
		return apperr.Invalidf("maximum discount amount must not be negative")
	}
	if p.UsageLimit != nil && *p.UsageLimit < 0 {
		return apperr.Invalidf("usage limit must not be negative")
	}
	if !p.StartDate.Before(p.EndDate) {
		return apperr.Invalidf("endDate must be after startDate")
	}

	switch p.Type {
	case domain.PromoRestaurantSpecific:
		if p.RestaurantID == nil || strings.TrimSpace(*p.RestaurantID) == "" {
			return apperr.Invalidf("restaurantId is required for restaurant_specific promotions")
		}
		id := strings.ToUpper(strings.TrimSpace(*p.RestaurantID))
		p.RestaurantID = &id
	case domain.PromoZoneSpecific:
		if p.ZoneType == nil || !p.ZoneType.Valid() {
			return apperr.Invalidf("a valid zoneType is required for zone_specific promotions")
		}
	}
	return nil
}

// Create stores a new promotion. Codes are unique and stored uppercase.
func (s *Service) Create(ctx context.Context, p *domain.Promotion) error {
	if err := validateCreate(p); err != nil {
		return err
	}
	p.IsActive = true
	p.UsedCount = 0

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.logger.Info("promotion created",
		logx.String("event", "promo_created"),
		logx.String("promo_code", p.Code),
		logx.String("type", string(p.Type)),
	)
	return nil
}

// List returns promotions newest first.
func (s *Service) List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// GetByCode looks a promotion up case-insensitively.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	code = pricing.NormalizeCode(code)
	if code == "" {
		return nil, apperr.Invalidf("promotion code is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("promotion not found")
	}
	return p, nil
}

// SweepExpired deactivates promotions whose end date has passed.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.repo.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired promotions deactivated",
			logx.String("event", "promo_expired"),
			logx.Int64("count", n),
		)
	}
	return n, nil
}
