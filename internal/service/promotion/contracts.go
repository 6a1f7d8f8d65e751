package promotion

import (
	"context"
	"time"

	"service-food-delivery/internal/domain"
)

// promotionRepository defines storage operations required by the promotion service.
type promotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) error
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
