//go:generate mockgen -source=contracts.go -destination=catalog_mocks_test.go -package=catalog

package catalog

import (
	"context"

	"service-food-delivery/internal/domain"
)

type restaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Restaurant, error)
	ListActive(ctx context.Context) ([]domain.Restaurant, error)
}

type itemRepository interface {
	Create(ctx context.Context, it *domain.Item) error
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error)
	UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (*domain.Item, error)
}
