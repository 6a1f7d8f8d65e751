//go:generate mockgen -source=contracts.go -destination=order_mocks_test.go -package=order_test

package order

import (
	"context"
	"time"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/ports/ordertx"
)

// CustomerReader loads customers.
type CustomerReader interface {
	Get(ctx context.Context, id int64) (*domain.Customer, error)
}

// RestaurantReader loads restaurants by internal or public id.
type RestaurantReader interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Restaurant, error)
}

// ItemReader loads catalog items in bulk.
type ItemReader interface {
	GetMany(ctx context.Context, ids []int64) (map[int64]domain.Item, error)
}

// ZoneReader loads delivery zone tariffs.
type ZoneReader interface {
	GetByType(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error)
}

// Repository persists orders.
type Repository interface {
	WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) error
	Get(ctx context.Context, id int64) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Order, error)
}

// EventPublisher announces order changes to other services.
type EventPublisher interface {
	OrderCreated(ctx context.Context, o *domain.Order) error
	OrderStatusChanged(ctx context.Context, o *domain.Order, from domain.OrderStatus) error
}

// NumberFactory generates order numbers.
type NumberFactory interface {
	Next(now time.Time) string
}
