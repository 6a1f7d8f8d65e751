package handlers

import (
	"context"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/service/auth"
	"service-food-delivery/internal/service/catalog"
)

// AuthUsecase registers customers and issues tokens.
type AuthUsecase interface {
	Signup(ctx context.Context, in auth.SignupInput) (*auth.Session, error)
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Me(ctx context.Context, id int64) (*domain.Customer, error)
}

// CatalogUsecase manages restaurants and their items.
type CatalogUsecase interface {
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, ref string) (*domain.Restaurant, error)
	CreateItem(ctx context.Context, in catalog.ItemInput) (*domain.Item, error)
	ListItems(ctx context.Context, restaurantRef string) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, u domain.PartialItemUpdate) (*domain.Item, error)
}

// ZoneUsecase manages delivery zone tariffs.
type ZoneUsecase interface {
	Create(ctx context.Context, z *domain.DeliveryZone) error
	List(ctx context.Context) ([]domain.DeliveryZone, error)
	Get(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error)
	UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (*domain.DeliveryZone, error)
}

// PromotionUsecase manages promotion codes.
type PromotionUsecase interface {
	Create(ctx context.Context, p *domain.Promotion) error
	List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// OrderUsecase prices, stores and tracks orders.
type OrderUsecase interface {
	Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, ref string, customerID int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset *int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, ref string, status domain.OrderStatus, customerID int64) (*domain.Order, error)
}
