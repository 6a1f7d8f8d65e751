package ordertx

import (
	"context"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// Repository is the set of writes performed inside one order transaction.
type Repository interface {
	GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error)
	IncrementPromotionUsage(ctx context.Context, code string) (bool, error)
	InsertOrder(ctx context.Context, o *domain.Order) error
	ClearFirstOrder(ctx context.Context, customerID int64) error
	GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

// ErrOrderNumberTaken is returned by InsertOrder when the order number collides.
// The transaction stays usable and the insert may be retried with a new number.
var ErrOrderNumberTaken = &apperr.Error{Kind: apperr.ErrConflict, Msg: "order number already exists"}
