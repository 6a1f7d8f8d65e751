package auth

import (
	"context"

	"service-food-delivery/internal/domain"
)

type customerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}
