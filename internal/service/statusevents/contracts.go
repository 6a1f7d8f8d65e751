//go:generate mockgen -source=contracts.go -destination=statusevents_mocks_test.go -package=statusevents_test

package statusevents

import (
	"context"

	"service-food-delivery/internal/domain"
)

// StatusUpdater abstracts the order service operation the processor drives.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, ref string, status domain.OrderStatus, customerID int64) (*domain.Order, error)
}
