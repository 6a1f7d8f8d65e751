package statusevents

import (
	"strings"

	"service-food-delivery/internal/domain"
)

type statusFactory struct {
	byName map[string]domain.OrderStatus
}

func newStatusFactory() *statusFactory {
	return &statusFactory{
		byName: map[string]domain.OrderStatus{
			"confirmed":        domain.OrderConfirmed,
			"accepted":         domain.OrderConfirmed,
			"preparing":        domain.OrderPreparing,
			"cooking":          domain.OrderPreparing,
			"out_for_delivery": domain.OrderOutForDelivery,
			"delivering":       domain.OrderOutForDelivery,
			"delivered":        domain.OrderDelivered,
			"completed":        domain.OrderDelivered,
			"cancelled":        domain.OrderCancelled,
			"canceled":         domain.OrderCancelled,
		},
	}
}

func (f *statusFactory) get(status string) (domain.OrderStatus, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	st, ok := f.byName[status]
	return st, ok
}
