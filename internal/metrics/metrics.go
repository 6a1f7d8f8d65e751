package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewOrdersCreatedTotal returns a Prometheus counter for committed orders
func NewOrdersCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})
}

// NewPromoRedemptionsTotal returns a Prometheus counter for promotion codes applied to committed orders
func NewPromoRedemptionsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "promo_redemptions_total",
		Help: "Total number of promotion codes redeemed",
	})
}

// NewOrderNumberRetriesTotal returns a Prometheus counter for regenerated order numbers after a collision
func NewOrderNumberRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_number_retries_total",
		Help: "Total number of order number regenerations after a unique violation",
	})
}
