package statusevents

import "time"

// Event is an order status update coming from the restaurant or courier side.
type Event struct {
	EventID     string
	OrderNumber string
	Status      string
	OccurredAt  time.Time
}
