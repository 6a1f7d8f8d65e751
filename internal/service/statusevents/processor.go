package statusevents

import (
	"context"
	"strings"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/logx"
)

// Processor applies order status events to orders.
type Processor struct {
	orders  StatusUpdater
	factory *statusFactory
	logger  logx.Logger
}

// NewProcessor creates a new Processor.
func NewProcessor(orders StatusUpdater, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{
		orders:  orders,
		factory: newStatusFactory(),
		logger:  logger,
	}
}

// Handle processes a single Event. Unknown statuses are ignored.
// Rejections by the state machine come back as apperr errors.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	number := strings.TrimSpace(e.OrderNumber)
	if number == "" {
		return apperr.Invalidf("order number is required")
	}

	status, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("status event ignored",
			logx.String("event_id", e.EventID),
			logx.String("order_number", number),
			logx.String("status", e.Status),
		)
		return nil
	}

	o, err := p.orders.UpdateStatus(ctx, number, status, 0)
	if err != nil {
		return err
	}

	p.logger.Info("status event applied",
		logx.String("event_id", e.EventID),
		logx.String("order_number", o.OrderNumber),
		logx.String("status", string(o.Status)),
	)
	return nil
}
