package app

import (
	"context"
	"errors"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/service/statusevents"
	"service-food-delivery/internal/transport/kafka"
)

type statusEventHandler interface {
	Handle(ctx context.Context, e statusevents.Event) error
}

// makeStatusEventsHandler adapts the processor to the consumer.
// Domain rejections are permanent; anything else is retried by redelivery.
func makeStatusEventsHandler(p statusEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, e statusevents.Event) error {
		err := p.Handle(ctx, e)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrBusinessRule) ||
			errors.Is(err, apperr.ErrNotFound) ||
			errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
