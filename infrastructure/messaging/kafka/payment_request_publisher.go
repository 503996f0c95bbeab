package kafka

import (
	"context"

	"go.uber.org/zap"

	"orderservice/domain/order"
	"orderservice/domain/shared"
	"orderservice/pkg/logger"
)

// PaymentRequestPublisher Kafka adapter for the payment request port.
// Both methods publish on the payment request topic, keyed by order id.
type PaymentRequestPublisher struct {
	producer *Producer
}

func NewPaymentRequestPublisher(producer *Producer) *PaymentRequestPublisher {
	return &PaymentRequestPublisher{producer: producer}
}

// PublishCreated Request payment for a freshly initiated order
func (p *PaymentRequestPublisher) PublishCreated(ctx context.Context, event *order.CreatedEvent) {
	if err := shared.ValidateEvent(event); err != nil {
		logger.Error("Dropping malformed order created event", zap.Error(err))
		return
	}
	req := paymentRequestFromCreatedEvent(event)
	p.producer.Publish(ctx, req.OrderID, req)
}

// PublishCancelled Request a compensating refund for a cancelling order
func (p *PaymentRequestPublisher) PublishCancelled(ctx context.Context, event *order.CancelledEvent) {
	if err := shared.ValidateEvent(event); err != nil {
		logger.Error("Dropping malformed order cancelled event", zap.Error(err))
		return
	}
	req := paymentRequestFromCancelledEvent(event)
	p.producer.Publish(ctx, req.OrderID, req)
}
