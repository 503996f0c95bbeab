package kafka

import (
	"context"

	"go.uber.org/zap"

	"orderservice/domain/order"
	"orderservice/domain/shared"
	"orderservice/pkg/logger"
)

// RestaurantApprovalRequestPublisher Kafka adapter for the restaurant
// approval request port, keyed by order id.
type RestaurantApprovalRequestPublisher struct {
	producer *Producer
}

func NewRestaurantApprovalRequestPublisher(producer *Producer) *RestaurantApprovalRequestPublisher {
	return &RestaurantApprovalRequestPublisher{producer: producer}
}

// PublishPaid Request approval for a paid order
func (p *RestaurantApprovalRequestPublisher) PublishPaid(ctx context.Context, event *order.PaidEvent) {
	if err := shared.ValidateEvent(event); err != nil {
		logger.Error("Dropping malformed order paid event", zap.Error(err))
		return
	}
	req := approvalRequestFromPaidEvent(event)
	p.producer.Publish(ctx, req.OrderID, req)
}
