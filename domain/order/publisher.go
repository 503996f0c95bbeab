package order

import "context"

// Publisher ports: one per downstream service, each mapping a domain event
// to an outbound message and handing it to the message bus keyed
// by order id. Publication is one-way, at-least-once and fire-and-forget:
// implementations swallow and log failures instead of returning them, and
// they never roll back aggregate state that is already persisted. That is
// why these methods return nothing.

// PaymentRequestPublisher Output port toward the payment service
type PaymentRequestPublisher interface {
	// PublishCreated Request payment for a freshly initiated order
	PublishCreated(ctx context.Context, event *CreatedEvent)

	// PublishCancelled Request a compensating refund for a cancelling order
	PublishCancelled(ctx context.Context, event *CancelledEvent)
}

// RestaurantApprovalRequestPublisher Output port toward the restaurant service
type RestaurantApprovalRequestPublisher interface {
	// PublishPaid Request approval for a paid order
	PublishPaid(ctx context.Context, event *PaidEvent)
}
