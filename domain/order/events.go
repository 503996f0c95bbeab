package order

import (
	"time"
)

// Domain events wrap the order after a successful transition together with
// a UTC timestamp supplied by the domain service's clock. They are created
// only by the domain service and consumed once by a publisher port.

// CreatedEvent Order moved to PENDING; triggers the payment request
type CreatedEvent struct {
	order     *Order
	createdAt time.Time
}

func NewCreatedEvent(order *Order, createdAt time.Time) *CreatedEvent {
	return &CreatedEvent{order: order, createdAt: createdAt}
}

func (e *CreatedEvent) EventName() string { return "order.created" }
func (e *CreatedEvent) OccurredOn() time.Time { return e.createdAt }
func (e *CreatedEvent) GetAggregateID() string { return e.order.ID().String() }
func (e *CreatedEvent) Order() *Order { return e.order }
func (e *CreatedEvent) CreatedAt() time.Time { return e.createdAt }

// PaidEvent Order moved to PAID; triggers the restaurant approval request
type PaidEvent struct {
	order     *Order
	createdAt time.Time
}

func NewPaidEvent(order *Order, createdAt time.Time) *PaidEvent {
	return &PaidEvent{order: order, createdAt: createdAt}
}

func (e *PaidEvent) EventName() string { return "order.paid" }
func (e *PaidEvent) OccurredOn() time.Time { return e.createdAt }
func (e *PaidEvent) GetAggregateID() string { return e.order.ID().String() }
func (e *PaidEvent) Order() *Order { return e.order }
func (e *PaidEvent) CreatedAt() time.Time { return e.createdAt }

// CancelledEvent Order moved to CANCELLING; triggers the compensating
// refund request toward the payment service
type CancelledEvent struct {
	order     *Order
	createdAt time.Time
}

func NewCancelledEvent(order *Order, createdAt time.Time) *CancelledEvent {
	return &CancelledEvent{order: order, createdAt: createdAt}
}

func (e *CancelledEvent) EventName() string { return "order.cancelled" }
func (e *CancelledEvent) OccurredOn() time.Time { return e.createdAt }
func (e *CancelledEvent) GetAggregateID() string { return e.order.ID().String() }
func (e *CancelledEvent) Order() *Order { return e.order }
func (e *CancelledEvent) CreatedAt() time.Time { return e.createdAt }
