package order

import (
	"orderservice/domain/shared"
)

// DomainService Stateless orchestration over the Order aggregate. It
// sequences reconciliation, validation and transitions, and stamps the
// resulting domain events with one clock reading per operation. It never
// touches repositories or publishers; persistence and messaging are the
// application layer's concern.
type DomainService struct {
	clock shared.Clock
}

// NewDomainService Create the domain service with an injected clock
func NewDomainService(clock shared.Clock) *DomainService {
	return &DomainService{clock: clock}
}

// ValidateAndInitiateOrder Verifies the restaurant is active, reconciles
// the order items against the restaurant snapshot, validates the order and
// initializes it. On success the order is PENDING and the returned event
// carries it.
func (s *DomainService) ValidateAndInitiateOrder(order *Order, restaurant *Restaurant) (*CreatedEvent, error) {
	if !restaurant.Active() {
		return nil, NewRestaurantInactiveError(restaurant.ID())
	}

	s.setOrderProductInformation(order, restaurant)

	if err := order.ValidateOrder(); err != nil {
		return nil, err
	}
	if err := order.InitializeOrder(); err != nil {
		return nil, err
	}
	return NewCreatedEvent(order, s.clock.Now()), nil
}

// PayOrder PENDING -> PAID
func (s *DomainService) PayOrder(order *Order) (*PaidEvent, error) {
	if err := order.Pay(); err != nil {
		return nil, err
	}
	return NewPaidEvent(order, s.clock.Now()), nil
}

// ApproveOrder PAID -> APPROVED. No event: downstream services are not
// notified of approval by this core.
func (s *DomainService) ApproveOrder(order *Order) error {
	return order.Approve()
}

// CancelOrderPayment PAID -> CANCELLING, recording the failure messages.
// The returned event drives the compensating refund request.
func (s *DomainService) CancelOrderPayment(order *Order, failureMessages []string) (*CancelledEvent, error) {
	if err := order.InitCancel(failureMessages); err != nil {
		return nil, err
	}
	return NewCancelledEvent(order, s.clock.Now()), nil
}

// CancelOrder PENDING or CANCELLING -> CANCELLED. No event.
func (s *DomainService) CancelOrder(order *Order) error {
	return order.Cancel()
}

// setOrderProductInformation overwrites the submitted product name/price of
// every item whose product id appears in the restaurant snapshot. Items
// referencing unknown products stay as submitted and will fail the price
// check in ValidateOrder, since their price can never be confirmed.
func (s *DomainService) setOrderProductInformation(order *Order, restaurant *Restaurant) {
	itemsByProduct := make(map[shared.ProductID]*OrderItem, len(order.Items()))
	for _, item := range order.Items() {
		itemsByProduct[item.Product().ID()] = item
	}

	for _, product := range restaurant.Products() {
		if item, ok := itemsByProduct[product.ID()]; ok {
			item.Product().UpdateWithConfirmedNameAndPrice(product.Name(), product.Price())
		}
	}
}
