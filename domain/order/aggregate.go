/*
Package order - the order subdomain core.

The Order aggregate root is the single source of truth for order validity.
All state lives behind private fields and changes only through the legal
transition methods below; every method checks its guard before touching any
state, so a failed call always leaves the aggregate exactly as it was. That
check-then-set discipline is what makes duplicate message deliveries safe:
a replayed transition surfaces as a domain error instead of a silent double
state change.
*/
package order

import (
	"orderservice/domain/shared"

	"github.com/google/uuid"
)

// Status Order state machine position. The zero value means the order has
// been assembled but not yet initialized by the domain service.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPaid       Status = "PAID"
	StatusApproved   Status = "APPROVED"
	StatusCancelling Status = "CANCELLING"
	StatusCancelled  Status = "CANCELLED"
)

// TrackingID Customer-facing opaque identifier, distinct from the internal
// order id, used for status lookups.
type TrackingID struct {
	value uuid.UUID
}

func NewTrackingID() TrackingID {
	return TrackingID{value: uuid.New()}
}

func TrackingIDFrom(v uuid.UUID) TrackingID {
	return TrackingID{value: v}
}

func ParseTrackingID(s string) (TrackingID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return TrackingID{}, err
	}
	return TrackingID{value: v}, nil
}

func (id TrackingID) Value() uuid.UUID { return id.value }
func (id TrackingID) String() string { return id.value.String() }
func (id TrackingID) IsZero() bool { return id.value == uuid.Nil }

// Order Order aggregate root. It exclusively owns its items and delivery
// address; identifiers and money are held by value.
type Order struct {
	id              shared.OrderID
	customerID      shared.CustomerID
	restaurantID    shared.RestaurantID
	deliveryAddress StreetAddress
	price           shared.Money
	items           []*OrderItem

	// Assigned by InitializeOrder, zero before that
	trackingID TrackingID
	status     Status

	failureMessages []string
}

// OrderParams Required fields for assembling a new, not-yet-validated order.
// The constructor enforces presence at assembly time; content validation is
// the job of ValidateOrder.
type OrderParams struct {
	CustomerID      shared.CustomerID
	RestaurantID    shared.RestaurantID
	DeliveryAddress StreetAddress
	Price           shared.Money
	Items           []*OrderItem
}

// NewOrder Assemble an unvalidated order from a create command. The order
// has no id, no tracking id and an unset status until the domain service
// validates and initializes it.
func NewOrder(params OrderParams) (*Order, error) {
	switch {
	case params.CustomerID.IsZero():
		return nil, NewMissingRequiredFieldError("customerId")
	case params.RestaurantID.IsZero():
		return nil, NewMissingRequiredFieldError("restaurantId")
	case params.DeliveryAddress == StreetAddress{}:
		return nil, NewMissingRequiredFieldError("deliveryAddress")
	case len(params.Items) == 0:
		return nil, NewMissingRequiredFieldError("items")
	}

	return &Order{
		customerID:      params.CustomerID,
		restaurantID:    params.RestaurantID,
		deliveryAddress: params.DeliveryAddress,
		price:           params.Price,
		items:           params.Items,
	}, nil
}

// ReconstructionParams Full state for rebuilding the aggregate from
// persistence. Only for repository implementations.
type ReconstructionParams struct {
	ID              shared.OrderID
	CustomerID      shared.CustomerID
	RestaurantID    shared.RestaurantID
	DeliveryAddress StreetAddress
	Price           shared.Money
	Items           []*OrderItem
	TrackingID      TrackingID
	Status          Status
	FailureMessages []string
}

// Restore Rebuild an order aggregate from persisted state, bypassing the
// state machine. Only for repository implementations.
func Restore(params ReconstructionParams) *Order {
	return &Order{
		id:              params.ID,
		customerID:      params.CustomerID,
		restaurantID:    params.RestaurantID,
		deliveryAddress: params.DeliveryAddress,
		price:           params.Price,
		items:           params.Items,
		trackingID:      params.TrackingID,
		status:          params.Status,
		failureMessages: params.FailureMessages,
	}
}

// ValidateOrder Pure check, no mutation. Verifies the total price is
// strictly positive, every item's price matches its product's confirmed
// price, and the item subtotals sum exactly to the order total. Runs before
// InitializeOrder on a new order.
func (o *Order) ValidateOrder() error {
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// InitializeOrder Assigns a fresh order id and tracking id, moves the order
// to PENDING and hands each item its sequential id starting at 1. Guarded
// against re-initialization: legal only while status and id are both unset.
func (o *Order) InitializeOrder() error {
	if o.status != "" || !o.id.IsZero() {
		return NewAlreadyInitializedError()
	}

	o.id = shared.NewOrderID()
	o.trackingID = NewTrackingID()
	o.status = StatusPending
	o.initializeOrderItems()
	return nil
}

// Pay Legal only from PENDING
func (o *Order) Pay() error {
	if o.status != StatusPending {
		return NewInvalidStateTransitionError(o.status, "pay")
	}
	o.status = StatusPaid
	return nil
}

// Approve Legal only from PAID; terminal success state
func (o *Order) Approve() error {
	if o.status != StatusPaid {
		return NewInvalidStateTransitionError(o.status, "approve")
	}
	o.status = StatusApproved
	return nil
}

// InitCancel Begin the compensation path for a paid order. Legal only from
// PAID; the non-empty entries of failureMessages are appended to whatever
// messages the order already carries (messages are never dropped and never
// deduplicated).
func (o *Order) InitCancel(failureMessages []string) error {
	if o.status != StatusPaid {
		return NewInvalidStateTransitionError(o.status, "initCancel")
	}
	o.status = StatusCancelling
	o.appendFailureMessages(failureMessages)
	return nil
}

// Cancel Terminal failure state. Legal from CANCELLING (refund confirmed)
// or directly from PENDING (payment never completed).
func (o *Order) Cancel() error {
	if !(o.status == StatusCancelling || o.status == StatusPending) {
		return NewInvalidStateTransitionError(o.status, "cancel")
	}
	o.status = StatusCancelled
	return nil
}

func (o *Order) ID() shared.OrderID { return o.id }
func (o *Order) CustomerID() shared.CustomerID { return o.customerID }
func (o *Order) RestaurantID() shared.RestaurantID { return o.restaurantID }
func (o *Order) DeliveryAddress() StreetAddress { return o.deliveryAddress }
func (o *Order) Price() shared.Money { return o.price }
func (o *Order) TrackingID() TrackingID { return o.trackingID }
func (o *Order) Status() Status { return o.status }

// Items Copy of the item list. The items themselves stay owned by the
// aggregate; callers must not mutate them.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// FailureMessages Copy of the accumulated failure messages
func (o *Order) FailureMessages() []string {
	messages := make([]string, len(o.failureMessages))
	copy(messages, o.failureMessages)
	return messages
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return NewPriceNotPositiveError()
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := shared.ZeroMoney()
	for _, item := range o.items {
		if !item.isPriceValid() {
			return NewItemPriceMismatchError(item.Price(), item.Product().ID())
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.Equals(itemsTotal) {
		return NewTotalPriceMismatchError(o.price, itemsTotal)
	}
	return nil
}

func (o *Order) initializeOrderItems() {
	var itemID OrderItemID = 1
	for _, item := range o.items {
		item.initialize(o.id, itemID)
		itemID++
	}
}

// appendFailureMessages keeps every non-empty message, in order, duplicates
// included. Filtering empties here means a response carrying only blank
// strings leaves the list untouched.
func (o *Order) appendFailureMessages(messages []string) {
	for _, message := range messages {
		if message != "" {
			o.failureMessages = append(o.failureMessages, message)
		}
	}
}
