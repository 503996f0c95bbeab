/*
Package order - order subdomain error definitions.

Design:
1. Sentinel errors support type-safe errors.Is() checks
2. Constructors capture the stack at the point the error is raised
3. Every error is raised before any aggregate mutation, so a failed
   operation always leaves the aggregate unchanged
*/
package order

import (
	"errors"
	"fmt"

	"orderservice/domain/shared"
)

var (
	// ErrOrderNotFound Order lookup missed
	ErrOrderNotFound = errors.New("order not found")

	// ErrCustomerNotFound Customer referenced by the command does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrRestaurantNotFound Restaurant referenced by the command does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidStateTransition Operation not legal from the current status
	ErrInvalidStateTransition = errors.New("order is not in correct state for operation")

	// ErrAlreadyInitialized Order was initialized before
	ErrAlreadyInitialized = errors.New("order is not in correct state for initialization")

	// ErrRestaurantInactive Restaurant is not taking orders
	ErrRestaurantInactive = errors.New("restaurant is not active")

	// ErrPriceNotPositive Total price absent or not greater than zero
	ErrPriceNotPositive = errors.New("total price must be greater than zero")

	// ErrItemPriceMismatch Item unit price differs from the confirmed product price
	ErrItemPriceMismatch = errors.New("order item price is not valid")

	// ErrTotalPriceMismatch Sum of item subtotals differs from the order total
	ErrTotalPriceMismatch = errors.New("total price is not equal to items total")

	// ErrMissingRequiredField Order assembled without a required field
	ErrMissingRequiredField = errors.New("order is missing a required field")
)

// NewOrderNotFoundError Lookup miss by tracking id or order id
func NewOrderNotFoundError(id string) error {
	return &orderDomainError{
		sentinel: ErrOrderNotFound,
		message:  "could not find order: " + id,
		stack:    shared.CaptureStack(3),
	}
}

// NewCustomerNotFoundError Unknown customer on the create command
func NewCustomerNotFoundError(customerID shared.CustomerID) error {
	return &orderDomainError{
		sentinel: ErrCustomerNotFound,
		message:  "could not find customer with id: " + customerID.String(),
		stack:    shared.CaptureStack(3),
	}
}

// NewRestaurantNotFoundError Unknown restaurant on the create command
func NewRestaurantNotFoundError(restaurantID shared.RestaurantID) error {
	return &orderDomainError{
		sentinel: ErrRestaurantNotFound,
		message:  "could not find restaurant with id: " + restaurantID.String(),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidStateTransitionError Illegal transition, names the attempted operation
func NewInvalidStateTransitionError(current Status, operation string) error {
	return &orderDomainError{
		sentinel: ErrInvalidStateTransition,
		message:  fmt.Sprintf("order in state %s is not in correct state for %s operation", statusLabel(current), operation),
		stack:    shared.CaptureStack(3),
	}
}

// NewAlreadyInitializedError Re-initialization guard tripped
func NewAlreadyInitializedError() error {
	return &orderDomainError{
		sentinel: ErrAlreadyInitialized,
		message:  "order is not in correct state for initialization",
		stack:    shared.CaptureStack(3),
	}
}

// NewRestaurantInactiveError Restaurant snapshot reports inactive
func NewRestaurantInactiveError(restaurantID shared.RestaurantID) error {
	return &orderDomainError{
		sentinel: ErrRestaurantInactive,
		message:  "restaurant with id " + restaurantID.String() + " is currently not active",
		stack:    shared.CaptureStack(3),
	}
}

// NewPriceNotPositiveError Total price validation failure
func NewPriceNotPositiveError() error {
	return &orderDomainError{
		sentinel: ErrPriceNotPositive,
		message:  "total price must be greater than zero",
		stack:    shared.CaptureStack(3),
	}
}

// NewItemPriceMismatchError Item carries a price the product does not confirm
func NewItemPriceMismatchError(price shared.Money, productID shared.ProductID) error {
	return &orderDomainError{
		sentinel: ErrItemPriceMismatch,
		message:  fmt.Sprintf("order item price %s is not valid for product %s", price, productID),
		stack:    shared.CaptureStack(3),
	}
}

// NewTotalPriceMismatchError Order total does not equal the sum of subtotals
func NewTotalPriceMismatchError(total, itemsTotal shared.Money) error {
	return &orderDomainError{
		sentinel: ErrTotalPriceMismatch,
		message:  fmt.Sprintf("total price %s is not equal to order items total %s", total, itemsTotal),
		stack:    shared.CaptureStack(3),
	}
}

// NewMissingRequiredFieldError Order assembly validation failure
func NewMissingRequiredFieldError(field string) error {
	return &orderDomainError{
		sentinel: ErrMissingRequiredField,
		field:    field,
		message:  "order requires field: " + field,
		stack:    shared.CaptureStack(3),
	}
}

// orderDomainError implements error, Unwrap and shared.Stacker
type orderDomainError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *orderDomainError) Error() string {
	return e.message
}

func (e *orderDomainError) Unwrap() error {
	return e.sentinel
}

func (e *orderDomainError) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}
	return shared.FormatStack(e.stack)
}

func statusLabel(s Status) string {
	if s == "" {
		return "UNINITIALIZED"
	}
	return string(s)
}
