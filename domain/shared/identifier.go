package shared

import "github.com/google/uuid"

// Typed identifiers shared across subdomains. Each one wraps a UUID by value,
// so equality is the equality of the wrapped value and the zero value means
// "not yet assigned". Wrapping in distinct types keeps an OrderID from ever
// being passed where a CustomerID is expected.

// OrderID Order aggregate identity
type OrderID struct {
	value uuid.UUID
}

// NewOrderID Generate a fresh random order id
func NewOrderID() OrderID {
	return OrderID{value: uuid.New()}
}

// OrderIDFrom Wrap an existing UUID value
func OrderIDFrom(v uuid.UUID) OrderID {
	return OrderID{value: v}
}

// ParseOrderID Parse the opaque string encoding used on the wire
func ParseOrderID(s string) (OrderID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: v}, nil
}

func (id OrderID) Value() uuid.UUID { return id.value }
func (id OrderID) String() string { return id.value.String() }
func (id OrderID) IsZero() bool { return id.value == uuid.Nil }

// CustomerID Customer identity carried from the upstream command
type CustomerID struct {
	value uuid.UUID
}

func CustomerIDFrom(v uuid.UUID) CustomerID {
	return CustomerID{value: v}
}

func ParseCustomerID(s string) (CustomerID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{value: v}, nil
}

func (id CustomerID) Value() uuid.UUID { return id.value }
func (id CustomerID) String() string { return id.value.String() }
func (id CustomerID) IsZero() bool { return id.value == uuid.Nil }

// RestaurantID Restaurant identity carried from the upstream command
type RestaurantID struct {
	value uuid.UUID
}

func RestaurantIDFrom(v uuid.UUID) RestaurantID {
	return RestaurantID{value: v}
}

func ParseRestaurantID(s string) (RestaurantID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return RestaurantID{}, err
	}
	return RestaurantID{value: v}, nil
}

func (id RestaurantID) Value() uuid.UUID { return id.value }
func (id RestaurantID) String() string { return id.value.String() }
func (id RestaurantID) IsZero() bool { return id.value == uuid.Nil }

// ProductID Product identity, used to match order items against the
// restaurant snapshot during reconciliation
type ProductID struct {
	value uuid.UUID
}

func ProductIDFrom(v uuid.UUID) ProductID {
	return ProductID{value: v}
}

func ParseProductID(s string) (ProductID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{value: v}, nil
}

func (id ProductID) Value() uuid.UUID { return id.value }
func (id ProductID) String() string { return id.value.String() }
func (id ProductID) IsZero() bool { return id.value == uuid.Nil }
