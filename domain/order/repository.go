package order

import (
	"context"

	"orderservice/domain/shared"
)

// Repository Order aggregate persistence port. The core never retries
// against it; failures propagate to the caller as-is.
type Repository interface {
	// Save Persist the aggregate and return the persisted state
	Save(ctx context.Context, order *Order) (*Order, error)

	// FindByID Load an order by its internal id
	FindByID(ctx context.Context, id shared.OrderID) (*Order, error)

	// FindByTrackingID Load an order by its customer-facing tracking id
	FindByTrackingID(ctx context.Context, trackingID TrackingID) (*Order, error)
}

// CustomerRepository Customer read model port, used only to verify the
// ordering customer exists.
type CustomerRepository interface {
	Exists(ctx context.Context, customerID shared.CustomerID) (bool, error)
}

// RestaurantRepository Restaurant read model port. Returns a snapshot
// restricted to the requested products, carrying their confirmed names and
// prices plus the restaurant's activity flag.
type RestaurantRepository interface {
	FindRestaurantInformation(ctx context.Context, restaurantID shared.RestaurantID, productIDs []shared.ProductID) (*Restaurant, error)
}
