package order

import "orderservice/domain/shared"

// Restaurant Read-only snapshot of a restaurant, borrowed for a single
// validation call. It is the authoritative source for product names and
// prices, and carries the activity flag checked before any order is
// initiated. This core never persists it.
type Restaurant struct {
	id       shared.RestaurantID
	products []*Product
	active   bool
}

// RestaurantParams Snapshot assembly input
type RestaurantParams struct {
	ID       shared.RestaurantID
	Products []*Product
	Active   bool
}

// NewRestaurant Build a snapshot, typically from the restaurant read model
func NewRestaurant(params RestaurantParams) *Restaurant {
	return &Restaurant{
		id:       params.ID,
		products: params.Products,
		active:   params.Active,
	}
}

func (r *Restaurant) ID() shared.RestaurantID { return r.id }
func (r *Restaurant) Active() bool { return r.active }

// Products The snapshot's product list. Callers must treat it as read-only.
func (r *Restaurant) Products() []*Product { return r.products }
