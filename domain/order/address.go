package order

import "github.com/google/uuid"

// StreetAddress Delivery address value object. The id only exists for
// persistence; equality is decided by street, postal code and city alone.
type StreetAddress struct {
	id         uuid.UUID
	street     string
	postalCode string
	city       string
}

// NewStreetAddress Create an address with a fresh surrogate id
func NewStreetAddress(street, postalCode, city string) StreetAddress {
	return StreetAddress{
		id:         uuid.New(),
		street:     street,
		postalCode: postalCode,
		city:       city,
	}
}

// RestoreStreetAddress Reconstruct an address from persistence
func RestoreStreetAddress(id uuid.UUID, street, postalCode, city string) StreetAddress {
	return StreetAddress{
		id:         id,
		street:     street,
		postalCode: postalCode,
		city:       city,
	}
}

func (a StreetAddress) ID() uuid.UUID { return a.id }
func (a StreetAddress) Street() string { return a.street }
func (a StreetAddress) PostalCode() string { return a.postalCode }
func (a StreetAddress) City() string { return a.city }

// Equals Compares street, postal code and city; the surrogate id is excluded
func (a StreetAddress) Equals(other StreetAddress) bool {
	return a.street == other.street &&
		a.postalCode == other.postalCode &&
		a.city == other.city
}
