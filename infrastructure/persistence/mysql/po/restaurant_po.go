package po

import "github.com/shopspring/decimal"

// RestaurantPO Restaurant read model row, replicated from the restaurant
// service.
type RestaurantPO struct {
	ID     string `gorm:"primaryKey;size:36"`
	Name   string `gorm:"size:100;not null"`
	Active bool   `gorm:"not null"`
}

func (RestaurantPO) TableName() string {
	return "order_restaurants"
}

// ProductPO Product read model row. Price is the authoritative price the
// order validation compares against; unavailable products are excluded
// from restaurant snapshots.
type ProductPO struct {
	ID           string          `gorm:"primaryKey;size:36"`
	RestaurantID string          `gorm:"size:36;index;not null"`
	Name         string          `gorm:"size:255;not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available    bool            `gorm:"not null"`
}

func (ProductPO) TableName() string {
	return "order_products"
}
