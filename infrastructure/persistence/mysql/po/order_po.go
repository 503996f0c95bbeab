/*
Package po holds the persistence objects for the MySQL schema. POs are pure
database mappings and contain no business logic; defining GORM associations
here is prohibited, the repositories manage related rows by hand.
*/
package po

import (
	"strings"
	"time"

	"orderservice/domain/order"
	"orderservice/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// failureMessageDelimiter joins the accumulated failure messages into one
// column. Messages never contain commas by contract with the upstream
// services.
const failureMessageDelimiter = ","

// OrderPO Order persistence object. The delivery address is denormalized
// into the order row; it is a value object fully owned by the order.
type OrderPO struct {
	ID              string          `gorm:"primaryKey;size:36"`
	CustomerID      string          `gorm:"size:36;index;not null"`
	RestaurantID    string          `gorm:"size:36;not null"`
	TrackingID      string          `gorm:"size:36;uniqueIndex;not null"`
	AddressID       string          `gorm:"size:36;not null"`
	Street          string          `gorm:"size:100;not null"`
	PostalCode      string          `gorm:"size:20;not null"`
	City            string          `gorm:"size:100;not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"size:20;not null"`
	FailureMessages string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO Order item persistence object. The primary key is composite:
// item ids are sequential within one order.
type OrderItemPO struct {
	OrderID     string          `gorm:"primaryKey;size:36"`
	ID          int64           `gorm:"primaryKey"`
	ProductID   string          `gorm:"size:36;not null"`
	ProductName string          `gorm:"size:255;not null"`
	Quantity    int64           `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain Convert the aggregate to persistence objects
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	address := o.DeliveryAddress()
	orderPO := &OrderPO{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID().String(),
		TrackingID:      o.TrackingID().String(),
		AddressID:       address.ID().String(),
		Street:          address.Street(),
		PostalCode:      address.PostalCode(),
		City:            address.City(),
		Price:           o.Price().Amount(),
		Status:          string(o.Status()),
		FailureMessages: strings.Join(o.FailureMessages(), failureMessageDelimiter),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			OrderID:     o.ID().String(),
			ID:          int64(item.ID()),
			ProductID:   item.Product().ID().String(),
			ProductName: item.Product().Name(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Amount(),
			SubTotal:    item.SubTotal().Amount(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain Rebuild the aggregate from persistence objects
func (p *OrderPO) ToDomain(itemPOs []OrderItemPO) (*order.Order, error) {
	orderID, err := shared.ParseOrderID(p.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := shared.ParseCustomerID(p.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := shared.ParseRestaurantID(p.RestaurantID)
	if err != nil {
		return nil, err
	}
	trackingID, err := order.ParseTrackingID(p.TrackingID)
	if err != nil {
		return nil, err
	}
	addressID, err := uuid.Parse(p.AddressID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, len(itemPOs))
	for i, itemPO := range itemPOs {
		productID, err := shared.ParseProductID(itemPO.ProductID)
		if err != nil {
			return nil, err
		}
		items[i] = order.RestoreOrderItem(order.OrderItemID(itemPO.ID), orderID, order.ItemParams{
			Product:  order.NewConfirmedProduct(productID, itemPO.ProductName, shared.NewMoney(itemPO.Price)),
			Quantity: itemPO.Quantity,
			Price:    shared.NewMoney(itemPO.Price),
			SubTotal: shared.NewMoney(itemPO.SubTotal),
		})
	}

	var failureMessages []string
	if p.FailureMessages != "" {
		failureMessages = strings.Split(p.FailureMessages, failureMessageDelimiter)
	}

	return order.Restore(order.ReconstructionParams{
		ID:              orderID,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DeliveryAddress: order.RestoreStreetAddress(addressID, p.Street, p.PostalCode, p.City),
		Price:           shared.NewMoney(p.Price),
		Items:           items,
		TrackingID:      trackingID,
		Status:          order.Status(p.Status),
		FailureMessages: failureMessages,
	}), nil
}
