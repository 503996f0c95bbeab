/*
Package message defines the wire contracts exchanged with the payment and
restaurant services. Field names are part of the published contract and
must not change without coordinating with the downstream consumers.
*/
package message

import (
	"time"

	"github.com/shopspring/decimal"
)

// Requested payment action
const (
	PaymentOrderStatusPending   = "PENDING"
	PaymentOrderStatusCancelled = "CANCELLED"
)

// Restaurant approval is only ever requested for paid orders
const RestaurantOrderStatusPaid = "PAID"

// PaymentRequest Outbound message asking the payment service to charge
// (PENDING) or refund (CANCELLED) an order.
type PaymentRequest struct {
	ID                 string          `json:"id"`
	SagaID             string          `json:"sagaId"`
	CustomerID         string          `json:"customerId"`
	OrderID            string          `json:"orderId"`
	Price              decimal.Decimal `json:"price"`
	CreatedAt          time.Time       `json:"createdAt"`
	PaymentOrderStatus string          `json:"paymentOrderStatus"`
}

// Product Line item inside a restaurant approval request
type Product struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// RestaurantApprovalRequest Outbound message asking the restaurant service
// to approve a paid order.
type RestaurantApprovalRequest struct {
	ID                    string          `json:"id"`
	SagaID                string          `json:"sagaId"`
	OrderID               string          `json:"orderId"`
	RestaurantID          string          `json:"restaurantId"`
	Products              []Product       `json:"products"`
	Price                 decimal.Decimal `json:"price"`
	CreatedAt             time.Time       `json:"createdAt"`
	RestaurantOrderStatus string          `json:"restaurantOrderStatus"`
}

// PaymentResponse Inbound payment outcome
type PaymentResponse struct {
	ID              string          `json:"id"`
	SagaID          string          `json:"sagaId"`
	OrderID         string          `json:"orderId"`
	PaymentID       string          `json:"paymentId"`
	CustomerID      string          `json:"customerId"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"createdAt"`
	PaymentStatus   string          `json:"paymentStatus"`
	FailureMessages []string        `json:"failureMessages"`
}

// RestaurantApprovalResponse Inbound approval outcome
type RestaurantApprovalResponse struct {
	ID                  string    `json:"id"`
	SagaID              string    `json:"sagaId"`
	OrderID             string    `json:"orderId"`
	RestaurantID        string    `json:"restaurantId"`
	CreatedAt           time.Time `json:"createdAt"`
	OrderApprovalStatus string    `json:"orderApprovalStatus"`
	FailureMessages     []string  `json:"failureMessages"`
}
