package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"orderservice/domain/order"
	"orderservice/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mapTestNow = time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)

func paidOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := shared.NewMoneyFromString("13.00")
	require.NoError(t, err)
	unit, err := shared.NewMoneyFromString("6.50")
	require.NoError(t, err)

	productID := shared.ProductIDFrom(uuid.New())
	orderID := shared.NewOrderID()
	item := order.RestoreOrderItem(1, orderID, order.ItemParams{
		Product:  order.NewConfirmedProduct(productID, "margherita", unit),
		Quantity: 2,
		Price:    unit,
		SubTotal: price,
	})

	return order.Restore(order.ReconstructionParams{
		ID:              orderID,
		CustomerID:      shared.CustomerIDFrom(uuid.New()),
		RestaurantID:    shared.RestaurantIDFrom(uuid.New()),
		DeliveryAddress: order.NewStreetAddress("1 Main St", "10001", "Springfield"),
		Price:           price,
		Items:           []*order.OrderItem{item},
		TrackingID:      order.NewTrackingID(),
		Status:          order.StatusPaid,
	})
}

func TestPaymentRequestFromCreatedEvent(t *testing.T) {
	o := paidOrder(t)
	event := order.NewCreatedEvent(o, mapTestNow)

	req := paymentRequestFromCreatedEvent(event)

	assert.NotEmpty(t, req.ID)
	assert.Empty(t, req.SagaID)
	assert.Equal(t, o.ID().String(), req.OrderID)
	assert.Equal(t, o.CustomerID().String(), req.CustomerID)
	assert.True(t, req.Price.Equal(o.Price().Amount()))
	assert.Equal(t, mapTestNow, req.CreatedAt)
	assert.Equal(t, "PENDING", req.PaymentOrderStatus)

	// A re-publish of the same event is a new delivery with its own id
	again := paymentRequestFromCreatedEvent(event)
	assert.NotEqual(t, req.ID, again.ID)
}

func TestPaymentRequestFromCancelledEvent(t *testing.T) {
	o := paidOrder(t)
	event := order.NewCancelledEvent(o, mapTestNow)

	req := paymentRequestFromCancelledEvent(event)

	assert.Equal(t, o.ID().String(), req.OrderID)
	assert.Equal(t, "CANCELLED", req.PaymentOrderStatus)
}

func TestApprovalRequestFromPaidEvent(t *testing.T) {
	o := paidOrder(t)
	event := order.NewPaidEvent(o, mapTestNow)

	req := approvalRequestFromPaidEvent(event)

	assert.NotEmpty(t, req.ID)
	assert.Empty(t, req.SagaID)
	assert.Equal(t, o.ID().String(), req.OrderID)
	assert.Equal(t, o.RestaurantID().String(), req.RestaurantID)
	assert.Equal(t, "PAID", req.RestaurantOrderStatus)
	require.Len(t, req.Products, 1)
	assert.Equal(t, o.Items()[0].Product().ID().String(), req.Products[0].ID)
	assert.Equal(t, int64(2), req.Products[0].Quantity)
}

func TestPaymentRequestWireFieldNames(t *testing.T) {
	o := paidOrder(t)
	req := paymentRequestFromCreatedEvent(order.NewCreatedEvent(o, mapTestNow))

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, name := range []string{"id", "sagaId", "customerId", "orderId", "price", "createdAt", "paymentOrderStatus"} {
		assert.Contains(t, fields, name)
	}
}
