package order

import (
	"context"
	"testing"
	"time"

	"orderservice/domain/order"
	"orderservice/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// In-memory fakes for the outbound ports
// ----------------------------------------------------------------------------

type memOrderRepository struct {
	byID       map[string]*order.Order
	byTracking map[string]*order.Order
	saveCalls  int
}

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{
		byID:       make(map[string]*order.Order),
		byTracking: make(map[string]*order.Order),
	}
}

func (r *memOrderRepository) Save(_ context.Context, o *order.Order) (*order.Order, error) {
	r.saveCalls++
	r.byID[o.ID().String()] = o
	r.byTracking[o.TrackingID().String()] = o
	return o, nil
}

func (r *memOrderRepository) FindByID(_ context.Context, id shared.OrderID) (*order.Order, error) {
	if o, ok := r.byID[id.String()]; ok {
		return o, nil
	}
	return nil, order.NewOrderNotFoundError(id.String())
}

func (r *memOrderRepository) FindByTrackingID(_ context.Context, trackingID order.TrackingID) (*order.Order, error) {
	if o, ok := r.byTracking[trackingID.String()]; ok {
		return o, nil
	}
	return nil, order.NewOrderNotFoundError(trackingID.String())
}

type fakeCustomerRepository struct {
	exists bool
}

func (r *fakeCustomerRepository) Exists(_ context.Context, _ shared.CustomerID) (bool, error) {
	return r.exists, nil
}

type fakeRestaurantRepository struct {
	restaurant *order.Restaurant
	err        error
}

func (r *fakeRestaurantRepository) FindRestaurantInformation(_ context.Context, _ shared.RestaurantID, _ []shared.ProductID) (*order.Restaurant, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.restaurant, nil
}

type capturePaymentPublisher struct {
	created   []*order.CreatedEvent
	cancelled []*order.CancelledEvent
}

func (p *capturePaymentPublisher) PublishCreated(_ context.Context, event *order.CreatedEvent) {
	p.created = append(p.created, event)
}

func (p *capturePaymentPublisher) PublishCancelled(_ context.Context, event *order.CancelledEvent) {
	p.cancelled = append(p.cancelled, event)
}

type captureApprovalPublisher struct {
	paid []*order.PaidEvent
}

func (p *captureApprovalPublisher) PublishPaid(_ context.Context, event *order.PaidEvent) {
	p.paid = append(p.paid, event)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// ----------------------------------------------------------------------------
// Fixture
// ----------------------------------------------------------------------------

type fixture struct {
	service    *ApplicationService
	orderRepo  *memOrderRepository
	customers  *fakeCustomerRepository
	restaurant *fakeRestaurantRepository
	payments   *capturePaymentPublisher
	approvals  *captureApprovalPublisher

	customerID   string
	restaurantID string
	pizzaID      string
	colaID       string
}

var testNow = time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		orderRepo:    newMemOrderRepository(),
		customers:    &fakeCustomerRepository{exists: true},
		payments:     &capturePaymentPublisher{},
		approvals:    &captureApprovalPublisher{},
		customerID:   uuid.NewString(),
		restaurantID: uuid.NewString(),
		pizzaID:      uuid.NewString(),
		colaID:       uuid.NewString(),
	}

	pizzaID, err := shared.ParseProductID(f.pizzaID)
	require.NoError(t, err)
	colaID, err := shared.ParseProductID(f.colaID)
	require.NoError(t, err)
	restaurantID, err := shared.ParseRestaurantID(f.restaurantID)
	require.NoError(t, err)

	f.restaurant = &fakeRestaurantRepository{
		restaurant: order.NewRestaurant(order.RestaurantParams{
			ID: restaurantID,
			Products: []*order.Product{
				order.NewConfirmedProduct(pizzaID, "margherita", mustMoney(t, "5.00")),
				order.NewConfirmedProduct(colaID, "cola", mustMoney(t, "3.00")),
			},
			Active: true,
		}),
	}

	f.service = NewApplicationService(
		order.NewDomainService(fixedClock{now: testNow}),
		f.orderRepo,
		f.customers,
		f.restaurant,
		f.payments,
		f.approvals,
	)
	return f
}

func mustMoney(t *testing.T, s string) shared.Money {
	t.Helper()
	m, err := shared.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func (f *fixture) validCommand() CreateOrderCommand {
	return CreateOrderCommand{
		CustomerID:   f.customerID,
		RestaurantID: f.restaurantID,
		Price:        decimal.RequireFromString("13.00"),
		Items: []OrderItemCommand{
			{
				ProductID: f.pizzaID,
				Quantity:  2,
				Price:     decimal.RequireFromString("5.00"),
				SubTotal:  decimal.RequireFromString("10.00"),
			},
			{
				ProductID: f.colaID,
				Quantity:  1,
				Price:     decimal.RequireFromString("3.00"),
				SubTotal:  decimal.RequireFromString("3.00"),
			},
		},
		Address: OrderAddress{
			Street:     "1 Main St",
			PostalCode: "10001",
			City:       "Springfield",
		},
	}
}

func (f *fixture) createOrder(t *testing.T) *CreateOrderResponse {
	t.Helper()
	resp, err := f.service.CreateOrder(context.Background(), f.validCommand())
	require.NoError(t, err)
	return resp
}

func (f *fixture) createdOrderID(t *testing.T) string {
	t.Helper()
	require.Len(t, f.payments.created, 1)
	return f.payments.created[0].Order().ID().String()
}

// ----------------------------------------------------------------------------
// CreateOrder / TrackOrder
// ----------------------------------------------------------------------------

func TestCreateOrderPersistsAndRequestsPayment(t *testing.T) {
	f := newFixture(t)

	resp := f.createOrder(t)

	assert.Equal(t, "PENDING", resp.OrderStatus)
	assert.NotEmpty(t, resp.OrderTrackingID)

	require.Len(t, f.payments.created, 1)
	event := f.payments.created[0]
	assert.Equal(t, testNow, event.CreatedAt())
	assert.Equal(t, order.StatusPending, event.Order().Status())

	assert.Equal(t, 1, f.orderRepo.saveCalls)
	stored, err := f.orderRepo.FindByTrackingID(context.Background(), event.Order().TrackingID())
	require.NoError(t, err)
	assert.Same(t, event.Order(), stored)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	f.customers.exists = false

	_, err := f.service.CreateOrder(context.Background(), f.validCommand())

	require.ErrorIs(t, err, order.ErrCustomerNotFound)
	assert.Empty(t, f.payments.created)
	assert.Zero(t, f.orderRepo.saveCalls)
}

func TestCreateOrderInactiveRestaurant(t *testing.T) {
	f := newFixture(t)
	restaurantID, err := shared.ParseRestaurantID(f.restaurantID)
	require.NoError(t, err)
	f.restaurant.restaurant = order.NewRestaurant(order.RestaurantParams{
		ID:     restaurantID,
		Active: false,
	})

	_, err = f.service.CreateOrder(context.Background(), f.validCommand())

	require.ErrorIs(t, err, order.ErrRestaurantInactive)
	assert.Empty(t, f.payments.created)
	assert.Zero(t, f.orderRepo.saveCalls)
}

func TestCreateOrderTotalPriceMismatch(t *testing.T) {
	f := newFixture(t)
	cmd := f.validCommand()
	cmd.Price = decimal.RequireFromString("12.00")

	_, err := f.service.CreateOrder(context.Background(), cmd)

	require.ErrorIs(t, err, order.ErrTotalPriceMismatch)
	assert.Empty(t, f.payments.created)
	assert.Zero(t, f.orderRepo.saveCalls)
}

func TestTrackOrder(t *testing.T) {
	f := newFixture(t)
	resp := f.createOrder(t)

	tracked, err := f.service.TrackOrder(context.Background(), resp.OrderTrackingID)
	require.NoError(t, err)
	assert.Equal(t, resp.OrderTrackingID, tracked.OrderTrackingID)
	assert.Equal(t, "PENDING", tracked.OrderStatus)
	assert.Empty(t, tracked.FailureMessages)
}

func TestTrackOrderUnknownTrackingID(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.TrackOrder(context.Background(), uuid.NewString())

	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

// ----------------------------------------------------------------------------
// Payment responses
// ----------------------------------------------------------------------------

func TestProcessPaymentResponseCompleted(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)
	orderID := f.createdOrderID(t)

	err := f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentStatus: PaymentStatusCompleted,
	})
	require.NoError(t, err)

	require.Len(t, f.approvals.paid, 1)
	assert.Equal(t, order.StatusPaid, f.approvals.paid[0].Order().Status())
	assert.Equal(t, 2, f.orderRepo.saveCalls)
}

func TestProcessPaymentResponseDuplicateDelivery(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)
	orderID := f.createdOrderID(t)

	resp := PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentStatus: PaymentStatusCompleted,
	}
	require.NoError(t, f.service.ProcessPaymentResponse(context.Background(), resp))

	// Redelivery of the same outcome trips the state guard and changes nothing
	err := f.service.ProcessPaymentResponse(context.Background(), resp)
	require.ErrorIs(t, err, order.ErrInvalidStateTransition)

	require.Len(t, f.approvals.paid, 1)
	assert.Equal(t, order.StatusPaid, f.approvals.paid[0].Order().Status())
}

func TestProcessPaymentResponseFailed(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)
	orderID := f.createdOrderID(t)

	err := f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:              uuid.NewString(),
		OrderID:         orderID,
		PaymentStatus:   PaymentStatusFailed,
		FailureMessages: []string{"insufficient funds"},
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusCancelled, f.payments.created[0].Order().Status())
	assert.Empty(t, f.approvals.paid)
}

func TestProcessPaymentResponseUnknownOrder(t *testing.T) {
	f := newFixture(t)

	err := f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       uuid.NewString(),
		PaymentStatus: PaymentStatusCompleted,
	})

	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

// ----------------------------------------------------------------------------
// Restaurant approval responses
// ----------------------------------------------------------------------------

func TestProcessRestaurantApprovalApproved(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)
	orderID := f.createdOrderID(t)

	require.NoError(t, f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentStatus: PaymentStatusCompleted,
	}))

	err := f.service.ProcessRestaurantApprovalResponse(context.Background(), RestaurantApprovalResponse{
		ID:                  uuid.NewString(),
		OrderID:             orderID,
		OrderApprovalStatus: OrderApprovalStatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusApproved, f.payments.created[0].Order().Status())
	assert.Empty(t, f.payments.cancelled)
}

func TestProcessRestaurantApprovalRejectedStartsCompensation(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)
	orderID := f.createdOrderID(t)

	require.NoError(t, f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentStatus: PaymentStatusCompleted,
	}))

	err := f.service.ProcessRestaurantApprovalResponse(context.Background(), RestaurantApprovalResponse{
		ID:                  uuid.NewString(),
		OrderID:             orderID,
		OrderApprovalStatus: OrderApprovalStatusRejected,
		FailureMessages:     []string{"out of stock"},
	})
	require.NoError(t, err)

	o := f.payments.created[0].Order()
	assert.Equal(t, order.StatusCancelling, o.Status())
	assert.Equal(t, []string{"out of stock"}, o.FailureMessages())

	// Refund request goes out toward the payment service
	require.Len(t, f.payments.cancelled, 1)
	assert.Same(t, o, f.payments.cancelled[0].Order())

	// Refund confirmation finalizes the cancellation
	require.NoError(t, f.service.ProcessPaymentResponse(context.Background(), PaymentResponse{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentStatus: PaymentStatusCancelled,
	}))
	assert.Equal(t, order.StatusCancelled, o.Status())
}
