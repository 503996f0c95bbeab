/*
Package order Application Layer - order process orchestration.

Responsibilities:
1. Receive create/track commands from the HTTP controllers
2. Receive payment and approval responses from the message listeners
3. Call the domain service for business rule validation and transitions
4. Persist the aggregate through the repository port
5. Hand resulting domain events to the outbound publisher ports

Publication happens after the aggregate is persisted and is fire-and-forget:
a publish failure is logged by the publisher, never surfaced here, and the
already-persisted state is never rolled back. Downstream consumers tolerate
duplicates, so a reconciler can re-send for orders whose notification was
lost.
*/
package order

import (
	"context"
	"time"

	"orderservice/domain/order"
	"orderservice/domain/shared"
	pkgerrors "orderservice/pkg/errors"
	"orderservice/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ============================================================================
// DTO Definitions - Data Transfer Objects
// ============================================================================

// CreateOrderCommand Create order request DTO
type CreateOrderCommand struct {
	CustomerID   string             `json:"customer_id" binding:"required,uuid"`
	RestaurantID string             `json:"restaurant_id" binding:"required,uuid"`
	Price        decimal.Decimal    `json:"price" binding:"required"`
	Items        []OrderItemCommand `json:"items" binding:"required,min=1,dive"`
	Address      OrderAddress       `json:"address" binding:"required"`
}

// OrderItemCommand Order item request DTO. Price and subtotal are submitted
// by the client and verified against the restaurant's confirmed prices.
type OrderItemCommand struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	SubTotal  decimal.Decimal `json:"sub_total" binding:"required"`
}

// OrderAddress Delivery address DTO
type OrderAddress struct {
	Street     string `json:"street" binding:"required,max=50"`
	PostalCode string `json:"postal_code" binding:"required,max=10"`
	City       string `json:"city" binding:"required,max=50"`
}

// CreateOrderResponse Create order result DTO
type CreateOrderResponse struct {
	OrderTrackingID string `json:"order_tracking_id"`
	OrderStatus     string `json:"order_status"`
	Message         string `json:"message"`
}

// TrackOrderResponse Order status lookup DTO
type TrackOrderResponse struct {
	OrderTrackingID string   `json:"order_tracking_id"`
	OrderStatus     string   `json:"order_status"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// Payment service outcome values
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusFailed    = "FAILED"
)

// Restaurant service outcome values
const (
	OrderApprovalStatusApproved = "APPROVED"
	OrderApprovalStatusRejected = "REJECTED"
)

// PaymentResponse Inbound payment outcome, already decoded from the wire
type PaymentResponse struct {
	ID              string
	SagaID          string
	OrderID         string
	PaymentID       string
	CustomerID      string
	Price           decimal.Decimal
	CreatedAt       time.Time
	PaymentStatus   string
	FailureMessages []string
}

// RestaurantApprovalResponse Inbound approval outcome, already decoded
// from the wire
type RestaurantApprovalResponse struct {
	ID                  string
	SagaID              string
	OrderID             string
	RestaurantID        string
	CreatedAt           time.Time
	OrderApprovalStatus string
	FailureMessages     []string
}

// ============================================================================
// Application Service - Business Process Orchestration
// ============================================================================

// ApplicationService Order application service. Stateless; every dependency
// is a port, so the whole order process is testable with in-memory fakes.
type ApplicationService struct {
	domainService     *order.DomainService
	orderRepo         order.Repository
	customerRepo      order.CustomerRepository
	restaurantRepo    order.RestaurantRepository
	paymentPublisher  order.PaymentRequestPublisher
	approvalPublisher order.RestaurantApprovalRequestPublisher
}

// NewApplicationService Create the order application service
func NewApplicationService(
	domainService *order.DomainService,
	orderRepo order.Repository,
	customerRepo order.CustomerRepository,
	restaurantRepo order.RestaurantRepository,
	paymentPublisher order.PaymentRequestPublisher,
	approvalPublisher order.RestaurantApprovalRequestPublisher,
) *ApplicationService {
	return &ApplicationService{
		domainService:     domainService,
		orderRepo:         orderRepo,
		customerRepo:      customerRepo,
		restaurantRepo:    restaurantRepo,
		paymentPublisher:  paymentPublisher,
		approvalPublisher: approvalPublisher,
	}
}

// CreateOrder Validate and initiate a new order, persist it, then request
// payment. The payment request rides on the created event; its delivery is
// fire-and-forget.
func (s *ApplicationService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResponse, error) {
	customerID, err := shared.ParseCustomerID(cmd.CustomerID)
	if err != nil {
		return nil, pkgerrors.Validation("customer_id is not a valid uuid")
	}
	restaurantID, err := shared.ParseRestaurantID(cmd.RestaurantID)
	if err != nil {
		return nil, pkgerrors.Validation("restaurant_id is not a valid uuid")
	}

	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, order.NewCustomerNotFoundError(customerID)
	}

	o, productIDs, err := s.orderFromCommand(cmd, customerID, restaurantID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindRestaurantInformation(ctx, restaurantID, productIDs)
	if err != nil {
		return nil, err
	}

	event, err := s.domainService.ValidateAndInitiateOrder(o, restaurant)
	if err != nil {
		return nil, err
	}

	if _, err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.paymentPublisher.PublishCreated(ctx, event)

	logger.Info("Order created",
		zap.String("order_id", o.ID().String()),
		zap.String("tracking_id", o.TrackingID().String()))

	return &CreateOrderResponse{
		OrderTrackingID: o.TrackingID().String(),
		OrderStatus:     string(o.Status()),
		Message:         "order created successfully",
	}, nil
}

// TrackOrder Look up an order's status by its customer-facing tracking id
func (s *ApplicationService) TrackOrder(ctx context.Context, trackingID string) (*TrackOrderResponse, error) {
	id, err := order.ParseTrackingID(trackingID)
	if err != nil {
		return nil, pkgerrors.Validation("tracking_id is not a valid uuid")
	}

	o, err := s.orderRepo.FindByTrackingID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TrackOrderResponse{
		OrderTrackingID: o.TrackingID().String(),
		OrderStatus:     string(o.Status()),
		FailureMessages: o.FailureMessages(),
	}, nil
}

// ProcessPaymentResponse Apply a payment outcome to the order. COMPLETED
// moves the order to PAID and requests restaurant approval; CANCELLED and
// FAILED cancel it. A duplicate delivery trips the aggregate's state guard
// and comes back as a domain error with no state change.
func (s *ApplicationService) ProcessPaymentResponse(ctx context.Context, resp PaymentResponse) error {
	o, err := s.findOrder(ctx, resp.OrderID)
	if err != nil {
		return err
	}

	switch resp.PaymentStatus {
	case PaymentStatusCompleted:
		event, err := s.domainService.PayOrder(o)
		if err != nil {
			return err
		}
		if _, err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.approvalPublisher.PublishPaid(ctx, event)
		logger.Info("Order paid", zap.String("order_id", o.ID().String()))
		return nil

	case PaymentStatusCancelled, PaymentStatusFailed:
		if err := s.domainService.CancelOrder(o); err != nil {
			return err
		}
		if _, err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		logger.Info("Order cancelled after payment failure",
			zap.String("order_id", o.ID().String()),
			zap.Strings("failure_messages", resp.FailureMessages))
		return nil

	default:
		return pkgerrors.Validation("unknown payment status: " + resp.PaymentStatus)
	}
}

// ProcessRestaurantApprovalResponse Apply an approval outcome to the order.
// APPROVED is the terminal success state. REJECTED starts the compensation
// path: the order moves to CANCELLING, records the restaurant's failure
// messages and a refund request is published toward the payment service.
func (s *ApplicationService) ProcessRestaurantApprovalResponse(ctx context.Context, resp RestaurantApprovalResponse) error {
	o, err := s.findOrder(ctx, resp.OrderID)
	if err != nil {
		return err
	}

	switch resp.OrderApprovalStatus {
	case OrderApprovalStatusApproved:
		if err := s.domainService.ApproveOrder(o); err != nil {
			return err
		}
		if _, err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		logger.Info("Order approved", zap.String("order_id", o.ID().String()))
		return nil

	case OrderApprovalStatusRejected:
		event, err := s.domainService.CancelOrderPayment(o, resp.FailureMessages)
		if err != nil {
			return err
		}
		if _, err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.paymentPublisher.PublishCancelled(ctx, event)
		logger.Info("Order cancelling after approval rejection",
			zap.String("order_id", o.ID().String()),
			zap.Strings("failure_messages", resp.FailureMessages))
		return nil

	default:
		return pkgerrors.Validation("unknown order approval status: " + resp.OrderApprovalStatus)
	}
}

func (s *ApplicationService) findOrder(ctx context.Context, orderID string) (*order.Order, error) {
	id, err := shared.ParseOrderID(orderID)
	if err != nil {
		return nil, pkgerrors.Validation("order_id is not a valid uuid")
	}
	return s.orderRepo.FindByID(ctx, id)
}

// orderFromCommand assembles the unvalidated aggregate and collects the
// distinct product ids for the restaurant snapshot query
func (s *ApplicationService) orderFromCommand(
	cmd CreateOrderCommand,
	customerID shared.CustomerID,
	restaurantID shared.RestaurantID,
) (*order.Order, []shared.ProductID, error) {
	items := make([]*order.OrderItem, 0, len(cmd.Items))
	productIDs := make([]shared.ProductID, 0, len(cmd.Items))
	seen := make(map[shared.ProductID]struct{}, len(cmd.Items))

	for _, item := range cmd.Items {
		productID, err := shared.ParseProductID(item.ProductID)
		if err != nil {
			return nil, nil, pkgerrors.Validation("product_id is not a valid uuid")
		}
		items = append(items, order.NewOrderItem(order.ItemParams{
			Product:  order.NewProduct(productID),
			Quantity: item.Quantity,
			Price:    shared.NewMoney(item.Price),
			SubTotal: shared.NewMoney(item.SubTotal),
		}))
		if _, ok := seen[productID]; !ok {
			seen[productID] = struct{}{}
			productIDs = append(productIDs, productID)
		}
	}

	o, err := order.NewOrder(order.OrderParams{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DeliveryAddress: order.NewStreetAddress(cmd.Address.Street, cmd.Address.PostalCode, cmd.Address.City),
		Price:           shared.NewMoney(cmd.Price),
		Items:           items,
	})
	if err != nil {
		return nil, nil, err
	}
	return o, productIDs, nil
}
