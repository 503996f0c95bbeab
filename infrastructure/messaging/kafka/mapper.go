package kafka

import (
	apporder "orderservice/application/order"
	"orderservice/domain/order"
	"orderservice/infrastructure/messaging/message"

	"github.com/google/uuid"
)

// Outbound mapping: every publish gets a fresh message id, so a re-publish
// of the same event is a distinguishable delivery. The saga id field is
// carried for wire compatibility and left empty.

func paymentRequestFromCreatedEvent(event *order.CreatedEvent) message.PaymentRequest {
	o := event.Order()
	return message.PaymentRequest{
		ID:                 uuid.NewString(),
		SagaID:             "",
		CustomerID:         o.CustomerID().String(),
		OrderID:            o.ID().String(),
		Price:              o.Price().Amount(),
		CreatedAt:          event.CreatedAt(),
		PaymentOrderStatus: message.PaymentOrderStatusPending,
	}
}

func paymentRequestFromCancelledEvent(event *order.CancelledEvent) message.PaymentRequest {
	o := event.Order()
	return message.PaymentRequest{
		ID:                 uuid.NewString(),
		SagaID:             "",
		CustomerID:         o.CustomerID().String(),
		OrderID:            o.ID().String(),
		Price:              o.Price().Amount(),
		CreatedAt:          event.CreatedAt(),
		PaymentOrderStatus: message.PaymentOrderStatusCancelled,
	}
}

func approvalRequestFromPaidEvent(event *order.PaidEvent) message.RestaurantApprovalRequest {
	o := event.Order()
	items := o.Items()
	products := make([]message.Product, len(items))
	for i, item := range items {
		products[i] = message.Product{
			ID:       item.Product().ID().String(),
			Quantity: item.Quantity(),
		}
	}
	return message.RestaurantApprovalRequest{
		ID:                    uuid.NewString(),
		SagaID:                "",
		OrderID:               o.ID().String(),
		RestaurantID:          o.RestaurantID().String(),
		Products:              products,
		Price:                 o.Price().Amount(),
		CreatedAt:             event.CreatedAt(),
		RestaurantOrderStatus: message.RestaurantOrderStatusPaid,
	}
}

// Inbound mapping to the application layer's DTOs

func paymentResponseFromMessage(msg message.PaymentResponse) apporder.PaymentResponse {
	return apporder.PaymentResponse{
		ID:              msg.ID,
		SagaID:          msg.SagaID,
		OrderID:         msg.OrderID,
		PaymentID:       msg.PaymentID,
		CustomerID:      msg.CustomerID,
		Price:           msg.Price,
		CreatedAt:       msg.CreatedAt,
		PaymentStatus:   msg.PaymentStatus,
		FailureMessages: msg.FailureMessages,
	}
}

func approvalResponseFromMessage(msg message.RestaurantApprovalResponse) apporder.RestaurantApprovalResponse {
	return apporder.RestaurantApprovalResponse{
		ID:                  msg.ID,
		SagaID:              msg.SagaID,
		OrderID:             msg.OrderID,
		RestaurantID:        msg.RestaurantID,
		CreatedAt:           msg.CreatedAt,
		OrderApprovalStatus: msg.OrderApprovalStatus,
		FailureMessages:     msg.FailureMessages,
	}
}
