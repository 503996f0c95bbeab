package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	apporder "orderservice/application/order"
	"orderservice/infrastructure/messaging/message"

	"github.com/segmentio/kafka-go"
)

// Response listeners decode inbound messages and hand the outcome to the
// application service. Returned errors are logged by the consumer loop;
// since delivery is at-least-once, a duplicate outcome is rejected by the
// aggregate's state guard and lands here as a domain error.

// PaymentResponseListener Handles messages from the payment response topic
type PaymentResponseListener struct {
	app *apporder.ApplicationService
}

func NewPaymentResponseListener(app *apporder.ApplicationService) *PaymentResponseListener {
	return &PaymentResponseListener{app: app}
}

func (l *PaymentResponseListener) Handle(ctx context.Context, msg kafka.Message) error {
	var resp message.PaymentResponse
	if err := json.Unmarshal(msg.Value, &resp); err != nil {
		return fmt.Errorf("decode payment response: %w", err)
	}
	return l.app.ProcessPaymentResponse(ctx, paymentResponseFromMessage(resp))
}

// RestaurantApprovalResponseListener Handles messages from the restaurant
// approval response topic
type RestaurantApprovalResponseListener struct {
	app *apporder.ApplicationService
}

func NewRestaurantApprovalResponseListener(app *apporder.ApplicationService) *RestaurantApprovalResponseListener {
	return &RestaurantApprovalResponseListener{app: app}
}

func (l *RestaurantApprovalResponseListener) Handle(ctx context.Context, msg kafka.Message) error {
	var resp message.RestaurantApprovalResponse
	if err := json.Unmarshal(msg.Value, &resp); err != nil {
		return fmt.Errorf("decode restaurant approval response: %w", err)
	}
	return l.app.ProcessRestaurantApprovalResponse(ctx, approvalResponseFromMessage(resp))
}
