/*
Package order - order API controller.

Responsibilities:
1. Receive HTTP requests and bind parameters
2. Call the application service
3. Answer through the response package

Error handling:
1. Binding errors answer 400 via response.HandleError
2. Business errors go through response.HandleAppError, which maps domain
   sentinels to error codes and HTTP statuses
*/
package order

import (
	"net/http"

	"orderservice/api/response"
	orderapp "orderservice/application/order"
	"orderservice/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Order controller
type Controller struct {
	orderService *orderapp.ApplicationService
}

// NewController Create order controller
func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{
		orderService: orderService,
	}
}

// RegisterRoutes Register order routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.CreateOrder)
		orderGroup.GET("/:trackingId", c.TrackOrder)
	}
}

// CreateOrder Create a new order
// POST /api/v1/orders
func (c *Controller) CreateOrder(ctx *gin.Context) {
	var cmd orderapp.CreateOrderCommand
	if err := ctx.ShouldBindJSON(&cmd); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.CreateOrder(ctx.Request.Context(), cmd)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, result, "order created successfully")
}

// TrackOrder Look up order status by tracking id
// GET /api/v1/orders/:trackingId
func (c *Controller) TrackOrder(ctx *gin.Context) {
	trackingID := ctx.Param("trackingId")
	if trackingID == "" {
		response.HandleError(ctx, errors.BadRequest("tracking ID is required"), "tracking ID is required", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.TrackOrder(ctx.Request.Context(), trackingID)
	if err != nil {
		// order.ErrOrderNotFound maps to 404, everything else to its code
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "order retrieved successfully")
}
