package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleSuccess answers 200 OK with the envelope.
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}

// HandleCreated answers 201 Created with the envelope.
func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: getRequestID(c),
	})
}
