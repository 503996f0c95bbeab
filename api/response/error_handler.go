package response

import (
	"net/http"
	"runtime"

	"orderservice/domain/shared"
	"orderservice/pkg/errors"
	"orderservice/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// httpStatusMap maps error codes to HTTP statuses. Only the API layer sees
// this mapping.
var httpStatusMap = map[errors.ErrorCode]int{
	errors.CodeInternal:       http.StatusInternalServerError,
	errors.CodeBadRequest:     http.StatusBadRequest,
	errors.CodeNotFound:       http.StatusNotFound,
	errors.CodeConflict:       http.StatusConflict,
	errors.CodeForbidden:      http.StatusForbidden,
	errors.CodeValidation:     http.StatusBadRequest,
	errors.CodeTooManyRequest: http.StatusTooManyRequests,

	errors.CodeOrderNotFound:      http.StatusNotFound,
	errors.CodeCustomerNotFound:   http.StatusNotFound,
	errors.CodeRestaurantNotFound: http.StatusNotFound,
	errors.CodeRestaurantInactive: http.StatusUnprocessableEntity,
	errors.CodeInvalidOrderState:  http.StatusUnprocessableEntity,
	errors.CodePriceMismatch:      http.StatusBadRequest,
}

func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// GetRequestID exposes the request id to other API layer packages.
func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var stack []string
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// HandleError handles framework-level errors such as request binding
// failures, where there is no application error to map.
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := getRequestID(c)

	logger.Error(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &Response{
		Success:   false,
		Error:     string(errors.CodeBadRequest),
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError maps any error to the envelope. The full error chain and
// stack go to the logs; the client only sees the error code and a safe
// message.
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	appErr := errors.MapDomainError(err)
	httpStatus := mapErrorCodeToHTTPStatus(appErr.Code)
	stack := extractStack(err)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
		zap.Strings("stack", stack),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	userMessage := appErr.Message
	if appErr.Code == errors.CodeInternal {
		userMessage = "internal server error"
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Code:      httpStatus,
		RequestID: requestID,
	})
}

// extractStack prefers the stack captured where the error was raised. When
// the error carries none, the handling point is captured as a fallback.
func extractStack(err error) []string {
	if stacker, ok := err.(shared.Stacker); ok {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}

	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		if inner := unwrapper.Unwrap(); inner != nil {
			if stacker, ok := inner.(shared.Stacker); ok {
				if stack := stacker.Stack(); len(stack) > 0 {
					return stack
				}
			}
		}
	}

	return captureStack(4)
}
