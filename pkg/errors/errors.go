package errors

import (
	"errors"
	"fmt"
	"net/http"

	"orderservice/domain/order"
)

// ErrorCode Stable machine-readable error identifier
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeOrderNotFound      ErrorCode = "ORDER_NOT_FOUND"
	CodeCustomerNotFound   ErrorCode = "CUSTOMER_NOT_FOUND"
	CodeRestaurantNotFound ErrorCode = "RESTAURANT_NOT_FOUND"
	CodeRestaurantInactive ErrorCode = "RESTAURANT_INACTIVE"
	CodeInvalidOrderState  ErrorCode = "INVALID_ORDER_STATE"
	CodePriceMismatch      ErrorCode = "PRICE_MISMATCH"
)

// AppError Application-level error carrying a code and a safe message
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode Maps the error code to an HTTP status
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation, CodePriceMismatch:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeOrderNotFound, CodeCustomerNotFound, CodeRestaurantNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeInvalidOrderState, CodeRestaurantInactive:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New Creates an error with a code and message
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap Attaches a code and message to an underlying error
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

func OrderNotFound() *AppError {
	return New(CodeOrderNotFound, "order not found")
}

func CustomerNotFound() *AppError {
	return New(CodeCustomerNotFound, "customer not found")
}

func RestaurantNotFound() *AppError {
	return New(CodeRestaurantNotFound, "restaurant not found")
}

// Is Reports whether err carries the given error code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError Converts any error to an AppError, wrapping unknown ones as internal
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// MapDomainError Maps domain sentinels to application errors
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return Wrap(err, CodeOrderNotFound, "order not found")
	case errors.Is(err, order.ErrCustomerNotFound):
		return Wrap(err, CodeCustomerNotFound, "customer not found")
	case errors.Is(err, order.ErrRestaurantNotFound):
		return Wrap(err, CodeRestaurantNotFound, "restaurant not found")
	case errors.Is(err, order.ErrRestaurantInactive):
		return Wrap(err, CodeRestaurantInactive, err.Error())
	case errors.Is(err, order.ErrInvalidStateTransition),
		errors.Is(err, order.ErrAlreadyInitialized):
		return Wrap(err, CodeInvalidOrderState, err.Error())
	case errors.Is(err, order.ErrPriceNotPositive),
		errors.Is(err, order.ErrItemPriceMismatch),
		errors.Is(err, order.ErrTotalPriceMismatch):
		return Wrap(err, CodePriceMismatch, err.Error())
	case errors.Is(err, order.ErrMissingRequiredField):
		return Wrap(err, CodeValidation, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
