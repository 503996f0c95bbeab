package logger

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID Attach a request id so downstream logging can pick it up
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext Read the request id, empty string if absent
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
