/*
Package response - unified API response handling.

Principles:
1. HTTP status mapping lives in the API layer only, never in the domain
   or application layers
2. Error responses expose the error code and a safe message, never stacks
   or internal error chains
3. Every response carries the request id for log correlation
4. Internal errors answer with a generic message; the real error goes to
   the logs

Response shapes:

	success: { success: true, data: {...}, message: "...", code: 2xx, request_id: "..." }
	failure: { success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, request_id: "..." }
*/
package response

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Response is the unified response envelope.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}
