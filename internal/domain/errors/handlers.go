package errors

import "net/http"

// ErrorInfo describes a failed call: a stable code for clients, a message for
// people and optional details such as the failing request fields.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo is echoed in every envelope so callers can quote the request id.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorResponse builds an error envelope. Details are dropped for server
// failures and for auth rejections.
func NewErrorResponse(status int, code, message string, details any, requestID string) *ErrorResponse {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return &ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}

// FromAppError returns the status and envelope for a domain error.
func FromAppError(err AppError, requestID string) (int, *ErrorResponse) {
	var details any
	if d := err.Details(); d != "" {
		details = d
	}

	return err.HTTPCode(), NewErrorResponse(err.HTTPCode(), err.ErrorCode(), err.Message(), details, requestID)
}
