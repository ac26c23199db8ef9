package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the console UI
const (
	// Session errors (AUTH_*)
	ErrMissingSessionToken = "AUTH_001" // No console session token supplied
	ErrInvalidSessionToken = "AUTH_002" // Session token invalid or expired
	ErrSessionNotFound     = "AUTH_003" // Session no longer cached
	ErrInvalidCredentials  = "AUTH_004" // POS rejected the supplied credentials
	ErrCredentialRejected  = "AUTH_005" // Cached credential rejected upstream, re-login required

	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidFormat       = "VAL_003" // Data format invalid
	ErrValidationFailed    = "VAL_004" // Client-side constraint violation, never dispatched

	// Upstream errors (POS_*)
	ErrUpstreamRequest = "POS_001" // POS ledger API returned a failure
	ErrUpstreamDecode  = "POS_002" // POS response did not match the expected shape

	// Server errors (SRV_*)
	ErrInternalServer = "SRV_001" // Internal console error
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrMissingSessionToken: http.StatusUnauthorized,
	ErrInvalidSessionToken: http.StatusUnauthorized,
	ErrSessionNotFound:     http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrCredentialRejected:  http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrValidationFailed:    http.StatusBadRequest,
	ErrUpstreamRequest:     http.StatusBadGateway,
	ErrUpstreamDecode:      http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError is the standard error body for console responses
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an APIError from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
