package auctionerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Session errors
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrMissingAccessToken = errors.New("auth response carried no access token")
	ErrInvalidSession     = errors.New("invalid persisted session")
	ErrIllegalTransition  = errors.New("illegal session state transition")
)

// client-side validation errors, raised before any network call
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionEnded    = errors.New("auction has ended")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrMissingListing  = errors.New("listing id is required")
	ErrMissingUsername = errors.New("profile name is required")
)

// NetworkErrorMessage is reported when no response reached the client
const NetworkErrorMessage = "Network error. Please check your connection."

// DefaultErrorMessage is reported when upstream gave no structured message
const DefaultErrorMessage = "An error occurred"

// ErrorDetail is one entry of an upstream error list
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError is the normalized shape of every upstream failure
type APIError struct {
	Errors     []ErrorDetail `json:"errors"`
	Status     string        `json:"status"`
	StatusCode int           `json:"statusCode"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Message())
}

// Message returns the first structured message, or the generic one
func (e *APIError) Message() string {
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return e.Errors[0].Message
	}
	return DefaultErrorMessage
}

// NewNetworkError builds the error reported for transport failures
func NewNetworkError() *APIError {
	return &APIError{
		Errors:     []ErrorDetail{{Message: NetworkErrorMessage}},
		Status:     "error",
		StatusCode: 0,
	}
}

// AsAPIError unwraps err into an *APIError when it carries one
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsForbidden reports a 403 from upstream
func IsForbidden(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusForbidden
}

// IsUnauthorized reports a 401 from upstream
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNetwork reports a transport failure
func IsNetwork(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == 0
}

// ValidationError carries a user-facing message for a client-side rejection
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Invalid builds a ValidationError of the given kind
func Invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UserMessage picks the message shown to the interacting user: the first
// structured upstream message, the validation message, or fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	if apiErr, ok := AsAPIError(err); ok {
		if len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "" {
			return apiErr.Errors[0].Message
		}
	}
	return fallback
}
