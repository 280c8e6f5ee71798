package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-gateway/internal/auctionerrors"
	"auction-gateway/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain, validation and upstream errors to an HTTP status and message
func MapErrorToHTTP(err error) (int, string) {
	var vErr *auctionerrors.ValidationError

	switch {
	case errors.Is(err, auctionerrors.ErrBidTooLow), errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, auctionerrors.UserMessage(err, "bid rejected")
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.Is(err, auctionerrors.ErrMissingListing):
		return http.StatusBadRequest, "listing id is required"
	case errors.Is(err, auctionerrors.ErrMissingUsername):
		return http.StatusBadRequest, "profile name is required"
	case errors.Is(err, auctionerrors.ErrEmptyQuery):
		return http.StatusBadRequest, "search query is required"
	case errors.Is(err, auctionerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, auctionerrors.ErrMissingAccessToken):
		return http.StatusBadGateway, "upstream returned no access token"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timed out"
	}

	if apiErr, ok := auctionerrors.AsAPIError(err); ok {
		if apiErr.StatusCode == 0 {
			return http.StatusBadGateway, apiErr.Message()
		}
		return apiErr.StatusCode, apiErr.Message()
	}
	return http.StatusInternalServerError, "internal server error"
}

// RespondError maps err, writes the error envelope and logs it
func RespondError(c *gin.Context, handlerName, logMessage string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+logMessage, fields)
		return
	}
	utils.Warn(handlerName+": "+logMessage, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// QueryInt reads a non-negative integer query parameter, def when absent or malformed
func QueryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// QueryBool reads a boolean query parameter, def when absent or malformed
func QueryBool(c *gin.Context, key string, def bool) bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
