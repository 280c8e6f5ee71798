package server

import (
	"fmt"
	"net/http"
	"time"

	"auction-gateway/internal/auctionerrors"
	"auction-gateway/internal/session"
	"auction-gateway/utils"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// SnapshotSource exposes the current session state
type SnapshotSource interface {
	Snapshot() session.Snapshot
}

// RequestIDMiddleware tags every request with an id, reusing a well-formed
// inbound X-Request-ID. The id is echoed back and forwarded upstream.
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if !utils.ValidID(id) {
		id = utils.GenerateID()
	}

	c.Set(requestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Request = c.Request.WithContext(utils.WithRequestID(c.Request.Context(), id))
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}

// RequireAuth rejects requests that would reach upstream without a bearer
// token. A configured fallback token counts as authenticated.
func RequireAuth(sessions SnapshotSource, fallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if fallback || sessions.Snapshot().Authenticated {
			c.Next()
			return
		}

		err := fmt.Errorf("%s %s: %w", c.Request.Method, c.FullPath(), auctionerrors.ErrNotAuthenticated)
		utils.JSONError(c, http.StatusUnauthorized, err, "not authenticated")
		utils.Warn("RequireAuth: rejected anonymous request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(requestIDKey),
		})
		c.Abort()
	}
}
