package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auction-gateway/internal/auctionerrors"
	"auction-gateway/utils"
)

// APIKeyHeader carries the secondary credential required by profile endpoints
const APIKeyHeader = "X-Noroff-API-Key"

// RequestIDHeader correlates gateway and upstream logs
const RequestIDHeader = "X-Request-ID"

// CredentialSource yields the session credentials at request time
type CredentialSource interface {
	AccessToken() string
	APIKey() string
}

// Requester is the single round trip every domain service is built on
type Requester interface {
	Do(ctx context.Context, req Request, out any) error
}

// Request describes one upstream call. Token overrides every other bearer source.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
}

// Config configures the shared request pipeline
type Config struct {
	BaseURL        string
	FallbackToken  string
	FallbackAPIKey string
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// Client injects credentials into every upstream call and normalizes failures
type Client struct {
	baseURL        string
	fallbackToken  string
	fallbackAPIKey string
	creds          CredentialSource
	http           *http.Client
}

// New creates a Client. creds may be nil, in which case only the fallbacks apply.
func New(cfg Config, creds CredentialSource) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		fallbackToken:  cfg.FallbackToken,
		fallbackAPIKey: cfg.FallbackAPIKey,
		creds:          creds,
		http:           httpClient,
	}
}

// SetCredentials swaps the credential source, used once the session manager exists
func (c *Client) SetCredentials(creds CredentialSource) {
	c.creds = creds
}

// Do performs the request and decodes the 2xx body into out when out is non-nil.
// Every failure that reached upstream or the transport is an *auctionerrors.APIError.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	httpReq, err := c.newRequest(ctx, r)
	if err != nil {
		return fmt.Errorf("apiclient: build request %s %s: %w", r.Method, r.Path, err)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		utils.Warn("apiclient: transport failure", map[string]any{
			"method": r.Method,
			"path":   r.Path,
			"error":  err.Error(),
		})
		return auctionerrors.NewNetworkError()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Warn("apiclient: failed reading response body", map[string]any{
			"method": r.Method,
			"path":   r.Path,
			"error":  err.Error(),
		})
		return auctionerrors.NewNetworkError()
	}

	utils.Debug("apiclient: upstream call", map[string]any{
		"method":     r.Method,
		"path":       r.Path,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
		"request_id": httpReq.Header.Get(RequestIDHeader),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("apiclient: decode %s %s: %w", r.Method, r.Path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, utils.RequestIDFrom(ctx))

	if token := c.bearer(r.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if key := c.apiKey(); key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	return req, nil
}

// bearer resolves the token: explicit override, then session, then fallback
func (c *Client) bearer(override string) string {
	if override != "" {
		return override
	}
	if c.creds != nil {
		if token := c.creds.AccessToken(); token != "" {
			return token
		}
	}
	return c.fallbackToken
}

// apiKey resolves the key: session, then fallback
func (c *Client) apiKey() string {
	if c.creds != nil {
		if key := c.creds.APIKey(); key != "" {
			return key
		}
	}
	return c.fallbackAPIKey
}

type errorPayload struct {
	Errors  []auctionerrors.ErrorDetail `json:"errors"`
	Message string                      `json:"message"`
	Status  any                         `json:"status"`
}

func normalizeError(statusCode int, body []byte) *auctionerrors.APIError {
	var payload errorPayload
	// non-JSON bodies fall through to the generic message
	_ = json.Unmarshal(body, &payload)

	apiErr := &auctionerrors.APIError{
		Errors:     payload.Errors,
		Status:     "error",
		StatusCode: statusCode,
	}
	// an empty errors array is treated like a missing one
	if len(apiErr.Errors) == 0 {
		msg := payload.Message
		if msg == "" {
			msg = auctionerrors.DefaultErrorMessage
		}
		apiErr.Errors = []auctionerrors.ErrorDetail{{Message: msg}}
	}
	if s, ok := payload.Status.(string); ok && s != "" {
		apiErr.Status = s
	}
	return apiErr
}
