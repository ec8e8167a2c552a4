package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/config"
	"github.com/manga-catalog/admin-gateway/internal/observability"
)

const maxResponseBytes = 2 * 1024 * 1024

// TokenSource supplies the current bearer token. An empty string means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is a structured failure reported by the backend or the transport.
type APIError struct {
	Op         string
	StatusCode int
	Code       int
	Message    string
	Errors     map[string][]string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d: %s", e.Op, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d", e.Op, e.StatusCode)
	default:
		return e.Op
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a backend 401. This is the only
// failure that forces a session transition.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Message extracts the server-provided message from err, or empty.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// Client is the single configured HTTP client in front of the catalog
// backend. Every outgoing request carries the current bearer token when one
// is present.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewClient validates the backend address and builds the client.
func NewClient(cfg config.BackendConfig, logger *zap.Logger, metrics *observability.Metrics) (*Client, error) {
	trimmed := strings.TrimSpace(cfg.BaseURL)
	if trimmed == "" {
		return nil, errors.New("backend base url is empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend base url: %s", trimmed)
	}

	return &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// WithTokenSource returns a copy of the client bound to a session's token.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	bound := *c
	bound.tokens = tokens
	return &bound
}

type bearerContextKey struct{}

// WithBearer overrides the bearer token for requests made with ctx. Used by
// the HTTP layer where the credential travels with the request, not the
// client instance.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerContextKey{}, token)
}

func bearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerContextKey{}).(string)
	return token, ok
}

func (c *Client) bearer(ctx context.Context) string {
	if token, ok := bearerFromContext(ctx); ok {
		return token
	}
	if c.tokens != nil {
		return c.tokens.Token()
	}
	return ""
}

// do executes one backend request and returns the raw body. Non-2xx
// responses are decoded into APIError; the server message is logged here so
// callers only have to interpret the structured error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Op: "marshal request body", Err: err}
		}
		payload = bytes.NewReader(raw)
	}

	fullURL := c.baseURL + ensureLeadingSlash(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, payload)
	if err != nil {
		return nil, &APIError{Op: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(path, method, 0)
		return nil, &APIError{Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	c.metrics.RecordUpstream(path, method, resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &APIError{Op: "read response", StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Op: method + " " + path, StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Code = envelope.Code
			apiErr.Errors = envelope.Errors
		}
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, apiErr
	}

	return raw, nil
}

// Do executes a request and unwraps the data field of the envelope.
func Do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	raw, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 {
		return zero, nil
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return zero, &APIError{Op: "decode response", Err: err}
	}
	return envelope.Data, nil
}

// DoList executes a GET against a list endpoint and returns items plus the
// pagination block.
func DoList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, Pagination, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, Pagination{}, err
	}

	var envelope PaginatedEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, Pagination{}, &APIError{Op: "decode list response", Err: err}
	}
	return envelope.Data, envelope.Pagination, nil
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
