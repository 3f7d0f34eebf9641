package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/teemow/zoomctl/internal/logging"
)

const (
	// DefaultBaseURL is the Zoom REST API v2 endpoint.
	DefaultBaseURL = "https://api.zoom.us/v2"

	// EnvAccessToken names the environment variable holding the bearer
	// access token, so secrets need not appear inline in scripts.
	EnvAccessToken = "ZOOM_ACCESS_TOKEN"

	defaultUserID   = "me"
	defaultTimezone = "UTC"
)

// Client calls the Zoom REST API on behalf of a single bearer token.
//
// A Client holds no mutable state. All fields are fixed at construction,
// so a single Client is safe for concurrent use and separate Clients
// share nothing.
type Client struct {
	baseURL    string
	token      string
	userID     string
	timezone   string
	httpClient *http.Client
	logger     *slog.Logger
	validate   *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger overrides the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserID overrides the user the meeting endpoints operate on.
// Defaults to "me", the owner of the access token.
func WithUserID(userID string) Option {
	return func(c *Client) {
		c.userID = userID
	}
}

// WithTimezone sets the timezone applied to meetings created without an
// explicit one. Defaults to UTC.
func WithTimezone(timezone string) Option {
	return func(c *Client) {
		c.timezone = timezone
	}
}

// NewClient creates a Zoom API client authenticating with the given
// bearer access token.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      accessToken,
		userID:     defaultUserID,
		timezone:   defaultTimezone,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("zoom client created",
		logging.Service("zoom"),
		slog.String("base_url", c.baseURL),
		slog.String("token", logging.SanitizeToken(accessToken)))

	return c, nil
}

// NewClientFromEnvironment creates a client using the access token from
// the ZOOM_ACCESS_TOKEN environment variable.
func NewClientFromEnvironment(opts ...Option) (*Client, error) {
	token := os.Getenv(EnvAccessToken)
	if token == "" {
		return nil, fmt.Errorf("%s is not set", EnvAccessToken)
	}
	return NewClient(token, opts...)
}

// do issues one API request. A non-2xx response becomes an *APIError;
// transport failures are returned wrapped and are never retried.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("making request",
		logging.Method(method),
		logging.Endpoint(endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		c.logger.Error("unsuccessful request",
			logging.Method(method),
			logging.Endpoint(endpoint),
			slog.Int("status_code", resp.StatusCode),
			logging.Err(apiErr))
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", method, endpoint, err)
		}
	}
	return nil
}

// Get issues a raw GET request and returns the response body. It is the
// escape hatch for endpoints without a typed wrapper.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Post issues a raw POST request and returns the response body.
func (c *Client) Post(ctx context.Context, endpoint string, query url.Values, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, endpoint, query, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Patch issues a raw PATCH request and returns the response body.
func (c *Client) Patch(ctx context.Context, endpoint string, query url.Values, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPatch, endpoint, query, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Put issues a raw PUT request and returns the response body.
func (c *Client) Put(ctx context.Context, endpoint string, query url.Values, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, endpoint, query, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Delete issues a raw DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, endpoint, query, nil, nil)
}
