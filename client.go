// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/peopledatalabs/internal/logging"
	"github.com/tomtom215/peopledatalabs/internal/metrics"
	"github.com/tomtom215/peopledatalabs/models"
)

const (
	DefaultBaseURL   = "https://api.peopledatalabs.com/"
	SandboxBaseURL   = "https://sandbox.api.peopledatalabs.com/"
	DefaultVersion   = "v5"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "peopledatalabs-go/1.0"

	// maxErrorBodySize limits how much of a non-200 body is read
	maxErrorBodySize = 64 * 1024
	// maxResponseSize bounds a 200 body; bulk responses of 100 full records fit well within it
	maxResponseSize = 64 * 1024 * 1024
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends requests to the People Data Labs API. It is immutable once
// built and safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	version    string
	userAgent  string
	timeout    time.Duration
	httpClient Doer
	logger     zerolog.Logger
	breaker    *circuitBreaker
	personRule PersonRule
}

// Option configures a Client at construction.
type Option func(*Client)

// WithSandbox sends requests to the sandbox endpoint, which serves test data without billing.
func WithSandbox() Option {
	return func(c *Client) { c.baseURL = SandboxBaseURL }
}

// WithTimeout bounds every call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithVersion overrides the API version path segment.
func WithVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.version = v
		}
	}
}

// WithBaseURL overrides the base endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithLogger replaces the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUserAgent sets the User-Agent header sent with every request. An empty
// value keeps DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithPersonRule replaces the rule used to validate person enrich, identify
// and bulk enrich requests.
func WithPersonRule(rule PersonRule) Option {
	return func(c *Client) {
		if rule != nil {
			c.personRule = rule
		}
	}
}

// NewClient builds a client for apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		version:    DefaultVersion,
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logging.WithComponent("pdl"),
		personRule: DefaultPersonRule,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone returns a copy sharing the configuration, HTTP client and breaker.
func (c *Client) Clone() *Client {
	clone := *c
	return &clone
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Version returns the API version path segment.
func (c *Client) Version() string { return c.version }

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// endpoint joins base URL, version and path.
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.Trim(c.version, "/") + path
}

// call describes one HTTP exchange.
type call struct {
	op       string
	method   string
	endpoint string // metrics label; path with ids templated out
	path     string
	query    url.Values
	body     []byte
}

// get issues a GET for fs and decodes a 200 response into T.
func get[T any](ctx context.Context, c *Client, op, path string, fs *fieldSet) (*T, error) {
	return getPath[T](ctx, c, op, path, path, fs)
}

func getPath[T any](ctx context.Context, c *Client, op, endpoint, path string, fs *fieldSet) (*T, error) {
	query, err := fs.query()
	if err != nil {
		return nil, c.fail(ctx, endpoint, &SerializationError{Op: op, Err: err})
	}
	data, err := c.exchange(ctx, call{op: op, method: http.MethodGet, endpoint: endpoint, path: path, query: query})
	if err != nil {
		return nil, c.fail(ctx, endpoint, err)
	}
	return decode[T](ctx, c, op, endpoint, data)
}

// post issues a POST with payload encoded as JSON and decodes a 200 response into T.
func post[T any](ctx context.Context, c *Client, op, path string, payload any) (*T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, c.fail(ctx, path, &SerializationError{Op: op, Err: err})
	}
	data, err := c.exchange(ctx, call{op: op, method: http.MethodPost, endpoint: path, path: path, body: body})
	if err != nil {
		return nil, c.fail(ctx, path, err)
	}
	return decode[T](ctx, c, op, path, data)
}

func decode[T any](ctx context.Context, c *Client, op, endpoint string, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, c.fail(ctx, endpoint, &DeserializationError{Op: op, Err: err})
	}
	return &out, nil
}

// reject records a request refused before it was sent.
func (c *Client) reject(ctx context.Context, endpoint string, err error) error {
	var ve *ValidationError
	field := ""
	if errors.As(err, &ve) {
		field = ve.Field
	}
	metrics.RecordValidationReject(endpoint, field)
	return c.fail(ctx, endpoint, err)
}

// fail logs and counts err, then returns it unchanged.
func (c *Client) fail(ctx context.Context, endpoint string, err error) error {
	kind := errorKind(err)
	metrics.RecordAPIError(endpoint, kind)
	logging.Ctx(ctx, c.logger).Warn().Err(err).Str("endpoint", endpoint).Str("kind", kind).Msg("request failed")
	return err
}

// exchange sends the request, through the breaker when one is configured,
// and returns the body of a 200 response.
func (c *Client) exchange(ctx context.Context, r call) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.breaker == nil {
		return c.roundTrip(ctx, r)
	}
	return c.breaker.execute(r.op, func() ([]byte, error) {
		return c.roundTrip(ctx, r)
	})
}

func (c *Client) roundTrip(ctx context.Context, r call) ([]byte, error) {
	ctx, requestID := logging.EnsureRequestID(ctx)

	reqURL := c.endpoint(r.path)
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	var body io.Reader = http.NoBody
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, body)
	if err != nil {
		return nil, &SerializationError{Op: r.op, Err: fmt.Errorf("create request failed: %w", err)}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(r.method, r.endpoint, 0, time.Since(start))
		return nil, &NetworkError{Op: r.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	metrics.RecordAPIRequest(r.method, r.endpoint, resp.StatusCode, duration)
	logging.Ctx(ctx, c.logger).Debug().
		Str("method", r.method).
		Str("endpoint", r.endpoint).
		Dict("query", loggableQuery(r.query)).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("api request")

	if resp.StatusCode != http.StatusOK {
		return nil, newHTTPError(r.op, resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &NetworkError{Op: r.op, Err: fmt.Errorf("read response body: %w", err)}
	}
	return data, nil
}

// loggableQuery renders q for a log line with personal values masked.
func loggableQuery(q url.Values) *zerolog.Event {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dict := zerolog.Dict()
	for _, k := range keys {
		dict.Str(k, logging.SanitizeValue(k, q.Get(k)))
	}
	return dict
}

// newHTTPError reads a bounded excerpt of a failed response and extracts the
// service's error type and message when the body carries them.
func newHTTPError(op string, resp *http.Response) *HTTPError {
	httpErr := &HTTPError{Op: op, StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(data) == 0 {
		return httpErr
	}
	httpErr.Body = data

	var apiErr models.ErrorResponse
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != nil {
		httpErr.Type = apiErr.Error.Type
		httpErr.Message = apiErr.Error.Message
	}
	return httpErr
}
