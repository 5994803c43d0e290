// Package apiclient issues single JSON requests against the panel's API and
// folds every outcome, including transport and parse failures, into a Result.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/ziadkadry99/opspanel/internal/config"
)

const jsonContentType = "application/json"

// CallOptions describes one request.
type CallOptions struct {
	Method string
	// Body is encoded as JSON when non-nil.
	Body any
	// Accept overrides the Accept header.
	Accept string
}

// Client talks to the API named by a config.Config.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
	base       http.RoundTripper
	extra      []MiddlewareFunc
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used by the request logging middleware.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTransport replaces the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

// WithMiddleware appends middleware after the built-in chain.
func WithMiddleware(mw ...MiddlewareFunc) Option {
	return func(c *Client) { c.extra = append(c.extra, mw...) }
}

// New creates a Client for cfg.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		logger: zap.NewNop(),
		base:   http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}

	chain := []MiddlewareFunc{
		UserAgent(cfg.UserAgent),
		RequestID(),
		Logging(c.logger),
	}
	chain = append(chain, c.extra...)

	c.httpClient = &http.Client{
		Transport: &chainTransport{base: c.base, middleware: chain},
		Timeout:   cfg.Timeout,
	}
	return c
}

// Config returns the configuration the client resolves endpoints with.
func (c *Client) Config() *config.Config { return c.cfg }

// Fetch sends one request and returns the raw body without parsing it.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts CallOptions) Result {
	start := time.Now()
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	res := Result{Endpoint: endpoint, Method: method}

	url, err := c.cfg.URL(endpoint)
	if err != nil {
		res.Err = err.Error()
		return finish(res, start)
	}
	res.URL = url

	var body io.Reader
	if opts.Body != nil {
		buf, err := json.Marshal(opts.Body)
		if err != nil {
			res.Err = fmt.Sprintf("encoding request: %v", err)
			return finish(res, start)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		res.Err = err.Error()
		return finish(res, start)
	}
	req.Header.Set("Content-Type", jsonContentType)
	accept := opts.Accept
	if accept == "" {
		accept = jsonContentType
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Err = err.Error()
		return finish(res, start)
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Sprintf("reading response: %v", err)
		return finish(res, start)
	}
	res.Raw = string(text)
	res.OK = resp.StatusCode >= 200 && resp.StatusCode < 300
	return finish(res, start)
}

// Call sends one request and parses the body as JSON. An empty body is
// treated as {}. A body that does not parse yields ErrInvalidJSON.
func (c *Client) Call(ctx context.Context, endpoint string, opts CallOptions) Result {
	res := c.Fetch(ctx, endpoint, opts)
	if res.Failed() {
		res.OK = false
		return res
	}

	text := res.Raw
	if text == "" {
		text = "{}"
	}
	if !gjson.Valid(text) {
		c.logger.Debug("response is not JSON",
			zap.String("endpoint", endpoint),
			zap.Int("status", res.Status))
		res.OK = false
		res.Err = ErrInvalidJSON
		return res
	}
	res.Data = gjson.Parse(text)
	return res
}

func finish(res Result, start time.Time) Result {
	res.Duration = time.Since(start)
	return res
}
