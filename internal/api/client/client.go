// Package client executes built requests against the API and feeds the raw
// results through the response handler. It is the only place in the pipeline
// that performs network I/O.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"nutritrack/internal/api/request"
	"nutritrack/internal/api/response"
	"nutritrack/internal/config"
	"nutritrack/internal/logging"
)

type Client struct {
	builder *request.Builder
	handler *response.Handler
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New creates an instrumented API client for one environment. tokens may be
// nil for a client that only calls public endpoints.
func New(cfg *config.Config, tokens TokenSource, log logging.Logger) *Client {
	httpClient := &http.Client{
		// Per-request timeouts come from the built request via context,
		// so no client-wide Timeout here.
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{
		builder: request.NewBuilder(cfg.Environment, cfg.API, cfg.Client),
		handler: response.NewHandler(log.With("component", "api")),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

// BaseURL returns the versioned API root this client talks to.
func (c *Client) BaseURL() string {
	return c.builder.BaseURL()
}

// Call executes one request and decodes the response body into T.
func Call[T any](ctx context.Context, c *Client, cfg request.Config) (T, error) {
	var zero T

	res, err := c.do(ctx, cfg)
	if err != nil {
		return zero, err
	}
	return response.Decode[T](c.handler, res)
}

// CallWrapped executes one request against an endpoint that uses the generic
// success envelope and returns the unwrapped data.
func CallWrapped[T any](ctx context.Context, c *Client, cfg request.Config) (T, error) {
	var zero T

	res, err := c.do(ctx, cfg)
	if err != nil {
		return zero, err
	}
	return response.DecodeWrapped[T](c.handler, res)
}

// CallNoContent executes one request and validates the status only, for
// operations whose success response carries no body.
func (c *Client) CallNoContent(ctx context.Context, cfg request.Config) error {
	res, err := c.do(ctx, cfg)
	if err != nil {
		return err
	}
	return c.handler.Validate(res)
}

// do builds and executes the request. Build and token-source failures come
// back as the error; transport failures ride inside the Result so the
// response handler can classify them.
func (c *Client) do(ctx context.Context, cfg request.Config) (response.Result, error) {
	if !cfg.SkipAuth && cfg.Token == "" && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return response.Result{}, fmt.Errorf("token source: %w", err)
		}
		cfg.Token = token
	}

	req, err := c.builder.Build(cfg)
	if err != nil {
		return response.Result{}, err
	}

	res := response.Result{Method: req.Method, URL: req.URL}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return res, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header = req.Header

	resp, err := c.http.Do(httpReq)
	if err != nil {
		res.Err = err
		return res, nil
	}
	defer func(b io.ReadCloser) {
		_ = b.Close()
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = err
		return res, nil
	}

	res.Status = resp.StatusCode
	res.Header = resp.Header
	res.Body = raw
	return res, nil
}
