// Package health wraps the API health-check endpoint.
package health

import (
	"context"

	"nutritrack/internal/api/client"
	"nutritrack/internal/api/endpoint"
	"nutritrack/internal/api/request"
)

type Client struct {
	api *client.Client
}

func New(api *client.Client) *Client {
	return &Client{api: api}
}

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Ping checks API reachability. The endpoint is public.
func (c *Client) Ping(ctx context.Context) (Status, error) {
	return client.Call[Status](ctx, c.api, request.Config{
		Endpoint: endpoint.Health(),
		SkipAuth: true,
	})
}
