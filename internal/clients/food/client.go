// Package food wraps the food catalog endpoints: search, lookup, and
// user-defined custom foods.
package food

import (
	"context"

	"nutritrack/internal/api/client"
	"nutritrack/internal/api/endpoint"
	"nutritrack/internal/api/request"
	"nutritrack/internal/logging"
)

type Client struct {
	api *client.Client
	log logging.Logger
}

func New(api *client.Client, log logging.Logger) *Client {
	return &Client{
		api: api,
		log: log.With("component", "food"),
	}
}

type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	Custom      bool    `json:"custom"`
}

// SearchQuery is encoded into the query string of the search request.
type SearchQuery struct {
	Query string `url:"q"`
	Page  int    `url:"page,omitempty"`
	Limit int    `url:"limit,omitempty"`
}

type NewFood struct {
	Name        string  `json:"name" validate:"required"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `json:"serving_size" validate:"required"`
	Calories    float64 `json:"calories" validate:"gte=0"`
	ProteinG    float64 `json:"protein_g" validate:"gte=0"`
	CarbsG      float64 `json:"carbs_g" validate:"gte=0"`
	FatG        float64 `json:"fat_g" validate:"gte=0"`
}

// Search looks foods up by free-text query.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Food, error) {
	return client.Call[[]Food](ctx, c.api, request.Config{
		Endpoint: endpoint.SearchFood(),
		Query:    q,
	})
}

// Get fetches one food by id.
func (c *Client) Get(ctx context.Context, id string) (Food, error) {
	return client.Call[Food](ctx, c.api, request.Config{
		Endpoint: endpoint.Food(id),
	})
}

// Create registers a custom food for the authenticated user.
func (c *Client) Create(ctx context.Context, f NewFood) (Food, error) {
	return client.Call[Food](ctx, c.api, request.Config{
		Endpoint: endpoint.CreateFood(),
		Payload:  f,
	})
}
