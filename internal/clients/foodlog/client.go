// Package foodlog wraps the food diary endpoints.
package foodlog

import (
	"context"

	"nutritrack/internal/api/client"
	"nutritrack/internal/api/endpoint"
	"nutritrack/internal/api/request"
	"nutritrack/internal/api/wire"
	"nutritrack/internal/logging"
)

type Client struct {
	api *client.Client
	log logging.Logger
}

func New(api *client.Client, log logging.Logger) *Client {
	return &Client{
		api: api,
		log: log.With("component", "foodlog"),
	}
}

type Entry struct {
	ID       string         `json:"id"`
	FoodID   string         `json:"food_id"`
	FoodName string         `json:"food_name"`
	MealType string         `json:"meal_type"`
	Servings float64        `json:"servings"`
	Calories float64        `json:"calories"`
	LoggedAt wire.Timestamp `json:"logged_at"`
}

// Filter narrows a diary listing; dates are YYYY-MM-DD.
type Filter struct {
	From     string `url:"from,omitempty"`
	To       string `url:"to,omitempty"`
	MealType string `url:"meal_type,omitempty"`
}

type NewEntry struct {
	FoodID   string         `json:"food_id" validate:"required"`
	MealType string         `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Servings float64        `json:"servings" validate:"gt=0"`
	LoggedAt wire.Timestamp `json:"logged_at"`
}

type UpdateEntry struct {
	MealType string  `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Servings float64 `json:"servings,omitempty" validate:"omitempty,gt=0"`
}

// List returns the diary entries matching the filter.
func (c *Client) List(ctx context.Context, f Filter) ([]Entry, error) {
	return client.Call[[]Entry](ctx, c.api, request.Config{
		Endpoint: endpoint.FoodLogs(),
		Query:    f,
	})
}

// Create appends one entry to the diary.
func (c *Client) Create(ctx context.Context, e NewEntry) (Entry, error) {
	return client.Call[Entry](ctx, c.api, request.Config{
		Endpoint: endpoint.CreateFoodLog(),
		Payload:  e,
	})
}

// Get fetches one diary entry by id.
func (c *Client) Get(ctx context.Context, id string) (Entry, error) {
	return client.Call[Entry](ctx, c.api, request.Config{
		Endpoint: endpoint.FoodLog(id),
	})
}

// Update modifies one diary entry.
func (c *Client) Update(ctx context.Context, id string, u UpdateEntry) (Entry, error) {
	return client.Call[Entry](ctx, c.api, request.Config{
		Endpoint: endpoint.UpdateFoodLog(id),
		Payload:  u,
	})
}

// Delete removes one diary entry.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.api.CallNoContent(ctx, request.Config{
		Endpoint: endpoint.DeleteFoodLog(id),
	})
}
