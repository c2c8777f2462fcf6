// Package progress wraps the weight and progress-photo endpoints.
package progress

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
		log: log.With("component", "progress"),
	}
}

type WeightEntry struct {
	ID         string         `json:"id"`
	WeightKG   float64        `json:"weight_kg"`
	Note       string         `json:"note,omitempty"`
	RecordedAt wire.Timestamp `json:"recorded_at"`
}

type NewWeightEntry struct {
	WeightKG   float64        `json:"weight_kg" validate:"gt=0"`
	Note       string         `json:"note,omitempty"`
	RecordedAt wire.Timestamp `json:"recorded_at"`
}

type Photo struct {
	ID      string         `json:"id"`
	URL     string         `json:"url"`
	TakenAt wire.Timestamp `json:"taken_at"`
}

// Range narrows listings to a date window; dates are YYYY-MM-DD.
type Range struct {
	From string `url:"from,omitempty"`
	To   string `url:"to,omitempty"`
}

// Weights lists weight entries in the range.
func (c *Client) Weights(ctx context.Context, r Range) ([]WeightEntry, error) {
	return client.Call[[]WeightEntry](ctx, c.api, request.Config{
		Endpoint: endpoint.WeightEntries(),
		Query:    r,
	})
}

// RecordWeight appends one weight entry.
func (c *Client) RecordWeight(ctx context.Context, e NewWeightEntry) (WeightEntry, error) {
	return client.Call[WeightEntry](ctx, c.api, request.Config{
		Endpoint: endpoint.CreateWeightEntry(),
		Payload:  e,
	})
}

// Photos lists progress photos in the range.
func (c *Client) Photos(ctx context.Context, r Range) ([]Photo, error) {
	return client.Call[[]Photo](ctx, c.api, request.Config{
		Endpoint: endpoint.ProgressPhotos(),
		Query:    r,
	})
}
