// Package users wraps the user profile endpoints.
package users

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
		log: log.With("component", "users"),
	}
}

type Profile struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	DisplayName string         `json:"display_name"`
	HeightCM    float64        `json:"height_cm"`
	WeightKG    float64        `json:"weight_kg"`
	DateOfBirth string         `json:"date_of_birth,omitempty"`
	CreatedAt   wire.Timestamp `json:"created_at"`
	UpdatedAt   wire.Timestamp `json:"updated_at"`
}

type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name,omitempty"`
	HeightCM    float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0"`
	WeightKG    float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
}

// Current returns the authenticated user's profile.
func (c *Client) Current(ctx context.Context) (Profile, error) {
	return client.CallWrapped[Profile](ctx, c.api, request.Config{
		Endpoint: endpoint.CurrentUser(),
	})
}

// Update applies a partial profile update and returns the new profile.
func (c *Client) Update(ctx context.Context, req UpdateProfileRequest) (Profile, error) {
	return client.CallWrapped[Profile](ctx, c.api, request.Config{
		Endpoint: endpoint.UpdateCurrentUser(),
		Payload:  req,
	})
}

// DeleteAccount permanently removes the authenticated user's account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	c.log.Warn("deleting account")
	return c.api.CallNoContent(ctx, request.Config{
		Endpoint: endpoint.DeleteAccount(),
	})
}
