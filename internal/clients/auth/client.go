// Package auth wraps the authentication endpoints and keeps the session
// token store in sync with login/logout.
package auth

import (
	"context"

	"nutritrack/internal/api/client"
	"nutritrack/internal/api/endpoint"
	"nutritrack/internal/api/request"
	"nutritrack/internal/api/wire"
	"nutritrack/internal/logging"
)

type Client struct {
	api   *client.Client
	store *client.TokenStore
	log   logging.Logger
}

// New creates the auth client. store may be nil when the caller manages
// tokens itself.
func New(api *client.Client, store *client.TokenStore, log logging.Logger) *Client {
	return &Client{
		api:   api,
		store: store,
		log:   log.With("component", "auth"),
	}
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required"`
}

type Session struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresAt    wire.Timestamp `json:"expires_at"`
	UserID       string         `json:"user_id"`
}

// Login exchanges credentials for a session and stores the access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	s, err := client.CallWrapped[Session](ctx, c.api, request.Config{
		Endpoint: endpoint.Login(),
		Payload:  creds,
		SkipAuth: true,
	})
	if err != nil {
		return Session{}, err
	}

	if c.store != nil {
		c.store.Set(s.AccessToken)
	}
	c.log.Info("logged in", "user_id", s.UserID)
	return s, nil
}

// Register creates an account and stores the session token it returns.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	s, err := client.CallWrapped[Session](ctx, c.api, request.Config{
		Endpoint: endpoint.Register(),
		Payload:  req,
		SkipAuth: true,
	})
	if err != nil {
		return Session{}, err
	}

	if c.store != nil {
		c.store.Set(s.AccessToken)
	}
	return s, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh trades a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	s, err := client.CallWrapped[Session](ctx, c.api, request.Config{
		Endpoint: endpoint.RefreshToken(),
		Payload:  refreshRequest{RefreshToken: refreshToken},
		SkipAuth: true,
	})
	if err != nil {
		return Session{}, err
	}

	if c.store != nil {
		c.store.Set(s.AccessToken)
	}
	return s, nil
}

// Logout invalidates the session server-side and clears the stored token.
// The local token is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.api.CallNoContent(ctx, request.Config{
		Endpoint: endpoint.Logout(),
	})

	if c.store != nil {
		c.store.Clear()
	}
	return err
}
