package client

import (
	"context"
	"sync"
)

// TokenSource supplies the bearer token for a call. The pipeline treats the
// token as an immutable per-call input; refresh and rotation live behind
// this interface.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type staticTokenSource struct {
	token string
}

// StaticTokenSource returns the same token on every call.
func StaticTokenSource(token string) TokenSource {
	return staticTokenSource{token: token}
}

func (s staticTokenSource) Token(context.Context) (string, error) {
	return s.token, nil
}

// TokenStore is an in-memory TokenSource the auth flow writes into after
// login and clears on logout. Safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (s *TokenStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *TokenStore) Clear() {
	s.Set("")
}
