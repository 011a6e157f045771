package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrNotSignedIn is returned by Logout when no session is stored
var ErrNotSignedIn = errors.New("not signed in")

// Credentials are the admin username and password
type Credentials struct {
	Username string
	Password string
}

// Session is an authenticated admin session
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// AuthProvider signs the editor in and out
type AuthProvider interface {
	Login(ctx context.Context, creds Credentials) (Session, error)
	Logout(ctx context.Context) error
}

// HTTPAuth signs in against the content API and keeps the token in a KVStore
type HTTPAuth struct {
	client *Client
	store  KVStore
	logger *zap.Logger
}

var _ AuthProvider = (*HTTPAuth)(nil)

// NewHTTPAuth creates an AuthProvider backed by the API's auth endpoints
func NewHTTPAuth(client *Client, store KVStore, logger *zap.Logger) *HTTPAuth {
	return &HTTPAuth{client: client, store: store, logger: logger}
}

// Login stores the issued token under TokenKey
func (a *HTTPAuth) Login(ctx context.Context, creds Credentials) (Session, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		a.logger.Warn("Admin login failed", zap.String("username", creds.Username), zap.Error(err))
		return Session{}, err
	}
	if err := a.store.Set(ctx, TokenKey, resp.AccessToken); err != nil {
		return Session{}, fmt.Errorf("storing admin token: %w", err)
	}
	a.logger.Info("Admin signed in", zap.String("username", resp.Username))
	return Session{Token: resp.AccessToken, Username: resp.Username, ExpiresAt: resp.ExpiresAt}, nil
}

// Logout revokes the stored token and clears it. The local token is cleared
// even when the server cannot be reached.
func (a *HTTPAuth) Logout(ctx context.Context) error {
	token, ok, err := a.store.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("reading admin token: %w", err)
	}
	if !ok || token == "" {
		return ErrNotSignedIn
	}

	remoteErr := a.client.Logout(ctx, token)
	if remoteErr != nil {
		a.logger.Warn("Server logout failed", zap.Error(remoteErr))
	}
	if err := a.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clearing admin token: %w", err)
	}
	a.logger.Info("Admin signed out")
	return remoteErr
}
