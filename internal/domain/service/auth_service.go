package service

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login checks the admin credentials and issues an access token
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)

	// Logout revokes the token until it would have expired anyway
	Logout(ctx context.Context, token string) error

	// Authenticate validates a bearer token and rejects revoked ones
	Authenticate(ctx context.Context, token string) (*security.AdminClaims, error)
}
