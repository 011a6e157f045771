package impl

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// authService implements service.AuthService against the configured admin account
type authService struct {
	admin          config.AdminConfig
	jwtProvider    *security.JWTProvider
	passwordHasher *security.PasswordHasher
	denylist       *security.TokenDenylist
	logger         *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	admin config.AdminConfig,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	denylist *security.TokenDenylist,
	logger *zap.Logger,
) service.AuthService {
	return &authService{
		admin:          admin,
		jwtProvider:    jwtProvider,
		passwordHasher: passwordHasher,
		denylist:       denylist,
		logger:         logger,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	// Verify runs even for an unknown user so both failures take the same time
	passOK := s.passwordHasher.Verify(req.Password, s.admin.PasswordHash)
	if !userOK || !passOK {
		s.logger.Warn("admin login failed", zap.String("username", req.Username))
		return nil, service.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtProvider.GenerateAccessToken(s.admin.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.logger.Info("admin logged in", zap.String("username", s.admin.Username))

	return &response.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwtProvider.GetAccessTokenDuration(),
		ExpiresAt:   expiresAt,
		Username:    s.admin.Username,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtProvider.ValidateAccessToken(token)
	if err != nil {
		// An invalid token is already unusable
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.Wrap(err, apperrors.ErrServiceUnavailable)
	}
	s.logger.Info("admin logged out", zap.String("username", claims.Username))
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*security.AdminClaims, error) {
	claims, err := s.jwtProvider.ValidateAccessToken(token)
	if err != nil {
		return nil, service.ErrInvalidToken.WithError(err)
	}
	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrServiceUnavailable)
	}
	if revoked {
		return nil, service.ErrInvalidToken
	}
	return claims, nil
}
