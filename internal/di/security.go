package di

import (
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
		provideTokenDenylist,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher(bcrypt.DefaultCost)
}

// provideTokenDenylist shares the document cache so logouts reach every
// instance when Redis is enabled.
func provideTokenDenylist(c cache.Cache) *security.TokenDenylist {
	return security.NewTokenDenylist(c)
}
