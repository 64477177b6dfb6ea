package auth

import (
	"github.com/polkiloo/servicebooking/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}
	if p.Config.AuthStrategy == config.AuthStrategyHMAC {
		return NewHMACStrategy(p.Config.JWTSecret, opts)
	}
	return NewJWTStrategy(p.Config.JWTSecret, opts)
}
