package bootstrap

import (
	"fmt"

	"host-pricing/internal/pkg/config"
	"host-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, fmt.Errorf("JWT_DURATION must be positive, got %s", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
