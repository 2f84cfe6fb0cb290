//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"host-pricing/internal/pkg/config"
	"host-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, hostID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(hostID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, hostID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(hostID)
	require.NoError(t, err)
	return token
}
